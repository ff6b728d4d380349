package engine

import "errors"

// Sentinel errors for scan request validation.
// Callers should use errors.Is() to check for these.
var (
	// ErrEmptyTarget indicates the request named no target to scan.
	ErrEmptyTarget = errors.New("engine: no target specified")

	// ErrNoTools indicates the request named no tools at all.
	ErrNoTools = errors.New("engine: no tools requested")

	// ErrNoValidTools indicates none of the requested tools is registered,
	// so there is nothing to run.
	ErrNoValidTools = errors.New("engine: no valid tools requested")
)
