package whatweb

import (
	"encoding/json"
	"fmt"

	"github.com/netscapy/netscapy/pkg/types"
)

type plugin struct {
	String  []string `json:"string"`
	Version []string `json:"version"`
}

type record struct {
	Target     string            `json:"target"`
	HTTPStatus int               `json:"http_status"`
	Plugins    map[string]plugin `json:"plugins"`
}

// ParseReport converts whatweb's JSON log, an array with one record per
// request, into a WhatWebInfo. The IP, HTTPServer, and Title plugins get
// their own fields; everything else lands in the technology map.
func ParseReport(data []byte) (*types.WhatWebInfo, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding whatweb JSON: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("whatweb JSON contains no results")
	}

	rec := records[0]
	info := &types.WhatWebInfo{
		URL:          rec.Target,
		HTTPStatus:   rec.HTTPStatus,
		Technologies: make(map[string][]string),
	}

	for name, p := range rec.Plugins {
		switch name {
		case "IP":
			info.IP = first(p.String)
		case "HTTPServer":
			info.Server = first(p.String)
		case "Title":
			info.Title = first(p.String)
		default:
			values := append([]string(nil), p.String...)
			values = append(values, p.Version...)
			info.Technologies[name] = values
		}
	}
	return info, nil
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
