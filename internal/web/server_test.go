package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netscapy/netscapy/internal/engine"
	"github.com/netscapy/netscapy/internal/scanner"
	"github.com/netscapy/netscapy/internal/scanner/nmap"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	reg := scanner.NewRegistry()
	reg.Register(nmap.New())
	return NewServer(":0", engine.New(reg), Options{
		OutputDir: t.TempDir(),
		Workers:   2,
		Timeout:   time.Second,
	})
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestStaticFilesServed(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".navbar")
}

func TestUnknownRoute404(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/definitely-not-a-route", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
