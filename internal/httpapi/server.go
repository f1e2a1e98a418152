/*
NAME
  server.go

DESCRIPTION
  server.go wires the HTTP surface of spec §6: a single POST /api/embed
  endpoint plus a /healthz liveness check, built on the standard
  net/http.ServeMux following the handler-registration style used
  elsewhere in the retrieved corpus for HTTP-serving components.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package httpapi implements the HTTP boundary of the watermark service:
// multipart decoding, input validation, and JSON response encoding. The
// embedding pipeline itself lives in internal/watermark and internal/tilewm
// and is treated here as an external collaborator (spec §1).
package httpapi

import (
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/ausocean/watermark/internal/tilewm"
)

// Config holds the service-level parameters threaded into the HTTP
// handlers (SPEC_FULL.md §3 ServiceConfig). It is built once in main and
// never mutated.
type Config struct {
	MaxPixels      int
	DefaultMargin  float64
	DefaultGridAmp float64
	Tiled          tilewm.Config
}

// DefaultConfig mirrors spec §6's documented defaults.
var DefaultConfig = Config{
	MaxPixels:      40_000_000,
	DefaultMargin:  14.0,
	DefaultGridAmp: 1.4,
	Tiled:          tilewm.DefaultConfig,
}

// NewServer returns an http.Handler serving the watermark API.
func NewServer(cfg Config, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()
	h := &handler{cfg: cfg, log: logger}

	mux.HandleFunc("/api/embed", h.embed)
	mux.HandleFunc("/healthz", h.health)
	return mux
}

type handler struct {
	cfg Config
	log *log.Logger
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
