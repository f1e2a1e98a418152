/*
DESCRIPTION
  watermarkd is the HTTP front end for the watermark embedding pipeline: it
  accepts an image plus an id and key over POST /api/embed and returns the
  watermarked result (spec §6).

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>
  Alan Noble <alan@ausocean.org>
  Dan Kortschak <dan@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package watermarkd runs the watermark embedding service.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ausocean/watermark/internal/httpapi"
	"github.com/ausocean/watermark/internal/tilewm"
)

// Current software version.
const version = "v0.1.0"

// Defaults for flags not otherwise documented in spec §6.
const (
	defaultAddr            = ":8080"
	defaultShutdownTimeout = 10 * time.Second
)

func main() {
	addr := flag.String("addr", defaultAddr, "address to listen on")
	maxPixels := flag.Int("max-pixels", httpapi.DefaultConfig.MaxPixels, "maximum accepted image pixel count")
	defaultMargin := flag.Float64("margin", httpapi.DefaultConfig.DefaultMargin, "default modulation margin")
	defaultGridAmp := flag.Float64("grid-amp", httpapi.DefaultConfig.DefaultGridAmp, "default synchronisation grid amplitude")
	tileSize := flag.Int("tile-size", tilewm.DefaultConfig.TileSize, "tiled-mode physical tile size in pixels")
	tileMaxDim := flag.Int("tile-max-dim", tilewm.DefaultConfig.MaxDim, "tiled-mode canonical downscale dimension")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger := log.New(os.Stderr)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}
	logger.Info("starting watermarkd", "version", version, "addr", *addr)

	cfg := httpapi.Config{
		MaxPixels:      *maxPixels,
		DefaultMargin:  *defaultMargin,
		DefaultGridAmp: *defaultGridAmp,
		Tiled:          tilewm.Config{TileSize: *tileSize, MaxDim: *tileMaxDim},
	}

	srv := &http.Server{
		Addr:    *addr,
		Handler: httpapi.NewServer(cfg, logger),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("server exited", "error", err)
			os.Exit(1)
		}
	case sig := <-sigCh:
		logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
