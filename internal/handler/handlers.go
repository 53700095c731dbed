// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers of the application.
package handler

import (
	"github.com/MKhiriev/go-note-board/internal/config"
	"github.com/MKhiriev/go-note-board/internal/handler/http"
	"github.com/MKhiriev/go-note-board/internal/logger"
	"github.com/MKhiriev/go-note-board/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the handlers enabled by cfg. The export server is the
// only transport; without an address there is nothing to build.
func NewHandlers(snapshots http.SnapshotSource, storage config.Storage, cfg config.Server, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(snapshots, storage.Export.Format, buildInfo, logger),
	}, nil
}
