// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-note-board/internal/logger"
	"github.com/MKhiriev/go-note-board/models"
)

// SnapshotSource is the published board state. *board.SnapshotBuffer
// implements it.
type SnapshotSource interface {
	Latest() ([]models.Note, bool)
	Version() uint64
}

type Handler struct {
	snapshots    SnapshotSource
	exportFormat string
	buildInfo    models.AppBuildInfo

	logger *logger.Logger
}

// NewHandler builds the export handler. exportFormat is the default format of
// /api/notes/export.
func NewHandler(snapshots SnapshotSource, exportFormat string, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		snapshots:    snapshots,
		exportFormat: exportFormat,
		buildInfo:    buildInfo,
		logger:       logger,
	}
}
