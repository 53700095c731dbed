// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"testing"

	"github.com/MKhiriev/go-note-board/internal/board"
	"github.com/MKhiriev/go-note-board/internal/logger"
	"github.com/MKhiriev/go-note-board/models"
	"github.com/stretchr/testify/assert"
)

func TestNewHandler_StoresDependencies(t *testing.T) {
	buf := new(board.SnapshotBuffer)
	info := models.NewAppBuildInfo("v1.2.3", "", "")

	h := NewHandler(buf, "yaml", info, logger.Nop())

	assert.Same(t, buf, h.snapshots)
	assert.Equal(t, "yaml", h.exportFormat)
	assert.Equal(t, info, h.buildInfo)
	assert.NotNil(t, h.logger)
}

func TestNewHandler_ReturnsDistinctInstances(t *testing.T) {
	buf := new(board.SnapshotBuffer)

	h1 := NewHandler(buf, "json", models.AppBuildInfo{}, logger.Nop())
	h2 := NewHandler(buf, "json", models.AppBuildInfo{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}
