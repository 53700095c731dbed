// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-board/internal/config"
	"github.com/MKhiriev/go-note-board/internal/logger"
	"github.com/MKhiriev/go-note-board/internal/store"
	"github.com/MKhiriev/go-note-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.DB.DSN = filepath.Join(dir, "notes.db")
	cfg.Storage.Export.Dir = dir
	cfg.Workers.AutosaveInterval = time.Hour
	return &cfg
}

func TestNewApp_RestoresImport(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.Import.Path = filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(cfg.Storage.Import.Path,
		[]byte(`[{"id": "imp", "content": "imported", "x": 10, "y": 20, "color": "pink", "timestamp": "2024-01-01T00:00:00Z"}]`), 0o600))

	app, err := NewApp(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.storages.Close() })

	n, ok := app.board.Notes().Get("imp")
	require.True(t, ok)
	assert.Equal(t, "imported", n.Content())
	assert.Nil(t, app.server)

	latest, ok := app.board.Snapshots().Latest()
	require.True(t, ok)
	assert.Len(t, latest, 1)
}

func TestApp_StopSavesLastSnapshot(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	app, err := NewApp(ctx, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	app.start()
	n := app.board.Create(models.Position{X: 100, Y: 120})
	app.board.EditContent(n.ID(), "saved on exit")
	app.board.Publish()
	app.stop()

	// повторное открытие той же базы
	storages, err := store.NewStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	notes, err := storages.Load(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, n.ID(), notes[0].ID)
	assert.Equal(t, "saved on exit", notes[0].Content)
	assert.Equal(t, 100.0, notes[0].X)
	assert.Equal(t, 100.0, notes[0].Y)
}

func TestNewApp_WithServer(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.HTTPAddress = "127.0.0.1:0"

	app, err := NewApp(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, app.server)

	app.start()
	assert.NotPanics(t, app.stop)
}

func TestNewApp_InvalidQuoteURL(t *testing.T) {
	cfg := testConfig(t)
	cfg.Adapter.QuoteURL = " "

	_, err := NewApp(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())

	assert.ErrorContains(t, err, "create quote adapter")
}
