// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_ReadsPrefixedVariables(t *testing.T) {
	t.Setenv("STORAGE_DB_DSN", "/env/notes.db")
	t.Setenv("STORAGE_EXPORT_FORMAT", "yaml")
	t.Setenv("STORAGE_IMPORT_PATH", "/env/seed.yaml")
	t.Setenv("ADAPTER_QUOTE_URL", "http://env.quotes")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "3s")
	t.Setenv("WORKERS_AUTOSAVE_INTERVAL", "1s")
	t.Setenv("LAYOUT_NOTE_WIDTH", "120")
	t.Setenv("SERVER_ADDRESS", "localhost:9000")
	t.Setenv("CONFIG", "/env/config.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "/env/notes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "yaml", cfg.Storage.Export.Format)
	assert.Equal(t, "/env/seed.yaml", cfg.Storage.Import.Path)
	assert.Equal(t, "http://env.quotes", cfg.Adapter.QuoteURL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Second, cfg.Workers.AutosaveInterval)
	assert.InDelta(t, 120.0, cfg.Layout.NoteWidth, 0)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "/env/config.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("WORKERS_AUTOSAVE_INTERVAL", "often")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}
