// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {"log_file": "/tmp/board.log"},
		"storage": {
			"db": {"dsn": "/data/notes.db"},
			"export": {"dir": "/data/exports", "format": "yaml"},
			"import": {"path": "/data/seed.json"}
		},
		"server": {"http_address": "localhost:8090"},
		"adapter": {"quote_url": "http://quotes.local", "request_timeout": "4s"},
		"workers": {"autosave_interval": 2000000000},
		"layout": {"margin": 10, "note_width": 100, "note_height": 80, "gap": 5}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/board.log", cfg.App.LogFile)
	assert.Equal(t, "/data/notes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/data/exports", cfg.Storage.Export.Dir)
	assert.Equal(t, "yaml", cfg.Storage.Export.Format)
	assert.Equal(t, "/data/seed.json", cfg.Storage.Import.Path)
	assert.Equal(t, "localhost:8090", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://quotes.local", cfg.Adapter.QuoteURL)
	assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Workers.AutosaveInterval)
	assert.Equal(t, Layout{Margin: 10, NoteWidth: 100, NoteHeight: 80, Gap: 5}, cfg.Layout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"workers": {"autosave_interval": "soon"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
