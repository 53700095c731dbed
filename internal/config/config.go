// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of the note board. It is
// populated by merging environment variables, command-line flags and an
// optional JSON file, then completed with defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the durable store, export and import settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the optional export HTTP server settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the quote service settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Layout holds the row geometry applied after a sort, in board units.
	Layout Layout `envPrefix:"LAYOUT_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of environment variables and flags.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is where the terminal client writes its logs. Relative paths
	// are resolved next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups persistence settings.
type Storage struct {
	// DB is the SQLite store used by autosave and for startup loading.
	DB DB `envPrefix:"DB_"`

	// Export is the target of user-initiated exports.
	Export Export `envPrefix:"EXPORT_"`

	// Import is an optional snapshot file loaded at startup.
	Import Import `envPrefix:"IMPORT_"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is the SQLite data source name, usually a file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Export holds the export file settings.
type Export struct {
	// Dir is the directory export files are written to.
	// Env: STORAGE_EXPORT_DIR
	Dir string `env:"DIR"`

	// Format is "json" or "yaml".
	// Env: STORAGE_EXPORT_FORMAT
	Format string `env:"FORMAT"`
}

// Import holds the startup import settings.
type Import struct {
	// Path is a JSON or YAML snapshot file. When set, notes it adds to the
	// database are loaded too; ids already stored are left alone.
	// Env: STORAGE_IMPORT_PATH
	Path string `env:"PATH"`
}

// Server holds the export HTTP server settings.
type Server struct {
	// HTTPAddress is the "host:port" the export server listens on. Empty
	// disables the server.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Adapter holds the quote service settings.
type Adapter struct {
	// QuoteURL is the endpoint returning a random quote as
	// {"content": "...", "author": "..."}.
	// Env: ADAPTER_QUOTE_URL
	QuoteURL string `env:"QUOTE_URL"`

	// RequestTimeout bounds a single quote request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// AutosaveInterval is the period of the autosave worker.
	// Env: WORKERS_AUTOSAVE_INTERVAL
	AutosaveInterval time.Duration `env:"AUTOSAVE_INTERVAL"`
}

// Layout holds the sort row geometry, in board units.
type Layout struct {
	Margin     float64 `env:"MARGIN"`
	NoteWidth  float64 `env:"NOTE_WIDTH"`
	NoteHeight float64 `env:"NOTE_HEIGHT"`
	Gap        float64 `env:"GAP"`
}

// GetStructuredConfig loads, merges and validates the configuration from all
// sources in priority order (later sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset fields then receive the defaults of [Default].
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// Default returns the configuration used for every field no source sets.
func Default() StructuredConfig {
	return StructuredConfig{
		App: App{LogFile: "board.log"},
		Storage: Storage{
			DB:     DB{DSN: "notes.db"},
			Export: Export{Dir: ".", Format: "json"},
		},
		Adapter: Adapter{
			QuoteURL:       "https://api.quotable.io/random",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{AutosaveInterval: 5 * time.Second},
		Layout:  Layout{Margin: 20, NoteWidth: 200, NoteHeight: 160, Gap: 20},
	}
}
