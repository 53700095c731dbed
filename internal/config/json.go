// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Export struct {
			Dir    string `json:"dir"`
			Format string `json:"format"`
		} `json:"export,omitempty"`
		Import struct {
			Path string `json:"path"`
		} `json:"import,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`

	Adapter struct {
		QuoteURL       string   `json:"quote_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		AutosaveInterval Duration `json:"autosave_interval"`
	} `json:"workers,omitempty"`

	Layout struct {
		Margin     float64 `json:"margin"`
		NoteWidth  float64 `json:"note_width"`
		NoteHeight float64 `json:"note_height"`
		Gap        float64 `json:"gap"`
	} `json:"layout,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{LogFile: jsonCfg.App.LogFile},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Export: Export{
				Dir:    jsonCfg.Storage.Export.Dir,
				Format: jsonCfg.Storage.Export.Format,
			},
			Import: Import{Path: jsonCfg.Storage.Import.Path},
		},
		Server: Server{HTTPAddress: jsonCfg.Server.HTTPAddress},
		Adapter: Adapter{
			QuoteURL:       jsonCfg.Adapter.QuoteURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{AutosaveInterval: time.Duration(jsonCfg.Workers.AutosaveInterval)},
		Layout: Layout{
			Margin:     jsonCfg.Layout.Margin,
			NoteWidth:  jsonCfg.Layout.NoteWidth,
			NoteHeight: jsonCfg.Layout.NoteHeight,
			Gap:        jsonCfg.Layout.Gap,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
