// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged, defaulted configuration before it is used at
// startup.
func (cfg *StructuredConfig) validate() error {
	switch {
	case cfg.Storage.DB.DSN == "", cfg.Storage.Export.Dir == "":
		return ErrInvalidStorageConfigs
	case cfg.Storage.Export.Format != "json" && cfg.Storage.Export.Format != "yaml":
		return fmt.Errorf("%w: unsupported export format %q", ErrInvalidStorageConfigs, cfg.Storage.Export.Format)
	}

	if cfg.Adapter.QuoteURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.AutosaveInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	l := cfg.Layout
	if l.Margin < 0 || l.Gap < 0 || l.NoteWidth <= 0 || l.NoteHeight <= 0 {
		return ErrInvalidLayoutConfigs
	}

	return nil
}
