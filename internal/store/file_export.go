// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-note-board/internal/config"
	"github.com/MKhiriev/go-note-board/internal/logger"
	"github.com/MKhiriev/go-note-board/models"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Encoded is a serialized snapshot ready to be written or served.
type Encoded struct {
	Payload     []byte
	ContentType string
	Extension   string
}

// EncodeSnapshot serializes notes in format. An empty board encodes as an
// empty list, never as null.
func EncodeSnapshot(format string, notes []models.Note) (Encoded, error) {
	if notes == nil {
		notes = []models.Note{}
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		payload, err := json.MarshalIndent(notes, "", "  ")
		if err != nil {
			return Encoded{}, fmt.Errorf("encode json snapshot: %w", err)
		}
		return Encoded{Payload: append(payload, '\n'), ContentType: "application/json", Extension: "json"}, nil
	case FormatYAML, "yml":
		payload, err := yaml.Marshal(notes)
		if err != nil {
			return Encoded{}, fmt.Errorf("encode yaml snapshot: %w", err)
		}
		return Encoded{Payload: payload, ContentType: "application/yaml", Extension: "yaml"}, nil
	default:
		return Encoded{}, fmt.Errorf("%w: %q", ErrUnsupportedExportFormat, format)
	}
}

type fileExporter struct {
	dir    string
	format string
	now    func() time.Time

	logger *logger.Logger
}

// NewFileExporter returns an [Exporter] writing one timestamped file per
// export into cfg.Dir.
func NewFileExporter(cfg config.Export, logger *logger.Logger) Exporter {
	return &fileExporter{
		dir:    cfg.Dir,
		format: cfg.Format,
		now:    time.Now,
		logger: logger,
	}
}

// Export writes notes-<UTC timestamp>.<ext>. The file is written to a
// temporary name first and renamed, so a reader never sees a partial export.
func (f *fileExporter) Export(ctx context.Context, notes []models.Note) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	enc, err := EncodeSnapshot(f.format, notes)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(f.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	name := fmt.Sprintf("notes-%s.%s", f.now().UTC().Format("20060102T150405.000Z"), enc.Extension)
	path := filepath.Join(f.dir, name)

	tmp, err := os.CreateTemp(f.dir, ".export-*")
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(enc.Payload); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write export file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename export file: %w", err)
	}

	f.logger.Info().Str("path", path).Int("notes", len(notes)).Msg("snapshot exported")
	return path, nil
}
