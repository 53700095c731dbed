// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-board/internal/config"
	"github.com/MKhiriev/go-note-board/internal/logger"
	"github.com/MKhiriev/go-note-board/models"
)

// Storages groups the durable store and the exporter. It implements
// board.Persister.
type Storages struct {
	Notes    NotesRepository
	Exporter Exporter

	importPath string
	db         *DB
	logger     *logger.Logger
}

// NewStorages initialises the storage layer. It performs the following steps:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the notes repository and the file exporter.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Notes:      NewNotesRepository(db, logger),
		Exporter:   NewFileExporter(cfg.Export, logger),
		importPath: cfg.Import.Path,
		db:         db,
		logger:     logger,
	}, nil
}

// Save implements board.Persister.
func (s *Storages) Save(ctx context.Context, notes []models.Note) error {
	return s.Notes.SaveAll(ctx, notes)
}

// ExportAll implements board.Persister.
func (s *Storages) ExportAll(ctx context.Context, notes []models.Note) error {
	_, err := s.Exporter.Export(ctx, notes)
	return err
}

// Load returns the notes the board starts with: the stored board followed by
// the configured import file, if any. A failing import is logged and
// skipped; the stored board is still returned.
//
// The import is idempotent across restarts. Stored notes win over imported
// entries with the same id, and entries without an id are only taken into an
// empty board, since they would otherwise be added again on every start.
func (s *Storages) Load(ctx context.Context) ([]models.Note, error) {
	notes, err := s.Notes.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stored notes: %w", err)
	}

	if s.importPath == "" {
		return notes, nil
	}

	imported, err := LoadSnapshotFile(s.importPath, s.logger)
	if err != nil {
		s.logger.Err(err).Str("func", "Storages.Load").Str("path", s.importPath).Msg("import failed")
		return notes, nil
	}

	merged := mergeImport(notes, imported)
	s.logger.Info().
		Str("path", s.importPath).
		Int("notes", len(imported)).
		Int("added", len(merged)-len(notes)).
		Msg("snapshot imported")

	return merged, nil
}

func mergeImport(stored, imported []models.Note) []models.Note {
	if len(stored) == 0 {
		return imported
	}

	known := make(map[string]struct{}, len(stored))
	for _, n := range stored {
		known[n.ID] = struct{}{}
	}

	out := stored
	for _, n := range imported {
		if n.ID == "" {
			continue
		}
		if _, ok := known[n.ID]; ok {
			continue
		}
		known[n.ID] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Close closes the database.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
