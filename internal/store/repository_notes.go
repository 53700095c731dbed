// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-note-board/internal/logger"
	"github.com/MKhiriev/go-note-board/models"
)

type notesRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNotesRepository returns the SQLite implementation of [NotesRepository].
func NewNotesRepository(db *DB, logger *logger.Logger) NotesRepository {
	return &notesRepository{db: db, logger: logger}
}

// SaveAll replaces the stored board with notes inside one transaction. The
// slice order is kept in the position column so LoadAll returns the board in
// the same order.
//
// The transaction is rolled back automatically (via defer) if any statement
// fails; the commit is attempted only after all of them succeed.
func (r *notesRepository) SaveAll(ctx context.Context, notes []models.Note) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).Str("func", "notesRepository.SaveAll").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := buildDeleteAllNotesQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "notesRepository.SaveAll").Msg("failed to clear notes table")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for start := 0; start < len(notes); start += insertBatchSize {
		end := min(start+insertBatchSize, len(notes))

		query, args, err = buildInsertNotesQuery(notes[start:end], start)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).
				Str("func", "notesRepository.SaveAll").
				Int("batch_start", start).
				Int("batch_size", end-start).
				Msg("failed to insert notes")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		r.logger.Err(err).Str("func", "notesRepository.SaveAll").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	r.logger.Debug().Int("notes", len(notes)).Msg("notes saved")
	return nil
}

// LoadAll returns every stored note in board order. NULL columns come back
// as zero values, which board.NewNote replaces with defaults.
func (r *notesRepository) LoadAll(ctx context.Context) ([]models.Note, error) {
	query, args, err := buildSelectAllNotesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "notesRepository.LoadAll").Msg("failed to query notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var (
			id                      string
			position                sql.NullInt64
			content, color, created sql.NullString
			image                   sql.NullString
			x, y                    sql.NullFloat64
		)
		if err = rows.Scan(&id, &position, &content, &x, &y, &color, &created, &image); err != nil {
			r.logger.Err(err).Str("func", "notesRepository.LoadAll").Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		notes = append(notes, models.Note{
			ID:        id,
			Content:   content.String,
			X:         x.Float64,
			Y:         y.Float64,
			Color:     models.Color(color.String),
			Timestamp: created.String,
			Image:     image.String,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}
