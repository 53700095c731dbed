// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-board/models"
)

const notesTable = "notes"

// insertBatchSize keeps a single INSERT well below SQLite's bound parameter
// limit.
const insertBatchSize = 100

var noteColumns = []string{"id", "position", "content", "x", "y", "color", "created_at", "image"}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectAllNotesQuery() (string, []any, error) {
	return qb.Select(noteColumns...).
		From(notesTable).
		OrderBy("position ASC", "rowid ASC").
		ToSql()
}

func buildDeleteAllNotesQuery() (string, []any, error) {
	return qb.Delete(notesTable).ToSql()
}

// buildInsertNotesQuery inserts notes as one multi-row statement. offset is
// the board position of notes[0].
func buildInsertNotesQuery(notes []models.Note, offset int) (string, []any, error) {
	q := qb.Insert(notesTable).
		Options("OR REPLACE").
		Columns(noteColumns...)

	for i, n := range notes {
		q = q.Values(
			n.ID,
			offset+i,
			n.Content,
			n.X,
			n.Y,
			string(n.Color),
			n.Timestamp,
			sql.NullString{String: n.Image, Valid: n.Image != ""},
		)
	}

	return q.ToSql()
}
