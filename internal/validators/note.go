// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-board/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID        = "id"
	FieldPosition  = "position"
	FieldColor     = "color"
	FieldTimestamp = "timestamp"
	FieldImage     = "image"
)

var defaultNoteFields = []string{FieldID, FieldPosition, FieldColor, FieldTimestamp, FieldImage}

// NoteValidator checks note snapshots coming from persistence or import.
// The board never rejects a snapshot; it uses the result to report which
// fields fall back to defaults.
type NoteValidator struct{}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate accepts models.Note, *models.Note and []models.Note. For a slice
// the error names the index of the first invalid note.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)
	case []models.Note:
		for i, n := range value {
			if err := v.validateNote(ctx, n, fields...); err != nil {
				return fmt.Errorf("validation error at index %d: %w", i, err)
			}
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}

// validateNote returns the first encountered validation error or nil.
func (v *NoteValidator) validateNote(_ context.Context, n models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultNoteFields
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(n.ID) == "" {
				return ErrEmptyNoteID
			}
		case FieldPosition:
			if !finite(n.X) || !finite(n.Y) {
				return ErrInvalidPosition
			}
		case FieldColor:
			if !n.Color.Valid() {
				return ErrInvalidColor
			}
		case FieldTimestamp:
			if n.Timestamp == "" {
				return ErrEmptyTimestamp
			}
			if !parsableTimestamp(n.Timestamp) {
				return ErrInvalidTimestamp
			}
		case FieldImage:
			if n.Image == "" {
				continue
			}
			if scheme, _, ok := strings.Cut(n.Image, ":"); !ok || scheme == "" {
				return ErrInvalidImageRef
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// parsableTimestamp accepts RFC 3339 and Unix milliseconds, the two forms
// the sort understands.
func parsableTimestamp(raw string) bool {
	if _, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return true
	}
	_, err := strconv.ParseInt(raw, 10, 64)
	return err == nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
