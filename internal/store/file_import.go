// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-note-board/internal/logger"
	"github.com/MKhiriev/go-note-board/models"
)

// LoadSnapshotFile reads a JSON or YAML snapshot written by an export, or by
// hand. The file is either a list of notes or an object with a "notes" list.
//
// Decoding is lenient per entry and per field: an entry that is not an
// object is skipped, a field of the wrong type is left unset, and numbers
// may be given as strings. board.New fills whatever is left unset.
func LoadSnapshotFile(path string, log *logger.Logger) ([]models.Note, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	return DecodeSnapshot(raw, log)
}

// DecodeSnapshot is [LoadSnapshotFile] on an in-memory payload. JSON is
// decoded by the YAML parser, which accepts it as a subset.
func DecodeSnapshot(raw []byte, log *logger.Logger) ([]models.Note, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}

	var entries []any
	switch v := doc.(type) {
	case nil:
		return []models.Note{}, nil
	case []any:
		entries = v
	case map[string]any:
		list, ok := v["notes"].([]any)
		if !ok {
			return nil, fmt.Errorf("%w: no notes list", ErrMalformedSnapshot)
		}
		entries = list
	default:
		return nil, fmt.Errorf("%w: unexpected top-level %T", ErrMalformedSnapshot, doc)
	}

	notes := make([]models.Note, 0, len(entries))
	for i, e := range entries {
		fields, ok := e.(map[string]any)
		if !ok {
			log.Warn().Int("index", i).Msg("skipping snapshot entry that is not an object")
			continue
		}
		notes = append(notes, decodeNote(fields))
	}

	return notes, nil
}

func decodeNote(fields map[string]any) models.Note {
	var n models.Note

	n.ID, _ = asString(fields["id"])
	n.Content, _ = asString(fields["content"])
	n.X, _ = asFloat(fields["x"])
	n.Y, _ = asFloat(fields["y"])
	n.Image, _ = asString(fields["image"])

	if c, ok := asString(fields["color"]); ok {
		n.Color = models.Color(c)
	}

	// older exports used createdAt
	if ts, ok := asString(fields["timestamp"]); ok {
		n.Timestamp = ts
	} else if ts, ok = asString(fields["createdAt"]); ok {
		n.Timestamp = ts
	}

	return n
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case uint64:
		return strconv.FormatUint(s, 10), true
	case time.Time:
		return s.UTC().Format(time.RFC3339Nano), true
	default:
		return "", false
	}
}

func asFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
