// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-note-board/internal/app"
	"github.com/MKhiriev/go-note-board/internal/crypto"
	"github.com/MKhiriev/go-note-board/internal/logger"
	"github.com/MKhiriev/go-note-board/internal/store"
	"github.com/MKhiriev/go-note-board/internal/utils"
	"github.com/MKhiriev/go-note-board/models"
)

const boardVersionHeader = "X-Board-Version"

// latest returns the published snapshot, writing 503 when the board has not
// published yet.
func (h *Handler) latest(w http.ResponseWriter, r *http.Request) ([]models.Note, bool) {
	notes, ok := h.snapshots.Latest()
	if !ok {
		logger.FromRequest(r).Warn().Msg("no snapshot published yet")
		http.Error(w, app.MsgBoardNotLoaded, http.StatusServiceUnavailable)
		return nil, false
	}
	if notes == nil {
		notes = []models.Note{}
	}

	w.Header().Set(boardVersionHeader, strconv.FormatUint(h.snapshots.Version(), 10))
	return notes, true
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, ok := h.latest(w, r)
	if !ok {
		return
	}

	// unchanged boards are answered from the client cache
	if digest, err := crypto.SnapshotDigest(notes); err == nil {
		etag := `"` + digest.String() + `"`
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	if _, err := utils.WriteJSON(w, notes, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing notes failed")
	}
}

// exportNotes serves the snapshot as a file download. The format query
// parameter overrides the configured export format.
func (h *Handler) exportNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = h.exportFormat
	}

	notes, ok := h.latest(w, r)
	if !ok {
		return
	}

	enc, err := store.EncodeSnapshot(format, notes)
	if err != nil {
		if errors.Is(err, store.ErrUnsupportedExportFormat) {
			log.Warn().Str("format", format).Msg("unsupported export format requested")
			http.Error(w, app.MsgUnsupportedExportFormat+": "+format, http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("encoding snapshot failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	fileName := fmt.Sprintf("notes-v%d.%s", h.snapshots.Version(), enc.Extension)
	if _, err = utils.WriteAttachment(w, fileName, enc.ContentType, enc.Payload); err != nil {
		log.Err(err).Msg("writing export failed")
	}
}
