// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// export server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place keeps the wording consistent.
package app

const (
	// MsgBoardNotLoaded is returned while the board has not published its
	// first snapshot.
	MsgBoardNotLoaded = "board is not loaded yet"

	// MsgUnsupportedExportFormat is returned when the format query parameter
	// names neither json nor yaml.
	MsgUnsupportedExportFormat = "unsupported export format"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
