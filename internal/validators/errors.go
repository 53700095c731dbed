// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyNoteID      = errors.New("note id is empty")
	ErrInvalidPosition  = errors.New("note position is not finite")
	ErrInvalidColor     = errors.New("note color is not in the palette")
	ErrEmptyTimestamp   = errors.New("note timestamp is empty")
	ErrInvalidTimestamp = errors.New("note timestamp cannot be parsed")
	ErrInvalidImageRef  = errors.New("image reference has no scheme")
)
