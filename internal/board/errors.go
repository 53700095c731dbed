// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package board

import "errors"

var (
	// ErrRetrievalFailed is returned when the text-retrieval collaborator
	// fails: transport error, non-success response or malformed payload.
	// The note content is left unchanged whenever this error is returned.
	ErrRetrievalFailed = errors.New("text retrieval failed")

	// ErrNoPersister is returned by export when the board was built without a
	// persistence collaborator.
	ErrNoPersister = errors.New("no persister configured")
)
