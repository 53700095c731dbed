// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors mapped from quote service responses. Callers match them with
// [errors.Is]; the board treats every one of them as a retrieval failure.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrMalformedQuote is returned when a 2xx response does not carry a
	// usable quote.
	ErrMalformedQuote = errors.New("malformed quote payload")
)
