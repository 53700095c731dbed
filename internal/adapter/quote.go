// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the outbound collaborators of the board: the
// quote service client used for note augmentation.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-note-board/internal/config"
	"github.com/MKhiriev/go-note-board/internal/logger"
	"github.com/MKhiriev/go-note-board/internal/utils"
	"github.com/MKhiriev/go-note-board/models"
	"github.com/microcosm-cc/bluemonday"
)

const unknownAttribution = "Unknown"

// quotePayload is the wire form of a quote: {"content", "author"}.
type quotePayload struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

type httpQuoteAdapter struct {
	client    *utils.HTTPClient
	url       string
	sanitizer *bluemonday.Policy

	logger *logger.Logger
}

// NewHTTPQuoteAdapter constructs the HTTP implementation of
// board.TextRetriever. It validates cfg.QuoteURL and applies
// cfg.RequestTimeout to every request.
func NewHTTPQuoteAdapter(cfg config.Adapter, logger *logger.Logger) (*httpQuoteAdapter, error) {
	endpoint, err := normalizeURL(cfg.QuoteURL)
	if err != nil {
		return nil, fmt.Errorf("invalid quote url: %w", err)
	}

	return &httpQuoteAdapter{
		client:    utils.NewHTTPClient(cfg.RequestTimeout),
		url:       endpoint,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// Retrieve implements board.TextRetriever. It GETs a random quote and
// strips any markup from it. Transport errors, non-2xx statuses and
// payloads without text are all returned as errors.
func (h *httpQuoteAdapter) Retrieve(ctx context.Context) (models.Quote, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(h.url)
	if err != nil {
		h.logger.Err(err).Str("func", "httpQuoteAdapter.Retrieve").Msg("quote request failed")
		return models.Quote{}, fmt.Errorf("quote request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Int("status", resp.StatusCode()).Msg("quote service returned an error")
		return models.Quote{}, err
	}

	payload, err := decodeQuote(resp.Body())
	if err != nil {
		return models.Quote{}, err
	}

	q := models.Quote{
		Text:        h.clean(payload.Content),
		Attribution: h.clean(payload.Author),
	}
	if q.Text == "" {
		return models.Quote{}, fmt.Errorf("%w: empty content", ErrMalformedQuote)
	}
	if q.Attribution == "" {
		q.Attribution = unknownAttribution
	}

	return q, nil
}

// decodeQuote accepts both the object form and the one-element array form
// some quote services return. Only the first element of an array is used.
func decodeQuote(body []byte) (quotePayload, error) {
	var single quotePayload
	if err := json.Unmarshal(body, &single); err == nil {
		return single, nil
	}

	var list []quotePayload
	if err := json.Unmarshal(body, &list); err != nil {
		return quotePayload{}, fmt.Errorf("%w: %w", ErrMalformedQuote, err)
	}
	if len(list) == 0 {
		return quotePayload{}, fmt.Errorf("%w: empty list", ErrMalformedQuote)
	}

	return list[0], nil
}

// clean removes markup and decodes the entities bluemonday leaves behind.
func (h *httpQuoteAdapter) clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(h.sanitizer.Sanitize(s)))
}
