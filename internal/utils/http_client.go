// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-note-board"

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client so
// all of its methods are available directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with the given request timeout.
// A non-positive timeout leaves resty's default (no timeout).
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().Get("https://api.example.com/random")
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	c := resty.New().SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}
