// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrEmptyImagePath is returned when the image prompt is confirmed empty.
	ErrEmptyImagePath = errors.New("image path is empty")
	// ErrImageTooLarge is returned for attachments over maxImageSize.
	ErrImageTooLarge = errors.New("image is too large")
	// ErrNotAnImage is returned when the file is not recognised as an image.
	ErrNotAnImage = errors.New("file is not an image")
)

func humanizeRetrievalError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Сервис цитат не ответил вовремя"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") {
		return "Отсутствует сеть или сервис цитат недоступен"
	}

	return err.Error()
}
