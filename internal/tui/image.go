// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// maxImageSize bounds the file read for an attachment.
const maxImageSize = 8 << 20

// loadImage reads the file at path and returns it as a data URL.
func loadImage(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", ErrEmptyImagePath
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(raw) > maxImageSize {
		return "", ErrImageTooLarge
	}

	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mimeType == "" {
		mimeType = http.DetectContentType(raw)
	}
	mimeType, _, _ = strings.Cut(mimeType, ";")
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%w: %s", ErrNotAnImage, mimeType)
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// imageLabel is a short caption for a blob reference.
func imageLabel(blobRef string) string {
	if rest, ok := strings.CutPrefix(blobRef, "data:"); ok {
		if mt, _, ok := strings.Cut(rest, ";"); ok && mt != "" {
			return mt
		}
	}
	return "image"
}
