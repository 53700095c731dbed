// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package board

import "math"

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// FixedGeometry is a [Geometry] with constant sizes. Every note has the same
// extent.
type FixedGeometry struct {
	Bounds Rect
	Note   Size
}

// Board implements [Geometry].
func (g FixedGeometry) Board() Rect { return g.Bounds }

// NoteSize implements [Geometry].
func (g FixedGeometry) NoteSize(string) Size { return g.Note }

// clamp limits v to [0, limit]. A negative limit, meaning the note is larger
// than the board on that axis, pins the note to 0. NaN counts as 0.
func clamp(v, limit float64) float64 {
	if math.IsNaN(v) {
		v = 0
	}
	if limit < 0 || math.IsNaN(limit) {
		limit = 0
	}
	return min(max(v, 0), limit)
}
