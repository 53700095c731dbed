// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Color is a note colour tag.
type Color string

// The fixed note palette.
const (
	ColorYellow Color = "yellow"
	ColorPink   Color = "pink"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
)

// Palette lists every valid [Color] in display order.
var Palette = []Color{ColorYellow, ColorPink, ColorBlue, ColorGreen}

// Valid reports whether c belongs to [Palette].
func (c Color) Valid() bool {
	for _, p := range Palette {
		if c == p {
			return true
		}
	}
	return false
}
