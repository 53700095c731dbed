// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"unicode"

	"github.com/MKhiriev/go-note-board/models"
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellBody
	cellBar
)

type cell struct {
	r     rune
	kind  cellKind
	color models.Color
}

// render draws the board surface back to front. Notes that stick out of the
// terminal are cut.
func (c *Canvas) render() string {
	rows := c.boardRows()
	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, c.cols)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}

	for _, id := range c.order {
		c.paintNote(grid, c.views[id].snap)
	}

	lines := make([]string, rows)
	for y, row := range grid {
		lines[y] = renderRow(row)
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) paintNote(grid [][]cell, snap models.Note) {
	col, row := noteCell(snap)
	row -= headerRows

	put := func(dx, dy int, r rune, kind cellKind) {
		x, y := col+dx, row+dy
		if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
			return
		}
		grid[y][x] = cell{r: r, kind: kind, color: snap.Color}
	}
	line := func(dy, from int, s string, kind cellKind) {
		i := from
		for _, r := range s {
			if i >= c.noteCols {
				return
			}
			put(i, dy, printable(r), kind)
			i++
		}
	}

	for dy := range c.noteRows {
		kind := cellBody
		if dy == 0 {
			kind = cellBar
		}
		for dx := range c.noteCols {
			put(dx, dy, ' ', kind)
		}
	}

	switch c.markers[snap.ID] {
	case markerPending:
		line(0, 1, "…", cellBar)
	case markerFailed:
		line(0, 1, "!", cellBar)
	}
	var btn strings.Builder
	for _, b := range buttons {
		btn.WriteString(b.label)
	}
	line(0, c.noteCols-buttonsWidth(), btn.String(), cellBar)

	textRows := c.noteRows - 2
	text := wrapText(snap.Content, c.noteCols-2)
	if snap.Image != "" {
		textRows--
		line(c.noteRows-2, 1, "▣ "+imageLabel(snap.Image), cellBody)
	}
	for i := 0; i < textRows && i < len(text); i++ {
		line(1+i, 1, text[i], cellBody)
	}
	if len(text) > textRows && textRows > 0 {
		line(textRows, c.noteCols-2, "…", cellBody)
	}

	line(c.noteRows-1, 1, clip(snap.Timestamp, len("2006-01-02")), cellBody)
}

func renderRow(row []cell) string {
	var b strings.Builder
	for i := 0; i < len(row); {
		j := i
		var run strings.Builder
		for j < len(row) && row[j].kind == row[i].kind && row[j].color == row[i].color {
			run.WriteRune(row[j].r)
			j++
		}
		if row[i].kind == cellEmpty {
			b.WriteString(run.String())
		} else {
			b.WriteString(noteStyle(row[i].color, row[i].kind == cellBar).Render(run.String()))
		}
		i = j
	}
	return b.String()
}

// wrapText hard-wraps text into lines of at most width runes, keeping the
// author's line breaks.
func wrapText(text string, width int) []string {
	if width <= 0 || text == "" {
		return nil
	}

	var out []string
	for _, para := range strings.Split(text, "\n") {
		runes := []rune(para)
		if len(runes) == 0 {
			out = append(out, "")
			continue
		}
		for len(runes) > width {
			cut := width
			if runes[width] != ' ' {
				if sp := lastSpace(runes[:width]); sp > 0 {
					cut = sp
				}
			}
			out = append(out, string(runes[:cut]))
			runes = runes[cut:]
			for len(runes) > 0 && runes[0] == ' ' {
				runes = runes[1:]
			}
		}
		out = append(out, string(runes))
	}
	return out
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

// clip cuts v to at most n runes.
func clip(v string, n int) string {
	r := []rune(v)
	if len(r) <= n {
		return v
	}
	return string(r[:n])
}

func printable(r rune) rune {
	if unicode.IsPrint(r) {
		return r
	}
	return '?'
}
