// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-note-board/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E53935"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

type palette struct {
	body lipgloss.Color
	bar  lipgloss.Color
}

var noteColors = map[models.Color]palette{
	models.ColorYellow: {body: "#FFF59D", bar: "#FBC02D"},
	models.ColorPink:   {body: "#F8BBD0", bar: "#F06292"},
	models.ColorBlue:   {body: "#BBDEFB", bar: "#64B5F6"},
	models.ColorGreen:  {body: "#C8E6C9", bar: "#81C784"},
}

var noteText = lipgloss.Color("#212121")

func noteStyle(c models.Color, bar bool) lipgloss.Style {
	p, ok := noteColors[c]
	if !ok {
		p = noteColors[models.ColorYellow]
	}

	s := lipgloss.NewStyle().Foreground(noteText)
	if bar {
		return s.Background(p.bar).Bold(true)
	}
	return s.Background(p.body)
}
