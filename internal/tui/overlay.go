// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

// overlay centres box over the whole terminal.
func overlay(cols, rows int, box string) string {
	return lipgloss.Place(cols, rows, lipgloss.Center, lipgloss.Center, box)
}

func renderEditorWindow(title, body, hotKeys string) string {
	return overlayBoxStyle.Render(renderPage(titleStyle.Render(title), body, hotKeys))
}
