// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	forceQuit key.Binding
	newNote   key.Binding
	sortAsc   key.Binding
	sortDesc  key.Binding
	export    key.Binding
	copy      key.Binding
	delete    key.Binding
	quote     key.Binding
	image     key.Binding
	edit      key.Binding
	info      key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	newNote:   key.NewBinding(key.WithKeys("n")),
	sortAsc:   key.NewBinding(key.WithKeys("s")),
	sortDesc:  key.NewBinding(key.WithKeys("S")),
	export:    key.NewBinding(key.WithKeys("e")),
	copy:      key.NewBinding(key.WithKeys("c")),
	delete:    key.NewBinding(key.WithKeys("d")),
	quote:     key.NewBinding(key.WithKeys("a")),
	image:     key.NewBinding(key.WithKeys("i")),
	edit:      key.NewBinding(key.WithKeys("enter")),
	info:      key.NewBinding(key.WithKeys("v")),
}

const boardHelp = "двойной клик: новая заметка • n: новая • enter: редактировать • a: цитата • i: картинка • d: удалить • c: копировать • s/S: сортировка • e: экспорт • v: о программе • q: выход"
