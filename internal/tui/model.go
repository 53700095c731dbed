// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-board/internal/board"
	"github.com/MKhiriev/go-note-board/internal/logger"
	"github.com/MKhiriev/go-note-board/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	publishInterval   = time.Second
	doubleClickWindow = 400 * time.Millisecond
	markerTimeout     = 2 * time.Second
	statusTimeout     = 2 * time.Second
	retrieveTimeout   = 15 * time.Second
)

type mode int

const (
	modeBoard mode = iota
	modeEdit
	modeImage
	modeBuildInfo
)

type boardModel struct {
	ctx       context.Context
	board     *board.Board
	canvas    *Canvas
	retriever board.TextRetriever
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	now       func() time.Time

	mode    mode
	target  string // note under the editor or the image prompt
	editor  textarea.Model
	prompt  textinput.Model
	markers map[string]int

	lastClick    time.Time
	lastClickCol int
	lastClickRow int

	status    string
	statusErr bool
	statusSeq int
}

func newBoardModel(ctx context.Context, b *board.Board, canvas *Canvas, retriever board.TextRetriever, buildInfo models.AppBuildInfo, log *logger.Logger) boardModel {
	canvas.mountAll(b.Notes().All())

	return boardModel{
		ctx:       ctx,
		board:     b,
		canvas:    canvas,
		retriever: retriever,
		buildInfo: buildInfo,
		logger:    log,
		now:       time.Now,
		markers:   make(map[string]int),
	}
}

func (m boardModel) Init() tea.Cmd {
	return cmdPublishTick()
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.canvas.resize(msg.Width, msg.Height)
		switch m.mode {
		case modeEdit:
			m.editor.SetWidth(m.editorWidth())
		case modeImage:
			m.prompt.Width = m.editorWidth()
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m.quit()
		}

	case publishTickMsg:
		m.publish()
		return m, cmdPublishTick()

	case augmentedMsg:
		return m.applyAugmentation(msg)

	case clearMarkerMsg:
		if m.markers[msg.id] == msg.seq {
			m.canvas.setMarker(msg.id, markerNone)
		}
		return m, nil

	case imageLoadedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("note_id", msg.id).Msg("image attach failed")
			return m.setStatus("Не удалось прикрепить картинку: "+msg.err.Error(), true)
		}
		if !m.board.AttachImage(msg.id, msg.blob) {
			return m.setStatus("Заметка уже удалена", true)
		}
		return m.setStatus("Картинка прикреплена", false)

	case exportedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, board.ErrNoPersister) {
				return m.setStatus("Экспорт не настроен", true)
			}
			return m.setStatus("Ошибка экспорта: "+msg.err.Error(), true)
		}
		return m.setStatus("Заметки экспортированы", false)

	case copiedMsg:
		if msg.err != nil {
			return m.setStatus(msg.err.Error(), true)
		}
		return m.setStatus("Скопировано!", false)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}

	switch m.mode {
	case modeEdit:
		return m.updateEditor(msg)
	case modeImage:
		return m.updatePrompt(msg)
	case modeBuildInfo:
		if k, ok := msg.(tea.KeyMsg); ok && (key.Matches(k, keys.esc) || key.Matches(k, keys.info)) {
			m.mode = modeBoard
		}
		return m, nil
	default:
		return m.updateBoard(msg)
	}
}

func (m boardModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m.quit()
		case key.Matches(msg, keys.info):
			m.mode = modeBuildInfo
			return m, nil
		case key.Matches(msg, keys.newNote):
			l := m.board.Layout()
			origin := m.canvas.Board()
			m.board.Create(models.Position{X: origin.X + l.Margin, Y: origin.Y + l.Margin})
			return m, nil
		case key.Matches(msg, keys.sortAsc):
			m.board.SortAndRelayout(true)
			return m.setStatus("Отсортировано: сначала старые", false)
		case key.Matches(msg, keys.sortDesc):
			m.board.SortAndRelayout(false)
			return m.setStatus("Отсортировано: сначала новые", false)
		case key.Matches(msg, keys.export):
			return m, m.cmdExport()
		}

		id, ok := m.canvas.front()
		if !ok {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.edit):
			return m.openEditor(id)
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopy(id)
		case key.Matches(msg, keys.delete):
			return m.runAction(id, actionDelete)
		case key.Matches(msg, keys.quote):
			return m.runAction(id, actionQuote)
		case key.Matches(msg, keys.image):
			return m.runAction(id, actionImage)
		}
	}

	return m, nil
}

func (m boardModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pointer := toPointer(msg.X, msg.Y)
	ctrl := m.board.Controller()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handlePress(msg.X, msg.Y, pointer)

	case tea.MouseActionMotion:
		ctrl.Move(pointer)

	case tea.MouseActionRelease:
		ctrl.Release()
	}

	return m, nil
}

func (m boardModel) handlePress(col, row int, pointer models.Position) (tea.Model, tea.Cmd) {
	id, region, action, hit := m.canvas.hit(col, row)
	if !hit {
		if !m.canvas.onBoard(row) {
			return m, nil
		}
		if m.isDoubleClick(col, row) {
			m.lastClick = time.Time{}
			m.board.Create(pointer)
			return m, nil
		}
		m.lastClick = m.now()
		m.lastClickCol, m.lastClickRow = col, row
		return m, nil
	}

	m.lastClick = time.Time{}
	m.canvas.raise(id)
	m.board.Controller().Press(id, region, pointer)

	switch region {
	case board.RegionButton:
		return m.runAction(id, action)
	case board.RegionContent:
		return m.openEditor(id)
	}
	return m, nil
}

func (m boardModel) isDoubleClick(col, row int) bool {
	if m.lastClick.IsZero() || m.now().Sub(m.lastClick) > doubleClickWindow {
		return false
	}
	return abs(col-m.lastClickCol) <= 1 && abs(row-m.lastClickRow) <= 1
}

func (m boardModel) runAction(id string, action buttonAction) (tea.Model, tea.Cmd) {
	n, ok := m.board.Notes().Get(id)
	if !ok {
		return m, nil
	}

	switch action {
	case actionDelete:
		m.board.Delete(id)
		m.canvas.unmount(id)
		delete(m.markers, id)
		return m, nil

	case actionQuote:
		if m.retriever == nil {
			return m.setStatus("Сервис цитат не настроен", true)
		}
		m.canvas.setMarker(id, markerPending)
		return m, m.cmdAugment(n)

	case actionImage:
		p := textinput.New()
		p.Placeholder = "/path/to/image.png"
		p.Width = m.editorWidth()
		p.Focus()
		m.prompt = p
		m.target = id
		m.mode = modeImage
		return m, textinput.Blink
	}

	return m, nil
}

func (m boardModel) applyAugmentation(msg augmentedMsg) (tea.Model, tea.Cmd) {
	id := msg.note.ID()
	if msg.err != nil {
		m.logger.WithNote(id).Warn().Err(msg.err).Str("func", "tui.applyAugmentation").Msg("quote retrieval failed")

		m.markers[id]++
		seq := m.markers[id]
		m.canvas.setMarker(id, markerFailed)
		next, cmd := m.setStatus(humanizeRetrievalError(msg.err), true)
		return next, tea.Batch(cmd, tea.Tick(markerTimeout, func(time.Time) tea.Msg {
			return clearMarkerMsg{id: id, seq: seq}
		}))
	}

	m.canvas.setMarker(id, markerNone)
	msg.note.ApplyAugmentation(msg.text)
	return m, nil
}

func (m boardModel) openEditor(id string) (tea.Model, tea.Cmd) {
	n, ok := m.board.Notes().Get(id)
	if !ok {
		return m, nil
	}
	m.board.Controller().Release()

	ta := textarea.New()
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(m.editorWidth())
	ta.SetHeight(10)
	ta.SetValue(n.Content())
	ta.Focus()

	m.editor = ta
	m.target = id
	m.mode = modeEdit
	return m, textarea.Blink
}

func (m boardModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.esc) {
		m.mode = modeBoard
		if !m.board.EditContent(m.target, m.editor.Value()) {
			return m.setStatus("Заметка уже удалена", true)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m boardModel) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.esc):
			m.mode = modeBoard
			return m, nil
		case key.Matches(k, keys.enter):
			m.mode = modeBoard
			return m, cmdLoadImage(m.target, m.prompt.Value())
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// publish hands the snapshot to the autosave worker and the export server
// when something changed since the last tick.
func (m boardModel) publish() {
	if !m.canvas.dirty {
		return
	}
	m.board.Publish()
	m.canvas.dirty = false
}

func (m boardModel) quit() (tea.Model, tea.Cmd) {
	m.commit()
	return m, tea.Quit
}

// commit writes back an open editor, ends any drag and publishes the board.
func (m boardModel) commit() {
	if m.mode == modeEdit {
		m.board.EditContent(m.target, m.editor.Value())
	}
	m.board.Controller().Release()
	m.board.Publish()
	m.canvas.dirty = false
}

func (m boardModel) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	seq := m.statusSeq
	return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m boardModel) editorWidth() int {
	return max(min(m.canvas.cols-8, 60), 20)
}

func (m boardModel) cmdAugment(n *board.Note) tea.Cmd {
	ctx, retriever := m.ctx, m.retriever
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, retrieveTimeout)
		defer cancel()

		text, err := board.RetrieveAugmentation(ctx, retriever)
		return augmentedMsg{note: n, text: text, err: err}
	}
}

func (m boardModel) cmdExport() tea.Cmd {
	run := m.board.Export()
	ctx := m.ctx
	return func() tea.Msg {
		return exportedMsg{err: run(ctx)}
	}
}

func (m boardModel) cmdCopy(id string) tea.Cmd {
	n, ok := m.board.Notes().Get(id)
	if !ok {
		return nil
	}
	text := n.Content()
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdLoadImage(id, path string) tea.Cmd {
	return func() tea.Msg {
		blob, err := loadImage(path)
		return imageLoadedMsg{id: id, blob: blob, err: err}
	}
}

func cmdPublishTick() tea.Cmd {
	return tea.Tick(publishInterval, func(time.Time) tea.Msg {
		return publishTickMsg{}
	})
}

func (m boardModel) View() string {
	switch m.mode {
	case modeBuildInfo:
		return overlay(m.canvas.cols, m.canvas.rows, renderBuildInfoWindow(m.buildInfo))
	case modeEdit:
		return overlay(m.canvas.cols, m.canvas.rows,
			renderEditorWindow("РЕДАКТИРОВАНИЕ ЗАМЕТКИ", m.editor.View(), "esc: сохранить и закрыть"))
	case modeImage:
		return overlay(m.canvas.cols, m.canvas.rows,
			renderEditorWindow("КАРТИНКА", "Путь к файлу:\n"+m.prompt.View(), "enter: прикрепить • esc: отмена"))
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.canvas.render())
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m boardModel) header() string {
	title := fmt.Sprintf("GoNoteBoard • заметок: %d", m.board.Notes().Len())
	if m.board.Controller().State() == board.Dragging {
		title += " • перетаскивание"
	}
	return titleStyle.Render(fitText(title, m.canvas.cols))
}

func (m boardModel) footer() string {
	if m.status != "" {
		if m.statusErr {
			return errorStyle.Render(fitText(m.status, m.canvas.cols))
		}
		return titleStyle.Render(fitText(m.status, m.canvas.cols))
	}
	return helpStyle.Render(fitText(boardHelp, m.canvas.cols))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
