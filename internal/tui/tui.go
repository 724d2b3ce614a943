// Package tui implements the Bubble Tea preview of a rendered diff.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sprite-ai/critique/internal/critic"
)

// Model is the top-level Bubble Tea model for the diff preview.
type Model struct {
	title    string
	segments []critic.Segment

	width  int
	height int

	scrollOffset int
	lines        []renderedLine

	showMarkers bool
	showHelp    bool
}

// New creates a preview model from preprocessed segments.
func New(title string, segs []critic.Segment) Model {
	m := Model{title: title, segments: segs}
	m.lines = renderLines(segs, m.showMarkers)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Down):
			m.scrollBy(1)

		case key.Matches(msg, keys.Up):
			m.scrollBy(-1)

		case key.Matches(msg, keys.PageDown):
			m.scrollBy(m.pageSize())

		case key.Matches(msg, keys.PageUp):
			m.scrollBy(-m.pageSize())

		case key.Matches(msg, keys.Top):
			m.scrollOffset = 0

		case key.Matches(msg, keys.Bottom):
			m.scrollOffset = m.maxScroll()

		case key.Matches(msg, keys.NextChange):
			m.jumpToChange(1)

		case key.Matches(msg, keys.PrevChange):
			m.jumpToChange(-1)

		case key.Matches(msg, keys.Markers):
			m.showMarkers = !m.showMarkers
			m.lines = renderLines(m.segments, m.showMarkers)

		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
		}
	}

	return m, nil
}

func (m *Model) pageSize() int {
	if m.height > 6 {
		return m.height - 6
	}
	return 1
}

func (m *Model) maxScroll() int {
	max := len(m.lines) - m.pageSize()
	if max < 0 {
		return 0
	}
	return max
}

func (m *Model) scrollBy(delta int) {
	m.scrollOffset += delta
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
	if max := m.maxScroll(); m.scrollOffset > max {
		m.scrollOffset = max
	}
}

func (m *Model) jumpToChange(dir int) {
	for i := m.scrollOffset + dir; i >= 0 && i < len(m.lines); i += dir {
		if m.lines[i].Changed {
			m.scrollOffset = i
			return
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	body := m.renderBody(m.width, m.height-1)
	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, body, statusBar)
}

func (m Model) renderBody(width, height int) string {
	innerHeight := height - 2 // borders

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteByte('\n')

	visible := innerHeight - 2
	if visible < 1 {
		visible = 1
	}
	end := m.scrollOffset + visible
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for i := m.scrollOffset; i < end; i++ {
		b.WriteString(m.lines[i].Styled)
		if i < end-1 {
			b.WriteByte('\n')
		}
	}

	return viewStyle.Width(width - 2).Height(innerHeight).Render(b.String())
}

func (m Model) renderStatusBar() string {
	ins, del, sub := 0, 0, 0
	for _, s := range m.segments {
		switch s.Kind {
		case critic.Inserted:
			ins++
		case critic.Deleted:
			del++
		case critic.Substituted:
			sub++
		case critic.Unchanged, critic.Highlighted, critic.Comment:
		}
	}

	left := fmt.Sprintf(" Line %d/%d", m.scrollOffset+1, len(m.lines))
	mode := "styled"
	if m.showMarkers {
		mode = "markers"
	}
	right := fmt.Sprintf("+%d -%d ~%d  %s  ? help ", ins, del, sub, mode)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return statusBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("critique — Keyboard Shortcuts"))
	b.WriteString("\n\n")

	helpItems := []struct{ key, desc string }{
		{"↑/k", "Scroll up"},
		{"↓/j", "Scroll down"},
		{"pgup/pgdn", "Page up / down"},
		{"g/G", "Top / bottom"},
		{"]/[", "Next / previous change"},
		{"m", "Toggle raw CriticMarkup markers"},
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}

	for _, item := range helpItems {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			helpKeyStyle.Width(12).Render(item.key),
			item.desc,
		))
	}

	b.WriteString("\n")
	b.WriteString(helpBarStyle.Render("Press ? to close help"))

	return b.String()
}

// Run starts the preview for a rendered markup string.
func Run(title, markup string) error {
	m := New(title, critic.Preprocess(markup))
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
