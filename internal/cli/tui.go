package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// layoutModel is the bubbletea model for the layout browser. It shows the
// widget tree one row per box with a movable cursor and scrolls when the
// tree is taller than the terminal.
type layoutModel struct {
	title  string
	hash   string
	rows   []inspectRow
	cursor int
	height int
	offset int
}

// newLayoutModel creates the layout browser over a flattened widget tree.
func newLayoutModel(title, hash string, rows []inspectRow) layoutModel {
	return layoutModel{
		title:  title,
		hash:   hash,
		rows:   rows,
		height: 15,
	}
}

func (m layoutModel) Init() tea.Cmd {
	return nil
}

func (m layoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "g":
			m.cursor, m.offset = 0, 0
		case "G":
			m.cursor = len(m.rows) - 1
			if m.cursor >= m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m layoutModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(shortHash(m.hash)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.offset; i < end; i++ {
		line := m.rows[i].String()
		style := listNormalStyle
		cursor := "  "
		if i == m.cursor {
			style = listSelectedStyle
			cursor = "▸ "
		}
		b.WriteString(cursor + style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// shortHash abbreviates a content hash for display.
func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
