package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/board"
	"taskboard/internal/theme"
)

// View renders the board. Visible rows were derived from the full list by
// the last Update.
func (m Model) View() string {
	sections := []string{
		m.headerView(),
		"",
		m.input.View(),
		"",
		m.filterView(),
		m.tableView(),
	}

	if _, _, editing := m.board.Editing(); editing {
		panel := m.styles.label.Render("Editing") + "\n" + m.editor.View()
		sections = append(sections, m.styles.panel.Render(panel))
	}

	sections = append(sections, "", m.help.View(m.helpKeys()))

	if line := m.statusLine(); line != "" {
		sections = append(sections, line)
	}

	return m.styles.app.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) headerView() string {
	glyph := "☾"
	if m.theme.Mode() == theme.Dark {
		glyph = "☀"
	}

	done := 0
	for _, t := range m.board.Tasks() {
		if t.Completed {
			done++
		}
	}
	counts := m.styles.done.Render(fmt.Sprintf("%d/%d done", done, m.board.Len()))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.header.Render("To-Do List"),
		"  ",
		counts,
		"  ",
		m.styles.muted.Render(glyph),
	)
}

func (m Model) filterView() string {
	tabs := make([]string, 0, len(board.Filters))
	for i, f := range board.Filters {
		name := fmt.Sprintf("[%d] %s", i+1, f)
		if f == m.board.Filter() {
			tabs = append(tabs, m.styles.activeTab.Render(name))
		} else {
			tabs = append(tabs, m.styles.tab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) tableView() string {
	if len(m.table.Rows()) > 0 {
		return m.table.View()
	}
	if m.pending > 0 && m.board.Len() == 0 {
		return m.styles.muted.Render("\n  Loading tasks...\n")
	}
	if m.board.Filter() == board.FilterAll {
		return m.styles.muted.Render("\n  No tasks yet. Press a to add one.\n")
	}
	return m.styles.muted.Render(fmt.Sprintf("\n  No %s tasks.\n", strings.ToLower(m.board.Filter().String())))
}

func (m Model) helpKeys() help.KeyMap {
	if _, _, editing := m.board.Editing(); editing {
		return editHelp{m.keys}
	}
	if m.focus == focusInput {
		return inputHelp{m.keys}
	}
	return listHelp{m.keys}
}

func (m Model) statusLine() string {
	var parts []string
	if m.pending > 0 {
		parts = append(parts, m.spinner.View()+" syncing")
	}
	if m.statusMsg != "" && m.now().Before(m.statusExpiry) {
		parts = append(parts, "> "+m.styles.status.Render(m.statusMsg))
	}
	return strings.Join(parts, "  ")
}
