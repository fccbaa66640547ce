package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spotget/spot-downloader/internal/model"
)

// menuItem pairs an operation with the short explanation shown next to it
type menuItem struct {
	op          model.Operation
	description string
}

// menuItems returns the operation menu in display order
func menuItems() []menuItem {
	return []menuItem{
		{model.OperationDownload, "from Spotify URLs"},
		{model.OperationSave, "generate .spotdl files for tracks/playlists"},
		{model.OperationSync, "download new, remove deleted from local"},
		{model.OperationURL, "view source URLs without downloading audio"},
	}
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := menuItems()

	switch msg.String() {
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}

	case "down", "j":
		if m.menuCursor < len(items) {
			m.menuCursor++
		}

	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		return m.openForm(items[idx].op)

	case "5", "q", "esc":
		return m, tea.Quit

	case "enter":
		// The last entry is Exit
		if m.menuCursor >= len(items) {
			return m, tea.Quit
		}
		return m.openForm(items[m.menuCursor].op)
	}

	return m, nil
}

func (m Model) viewMenu() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("What would you like to do?"))
	sb.WriteString("\n\n")

	items := menuItems()
	for i, item := range items {
		sb.WriteString(m.renderMenuLine(
			fmt.Sprintf("%d. %s", i+1, item.op.DisplayName()),
			item.description,
			i == m.menuCursor,
		))
		sb.WriteString("\n")
	}
	sb.WriteString(m.renderMenuLine(
		fmt.Sprintf("%d. Exit", len(items)+1),
		"",
		m.menuCursor == len(items),
	))
	sb.WriteString("\n")

	return m.styles.Content.Render(sb.String())
}

func (m Model) renderMenuLine(label, description string, selected bool) string {
	line := "  " + m.styles.Body.Render(label)
	if selected {
		line = m.styles.Selected.Render("› " + label)
	}
	if description != "" {
		line += m.styles.Muted.Render(" (" + description + ")")
	}
	return line
}
