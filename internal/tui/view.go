package tui

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/showroom/internal/tui/filter"
	"github.com/Iron-Ham/showroom/internal/util"
)

// emptyMessage is shown when the selection matches nothing.
const emptyMessage = "no cars in this color"

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(filter.RenderPanel(m.picker, m.theme))
	b.WriteString("\n\n")
	b.WriteString(m.renderRows())

	box := m.theme.Box
	if m.width > 4 {
		box = box.Width(m.width - 2)
	}

	return box.Render(b.String()) + "\n" + m.help.View(m.keys) + "\n"
}

func (m *Model) renderRows() string {
	if len(m.visible) == 0 {
		return m.theme.Muted.Render(emptyMessage)
	}

	rows := make([]string, 0, len(m.visible))
	for _, item := range m.visible {
		name := util.TruncateANSI(item.Name, m.maxNameWidth)
		rows = append(rows, fmt.Sprintf("• %s, %s",
			m.theme.ItemName.Render(name),
			m.theme.Category(item.Category)))
	}
	return strings.Join(rows, "\n")
}
