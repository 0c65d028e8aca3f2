package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Leaderboard layout constants
const (
	rankWidth    = 4
	lineMinWidth = 20
	lineMaxWidth = 48
	tableChrome  = 6 // Title, gaps and the back button
	tableMinRows = 3
)

// newLeaderboardTable builds the table for the recent leaderboard lines.
// Lines are shown as they were written; the file is never parsed.
func newLeaderboardTable(lines []string, l Layout) table.Model {
	lineWidth := lineMaxWidth
	if avail := l.Cols - rankWidth - 6; avail < lineWidth {
		lineWidth = max(avail, lineMinWidth)
	}

	columns := []table.Column{
		{Title: "#", Width: rankWidth},
		{Title: "Запись", Width: lineWidth},
	}

	rows := make([]table.Row, len(lines))
	for i, ln := range lines {
		rows[i] = table.Row{strconv.Itoa(i + 1), ln}
	}

	height := len(rows) + 2
	if avail := l.Rows - buttonHeight - tableChrome; height > avail {
		height = max(avail, tableMinRows)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Plain styles: the table is drawn into the screen buffer, which
	// carries its own colours.
	t.SetStyles(table.Styles{
		Header:   lipgloss.NewStyle().Padding(0, 1),
		Cell:     lipgloss.NewStyle().Padding(0, 1),
		Selected: lipgloss.NewStyle(),
	})

	return t
}
