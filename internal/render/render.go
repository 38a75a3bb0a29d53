// Package render draws a board for the terminal.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/BuzzLyutic/kanban-board/internal/model"
)

// ColumnWidth is the inner width of one column box.
const ColumnWidth = 34

type palette struct {
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color
	Border        lipgloss.Color
	Error         lipgloss.Color
}

var palettes = map[model.Theme]palette{
	model.ThemeDark: {
		Foreground:    lipgloss.Color("#c0caf5"),
		ForegroundDim: lipgloss.Color("#565f89"),
		Border:        lipgloss.Color("#3b4261"),
		Error:         lipgloss.Color("#f7768e"),
	},
	model.ThemeLight: {
		Foreground:    lipgloss.Color("#343b58"),
		ForegroundDim: lipgloss.Color("#9699a3"),
		Border:        lipgloss.Color("#c0c4d6"),
		Error:         lipgloss.Color("#8c4351"),
	},
}

type styles struct {
	title   lipgloss.Style
	column  lipgloss.Style
	header  lipgloss.Style
	task    lipgloss.Style
	meta    lipgloss.Style
	overdue lipgloss.Style
	empty   lipgloss.Style
}

func newStyles(theme model.Theme, accent string) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[model.ThemeDark]
	}
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)).MarginBottom(1),
		column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Width(ColumnWidth).
			Padding(0, 1),
		header:  lipgloss.NewStyle().Bold(true).Foreground(p.Foreground),
		task:    lipgloss.NewStyle().Foreground(p.Foreground),
		meta:    lipgloss.NewStyle().Foreground(p.ForegroundDim),
		overdue: lipgloss.NewStyle().Foreground(p.Error),
		empty:   lipgloss.NewStyle().Foreground(p.ForegroundDim).Italic(true),
	}
}

// Board renders the board's columns side by side with the tasks visible
// under filter.
func Board(board model.Board, theme model.Theme, filter string, now time.Time) string {
	s := newStyles(theme, board.Color)

	title := s.title.Render(fmt.Sprintf("%s  [%s]", board.Name, filter))
	if len(board.Columns) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, s.empty.Render("no columns"))
	}

	columns := make([]string, 0, len(board.Columns))
	for _, c := range board.Columns {
		columns = append(columns, column(s, c, board.ColumnTasks(c.ID, filter), now))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
	)
}

func column(s styles, c model.Column, tasks []model.Task, now time.Time) string {
	lines := []string{s.header.Render(fmt.Sprintf("%s (%d)", c.Name, len(tasks))), ""}
	if len(tasks) == 0 {
		lines = append(lines, s.empty.Render("empty"))
	}
	for _, t := range tasks {
		lines = append(lines, s.task.Render("• "+t.Title))
		lines = append(lines, taskMeta(s, t, now))
	}
	return s.column.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func taskMeta(s styles, t model.Task, now time.Time) string {
	meta := s.meta.Render("  " + t.Assignee)
	if t.DueDate == "" {
		return meta
	}
	if t.Overdue(now) {
		return meta + s.overdue.Render(" · due "+t.DueDate+" !")
	}
	return meta + s.meta.Render(" · due "+t.DueDate)
}

// Boards lists every board, marking the active one.
func Boards(doc model.Document) string {
	if len(doc.Boards) == 0 {
		return "no boards"
	}

	var b strings.Builder
	for _, board := range doc.Boards {
		marker := " "
		if doc.IsActive(board.ID) {
			marker = "*"
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(board.Color)).Render("■")
		fmt.Fprintf(&b, "%s %s %s  %s  (%d tasks)\n", marker, swatch, board.Name, board.ID, len(board.VisibleTasks(model.FilterAll)))
	}
	return strings.TrimRight(b.String(), "\n")
}
