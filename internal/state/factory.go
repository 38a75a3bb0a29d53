package state

import (
	"time"

	"github.com/BuzzLyutic/kanban-board/internal/ident"
	"github.com/BuzzLyutic/kanban-board/internal/model"
)

// Factory builds new entities. IDs and timestamps are its only entropy.
type Factory struct {
	NewID func() string
	Now   func() time.Time
}

// DefaultFactory uses ident.New and the wall clock.
func DefaultFactory() Factory {
	return Factory{NewID: ident.New, Now: time.Now}
}

// NewBoard creates a board with the three default columns and no tasks.
func (f Factory) NewBoard(name, color string, members []model.Member) model.Board {
	if color == "" {
		color = model.DefaultColor
	}
	columns := make([]model.Column, 0, len(model.DefaultColumnNames))
	b := model.Board{ID: f.NewID(), Name: name, Color: color}
	for _, n := range model.DefaultColumnNames {
		columns = append(columns, f.NewColumn(n))
	}
	b.Columns = columns
	b.Tasks = []model.Task{}
	b.Members = model.CleanMembers(members)
	return b
}

func (f Factory) NewColumn(name string) model.Column {
	return model.Column{ID: f.NewID(), Name: name}
}

// NewTask creates an unarchived task stamped with the current time.
func (f Factory) NewTask(title, columnID, assignee, description, dueDate string) model.Task {
	if assignee == "" {
		assignee = model.Unassigned
	}
	return model.Task{
		ID:          f.NewID(),
		Title:       title,
		Description: description,
		Assignee:    assignee,
		ColumnID:    columnID,
		CreatedAt:   f.Now().UTC().Format(model.CreatedAtLayout),
		DueDate:     dueDate,
		Archived:    false,
	}
}
