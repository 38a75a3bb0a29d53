package state

import "github.com/BuzzLyutic/kanban-board/internal/model"

// Reducer computes the next document for an action.
//
// Reduce never modifies the document it is given: every touched slice is
// rebuilt. Actions naming a board, column or task that does not exist leave
// the document as it was. The second result is false only for action types
// the reducer does not know; such actions return the input unchanged.
type Reducer struct {
	factory Factory
}

func NewReducer(f Factory) *Reducer {
	return &Reducer{factory: f}
}

func (r *Reducer) Reduce(doc model.Document, action Action) (model.Document, bool) {
	switch a := action.(type) {
	case ToggleTheme:
		doc.Theme = doc.Theme.Toggle()

	case SetFilter:
		doc.Filter = a.Filter

	case AddBoard:
		board := r.factory.NewBoard(a.Name, a.Color, a.Members)
		doc.Boards = appendBoard(doc.Boards, board)
		doc.ActiveBoardID = model.StringPtr(board.ID)

	case DeleteBoard:
		wasActive := doc.IsActive(a.ID)
		doc.Boards = filterBoards(doc.Boards, a.ID)
		if wasActive {
			if len(doc.Boards) > 0 {
				doc.ActiveBoardID = model.StringPtr(doc.Boards[0].ID)
			} else {
				doc.ActiveBoardID = nil
			}
		}

	case SetActiveBoard:
		doc.ActiveBoardID = model.StringPtr(a.ID)
		doc.Filter = model.FilterAll

	case UpdateBoard:
		doc.Boards = mapBoard(doc.Boards, a.ID, a.Updates.Apply)

	case AddColumn:
		column := r.factory.NewColumn(a.Name)
		doc.Boards = mapBoard(doc.Boards, a.BoardID, func(b model.Board) model.Board {
			b.Columns = append(append(make([]model.Column, 0, len(b.Columns)+1), b.Columns...), column)
			return b
		})

	case RenameColumn:
		doc.Boards = mapBoard(doc.Boards, a.BoardID, func(b model.Board) model.Board {
			columns := make([]model.Column, len(b.Columns))
			for i, c := range b.Columns {
				if c.ID == a.ColumnID {
					c.Name = a.Name
				}
				columns[i] = c
			}
			b.Columns = columns
			return b
		})

	case DeleteColumn:
		doc.Boards = mapBoard(doc.Boards, a.BoardID, func(b model.Board) model.Board {
			columns := make([]model.Column, 0, len(b.Columns))
			for _, c := range b.Columns {
				if c.ID != a.ColumnID {
					columns = append(columns, c)
				}
			}
			tasks := make([]model.Task, 0, len(b.Tasks))
			for _, t := range b.Tasks {
				if t.ColumnID != a.ColumnID {
					tasks = append(tasks, t)
				}
			}
			b.Columns, b.Tasks = columns, tasks
			return b
		})

	case ReorderColumns:
		doc.Boards = mapBoard(doc.Boards, a.BoardID, func(b model.Board) model.Board {
			b.Columns = append(make([]model.Column, 0, len(a.Columns)), a.Columns...)
			return b
		})

	case AddTask:
		task := r.factory.NewTask(a.Title, a.ColumnID, a.Assignee, a.Description, a.DueDate)
		doc.Boards = mapBoard(doc.Boards, a.BoardID, func(b model.Board) model.Board {
			b.Tasks = append(append(make([]model.Task, 0, len(b.Tasks)+1), b.Tasks...), task)
			return b
		})

	case UpdateTask:
		doc.Boards = mapTask(doc.Boards, a.BoardID, a.TaskID, a.Updates.Apply)

	case DeleteTask:
		doc.Boards = mapBoard(doc.Boards, a.BoardID, func(b model.Board) model.Board {
			tasks := make([]model.Task, 0, len(b.Tasks))
			for _, t := range b.Tasks {
				if t.ID != a.TaskID {
					tasks = append(tasks, t)
				}
			}
			b.Tasks = tasks
			return b
		})

	case MoveTask:
		doc.Boards = mapTask(doc.Boards, a.BoardID, a.TaskID, func(t model.Task) model.Task {
			t.ColumnID = a.TargetColumnID
			return t
		})

	case ArchiveTask:
		doc.Boards = mapTask(doc.Boards, a.BoardID, a.TaskID, func(t model.Task) model.Task {
			t.Archived = true
			return t
		})

	case ImportState:
		theme := doc.Theme
		doc = a.Document
		doc.Theme = theme
		if doc.Boards == nil {
			doc.Boards = []model.Board{}
		}
		if doc.Filter == "" {
			doc.Filter = model.FilterAll
		}

	default:
		return doc, false
	}
	return doc, true
}

func appendBoard(boards []model.Board, b model.Board) []model.Board {
	out := make([]model.Board, 0, len(boards)+1)
	return append(append(out, boards...), b)
}

func filterBoards(boards []model.Board, id string) []model.Board {
	out := make([]model.Board, 0, len(boards))
	for _, b := range boards {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}

// mapBoard returns a new slice with fn applied to the board matching id.
func mapBoard(boards []model.Board, id string, fn func(model.Board) model.Board) []model.Board {
	out := make([]model.Board, len(boards))
	for i, b := range boards {
		if b.ID == id {
			b = fn(b)
		}
		out[i] = b
	}
	return out
}

func mapTask(boards []model.Board, boardID, taskID string, fn func(model.Task) model.Task) []model.Board {
	return mapBoard(boards, boardID, func(b model.Board) model.Board {
		tasks := make([]model.Task, len(b.Tasks))
		for i, t := range b.Tasks {
			if t.ID == taskID {
				t = fn(t)
			}
			tasks[i] = t
		}
		b.Tasks = tasks
		return b
	})
}
