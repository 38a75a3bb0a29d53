package model

type Column struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Board struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Color   string   `json:"color"`
	Columns []Column `json:"columns"`
	Tasks   []Task   `json:"tasks"`
	Members []Member `json:"members,omitempty"`
}

// BoardUpdates is a partial board; nil fields are left untouched on merge.
type BoardUpdates struct {
	Name    *string   `json:"name,omitempty"`
	Color   *string   `json:"color,omitempty"`
	Members *[]Member `json:"members,omitempty"`
}

// Apply returns a copy of b with the non-nil updates merged in.
func (u BoardUpdates) Apply(b Board) Board {
	if u.Name != nil {
		b.Name = *u.Name
	}
	if u.Color != nil {
		b.Color = *u.Color
	}
	if u.Members != nil {
		b.Members = CleanMembers(*u.Members)
	}
	return b
}

// ColumnIndex returns the position of the column, or -1.
func (b Board) ColumnIndex(columnID string) int {
	for i, c := range b.Columns {
		if c.ID == columnID {
			return i
		}
	}
	return -1
}

func (b Board) IsFirstColumn(columnID string) bool {
	return len(b.Columns) > 0 && b.Columns[0].ID == columnID
}

func (b Board) IsLastColumn(columnID string) bool {
	return len(b.Columns) > 0 && b.Columns[len(b.Columns)-1].ID == columnID
}

// Task looks a task up by id.
func (b Board) Task(taskID string) (Task, bool) {
	for _, t := range b.Tasks {
		if t.ID == taskID {
			return t, true
		}
	}
	return Task{}, false
}

// VisibleTasks returns the unarchived tasks matching filter, in insertion order.
func (b Board) VisibleTasks(filter string) []Task {
	out := make([]Task, 0, len(b.Tasks))
	for _, t := range b.Tasks {
		if t.Visible(filter) {
			out = append(out, t)
		}
	}
	return out
}

// ColumnTasks returns the visible tasks of one column.
func (b Board) ColumnTasks(columnID, filter string) []Task {
	var out []Task
	for _, t := range b.VisibleTasks(filter) {
		if t.ColumnID == columnID {
			out = append(out, t)
		}
	}
	return out
}
