package state

import "github.com/BuzzLyutic/kanban-board/internal/model"

// Action is a named request to transition the document.
type Action interface {
	// Type is the wire name of the action, e.g. "ADD_TASK".
	Type() string
}

const (
	TypeToggleTheme    = "TOGGLE_THEME"
	TypeSetFilter      = "SET_FILTER"
	TypeAddBoard       = "ADD_BOARD"
	TypeDeleteBoard    = "DELETE_BOARD"
	TypeSetActiveBoard = "SET_ACTIVE_BOARD"
	TypeUpdateBoard    = "UPDATE_BOARD"
	TypeAddColumn      = "ADD_COLUMN"
	TypeRenameColumn   = "RENAME_COLUMN"
	TypeDeleteColumn   = "DELETE_COLUMN"
	TypeReorderColumns = "REORDER_COLUMNS"
	TypeAddTask        = "ADD_TASK"
	TypeUpdateTask     = "UPDATE_TASK"
	TypeDeleteTask     = "DELETE_TASK"
	TypeMoveTask       = "MOVE_TASK"
	TypeArchiveTask    = "ARCHIVE_TASK"
	TypeImportState    = "IMPORT_STATE"
)

type ToggleTheme struct{}

type SetFilter struct {
	Filter string
}

type AddBoard struct {
	Name    string         `json:"name"`
	Color   string         `json:"color"`
	Members []model.Member `json:"members,omitempty"`
}

type DeleteBoard struct {
	ID string
}

type SetActiveBoard struct {
	ID string
}

type UpdateBoard struct {
	ID      string             `json:"id"`
	Updates model.BoardUpdates `json:"updates"`
}

type AddColumn struct {
	BoardID string `json:"boardId"`
	Name    string `json:"name"`
}

type RenameColumn struct {
	BoardID  string `json:"boardId"`
	ColumnID string `json:"columnId"`
	Name     string `json:"name"`
}

type DeleteColumn struct {
	BoardID  string `json:"boardId"`
	ColumnID string `json:"columnId"`
}

type ReorderColumns struct {
	BoardID string         `json:"boardId"`
	Columns []model.Column `json:"columns"`
}

type AddTask struct {
	BoardID     string `json:"boardId"`
	Title       string `json:"title"`
	ColumnID    string `json:"columnId"`
	Assignee    string `json:"assignee,omitempty"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

type UpdateTask struct {
	BoardID string            `json:"boardId"`
	TaskID  string            `json:"taskId"`
	Updates model.TaskUpdates `json:"updates"`
}

type DeleteTask struct {
	BoardID string `json:"boardId"`
	TaskID  string `json:"taskId"`
}

type MoveTask struct {
	BoardID        string `json:"boardId"`
	TaskID         string `json:"taskId"`
	TargetColumnID string `json:"targetColumnId"`
}

type ArchiveTask struct {
	BoardID string `json:"boardId"`
	TaskID  string `json:"taskId"`
}

type ImportState struct {
	Document model.Document
}

// Unknown carries an action type the reducer does not recognise.
type Unknown struct {
	Name string
}

func (ToggleTheme) Type() string    { return TypeToggleTheme }
func (SetFilter) Type() string      { return TypeSetFilter }
func (AddBoard) Type() string       { return TypeAddBoard }
func (DeleteBoard) Type() string    { return TypeDeleteBoard }
func (SetActiveBoard) Type() string { return TypeSetActiveBoard }
func (UpdateBoard) Type() string    { return TypeUpdateBoard }
func (AddColumn) Type() string      { return TypeAddColumn }
func (RenameColumn) Type() string   { return TypeRenameColumn }
func (DeleteColumn) Type() string   { return TypeDeleteColumn }
func (ReorderColumns) Type() string { return TypeReorderColumns }
func (AddTask) Type() string        { return TypeAddTask }
func (UpdateTask) Type() string     { return TypeUpdateTask }
func (DeleteTask) Type() string     { return TypeDeleteTask }
func (MoveTask) Type() string       { return TypeMoveTask }
func (ArchiveTask) Type() string    { return TypeArchiveTask }
func (ImportState) Type() string    { return TypeImportState }
func (u Unknown) Type() string      { return u.Name }
