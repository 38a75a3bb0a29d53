package model

import "time"

// DueDateLayout is the format of Task.DueDate.
const DueDateLayout = "2006-01-02"

// CreatedAtLayout matches the millisecond ISO-8601 stamps the board has always written.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Assignee    string `json:"assignee"`
	ColumnID    string `json:"columnId"`
	CreatedAt   string `json:"createdAt"`
	DueDate     string `json:"dueDate"`
	Archived    bool   `json:"archived"`
}

// TaskUpdates is a partial task; nil fields are left untouched on merge.
type TaskUpdates struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Assignee    *string `json:"assignee,omitempty"`
	ColumnID    *string `json:"columnId,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	Archived    *bool   `json:"archived,omitempty"`
}

// Apply returns a copy of t with the non-nil updates merged in.
func (u TaskUpdates) Apply(t Task) Task {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Assignee != nil {
		t.Assignee = *u.Assignee
	}
	if u.ColumnID != nil {
		t.ColumnID = *u.ColumnID
	}
	if u.DueDate != nil {
		t.DueDate = *u.DueDate
	}
	if u.Archived != nil {
		t.Archived = *u.Archived
	}
	return t
}

// Overdue reports whether the due date lies before the day of now.
// Archived tasks, tasks without a due date and unparseable dates are never overdue.
func (t Task) Overdue(now time.Time) bool {
	if t.Archived || t.DueDate == "" {
		return false
	}
	due, err := time.ParseInLocation(DueDateLayout, t.DueDate, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return due.Before(today)
}

// Visible reports whether t shows up under the given assignee filter.
func (t Task) Visible(filter string) bool {
	if t.Archived {
		return false
	}
	return filter == FilterAll || t.Assignee == filter
}
