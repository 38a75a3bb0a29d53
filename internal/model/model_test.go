package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_Overdue(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"past due", Task{DueDate: "2024-05-09"}, true},
		{"due today", Task{DueDate: "2024-05-10"}, false},
		{"future", Task{DueDate: "2024-06-01"}, false},
		{"no due date", Task{}, false},
		{"archived past due", Task{DueDate: "2024-01-01", Archived: true}, false},
		{"garbage date", Task{DueDate: "next week"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.Overdue(now))
		})
	}
}

func TestBoard_VisibleTasks(t *testing.T) {
	b := Board{
		Columns: []Column{{ID: "a"}, {ID: "b"}},
		Tasks: []Task{
			{ID: "1", ColumnID: "a", Assignee: "Itay"},
			{ID: "2", ColumnID: "a", Assignee: "Morry"},
			{ID: "3", ColumnID: "b", Assignee: "Itay", Archived: true},
			{ID: "4", ColumnID: "b", Assignee: Unassigned},
		},
	}

	ids := func(tasks []Task) []string {
		var out []string
		for _, t := range tasks {
			out = append(out, t.ID)
		}
		return out
	}

	assert.Equal(t, []string{"1", "2", "4"}, ids(b.VisibleTasks(FilterAll)))
	assert.Equal(t, []string{"1"}, ids(b.VisibleTasks("Itay")))
	assert.Equal(t, []string{"4"}, ids(b.VisibleTasks(Unassigned)))
	assert.Empty(t, b.VisibleTasks("nobody"))
	assert.Equal(t, []string{"4"}, ids(b.ColumnTasks("b", FilterAll)))
}

func TestBoard_ColumnPosition(t *testing.T) {
	b := Board{Columns: []Column{{ID: "a"}, {ID: "b"}, {ID: "c"}}}

	assert.Equal(t, 1, b.ColumnIndex("b"))
	assert.Equal(t, -1, b.ColumnIndex("zzz"))
	assert.True(t, b.IsFirstColumn("a"))
	assert.False(t, b.IsFirstColumn("b"))
	assert.True(t, b.IsLastColumn("c"))
	assert.False(t, Board{}.IsLastColumn("c"))
}

func TestMember_UnmarshalLegacyString(t *testing.T) {
	var members []Member
	err := json.Unmarshal([]byte(`["alice", {"name":"bob","email":"bob@example.com"}]`), &members)
	require.NoError(t, err)

	assert.Equal(t, []Member{
		{Name: "alice"},
		{Name: "bob", Email: "bob@example.com"},
	}, members)
}

func TestCleanMembers(t *testing.T) {
	got := CleanMembers([]Member{
		{Name: "  alice ", Email: " a@example.com "},
		{Name: "   ", Email: "ghost@example.com"},
	})
	assert.Equal(t, []Member{{Name: "alice", Email: "a@example.com"}}, got)
	assert.Nil(t, CleanMembers([]Member{{Name: ""}}))
}

func TestUpdates_Apply(t *testing.T) {
	task := Task{ID: "t", Title: "old", Assignee: Unassigned}
	archived := true
	got := TaskUpdates{Title: StringPtr("new"), Archived: &archived}.Apply(task)

	assert.Equal(t, "new", got.Title)
	assert.True(t, got.Archived)
	assert.Equal(t, Unassigned, got.Assignee)
	assert.Equal(t, "old", task.Title, "original left alone")

	board := Board{ID: "b", Name: "Sprint", Color: DefaultColor}
	gotBoard := BoardUpdates{Color: StringPtr("#ef4444")}.Apply(board)
	assert.Equal(t, "Sprint", gotBoard.Name)
	assert.Equal(t, "#ef4444", gotBoard.Color)
}

func TestDocument_JSONShape(t *testing.T) {
	doc := DefaultDocument()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"boards":[],"activeBoardId":null,"theme":"dark","filter":"All"}`, string(data))

	doc.ActiveBoardID = StringPtr("b1")
	assert.True(t, doc.IsActive("b1"))
	_, ok := doc.ActiveBoard()
	assert.False(t, ok)
}

func TestFilterOptions(t *testing.T) {
	assert.Equal(t, []string{"All", "Unassigned"}, FilterOptions(nil))
	assert.Equal(t, []string{"All", "Itay", "Morry", "Unassigned"}, FilterOptions([]string{"Itay", "Morry", "Unassigned"}))
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeDark, Theme("").Toggle())
	assert.Equal(t, ThemeDark, Theme("sepia").Toggle())
}
