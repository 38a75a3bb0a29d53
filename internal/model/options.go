package model

const (
	FilterAll    = "All"
	Unassigned   = "Unassigned"
	DefaultColor = "#3b82f6"
)

// DefaultColumnNames are the columns every new board starts with.
var DefaultColumnNames = []string{"To Do", "In Progress", "Done"}

var BoardColors = []string{
	"#3b82f6", // blue
	"#10b981", // green
	"#f59e0b", // amber
	"#ef4444", // red
	"#8b5cf6", // purple
	"#ec4899", // pink
	"#06b6d4", // cyan
	"#f97316", // orange
}

// Users returns the assignable user list: the configured names followed by Unassigned.
func Users(configured []string) []string {
	users := make([]string, 0, len(configured)+1)
	for _, u := range configured {
		if u != "" && u != Unassigned {
			users = append(users, u)
		}
	}
	return append(users, Unassigned)
}

// FilterOptions returns "All" followed by every assignable user.
func FilterOptions(configured []string) []string {
	return append([]string{FilterAll}, Users(configured)...)
}
