package model

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Toggle returns the opposite theme. Anything that is not dark becomes dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Document is the whole application state tree.
type Document struct {
	Boards        []Board `json:"boards"`
	ActiveBoardID *string `json:"activeBoardId"`
	Theme         Theme   `json:"theme"`
	Filter        string  `json:"filter"`
}

// DefaultDocument is the state of a fresh install.
func DefaultDocument() Document {
	return Document{
		Boards: []Board{},
		Theme:  ThemeDark,
		Filter: FilterAll,
	}
}

// Board looks a board up by id.
func (d Document) Board(id string) (Board, bool) {
	for _, b := range d.Boards {
		if b.ID == id {
			return b, true
		}
	}
	return Board{}, false
}

// ActiveBoard returns the board currently selected, if any.
func (d Document) ActiveBoard() (Board, bool) {
	if d.ActiveBoardID == nil {
		return Board{}, false
	}
	return d.Board(*d.ActiveBoardID)
}

// IsActive reports whether id is the active board id.
func (d Document) IsActive(id string) bool {
	return d.ActiveBoardID != nil && *d.ActiveBoardID == id
}

// StringPtr is a helper for building optional fields.
func StringPtr(s string) *string {
	return &s
}
