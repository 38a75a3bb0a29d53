package model

import (
	"encoding/json"
	"strings"
)

// Member is an advisory collaborator entry on a board.
type Member struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UnmarshalJSON also accepts the older plain-string form ("alice").
func (m *Member) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*m = Member{Name: name}
		return nil
	}

	type plain Member
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*m = Member(p)
	return nil
}

// CleanMembers trims names and emails and drops entries without a name.
// Returns nil when nothing is left so empty lists are omitted from JSON.
func CleanMembers(members []Member) []Member {
	var out []Member
	for _, m := range members {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			continue
		}
		out = append(out, Member{Name: name, Email: strings.TrimSpace(m.Email)})
	}
	return out
}
