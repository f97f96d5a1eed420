package work

// Role tags a contributor's part in a work's creation.
type Role string

const (
	RoleAuthor     Role = "author"
	RoleEditor     Role = "editor"
	RoleTranslator Role = "translator"
)

// Contributor is a named participant in a work's creation. A
// contributor with a surname but no first name or middle initial is
// treated as a corporate contributor and rendered without initials.
type Contributor struct {
	Role          Role
	Last          string
	First         string
	MiddleInitial string
}

// IsPerson reports whether the contributor carries personal name parts.
func (c Contributor) IsPerson() bool {
	return c.First != "" || c.MiddleInitial != ""
}

// Suppressed reports whether a sole contributor is rendered as nothing:
// the surname is exactly "Anonymous" with no other name parts.
func (c Contributor) Suppressed() bool {
	return c.Last == "Anonymous" && !c.IsPerson()
}

// CountRole returns the number of contributors with the given role.
func CountRole(roster []Contributor, role Role) int {
	n := 0
	for _, c := range roster {
		if c.Role == role {
			n++
		}
	}
	return n
}

// FilterRole returns the contributors with the given role, preserving
// input order.
func FilterRole(roster []Contributor, role Role) []Contributor {
	var out []Contributor
	for _, c := range roster {
		if c.Role == role {
			out = append(out, c)
		}
	}
	return out
}

// parseContributors reads the contributor roster from a raw record's
// "authors" or "contributors" field. Entries that are not field maps
// contribute nothing; both the long and the short legacy key names are
// accepted for each name part.
func parseContributors(raw map[string]any) []Contributor {
	list, ok := raw["authors"].([]any)
	if !ok {
		list, ok = raw["contributors"].([]any)
	}
	if !ok {
		return nil
	}

	var roster []Contributor
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		role := Role(stringKey(m, "role", "cselect"))
		if role == "" {
			role = RoleAuthor
		}
		roster = append(roster, Contributor{
			Role:          role,
			Last:          stringKey(m, "lastName", "lname"),
			First:         stringKey(m, "firstName", "fname"),
			MiddleInitial: stringKey(m, "middleInitial", "mi"),
		})
	}
	return roster
}

// stringKey returns the first present key's value coerced to a string.
func stringKey(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return coerceString(v)
		}
	}
	return ""
}
