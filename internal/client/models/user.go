// Package models defines the data shapes exchanged with the console API and
// held in client state, plus the boundary validation applied before any
// request is constructed.
package models

// User is the authenticated profile as returned by the login endpoint and
// mirrored into durable storage.
type User struct {
	ID                  string   `json:"id"`
	Email               string   `json:"email"`
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	Roles               []string `json:"roles"`
	PreferredLanguageID *string  `json:"preferredLanguageId"`
}

// FullName joins first and last name, tolerating either being empty.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// HasRole reports whether the profile carries the given role tag.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
