package models

// ResetTicket is the short-lived email+token pair authorizing a single
// password change. It is created when the verify-code step succeeds (or when
// a reset deep link supplies both values) and destroyed on completion.
type ResetTicket struct {
	Email string
	Token string
}

// Valid reports whether the ticket can authorize a reset request.
func (t *ResetTicket) Valid() bool {
	return t != nil && t.Token != "" && t.Email != ""
}
