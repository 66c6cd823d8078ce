// Package cli implements the interactive console client.
//
// The client is a read–eval–print loop over the application services:
// authentication (login/logout/session restore), the password-reset journey
// (forgot/verify/resend/reset), navigation through the route guard (open),
// and the management directory (users, salesreps, customers, adduser).
//
// Navigation is modelled as a current path. The "open" command runs the path
// through the route guard before switching to it, so protected screens are
// unreachable without a session, exactly like the browser console.
package cli
