// Package guard decides whether a navigation is allowed or redirected based
// on session state. It runs at the navigation boundary, before any protected
// screen's data fetching executes.
package guard

import (
	"strings"

	"github.com/sustena/console/internal/client/session"
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Allowed permits the navigation.
var Allowed = Decision{Allow: true}

// Redirect sends the navigation to path instead.
func Redirect(path string) Decision {
	return Decision{RedirectTo: path}
}

// Guard evaluates paths against the public route set and the session.
type Guard struct {
	public    []string
	login     string
	dashboard string
}

// DefaultPublicRoutes are reachable without a session; matching is by prefix
// so sub-paths (e.g. legacy reset links) stay public.
var DefaultPublicRoutes = []string{
	"/login",
	"/forgot-password",
	"/reset-password",
	"/verify-code",
}

func New(public []string, loginPath, dashboardPath string) *Guard {
	return &Guard{public: public, login: loginPath, dashboard: dashboardPath}
}

// NewDefault builds a guard with the console's standard route surface.
func NewDefault() *Guard {
	return New(DefaultPublicRoutes, "/login", "/dashboard")
}

func (g *Guard) isPublic(path string) bool {
	for _, p := range g.public {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Authorize applies the rules in order: anonymous sessions may only reach
// public routes; authenticated sessions are bounced from the login page to
// the dashboard; everything else is allowed.
func (g *Guard) Authorize(path string, s session.Snapshot) Decision {
	if !s.IsAuthenticated && !g.isPublic(path) {
		return Redirect(g.login)
	}
	if s.IsAuthenticated && path == g.login {
		return Redirect(g.dashboard)
	}
	return Allowed
}
