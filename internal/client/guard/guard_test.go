package guard

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sustena/console/internal/client/models"
	"github.com/sustena/console/internal/client/session"
)

func anonymous() session.Snapshot {
	return session.Snapshot{State: session.StateAnonymous}
}

func authenticated() session.Snapshot {
	return session.Snapshot{
		State:           session.StateAuthenticated,
		IsAuthenticated: true,
		Token:           "tok",
		User:            &models.User{ID: "1", Email: "a@b.com"},
	}
}

func TestAuthorize(t *testing.T) {
	g := NewDefault()

	tests := []struct {
		name string
		path string
		sess session.Snapshot
		want Decision
	}{
		{"login page while authenticated", "/login", authenticated(), Redirect("/dashboard")},
		{"protected route while anonymous", "/users", anonymous(), Redirect("/login")},
		{"public route while anonymous", "/forgot-password", anonymous(), Allowed},
		{"public sub-path while anonymous", "/reset-password/legacy?x=1", anonymous(), Allowed},
		{"verify-code while anonymous", "/verify-code", anonymous(), Allowed},
		{"login page while anonymous", "/login", anonymous(), Allowed},
		{"dashboard while authenticated", "/dashboard", authenticated(), Allowed},
		{"protected route while authenticated", "/customers", authenticated(), Allowed},
		{"public route while authenticated", "/forgot-password", authenticated(), Allowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, g.Authorize(tt.path, tt.sess))
		})
	}
}

func TestAuthorizeLoadingSessionIsNotAuthenticated(t *testing.T) {
	g := NewDefault()
	s := session.Snapshot{State: session.StateAuthenticating, Loading: true}
	require.Equal(t, Redirect("/login"), g.Authorize("/users", s))
}

func TestNormalizeLegacyResetLink(t *testing.T) {
	got, ok := NormalizeLegacyResetLink("/reset-password/confirm?token=abc&email=a@b.com")
	require.True(t, ok)

	u, err := url.Parse(got)
	require.NoError(t, err)
	require.Equal(t, "/reset-password", u.Path)
	require.Equal(t, "abc", u.Query().Get("token"))
	require.Equal(t, "a@b.com", u.Query().Get("email"))
}

func TestNormalizeLegacyResetLinkEncodedWithPlus(t *testing.T) {
	// The whole tail arrives percent-encoded and the token contains '+'.
	got, ok := NormalizeLegacyResetLink("/reset-password/foo%3Ftoken%3Dabc%2Bdef%26email%3Da%40b.com")
	require.True(t, ok)

	u, err := url.Parse(got)
	require.NoError(t, err)
	require.Equal(t, "abc+def", u.Query().Get("token"))
	require.Equal(t, "a@b.com", u.Query().Get("email"))
}

func TestNormalizeLegacyResetLinkWithoutToken(t *testing.T) {
	got, ok := NormalizeLegacyResetLink("/reset-password/whatever")
	require.True(t, ok)
	require.Equal(t, "/forgot-password", got)

	got, ok = NormalizeLegacyResetLink("/reset-password/x?email=a@b.com")
	require.True(t, ok)
	require.Equal(t, "/forgot-password", got)
}

func TestNormalizeLegacyResetLinkTokenOnly(t *testing.T) {
	got, ok := NormalizeLegacyResetLink("/reset-password/x?token=abc")
	require.True(t, ok)

	u, err := url.Parse(got)
	require.NoError(t, err)
	require.Equal(t, "abc", u.Query().Get("token"))
	require.False(t, u.Query().Has("email"))
}

func TestNormalizeNonLegacyPaths(t *testing.T) {
	_, ok := NormalizeLegacyResetLink("/reset-password")
	require.False(t, ok)

	_, ok = NormalizeLegacyResetLink("/login")
	require.False(t, ok)
}
