package guard

import (
	"net/url"
	"strings"
)

// NormalizeLegacyResetLink converts an old-style reset link, where the query
// was glued into an extra path segment (possibly percent-encoded), into the
// canonical /reset-password?token=...&email=... form. Links without a token
// normalize to /forgot-password, restarting the flow.
//
// Plain '+' characters inside the embedded token are preserved: they are
// re-encoded before parsing so they do not decode into spaces.
func NormalizeLegacyResetLink(path string) (string, bool) {
	const prefix = "/reset-password/"
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}

	decoded, err := url.PathUnescape(strings.TrimPrefix(path, prefix))
	if err != nil {
		decoded = strings.TrimPrefix(path, prefix)
	}

	queryStart := strings.Index(decoded, "?")
	if queryStart == -1 {
		return "/forgot-password", true
	}

	raw := strings.ReplaceAll(decoded[queryStart+1:], "+", "%2B")
	params, err := url.ParseQuery(raw)
	if err != nil {
		return "/forgot-password", true
	}

	token := params.Get("token")
	if token == "" {
		return "/forgot-password", true
	}

	canonical := url.Values{}
	canonical.Set("token", token)
	if email := params.Get("email"); email != "" {
		canonical.Set("email", email)
	}
	return "/reset-password?" + canonical.Encode(), true
}
