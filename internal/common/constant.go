package common

const (
	// AuthCookieName is the name of the cookie record carrying the bearer token.
	AuthCookieName = "auth_token"

	// UserStorageKey is the durable-storage key holding the serialized profile.
	UserStorageKey = "user"

	// ResetTokenKey and ResetEmailKey are the transient-storage keys carrying
	// the reset ticket between password-reset steps.
	ResetTokenKey = "resetToken"
	ResetEmailKey = "resetEmail"

	// RequestIDHeaderName tags every outbound request for server-side tracing.
	RequestIDHeaderName = "X-Request-Id"

	// DefaultTokenTTLSeconds is applied when the login response carries no
	// usable expiry.
	DefaultTokenTTLSeconds = 1800
)
