package storage

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sustena/console/internal/common"
)

// TokenTTL determines how long the auth cookie should live. The server's
// expiresIn wins when present; otherwise the token's own exp claim is peeked
// (unverified — validation is the server's job); failing both, the historical
// 30 minute default applies.
func (b *Bridge) TokenTTL(token string, expiresIn int) time.Duration {
	if expiresIn > 0 {
		return time.Duration(expiresIn) * time.Second
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			if ttl := exp.Sub(b.now()); ttl > 0 {
				return ttl
			}
		}
	}

	return common.DefaultTokenTTLSeconds * time.Second
}
