// Package api implements the transport client for the remote console API.
// All operations speak HTTPS+JSON and surface failures as *Error so that
// callers never need to distinguish network problems from server rejections.
package api

import (
	"context"

	"github.com/sustena/console/internal/client/models"
)

// LoginResult is the success payload of the login operation.
type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expiresIn"`
	User      models.User `json:"user"`
}

// VerifyResult is the success payload of the verify-code operation.
// ResetToken authorizes the subsequent password reset.
type VerifyResult struct {
	Token      string `json:"token"`
	ResetToken string `json:"resetToken"`
}

// Client is the remote API surface used by the services layer.
//
// Contract:
//   - Auth operations map one-to-one onto the /auth/* endpoints.
//   - After a successful Login the bearer token is attached to every
//     subsequent request until SetToken("") or another Login.
//   - Every failure is a *Error; input validation failures are sentinel
//     errors from internal/common and never reach the wire.
type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	VerifyCode(ctx context.Context, email, code string) (*VerifyResult, error)
	ResetPassword(ctx context.Context, email, token, newPassword string) (string, error)
	ResendCode(ctx context.Context, email string) (string, error)
	Logout(ctx context.Context) error

	ListUsers(ctx context.Context, q models.ListQuery) ([]models.User, error)
	CreateUser(ctx context.Context, u models.NewUser) (*models.User, error)
	ListSalesReps(ctx context.Context, q models.ListQuery) ([]models.SalesRep, error)
	ListCustomers(ctx context.Context, q models.ListQuery) ([]models.Customer, error)

	// SetToken replaces the bearer token attached to authenticated requests.
	// An empty string detaches it.
	SetToken(token string)

	Close() error
}
