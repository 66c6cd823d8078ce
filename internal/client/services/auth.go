// Package services contains the application services of the console client:
// authentication/session orchestration, the password-reset sequencer, and
// the directory data layer.
package services

import (
	"context"
	"errors"

	"github.com/sustena/console/internal/client/api"
	"github.com/sustena/console/internal/client/models"
	"github.com/sustena/console/internal/client/session"
	"github.com/sustena/console/internal/client/storage"
	"github.com/sustena/console/internal/common"
	"github.com/sustena/console/internal/logging"
)

// AuthService orchestrates login, logout and session restoration across the
// transport client, the session store and the persistence bridge.
//
// Contract:
//   - Login: validate, transition the session store, persist on success.
//   - Logout: best-effort server call, then unconditional local teardown.
//   - Restore: install a persisted session at startup, if one survives.
//   - Session: the read surface for the current session state.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*models.User, error)
	Session() session.Snapshot
	ClearError()
	Close(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  *session.Store
	bridge *storage.Bridge
	log    logging.Logger
}

// NewAuthService binds the service to its collaborators.
func NewAuthService(client api.Client, store *session.Store, bridge *storage.Bridge, log logging.Logger) AuthService {
	return &authService{client: client, store: store, bridge: bridge, log: log}
}

// Login runs one credential round-trip. The attempt is stamped with a store
// generation; if the session is logged out (or superseded) while the request
// is in flight, the late completion is dropped and the bearer token detached.
func (a *authService) Login(ctx context.Context, email, password string) error {
	if err := models.ValidateLogin(email, password); err != nil {
		return err
	}

	gen, err := a.store.BeginLogin()
	if err != nil {
		return err
	}

	result, err := a.client.Login(ctx, email, password)
	if err != nil {
		msg := err.Error()
		if apiErr, ok := api.AsError(err); ok {
			msg = apiErr.Message
		}
		if ferr := a.store.LoginFailed(gen, msg); errors.Is(ferr, common.ErrStaleCompletion) {
			a.log.Debug(ctx, "dropping stale login failure", "email", email)
		}
		return err
	}

	if err := a.store.LoginSucceeded(gen, &result.User, result.Token); err != nil {
		a.client.SetToken("")
		a.log.Debug(ctx, "dropping stale login success", "email", email)
		return err
	}

	ttl := a.bridge.TokenTTL(result.Token, result.ExpiresIn)
	if err := a.bridge.Persist(ctx, result.Token, &result.User, ttl); err != nil {
		// The live session stands; only restoration after restart is affected.
		a.log.Warn(ctx, "failed to persist session", "err", err)
	}

	a.log.Info(ctx, "login succeeded", "email", result.User.Email)
	return nil
}

// Logout tears the session down. The server call is best effort: local state
// is cleared no matter what, so a session never survives a logout attempt.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed", "err", err)
	}

	a.store.Logout()
	a.client.SetToken("")
	if err := a.bridge.Clear(ctx); err != nil {
		return err
	}
	return nil
}

// Restore rebuilds the session from persisted state. Returns (nil, nil) when
// nothing usable is persisted.
func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	restored, err := a.bridge.Restore(ctx)
	if err != nil || restored == nil {
		return nil, err
	}

	if err := a.store.Restore(&restored.User, restored.Token); err != nil {
		return nil, err
	}
	a.client.SetToken(restored.Token)

	a.log.Info(ctx, "session restored", "email", restored.User.Email)
	return &restored.User, nil
}

func (a *authService) Session() session.Snapshot {
	return a.store.Snapshot()
}

func (a *authService) ClearError() {
	a.store.ClearError()
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
