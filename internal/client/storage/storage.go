// Package storage implements the persistence bridge between the session and
// the local stores: a cookie record carrying the bearer token, the durable
// user profile, and the transient reset ticket. It is the only writer to
// those keys; everything else reads session data through the session store.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sustena/console/internal/client/models"
	"github.com/sustena/console/internal/client/repositories/state"
	"github.com/sustena/console/internal/common"
	"github.com/sustena/console/internal/dbx"
	"github.com/sustena/console/internal/logging"
)

// cookieKey namespaces the cookie record inside the durable store.
const cookieKey = "cookie:" + common.AuthCookieName

// cookieRecord mirrors the browser cookie the original console writes:
// path-scoped, expiring, same-site restricted. The token is also mirrored
// into the profile row's sibling key; keeping the two copies independent is
// deliberate (it matches the observed system) and Restore treats them as one
// unit, so drift can only ever degrade to "logged out".
type cookieRecord struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path"`
	Expires  time.Time `json:"expires"`
	SameSite string    `json:"sameSite"`
}

// Restored is the result of a successful Restore.
type Restored struct {
	Token string
	User  models.User
}

// Bridge persists and restores auth state. Durable data lives in the local
// sqlite database, transient data in an in-process store.
type Bridge struct {
	db        *sql.DB
	transient state.Store
	now       func() time.Time
	log       logging.Logger
}

type Option func(*Bridge)

// WithClock replaces the wall clock, for expiry tests.
func WithClock(now func() time.Time) Option {
	return func(b *Bridge) { b.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(b *Bridge) { b.log = l }
}

func NewBridge(db *sql.DB, transient state.Store, opts ...Option) *Bridge {
	b := &Bridge{
		db:        db,
		transient: transient,
		now:       time.Now,
		log:       logging.NewDiscardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// OpenDatabase opens the local state database and ensures its schema.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	if err := state.InitSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (b *Bridge) durable() state.Store {
	return state.NewSQLiteStore(b.db)
}

// Persist writes the cookie record (expiry = now + ttl) and the user profile.
// The two writes are intentionally independent; see cookieRecord.
func (b *Bridge) Persist(ctx context.Context, token string, user *models.User, ttl time.Duration) error {
	if token == "" || user == nil {
		return common.ErrInvalidTransition
	}

	repo := b.durable()

	cookie := cookieRecord{
		Name:     common.AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  b.now().Add(ttl),
		SameSite: "Strict",
	}
	cookieJSON, err := json.Marshal(cookie)
	if err != nil {
		return fmt.Errorf("failed to encode cookie: %w", err)
	}
	if err := repo.Set(ctx, cookieKey, cookieJSON); err != nil {
		return err
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user profile: %w", err)
	}
	return repo.Set(ctx, common.UserStorageKey, userJSON)
}

// Restore reads the persisted session back. It returns (nil, nil) when there
// is nothing usable: missing keys, malformed JSON, or an expired cookie all
// self-heal by clearing both copies, so corruption never throws past this
// boundary and never fails repeatedly.
func (b *Bridge) Restore(ctx context.Context) (*Restored, error) {
	repo := b.durable()

	cookieJSON, err := repo.Get(ctx, cookieKey)
	if err != nil {
		return nil, err
	}
	userJSON, err := repo.Get(ctx, common.UserStorageKey)
	if err != nil {
		return nil, err
	}

	if cookieJSON == nil && userJSON == nil {
		return nil, nil
	}
	if cookieJSON == nil || userJSON == nil {
		b.log.Warn(ctx, "partial persisted session, clearing")
		return nil, b.Clear(ctx)
	}

	var cookie cookieRecord
	var user models.User
	if json.Unmarshal(cookieJSON, &cookie) != nil || json.Unmarshal(userJSON, &user) != nil {
		b.log.Warn(ctx, "corrupt persisted session, clearing")
		return nil, b.Clear(ctx)
	}
	if cookie.Value == "" || user.Email == "" {
		b.log.Warn(ctx, "incomplete persisted session, clearing")
		return nil, b.Clear(ctx)
	}
	if !b.now().Before(cookie.Expires) {
		b.log.Info(ctx, "persisted session expired, clearing")
		return nil, b.Clear(ctx)
	}

	return &Restored{Token: cookie.Value, User: user}, nil
}

// Clear removes both persisted copies regardless of current state.
func (b *Bridge) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, b.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteStore(tx)
		if err := repo.Delete(ctx, cookieKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.UserStorageKey)
	})
}

// SaveTicket stores the reset ticket in transient storage for the duration of
// one password-reset journey.
func (b *Bridge) SaveTicket(ctx context.Context, t models.ResetTicket) error {
	if !t.Valid() {
		return common.ErrSessionExpired
	}
	if err := b.transient.Set(ctx, common.ResetTokenKey, []byte(t.Token)); err != nil {
		return err
	}
	return b.transient.Set(ctx, common.ResetEmailKey, []byte(t.Email))
}

// LoadTicket returns the active reset ticket, or nil when there is none.
func (b *Bridge) LoadTicket(ctx context.Context) (*models.ResetTicket, error) {
	token, err := b.transient.Get(ctx, common.ResetTokenKey)
	if err != nil {
		return nil, err
	}
	email, err := b.transient.Get(ctx, common.ResetEmailKey)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 || len(email) == 0 {
		return nil, nil
	}
	return &models.ResetTicket{Token: string(token), Email: string(email)}, nil
}

// ClearTicket destroys the reset ticket (completion or abandonment).
func (b *Bridge) ClearTicket(ctx context.Context) error {
	if err := b.transient.Delete(ctx, common.ResetTokenKey); err != nil {
		return err
	}
	return b.transient.Delete(ctx, common.ResetEmailKey)
}
