// Package session holds the client's authentication state and the only
// transitions allowed to mutate it. The store is the single read surface for
// session data; persistence and transport live elsewhere.
package session

import (
	"sync"

	"github.com/sustena/console/internal/client/models"
	"github.com/sustena/console/internal/common"
)

// State names the position in the auth lifecycle.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
)

// Snapshot is an immutable view of the session. Invariant: IsAuthenticated
// implies both User and Token are set.
type Snapshot struct {
	State           State
	User            *models.User
	Token           string
	IsAuthenticated bool
	Loading         bool
	Err             string
}

// Store serializes all session transitions behind one mutex and stamps every
// login attempt with a generation, so a completion that resolves after a
// logout (or after a newer attempt) is provably ignored.
type Store struct {
	mu    sync.Mutex
	gen   uint64
	state State
	user  *models.User
	token string
	err   string
}

func NewStore() *Store {
	return &Store{state: StateAnonymous}
}

// BeginLogin moves anonymous/authenticated -> authenticating and returns the
// generation the eventual completion must present. A second login while one
// is in flight is rejected with common.ErrLoginInProgress.
func (s *Store) BeginLogin() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateAuthenticating {
		return 0, common.ErrLoginInProgress
	}
	s.gen++
	s.state = StateAuthenticating
	s.err = ""
	return s.gen, nil
}

// LoginSucceeded completes the attempt identified by gen. Stale completions
// return common.ErrStaleCompletion and leave the store untouched.
func (s *Store) LoginSucceeded(gen uint64, user *models.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.state != StateAuthenticating {
		return common.ErrStaleCompletion
	}
	s.state = StateAuthenticated
	s.user = user
	s.token = token
	s.err = ""
	return nil
}

// LoginFailed completes the attempt identified by gen with an error message.
// Stale completions return common.ErrStaleCompletion and change nothing.
func (s *Store) LoginFailed(gen uint64, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.state != StateAuthenticating {
		return common.ErrStaleCompletion
	}
	s.state = StateAnonymous
	s.user = nil
	s.token = ""
	s.err = msg
	return nil
}

// Logout resets to the canonical anonymous state from anywhere. It bumps the
// generation so any in-flight login completion becomes stale. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.state = StateAnonymous
	s.user = nil
	s.token = ""
	s.err = ""
}

// Restore installs a persisted session at startup. Only legal from the
// anonymous state; there is no loading transition.
func (s *Store) Restore(user *models.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAnonymous {
		return common.ErrInvalidTransition
	}
	if user == nil || token == "" {
		return common.ErrInvalidTransition
	}
	s.state = StateAuthenticated
	s.user = user
	s.token = token
	s.err = ""
	return nil
}

// ClearError drops the last failure message without touching anything else.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user *models.User
	if s.user != nil {
		u := *s.user
		user = &u
	}
	return Snapshot{
		State:           s.state,
		User:            user,
		Token:           s.token,
		IsAuthenticated: s.state == StateAuthenticated,
		Loading:         s.state == StateAuthenticating,
		Err:             s.err,
	}
}
