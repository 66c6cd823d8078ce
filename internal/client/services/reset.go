package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sustena/console/internal/client/api"
	"github.com/sustena/console/internal/client/models"
	"github.com/sustena/console/internal/client/storage"
	"github.com/sustena/console/internal/common"
	"github.com/sustena/console/internal/logging"
)

// ResetState names the position in the password-reset journey.
type ResetState string

const (
	ResetIdle          ResetState = "idle"
	ResetCodeRequested ResetState = "code_requested"
	ResetCodeVerified  ResetState = "code_verified"
	ResetCompleted     ResetState = "completed"
)

// DefaultResendCooldown matches the verification screen's countdown.
const DefaultResendCooldown = 60 * time.Second

// ResetSequencer coordinates the three-step password-reset flow:
// request code -> verify code -> submit new password. The reset ticket is
// carried between steps through the persistence bridge's transient store.
// A reset deep link may enter the flow directly at the verified step.
//
// The mutex is not held across transport calls; each completion re-checks
// that the journey it belongs to is still the current one, so completions
// for an abandoned journey are no-ops.
type ResetSequencer struct {
	client api.Client
	bridge *storage.Bridge
	log    logging.Logger

	cooldown time.Duration
	now      func() time.Time

	mu         sync.Mutex
	state      ResetState
	email      string
	nextResend time.Time
}

// NewResetSequencer builds a sequencer in the Idle state. A non-positive
// cooldown falls back to DefaultResendCooldown.
func NewResetSequencer(client api.Client, bridge *storage.Bridge, cooldown time.Duration, log logging.Logger) *ResetSequencer {
	if cooldown <= 0 {
		cooldown = DefaultResendCooldown
	}
	return &ResetSequencer{
		client:   client,
		bridge:   bridge,
		log:      log,
		cooldown: cooldown,
		now:      time.Now,
		state:    ResetIdle,
	}
}

// State returns the current journey position.
func (r *ResetSequencer) State() ResetState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Email returns the address the current journey is resetting.
func (r *ResetSequencer) Email() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.email
}

// ResendAvailableIn reports how long until a resend is accepted; zero means
// it is available now.
func (r *ResetSequencer) ResendAvailableIn() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d := r.nextResend.Sub(r.now()); d > 0 {
		return d
	}
	return 0
}

// RequestCode starts (or restarts) a journey for email. Any previous ticket
// is abandoned. On transport failure the sequencer stays where it was.
func (r *ResetSequencer) RequestCode(ctx context.Context, email string) error {
	if err := models.ValidateEmail(email); err != nil {
		return err
	}

	if _, err := r.client.ForgotPassword(ctx, email); err != nil {
		return err
	}

	if err := r.bridge.ClearTicket(ctx); err != nil {
		r.log.Warn(ctx, "failed to drop previous reset ticket", "err", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = ResetCodeRequested
	r.email = email
	r.nextResend = r.now().Add(r.cooldown)
	return nil
}

// Verify submits the OTP. The code must be exactly five digits; anything else
// is rejected locally without a network call. On success the returned reset
// token becomes the journey's ticket.
func (r *ResetSequencer) Verify(ctx context.Context, code string) error {
	r.mu.Lock()
	if r.state != ResetCodeRequested {
		r.mu.Unlock()
		return common.ErrInvalidTransition
	}
	email := r.email
	r.mu.Unlock()

	if err := models.ValidateCode(code); err != nil {
		return err
	}

	result, err := r.client.VerifyCode(ctx, email, code)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != ResetCodeRequested || r.email != email {
		// The journey was abandoned or restarted while the call was in flight.
		return common.ErrStaleCompletion
	}
	if err := r.bridge.SaveTicket(ctx, models.ResetTicket{Email: email, Token: result.ResetToken}); err != nil {
		return err
	}
	r.state = ResetCodeVerified
	return nil
}

// Resend re-sends the OTP and re-arms the cooldown. Attempts inside the
// cooldown window are rejected locally without a network call. Failed verify
// attempts do not touch the cooldown.
func (r *ResetSequencer) Resend(ctx context.Context) error {
	r.mu.Lock()
	if r.state != ResetCodeRequested {
		r.mu.Unlock()
		return common.ErrInvalidTransition
	}
	email := r.email
	if remaining := r.nextResend.Sub(r.now()); remaining > 0 {
		r.mu.Unlock()
		return fmt.Errorf("%w: retry in %ds", common.ErrResendCooldown, int(remaining.Seconds()+0.5))
	}
	r.mu.Unlock()

	if _, err := r.client.ResendCode(ctx, email); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == ResetCodeRequested && r.email == email {
		r.nextResend = r.now().Add(r.cooldown)
	}
	return nil
}

// ResumeFromLink enters the flow directly at the verified step with a ticket
// supplied by a reset link, bypassing the request/verify steps.
func (r *ResetSequencer) ResumeFromLink(ctx context.Context, token, email string) error {
	if err := models.ValidateEmail(email); err != nil {
		return err
	}
	if token == "" {
		return common.ErrSessionExpired
	}

	if err := r.bridge.SaveTicket(ctx, models.ResetTicket{Email: email, Token: token}); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = ResetCodeVerified
	r.email = email
	return nil
}

// Complete submits the new password using the active ticket. Without a ticket
// (page reload mid-flow, process restart) it fails locally with the
// session-expired error and never touches the transport. On success the
// ticket is destroyed and the caller should route to login.
func (r *ResetSequencer) Complete(ctx context.Context, newPassword string) error {
	r.mu.Lock()
	state := r.state
	r.mu.Unlock()

	ticket, err := r.bridge.LoadTicket(ctx)
	if err != nil {
		return err
	}
	if state != ResetCodeVerified || !ticket.Valid() {
		return common.ErrSessionExpired
	}

	if err := models.ValidatePassword(newPassword); err != nil {
		return err
	}

	if _, err := r.client.ResetPassword(ctx, ticket.Email, ticket.Token, newPassword); err != nil {
		return err
	}

	if err := r.bridge.ClearTicket(ctx); err != nil {
		r.log.Warn(ctx, "failed to clear reset ticket", "err", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == ResetCodeVerified {
		r.state = ResetCompleted
	}
	return nil
}
