package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sustena/console/internal/client/models"
	"github.com/sustena/console/internal/common"
)

// Forgot starts the password-reset journey: it prompts for an email and asks
// the server to send a verification code there.
func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.reset.RequestCode(ctx, email); err != nil {
		fmt.Println("Request failed:", err.Error())
		return err
	}

	fmt.Printf("Verification code sent to %s\n", models.MaskEmail(email))
	return nil
}

// Verify prompts for the five-digit code and submits it. On success the
// journey holds a reset ticket and the user can choose a new password.
func (a *App) Verify(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Enter verification code", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.reset.Verify(ctx, code); err != nil {
		fmt.Println("Verification failed:", err.Error())
		return err
	}

	fmt.Println("Code accepted. Use 'reset' to choose a new password.")
	return nil
}

// Resend asks the server to send the verification code again. Attempts inside
// the cooldown window are rejected locally.
func (a *App) Resend(ctx context.Context) error {
	if err := a.reset.Resend(ctx); err != nil {
		fmt.Println("Resend failed:", err.Error())
		return err
	}
	fmt.Printf("Verification code re-sent to %s\n", models.MaskEmail(a.reset.Email()))
	return nil
}

// Reset prompts for the new password twice and completes the journey. On
// success the user is routed back to the login screen.
func (a *App) Reset(ctx context.Context) error {
	password, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	if password != confirm {
		fmt.Println("Passwords do not match")
		return common.ErrPasswordMismatch
	}

	if err := a.reset.Complete(ctx, password); err != nil {
		fmt.Println("Reset failed:", err.Error())
		return err
	}

	a.path = "/login"
	fmt.Println("Password updated, please log in.")
	return nil
}
