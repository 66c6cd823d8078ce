package cli

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sustena/console/internal/client/guard"
)

// Open navigates to target, running it through the route guard first.
//
// Legacy reset links (/reset-password/<encoded-query>) are normalized to the
// canonical form before anything else, the way the browser console rewrites
// them. A canonical reset link carrying token and email resumes the reset
// journey directly at the verified step.
func (a *App) Open(ctx context.Context, target string) error {
	if normalized, ok := guard.NormalizeLegacyResetLink(target); ok {
		fmt.Printf("Redirecting %s -> %s\n", target, normalized)
		target = normalized
	}

	u, err := url.Parse(target)
	if err != nil {
		fmt.Println("Invalid path:", err.Error())
		return err
	}

	decision := a.guard.Authorize(u.Path, a.auth.Session())
	if !decision.Allow {
		a.path = decision.RedirectTo
		fmt.Println("Redirected to", decision.RedirectTo)
		return nil
	}

	if u.Path == "/reset-password" {
		token := u.Query().Get("token")
		email := u.Query().Get("email")
		if token != "" && email != "" {
			if err := a.reset.ResumeFromLink(ctx, token, email); err != nil {
				fmt.Println("Reset link rejected:", err.Error())
				return err
			}
			fmt.Println("Reset link accepted. Use 'reset' to choose a new password.")
		}
	}

	a.path = u.Path
	fmt.Println("Opened", u.Path)
	return nil
}
