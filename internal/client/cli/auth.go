package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and tries to authenticate.
//
// On success the current path moves to the dashboard, mirroring the post-login
// redirect of the browser console. Validation and transport failures are
// printed for the user and returned unchanged.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		fmt.Println("Login failed:", err.Error())
		return err
	}

	a.path = "/dashboard"
	if user := a.auth.Session().User; user != nil {
		fmt.Printf("Welcome, %s\n", user.FullName())
	}
	return nil
}

// Logout tears down the session, drops cached directory data and returns the
// user to the login screen. Local state is cleared even when the server call
// fails.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Println("Logout:", err.Error())
		return err
	}
	a.directory.InvalidateAll()
	a.path = "/login"
	fmt.Println("Logged out")
	return nil
}

// Whoami prints the current session.
func (a *App) Whoami(ctx context.Context) error {
	snap := a.auth.Session()
	if !snap.IsAuthenticated || snap.User == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s>\n", snap.User.FullName(), snap.User.Email)
	if len(snap.User.Roles) > 0 {
		fmt.Println("Roles:", strings.Join(snap.User.Roles, ", "))
	}
	return nil
}
