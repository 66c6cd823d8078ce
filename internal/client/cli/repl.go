package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Forgot(ctx context.Context) error
	Verify(ctx context.Context) error
	Resend(ctx context.Context) error
	Reset(ctx context.Context) error
	Open(ctx context.Context, path string) error
	Users(ctx context.Context) error
	SalesReps(ctx context.Context) error
	Customers(ctx context.Context) error
	AddUser(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the console CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - forgot         — request a password-reset code
//	  - verify         — submit the verification code
//	  - resend         — re-send the verification code
//	  - reset          — choose a new password
//	  - open <path>    — navigate to a route (guard applies)
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - whoami         — show the current session
//	  - open <path>    — navigate to a route (guard applies)
//	  - users          — list console users
//	  - salesreps      — list sales representatives
//	  - customers      — list customers
//	  - adduser        — create a console user
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("console %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, open <path>, users, salesreps, customers, adduser, logout, exit")
			} else {
				printlnFn("Available commands: login, forgot, verify, resend, reset, open <path>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "verify":
			_ = a.Verify(ctx)

		case "resend":
			_ = a.Resend(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <path>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "users":
			_ = a.Users(ctx)

		case "salesreps", "reps":
			_ = a.SalesReps(ctx)

		case "customers":
			_ = a.Customers(ctx)

		case "adduser":
			_ = a.AddUser(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
