package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"github.com/sustena/console/internal/client/api"
	"github.com/sustena/console/internal/client/config"
	"github.com/sustena/console/internal/client/guard"
	"github.com/sustena/console/internal/client/repositories/state"
	"github.com/sustena/console/internal/client/services"
	"github.com/sustena/console/internal/client/session"
	"github.com/sustena/console/internal/client/storage"
	"github.com/sustena/console/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config    *config.Config
	auth      services.AuthService
	reset     *services.ResetSequencer
	directory *services.DirectoryService
	guard     *guard.Guard
	log       logging.Logger
	db        *sql.DB
	reader    *bufio.Reader

	// path is the route the user is currently on; Open moves it through
	// the guard.
	path string
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := storage.OpenDatabase(ctx, c.StateDBPath)
	if err != nil {
		log.Error(ctx, "error opening state database", "err", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.BaseURL,
		api.WithLogger(log),
		api.WithHTTPClient(&http.Client{Timeout: c.RequestTimeout}),
		api.WithBypassHeader(c.BypassHeaderName, c.BypassHeaderValue),
	)

	store := session.NewStore()
	bridge := storage.NewBridge(db, state.NewMemoryStore(), storage.WithLogger(log))

	return &App{
		config:    c,
		auth:      services.NewAuthService(apiClient, store, bridge, log),
		reset:     services.NewResetSequencer(apiClient, bridge, c.ResendCooldown, log),
		directory: services.NewDirectoryService(apiClient, c.DirectoryCacheTTL, log),
		guard:     guard.NewDefault(),
		log:       log,
		db:        db,
		reader:    bufio.NewReader(os.Stdin),
		path:      "/login",
	}, nil
}

// Run restores any persisted session, then hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.auth.Close(ctx)
		_ = a.db.Close()
	}()

	if user, err := a.auth.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "err", err)
	} else if user != nil {
		a.path = "/dashboard"
		fmt.Printf("Welcome back, %s\n", user.FullName())
	}

	fmt.Println("Console CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.auth.Session().IsAuthenticated
}

func (a *App) getStatus() string {
	s := a.path
	if snap := a.auth.Session(); snap.IsAuthenticated && snap.User != nil {
		s = snap.User.Email + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}
