package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/sustena/console/internal/client/api"
	"github.com/sustena/console/internal/client/guard"
	"github.com/sustena/console/internal/client/models"
	"github.com/sustena/console/internal/client/repositories/state"
	"github.com/sustena/console/internal/client/services"
	"github.com/sustena/console/internal/client/session"
	"github.com/sustena/console/internal/client/storage"
	"github.com/sustena/console/internal/common"
	"github.com/sustena/console/internal/logging"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

// stubPasswords replaces the password seam with a queue of canned answers.
func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	orig := getPassword
	getPassword = func(prompt string, w io.Writer) (string, error) {
		if len(answers) == 0 {
			t.Fatal("unexpected password prompt")
		}
		answer := answers[0]
		answers = answers[1:]
		return answer, nil
	}
	t.Cleanup(func() { getPassword = orig })
}

type stubClient struct {
	LoginRet  *api.LoginResult
	LoginErr  error
	VerifyRet *api.VerifyResult
	ResetErr  error
	CreateRet *models.User

	LoginCalls  int
	ResetCalls  int
	CreateCalls int
	LastToken   string
}

func (s *stubClient) Login(ctx context.Context, email, password string) (*api.LoginResult, error) {
	s.LoginCalls++
	if s.LoginErr != nil {
		return nil, s.LoginErr
	}
	return s.LoginRet, nil
}

func (s *stubClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	return "code sent", nil
}

func (s *stubClient) VerifyCode(ctx context.Context, email, code string) (*api.VerifyResult, error) {
	return s.VerifyRet, nil
}

func (s *stubClient) ResetPassword(ctx context.Context, email, token, newPassword string) (string, error) {
	s.ResetCalls++
	if s.ResetErr != nil {
		return "", s.ResetErr
	}
	return "password updated", nil
}

func (s *stubClient) ResendCode(ctx context.Context, email string) (string, error) {
	return "code re-sent", nil
}

func (s *stubClient) Logout(ctx context.Context) error { return nil }

func (s *stubClient) ListUsers(ctx context.Context, q models.ListQuery) ([]models.User, error) {
	return nil, nil
}

func (s *stubClient) CreateUser(ctx context.Context, u models.NewUser) (*models.User, error) {
	s.CreateCalls++
	return s.CreateRet, nil
}

func (s *stubClient) ListSalesReps(ctx context.Context, q models.ListQuery) ([]models.SalesRep, error) {
	return nil, nil
}

func (s *stubClient) ListCustomers(ctx context.Context, q models.ListQuery) ([]models.Customer, error) {
	return nil, nil
}

func (s *stubClient) SetToken(token string) { s.LastToken = token }
func (s *stubClient) Close() error          { return nil }

var _ api.Client = (*stubClient)(nil)

func newTestApp(t *testing.T, client api.Client, lines ...string) *App {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, state.InitSchema(context.Background(), db))

	log := logging.NewDiscardLogger()
	bridge := storage.NewBridge(db, state.NewMemoryStore())

	return &App{
		auth:      services.NewAuthService(client, session.NewStore(), bridge, log),
		reset:     services.NewResetSequencer(client, bridge, time.Millisecond, log),
		directory: services.NewDirectoryService(client, time.Minute, log),
		guard:     guard.NewDefault(),
		log:       log,
		db:        db,
		reader:    readerFromLines(lines...),
		path:      "/login",
	}
}

func loginSuccess() *api.LoginResult {
	return &api.LoginResult{
		Token:     "tok",
		ExpiresIn: 1800,
		User:      models.User{ID: "1", Email: "a@b.com", FirstName: "A", LastName: "B"},
	}
}

// ------------ tests ------------

func TestLogin_MovesToDashboard(t *testing.T) {
	client := &stubClient{LoginRet: loginSuccess()}
	app := newTestApp(t, client, "a@b.com")
	stubPasswords(t, "secret1")

	require.NoError(t, app.Login(context.Background()))
	require.True(t, app.isLoggedIn())
	require.Equal(t, "/dashboard", app.path)
}

func TestLogin_FailureStaysOnLogin(t *testing.T) {
	client := &stubClient{LoginErr: &api.Error{StatusCode: 401, Message: "invalid credentials"}}
	app := newTestApp(t, client, "a@b.com")
	stubPasswords(t, "wrong12")

	require.Error(t, app.Login(context.Background()))
	require.False(t, app.isLoggedIn())
	require.Equal(t, "/login", app.path)
}

func TestLogout_ReturnsToLogin(t *testing.T) {
	client := &stubClient{LoginRet: loginSuccess()}
	app := newTestApp(t, client, "a@b.com")
	stubPasswords(t, "secret1")
	ctx := context.Background()

	require.NoError(t, app.Login(ctx))
	require.NoError(t, app.Logout(ctx))
	require.False(t, app.isLoggedIn())
	require.Equal(t, "/login", app.path)
}

func TestOpen_GuardRedirectsAnonymous(t *testing.T) {
	app := newTestApp(t, &stubClient{})

	require.NoError(t, app.Open(context.Background(), "/dashboard"))
	require.Equal(t, "/login", app.path)
}

func TestOpen_GuardBouncesAuthenticatedFromLogin(t *testing.T) {
	client := &stubClient{LoginRet: loginSuccess()}
	app := newTestApp(t, client, "a@b.com")
	stubPasswords(t, "secret1")
	ctx := context.Background()

	require.NoError(t, app.Login(ctx))
	require.NoError(t, app.Open(ctx, "/login"))
	require.Equal(t, "/dashboard", app.path)
}

func TestOpen_LegacyResetLinkResumesJourney(t *testing.T) {
	app := newTestApp(t, &stubClient{})
	ctx := context.Background()

	link := "/reset-password/%3Ftoken%3Dabc%2Bdef%26email%3Da%40b.com"
	require.NoError(t, app.Open(ctx, link))

	require.Equal(t, "/reset-password", app.path)
	require.Equal(t, services.ResetCodeVerified, app.reset.State())
	require.Equal(t, "a@b.com", app.reset.Email())
}

func TestReset_CompletesJourneyAndRoutesToLogin(t *testing.T) {
	client := &stubClient{}
	app := newTestApp(t, client)
	ctx := context.Background()

	require.NoError(t, app.reset.ResumeFromLink(ctx, "abc+def", "a@b.com"))
	stubPasswords(t, "abcdef1!", "abcdef1!")

	require.NoError(t, app.Reset(ctx))
	require.Equal(t, 1, client.ResetCalls)
	require.Equal(t, "/login", app.path)
}

func TestReset_MismatchedPasswordsRejectedLocally(t *testing.T) {
	client := &stubClient{}
	app := newTestApp(t, client)
	ctx := context.Background()

	require.NoError(t, app.reset.ResumeFromLink(ctx, "tok", "a@b.com"))
	stubPasswords(t, "abcdef1!", "different1!")

	require.ErrorIs(t, app.Reset(ctx), common.ErrPasswordMismatch)
	require.Zero(t, client.ResetCalls)
}

func TestForgotThenVerify(t *testing.T) {
	client := &stubClient{VerifyRet: &api.VerifyResult{Token: "tok", ResetToken: "rt"}}
	app := newTestApp(t, client, "a@b.com", "12345")
	ctx := context.Background()

	require.NoError(t, app.Forgot(ctx))
	require.Equal(t, services.ResetCodeRequested, app.reset.State())

	require.NoError(t, app.Verify(ctx))
	require.Equal(t, services.ResetCodeVerified, app.reset.State())
}

func TestAddUser_WeakPasswordRejectedLocally(t *testing.T) {
	client := &stubClient{}
	app := newTestApp(t, client, "new@b.com", "New", "User", "admin")
	stubPasswords(t, "weak")

	require.ErrorIs(t, app.AddUser(context.Background()), common.ErrWeakPassword)
	require.Zero(t, client.CreateCalls)
}

func TestAddUser_CreatesUser(t *testing.T) {
	client := &stubClient{CreateRet: &models.User{ID: "2", Email: "new@b.com", FirstName: "New", LastName: "User"}}
	app := newTestApp(t, client, "new@b.com", "New", "User", "admin")
	stubPasswords(t, "abcdef1!")

	require.NoError(t, app.AddUser(context.Background()))
	require.Equal(t, 1, client.CreateCalls)
}

func TestWhoami_WithoutSession(t *testing.T) {
	app := newTestApp(t, &stubClient{})
	require.NoError(t, app.Whoami(context.Background()))
}
