package services

import (
	"context"
	"sync"

	"github.com/sustena/console/internal/client/api"
	"github.com/sustena/console/internal/client/models"
)

// fakeClient implements api.Client for unit tests: canned results, error
// injection, call counting and last-argument capture.
type fakeClient struct {
	mu sync.Mutex

	LoginRet *api.LoginResult
	LoginErr error

	ForgotMsg string
	ForgotErr error

	VerifyRet *api.VerifyResult
	VerifyErr error

	ResetMsg string
	ResetErr error

	ResendMsg string
	ResendErr error

	LogoutErr error

	UsersRet     []models.User
	UsersErr     []error // consumed per call; nil entry means success
	CreateRet    *models.User
	CreateErr    error
	SalesRepsRet []models.SalesRep
	CustomersRet []models.Customer

	LoginCalls    int
	ForgotCalls   int
	VerifyCalls   int
	ResetCalls    int
	ResendCalls   int
	LogoutCalls   int
	UsersCalls    int
	CreateCalls   int
	SalesRepCalls int
	CustomerCalls int
	SetTokenCalls []string

	LastLoginEmail string
	LastVerifyCode string
	LastResetToken string
	LastResetEmail string
	LastResetPass  string
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*api.LoginResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	f.LastLoginEmail = email
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	return f.LoginRet, nil
}

func (f *fakeClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ForgotCalls++
	return f.ForgotMsg, f.ForgotErr
}

func (f *fakeClient) VerifyCode(ctx context.Context, email, code string) (*api.VerifyResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.VerifyCalls++
	f.LastVerifyCode = code
	if f.VerifyErr != nil {
		return nil, f.VerifyErr
	}
	return f.VerifyRet, nil
}

func (f *fakeClient) ResetPassword(ctx context.Context, email, token, newPassword string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ResetCalls++
	f.LastResetEmail = email
	f.LastResetToken = token
	f.LastResetPass = newPassword
	return f.ResetMsg, f.ResetErr
}

func (f *fakeClient) ResendCode(ctx context.Context, email string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ResendCalls++
	return f.ResendMsg, f.ResendErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeClient) ListUsers(ctx context.Context, q models.ListQuery) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UsersCalls++
	if len(f.UsersErr) > 0 {
		err := f.UsersErr[0]
		f.UsersErr = f.UsersErr[1:]
		if err != nil {
			return nil, err
		}
	}
	return f.UsersRet, nil
}

func (f *fakeClient) CreateUser(ctx context.Context, u models.NewUser) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	return f.CreateRet, nil
}

func (f *fakeClient) ListSalesReps(ctx context.Context, q models.ListQuery) ([]models.SalesRep, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SalesRepCalls++
	return f.SalesRepsRet, nil
}

func (f *fakeClient) ListCustomers(ctx context.Context, q models.ListQuery) ([]models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CustomerCalls++
	return f.CustomersRet, nil
}

func (f *fakeClient) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SetTokenCalls = append(f.SetTokenCalls, token)
}

func (f *fakeClient) Close() error { return nil }

var _ api.Client = (*fakeClient)(nil)
