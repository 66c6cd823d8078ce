package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sustena/console/internal/client/models"
	"github.com/sustena/console/internal/common"
	"github.com/sustena/console/internal/logging"
)

const maxResponseBytes = 1 << 20

// HTTPClient is the Client implementation over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	// Hosting environments fronted by an interstitial proxy (e.g. tunnel
	// services) require this header to skip the warning page. It is plain
	// configuration; the API itself ignores it.
	bypassHeader string
	bypassValue  string

	mu    sync.RWMutex
	token string
}

type Option func(*HTTPClient)

// WithLogger replaces the default discard logger.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// WithHTTPClient replaces the underlying *http.Client (timeouts, transports).
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// WithBypassHeader configures the proxy-interstitial bypass header attached
// to every request. An empty name disables it.
func WithBypassHeader(name, value string) Option {
	return func(c *HTTPClient) {
		c.bypassHeader = name
		c.bypassValue = value
	}
}

// NewHTTPClient builds a client for the API at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:      baseURL,
		http:         &http.Client{Timeout: 15 * time.Second},
		log:          logging.NewDiscardLogger(),
		bypassHeader: "ngrok-skip-browser-warning",
		bypassValue:  "true",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// errorBody covers the two error shapes the API is known to emit.
type errorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

// do issues one request and decodes the response into out (when non-nil).
// Every failure path returns a *Error.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: "encode request: " + err.Error()}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return &Error{Message: "build request: " + err.Error()}
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if c.bypassHeader != "" {
		req.Header.Set(c.bypassHeader, c.bypassValue)
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "err", err)
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &Error{StatusCode: resp.StatusCode, Message: "read response: " + err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := http.StatusText(resp.StatusCode)
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil {
			if eb.Message != "" {
				msg = eb.Message
			} else if eb.Err != "" {
				msg = eb.Err
			}
		}
		return &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			c.log.Warn(ctx, "malformed response body", "method", method, "path", path, "err", err)
			return &Error{StatusCode: resp.StatusCode, Message: "malformed response body"}
		}
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type resetRequest struct {
	Email       string `json:"email"`
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := models.ValidateLogin(email, password); err != nil {
		return nil, err
	}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &result); err != nil {
		return nil, err
	}
	c.SetToken(result.Token)
	return &result, nil
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	if err := models.ValidateEmail(email); err != nil {
		return "", err
	}
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/forgot-password", nil, emailRequest{Email: email}, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) VerifyCode(ctx context.Context, email, code string) (*VerifyResult, error) {
	if err := models.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := models.ValidateCode(code); err != nil {
		return nil, err
	}
	var result VerifyResult
	if err := c.do(ctx, http.MethodPost, "/auth/verify-code", nil, verifyRequest{Email: email, Code: code}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email, token, newPassword string) (string, error) {
	if err := models.ValidateEmail(email); err != nil {
		return "", err
	}
	if token == "" {
		return "", common.ErrSessionExpired
	}
	if err := models.ValidatePassword(newPassword); err != nil {
		return "", err
	}
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/reset-password", nil, resetRequest{Email: email, Token: token, NewPassword: newPassword}, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) ResendCode(ctx context.Context, email string) (string, error) {
	if err := models.ValidateEmail(email); err != nil {
		return "", err
	}
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/resend-code", nil, emailRequest{Email: email}, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func listQuery(q models.ListQuery) url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	return values
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func (c *HTTPClient) ListUsers(ctx context.Context, q models.ListQuery) ([]models.User, error) {
	var resp listResponse[models.User]
	if err := c.do(ctx, http.MethodGet, "/users", listQuery(q), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, u models.NewUser) (*models.User, error) {
	if err := models.ValidateEmail(u.Email); err != nil {
		return nil, err
	}
	if err := models.ValidatePassword(u.Password); err != nil {
		return nil, err
	}
	var created models.User
	if err := c.do(ctx, http.MethodPost, "/users", nil, u, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) ListSalesReps(ctx context.Context, q models.ListQuery) ([]models.SalesRep, error) {
	var resp listResponse[models.SalesRep]
	if err := c.do(ctx, http.MethodGet, "/sales-reps", listQuery(q), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) ListCustomers(ctx context.Context, q models.ListQuery) ([]models.Customer, error) {
	var resp listResponse[models.Customer]
	if err := c.do(ctx, http.MethodGet, "/customers", listQuery(q), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

var _ Client = (*HTTPClient)(nil)
