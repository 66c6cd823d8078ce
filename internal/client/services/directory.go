package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/sustena/console/internal/client/api"
	"github.com/sustena/console/internal/client/cache"
	"github.com/sustena/console/internal/client/models"
	"github.com/sustena/console/internal/logging"
)

// DefaultDirectoryTTL bounds how long list results are served from cache.
const DefaultDirectoryTTL = 30 * time.Second

// DirectoryService is the data layer behind the management screens: users,
// sales representatives and customers. Reads go through a short-lived cache
// and retry transient network failures; writes invalidate the affected cache.
type DirectoryService struct {
	client api.Client
	log    logging.Logger

	users     *cache.Cache[[]models.User]
	reps      *cache.Cache[[]models.SalesRep]
	customers *cache.Cache[[]models.Customer]

	retryBase     time.Duration
	retryAttempts uint64
}

// NewDirectoryService builds the service with the given cache TTL.
// A non-positive ttl falls back to DefaultDirectoryTTL.
func NewDirectoryService(client api.Client, ttl time.Duration, log logging.Logger) *DirectoryService {
	if ttl <= 0 {
		ttl = DefaultDirectoryTTL
	}
	return &DirectoryService{
		client:        client,
		log:           log,
		users:         cache.New[[]models.User](ttl),
		reps:          cache.New[[]models.SalesRep](ttl),
		customers:     cache.New[[]models.Customer](ttl),
		retryBase:     200 * time.Millisecond,
		retryAttempts: 2,
	}
}

func queryKey(q models.ListQuery) string {
	return fmt.Sprintf("p=%d|s=%d|q=%s", q.Page, q.PageSize, q.Search)
}

// fetchWithRetry retries fn on network failures only; server rejections
// (auth, validation) surface immediately.
func fetchWithRetry[T any](ctx context.Context, s *DirectoryService, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	backoff := retry.WithMaxRetries(s.retryAttempts, retry.NewExponential(s.retryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		if err != nil {
			if apiErr, ok := api.AsError(err); ok && apiErr.IsNetwork() {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
	return result, err
}

// ListUsers returns the user directory page, served from cache when fresh.
func (s *DirectoryService) ListUsers(ctx context.Context, q models.ListQuery) ([]models.User, error) {
	key := queryKey(q)
	if items, ok := s.users.Get(key); ok {
		return items, nil
	}

	items, err := fetchWithRetry(ctx, s, func(ctx context.Context) ([]models.User, error) {
		return s.client.ListUsers(ctx, q)
	})
	if err != nil {
		return nil, err
	}
	s.users.Set(key, items)
	return items, nil
}

// CreateUser creates a console user and invalidates the user cache.
func (s *DirectoryService) CreateUser(ctx context.Context, u models.NewUser) (*models.User, error) {
	created, err := s.client.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}
	s.users.Purge()
	return created, nil
}

// ListSalesReps returns the sales representative directory page.
func (s *DirectoryService) ListSalesReps(ctx context.Context, q models.ListQuery) ([]models.SalesRep, error) {
	key := queryKey(q)
	if items, ok := s.reps.Get(key); ok {
		return items, nil
	}

	items, err := fetchWithRetry(ctx, s, func(ctx context.Context) ([]models.SalesRep, error) {
		return s.client.ListSalesReps(ctx, q)
	})
	if err != nil {
		return nil, err
	}
	s.reps.Set(key, items)
	return items, nil
}

// ListCustomers returns the customer directory page.
func (s *DirectoryService) ListCustomers(ctx context.Context, q models.ListQuery) ([]models.Customer, error) {
	key := queryKey(q)
	if items, ok := s.customers.Get(key); ok {
		return items, nil
	}

	items, err := fetchWithRetry(ctx, s, func(ctx context.Context) ([]models.Customer, error) {
		return s.client.ListCustomers(ctx, q)
	})
	if err != nil {
		return nil, err
	}
	s.customers.Set(key, items)
	return items, nil
}

// InvalidateAll drops every cached directory read. Called on logout so no
// data fetched under one session leaks into the next.
func (s *DirectoryService) InvalidateAll() {
	s.users.Purge()
	s.reps.Purge()
	s.customers.Purge()
}
