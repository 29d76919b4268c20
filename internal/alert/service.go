package alert

import (
	"context"
	"errors"
	"time"
)

// Common errors
var (
	ErrMissingFields = errors.New("alert type, title, and message are required")
)

// LatestWindow is how many alerts the poll endpoint returns
const LatestWindow = 10

// RecencyWindow bounds what counts as a live alert; older notices are
// history, not announcements
const RecencyWindow = 30 * time.Minute

// repository is the persistence surface the service needs
type repository interface {
	Create(ctx context.Context, alertType, title, message string, triggeredBy *int64) (*Alert, error)
	ListLatest(ctx context.Context, limit int) ([]*Alert, error)
	ListSince(ctx context.Context, since time.Time) ([]*Alert, error)
}

// Service handles alert broadcasting. Delivery is poll-based: clients
// fetch on load, there is no acknowledgment and no retry.
type Service struct {
	repo repository
	now  func() time.Time
}

// NewService creates a new alert service with repository dependency injected
func NewService(repo repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Broadcast appends an alert for all clients to pick up on their next poll
func (s *Service) Broadcast(ctx context.Context, alertType, title, message string, triggeredBy *int64) (*Alert, error) {
	if alertType == "" || title == "" || message == "" {
		return nil, ErrMissingFields
	}
	return s.repo.Create(ctx, alertType, title, message, triggeredBy)
}

// Latest returns the last few alerts, newest first
func (s *Service) Latest(ctx context.Context) ([]*Alert, error) {
	alerts, err := s.repo.ListLatest(ctx, LatestWindow)
	if err != nil {
		return nil, err
	}
	if alerts == nil {
		alerts = []*Alert{}
	}
	return alerts, nil
}

// Recent returns only alerts fresh enough to still be announcements
func (s *Service) Recent(ctx context.Context) ([]*Alert, error) {
	alerts, err := s.repo.ListSince(ctx, s.now().Add(-RecencyWindow))
	if err != nil {
		return nil, err
	}
	if alerts == nil {
		alerts = []*Alert{}
	}
	return alerts, nil
}
