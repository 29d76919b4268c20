package member

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrTelegramIDTaken = errors.New("member already registered with this Telegram ID")
)

// repository is the persistence surface the service needs
type repository interface {
	Create(ctx context.Context, name string, mode Mode, telegramID *string) (*Member, error)
	GetByID(ctx context.Context, id int64) (*Member, error)
	GetByTelegramID(ctx context.Context, telegramID string) (*Member, error)
	List(ctx context.Context, limit, offset int) ([]*Member, int, error)
	SwitchMode(ctx context.Context, id int64) (*Member, error)
}

// Service handles member business logic
type Service struct {
	repo repository
}

// NewService creates a new member service with repository dependency injected
func NewService(repo repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new member. Names are not unique; the telegram binding is.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*Member, error) {
	if req.TelegramID != nil {
		existing, err := s.repo.GetByTelegramID(ctx, *req.TelegramID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrTelegramIDTaken
		}
	}

	// The unique index backstops the pre-check under concurrent registration
	return s.repo.Create(ctx, req.Name, Mode(req.Mode), req.TelegramID)
}

// GetByID retrieves a member by their ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Member, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// LookupByTelegramID retrieves the member bound to a bot channel id
func (s *Service) LookupByTelegramID(ctx context.Context, telegramID string) (*Member, error) {
	member, err := s.repo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// List retrieves all members with pagination
func (s *Service) List(ctx context.Context, limit, offset int) ([]*Member, int, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

// SwitchMode flips a member between physical and remote
func (s *Service) SwitchMode(ctx context.Context, id int64) (*Member, error) {
	member, err := s.repo.SwitchMode(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}
