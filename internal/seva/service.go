package seva

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Common errors
var (
	ErrUnknownType      = errors.New("unknown seva type")
	ErrAlreadyCheckedIn = errors.New("already checked in to this seva")
	ErrNoActiveCheckIn  = errors.New("no active check-in for this seva")
)

// repository is the persistence surface the service needs
type repository interface {
	Insert(ctx context.Context, memberID int64, sevaType string) (*CheckIn, error)
	GetOpen(ctx context.Context, memberID int64, sevaType string) (*CheckIn, error)
	Close(ctx context.Context, id int64, checkedOutAt time.Time, durationMinutes int) (*CheckIn, error)
	History(ctx context.Context, memberID int64, limit int) ([]*CheckIn, error)
	ListSince(ctx context.Context, since time.Time) ([]*CheckIn, []string, error)
}

// Service handles seva check-in business logic
type Service struct {
	repo repository
	now  func() time.Time
}

// NewService creates a new seva service with repository dependency injected
func NewService(repo repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// CheckIn opens a timed service session for a (member, type) pair.
// The partial unique index is the authority on double check-ins.
func (s *Service) CheckIn(ctx context.Context, memberID int64, sevaType string) (*CheckIn, error) {
	if TypeByID(sevaType) == nil {
		return nil, ErrUnknownType
	}
	return s.repo.Insert(ctx, memberID, sevaType)
}

// CheckOut closes the open session for a (member, type) pair, deriving the
// duration from the recorded check-in time, rounded to the nearest minute.
func (s *Service) CheckOut(ctx context.Context, memberID int64, sevaType string) (*CheckIn, error) {
	if TypeByID(sevaType) == nil {
		return nil, ErrUnknownType
	}

	open, err := s.repo.GetOpen(ctx, memberID, sevaType)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, ErrNoActiveCheckIn
	}

	now := s.now()
	duration := DurationMinutes(open.CheckedInAt, now)

	// The IS NULL guard on the update, not the read above, decides whether
	// this checkout applies
	closed, err := s.repo.Close(ctx, open.ID, now, duration)
	if err != nil {
		return nil, err
	}
	if closed == nil {
		return nil, ErrNoActiveCheckIn
	}
	return closed, nil
}

// History returns a member's check-ins, most recent first
func (s *Service) History(ctx context.Context, memberID int64, limit int) ([]*CheckIn, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return s.repo.History(ctx, memberID, limit)
}

// TodayActivity returns all of today's check-ins grouped by seva type with
// per-type totals
func (s *Service) TodayActivity(ctx context.Context) (*DayActivity, error) {
	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	records, names, err := s.repo.ListSince(ctx, dayStart)
	if err != nil {
		return nil, err
	}

	byType := make(map[string]*TypeSummary)
	var order []string
	for i, rec := range records {
		group, ok := byType[rec.SevaType]
		if !ok {
			group = &TypeSummary{Type: rec.SevaType, Members: []MemberLine{}}
			byType[rec.SevaType] = group
			order = append(order, rec.SevaType)
		}
		if rec.CheckedOutAt != nil {
			group.CompletedCount++
			if rec.DurationMinutes != nil {
				group.TotalMinutes += *rec.DurationMinutes
			}
		} else {
			group.ActiveCount++
		}
		group.Members = append(group.Members, MemberLine{
			Name:            names[i],
			CheckedInAt:     rec.CheckedInAt,
			CheckedOutAt:    rec.CheckedOutAt,
			DurationMinutes: rec.DurationMinutes,
		})
	}

	summary := make([]*TypeSummary, 0, len(order))
	for _, t := range order {
		summary = append(summary, byType[t])
	}

	if records == nil {
		records = []*CheckIn{}
	}

	return &DayActivity{
		Date:    dayStart.Format("2006-01-02"),
		Records: records,
		Summary: summary,
	}, nil
}

// DurationMinutes rounds a session length to the nearest whole minute
func DurationMinutes(in, out time.Time) int {
	return int(out.Sub(in).Round(time.Minute) / time.Minute)
}

// FormatDuration renders minutes as "45m" or "2h 15m"
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h := minutes / 60
	m := minutes % 60
	if m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
}
