package seva

import "time"

// CheckIn represents one timed service session. At most one open record
// (checked_out_at unset) exists per (member_id, seva_type) pair, enforced
// by a partial unique index.
type CheckIn struct {
	ID              int64      `json:"id"`
	MemberID        int64      `json:"member_id"`
	SevaType        string     `json:"seva_type"`
	CheckedInAt     time.Time  `json:"checked_in_at"`
	CheckedOutAt    *time.Time `json:"checked_out_at,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
}

// MemberLine is one member's activity inside a summary group
type MemberLine struct {
	Name            string     `json:"name"`
	CheckedInAt     time.Time  `json:"checked_in_at"`
	CheckedOutAt    *time.Time `json:"checked_out_at,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
}

// TypeSummary aggregates one seva type's activity for a day
type TypeSummary struct {
	Type           string       `json:"type"`
	TotalMinutes   int          `json:"total_minutes"`
	ActiveCount    int          `json:"active_count"`
	CompletedCount int          `json:"completed_count"`
	Members        []MemberLine `json:"members"`
}

// DayActivity is the response shape for today's seva activity
type DayActivity struct {
	Date    string         `json:"date"`
	Records []*CheckIn     `json:"records"`
	Summary []*TypeSummary `json:"summary"`
}
