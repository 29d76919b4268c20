package alert

import "time"

// Alert types produced by the bot and web surfaces
const (
	TypeSatsang      = "satsang"
	TypeFoodPrayer   = "food_prayer"
	TypeAnnouncement = "announcement"
)

// Alert is a short-lived notice surfaced to all clients. Rows are
// append-only; freshness is a read-side recency window, not an expiry
// column.
type Alert struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	TriggeredBy *int64    `json:"triggered_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
