package member

import "time"

// Mode says whether a member is physically at the ashram or joining remotely
type Mode string

const (
	ModePhysical Mode = "physical"
	ModeRemote   Mode = "remote"
)

// Member represents a registered Hamsa in the sangha
type Member struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Mode       Mode      `json:"mode"`
	TelegramID *string   `json:"telegram_id,omitempty"`
	JoinedAt   time.Time `json:"joined_at"`
}
