package task

import (
	"time"

	"github.com/google/uuid"
)

// Status is the task lifecycle state. Transitions only ever move
// open → claimed → complete, except for an explicit release which
// returns a claimed task to open.
type Status string

const (
	StatusOpen     Status = "open"
	StatusClaimed  Status = "claimed"
	StatusComplete Status = "complete"
)

// Location says where a task can be performed
type Location string

const (
	LocationRemote Location = "remote"
	LocationOnsite Location = "onsite"
	LocationBoth   Location = "both"
)

// Risk levels gate who should take a task on
const (
	RiskAnyone   = 1
	RiskSkilled  = 2
	RiskLicensed = 3
)

// SevaTask represents a claimable service task on the board.
// claimed_by is set iff status != open; completed_at is set iff
// status == complete.
type SevaTask struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description,omitempty"`
	Category      *string    `json:"category,omitempty"`
	RiskLevel     int        `json:"risk_level"`
	Location      Location   `json:"location"`
	SkillTags     []string   `json:"skill_tags"`
	Status        Status     `json:"status"`
	ClaimedBy     *int64     `json:"claimed_by,omitempty"`
	ClaimedByName *string    `json:"claimed_by_name,omitempty"`
	ClaimedAt     *time.Time `json:"claimed_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
