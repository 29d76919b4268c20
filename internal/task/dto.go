package task

import "time"

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	RiskLevel   int      `json:"risk_level" validate:"required,min=1,max=3"`
	Location    string   `json:"location" validate:"required,oneof=remote onsite both"`
	SkillTags   []string `json:"skill_tags,omitempty" validate:"omitempty,dive,max=50"`
}

// TaskResponse represents the response for a single task
type TaskResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   *string  `json:"description,omitempty"`
	Category      *string  `json:"category,omitempty"`
	RiskLevel     int      `json:"risk_level"`
	Location      string   `json:"location"`
	SkillTags     []string `json:"skill_tags"`
	Status        string   `json:"status"`
	ClaimedBy     *int64   `json:"claimed_by,omitempty"`
	ClaimedByName *string  `json:"claimed_by_name,omitempty"`
	ClaimedAt     *string  `json:"claimed_at,omitempty"`
	CompletedAt   *string  `json:"completed_at,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

// ToResponse converts a SevaTask model to a TaskResponse DTO
func (t *SevaTask) ToResponse() *TaskResponse {
	resp := &TaskResponse{
		ID:            t.ID.String(),
		Title:         t.Title,
		Description:   t.Description,
		Category:      t.Category,
		RiskLevel:     t.RiskLevel,
		Location:      string(t.Location),
		SkillTags:     t.SkillTags,
		Status:        string(t.Status),
		ClaimedBy:     t.ClaimedBy,
		ClaimedByName: t.ClaimedByName,
		CreatedAt:     t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.SkillTags == nil {
		resp.SkillTags = []string{}
	}
	if t.ClaimedAt != nil {
		s := t.ClaimedAt.UTC().Format(time.RFC3339)
		resp.ClaimedAt = &s
	}
	if t.CompletedAt != nil {
		s := t.CompletedAt.UTC().Format(time.RFC3339)
		resp.CompletedAt = &s
	}
	return resp
}
