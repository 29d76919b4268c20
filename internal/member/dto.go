package member

import "time"

// RegisterRequest represents the request body for registering a member
type RegisterRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=100"`
	Mode       string  `json:"mode" validate:"required,oneof=physical remote"`
	TelegramID *string `json:"telegram_id,omitempty"`
}

// MemberResponse represents the response for a single member
type MemberResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Mode     string `json:"mode"`
	JoinedAt string `json:"joined_at"`
}

// ToResponse converts a Member model to a MemberResponse DTO
func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:       m.ID,
		Name:     m.Name,
		Mode:     string(m.Mode),
		JoinedAt: m.JoinedAt.UTC().Format(time.RFC3339),
	}
}
