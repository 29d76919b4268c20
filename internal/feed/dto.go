package feed

// CreatePostRequest represents the request body for creating a post.
// At least one of content, photo_url, or video_url must be set.
type CreatePostRequest struct {
	Type     string  `json:"type" validate:"required,oneof=text photo video broadcast"`
	Content  *string `json:"content,omitempty" validate:"omitempty,max=4000"`
	PhotoURL *string `json:"photo_url,omitempty" validate:"omitempty,url"`
	VideoURL *string `json:"video_url,omitempty" validate:"omitempty,url"`
}

// HasBody reports whether the request carries any content at all
func (r *CreatePostRequest) HasBody() bool {
	nonEmpty := func(s *string) bool { return s != nil && *s != "" }
	return nonEmpty(r.Content) || nonEmpty(r.PhotoURL) || nonEmpty(r.VideoURL)
}

// ReactRequest represents the request body for adding or removing a reaction
type ReactRequest struct {
	MemberID int64  `json:"member_id" validate:"required"`
	PostID   int64  `json:"post_id" validate:"required"`
	Type     string `json:"type,omitempty" validate:"omitempty,max=30"`
}

// CommentRequest represents the request body for commenting on a post
type CommentRequest struct {
	MemberID int64  `json:"member_id" validate:"required"`
	PostID   int64  `json:"post_id" validate:"required"`
	Content  string `json:"content" validate:"required,min=1,max=2000"`
}
