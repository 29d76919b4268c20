package feed

import "time"

// PostType classifies a feed entry
type PostType string

const (
	PostTypeText      PostType = "text"
	PostTypePhoto     PostType = "photo"
	PostTypeVideo     PostType = "video"
	PostTypeBroadcast PostType = "broadcast"
)

// Post is one append-only entry in the community feed
type Post struct {
	ID        int64     `json:"id"`
	MemberID  int64     `json:"member_id"`
	Type      PostType  `json:"type"`
	Content   *string   `json:"content,omitempty"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	VideoURL  *string   `json:"video_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PostAuthor is the member info embedded in feed items
type PostAuthor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Mode string `json:"mode"`
}

// FeedItem is a post enriched with its author and engagement counts
type FeedItem struct {
	Post
	Member        PostAuthor `json:"member"`
	ReactionCount int        `json:"reaction_count"`
	CommentCount  int        `json:"comment_count"`
}

// Reaction is a member's single stance on a post; a later reaction with a
// different type replaces the prior one rather than accumulating
type Reaction struct {
	ID        int64     `json:"id"`
	MemberID  int64     `json:"member_id"`
	PostID    int64     `json:"post_id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is one append-only reply on a post
type Comment struct {
	ID         int64     `json:"id"`
	MemberID   int64     `json:"member_id"`
	PostID     int64     `json:"post_id"`
	Content    string    `json:"content"`
	MemberName string    `json:"member_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
