package feed

import (
	"context"
	"errors"
	"strings"
)

// Common errors
var (
	ErrPostNotFound   = errors.New("post not found")
	ErrMemberNotFound = errors.New("member not found")
	ErrEmptyPost      = errors.New("post needs content, a photo, or a video")
	ErrCommentTooLong = errors.New("comment too long (max 2000 chars)")
	ErrEmptyComment   = errors.New("comment cannot be empty")
)

// DefaultReaction is used when a reaction arrives without an explicit type
const DefaultReaction = "heart"

// MaxCommentLength bounds comment bodies
const MaxCommentLength = 2000

// repository is the persistence surface the service needs
type repository interface {
	CreatePost(ctx context.Context, memberID int64, postType PostType, content, photoURL, videoURL *string) (*Post, error)
	ListFeed(ctx context.Context, limit, offset int) ([]*FeedItem, error)
	UpsertReaction(ctx context.Context, memberID, postID int64, reactionType string) (*Reaction, error)
	DeleteReaction(ctx context.Context, memberID, postID int64) error
	CreateComment(ctx context.Context, memberID, postID int64, content string) (*Comment, error)
	ListComments(ctx context.Context, postID int64) ([]*Comment, error)
}

// Service handles community feed business logic
type Service struct {
	repo repository
}

// NewService creates a new feed service with repository dependency injected
func NewService(repo repository) *Service {
	return &Service{repo: repo}
}

// CreatePost appends a post; it must carry content, a photo, or a video
func (s *Service) CreatePost(ctx context.Context, memberID int64, req *CreatePostRequest) (*Post, error) {
	if !req.HasBody() {
		return nil, ErrEmptyPost
	}
	return s.repo.CreatePost(ctx, memberID, PostType(req.Type), req.Content, req.PhotoURL, req.VideoURL)
}

// Feed returns posts newest-first with author info and engagement counts
func (s *Service) Feed(ctx context.Context, limit, offset int) ([]*FeedItem, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	items, err := s.repo.ListFeed(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*FeedItem{}
	}
	return items, nil
}

// React records one stance per member per post; a repeat call with a
// different type replaces the earlier reaction
func (s *Service) React(ctx context.Context, memberID, postID int64, reactionType string) (*Reaction, error) {
	if reactionType == "" {
		reactionType = DefaultReaction
	}
	return s.repo.UpsertReaction(ctx, memberID, postID, reactionType)
}

// RemoveReaction deletes a member's reaction from a post
func (s *Service) RemoveReaction(ctx context.Context, memberID, postID int64) error {
	return s.repo.DeleteReaction(ctx, memberID, postID)
}

// Comment appends a length-bounded comment to a post
func (s *Service) Comment(ctx context.Context, memberID, postID int64, content string) (*Comment, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrEmptyComment
	}
	if len([]rune(content)) > MaxCommentLength {
		return nil, ErrCommentTooLong
	}
	return s.repo.CreateComment(ctx, memberID, postID, trimmed)
}

// Comments returns a post's comments oldest-first
func (s *Service) Comments(ctx context.Context, postID int64) ([]*Comment, error) {
	comments, err := s.repo.ListComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*Comment{}
	}
	return comments, nil
}
