package feed

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	createPostFn     func(ctx context.Context, memberID int64, postType PostType, content, photoURL, videoURL *string) (*Post, error)
	listFeedFn       func(ctx context.Context, limit, offset int) ([]*FeedItem, error)
	upsertReactionFn func(ctx context.Context, memberID, postID int64, reactionType string) (*Reaction, error)
	deleteReactionFn func(ctx context.Context, memberID, postID int64) error
	createCommentFn  func(ctx context.Context, memberID, postID int64, content string) (*Comment, error)
	listCommentsFn   func(ctx context.Context, postID int64) ([]*Comment, error)
}

func (m *mockRepository) CreatePost(ctx context.Context, memberID int64, postType PostType, content, photoURL, videoURL *string) (*Post, error) {
	return m.createPostFn(ctx, memberID, postType, content, photoURL, videoURL)
}

func (m *mockRepository) ListFeed(ctx context.Context, limit, offset int) ([]*FeedItem, error) {
	return m.listFeedFn(ctx, limit, offset)
}

func (m *mockRepository) UpsertReaction(ctx context.Context, memberID, postID int64, reactionType string) (*Reaction, error) {
	return m.upsertReactionFn(ctx, memberID, postID, reactionType)
}

func (m *mockRepository) DeleteReaction(ctx context.Context, memberID, postID int64) error {
	return m.deleteReactionFn(ctx, memberID, postID)
}

func (m *mockRepository) CreateComment(ctx context.Context, memberID, postID int64, content string) (*Comment, error) {
	return m.createCommentFn(ctx, memberID, postID, content)
}

func (m *mockRepository) ListComments(ctx context.Context, postID int64) ([]*Comment, error) {
	return m.listCommentsFn(ctx, postID)
}

func strPtr(s string) *string { return &s }

func TestCreatePost_Text(t *testing.T) {
	repo := &mockRepository{
		createPostFn: func(_ context.Context, memberID int64, postType PostType, content, photoURL, videoURL *string) (*Post, error) {
			assert.Equal(t, int64(7), memberID)
			assert.Equal(t, PostTypeText, postType)
			require.NotNil(t, content)
			assert.Nil(t, photoURL)
			assert.Nil(t, videoURL)
			return &Post{ID: 1, MemberID: memberID, Type: postType, Content: content,
				CreatedAt: time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)}, nil
		},
	}
	service := NewService(repo)

	post, err := service.CreatePost(context.Background(), 7, &CreatePostRequest{
		Type:    "text",
		Content: strPtr("Morning satsang was beautiful"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), post.ID)
}

func TestCreatePost_Empty(t *testing.T) {
	service := NewService(&mockRepository{})

	_, err := service.CreatePost(context.Background(), 7, &CreatePostRequest{Type: "text"})
	assert.ErrorIs(t, err, ErrEmptyPost)

	_, err = service.CreatePost(context.Background(), 7, &CreatePostRequest{
		Type:    "text",
		Content: strPtr(""),
	})
	assert.ErrorIs(t, err, ErrEmptyPost)
}

func TestReact_DefaultsToHeart(t *testing.T) {
	repo := &mockRepository{
		upsertReactionFn: func(_ context.Context, memberID, postID int64, reactionType string) (*Reaction, error) {
			assert.Equal(t, DefaultReaction, reactionType)
			return &Reaction{ID: 1, MemberID: memberID, PostID: postID, Type: reactionType}, nil
		},
	}
	service := NewService(repo)

	reaction, err := service.React(context.Background(), 7, 1, "")

	require.NoError(t, err)
	assert.Equal(t, "heart", reaction.Type)
}

func TestReact_ExplicitType(t *testing.T) {
	repo := &mockRepository{
		upsertReactionFn: func(_ context.Context, memberID, postID int64, reactionType string) (*Reaction, error) {
			assert.Equal(t, "pranam", reactionType)
			return &Reaction{ID: 1, MemberID: memberID, PostID: postID, Type: reactionType}, nil
		},
	}
	service := NewService(repo)

	_, err := service.React(context.Background(), 7, 1, "pranam")

	require.NoError(t, err)
}

func TestComment_LengthBoundary(t *testing.T) {
	repo := &mockRepository{
		createCommentFn: func(_ context.Context, memberID, postID int64, content string) (*Comment, error) {
			return &Comment{ID: 1, MemberID: memberID, PostID: postID, Content: content}, nil
		},
	}
	service := NewService(repo)

	// Exactly at the limit passes
	_, err := service.Comment(context.Background(), 7, 1, strings.Repeat("a", MaxCommentLength))
	require.NoError(t, err)

	// One over is rejected
	_, err = service.Comment(context.Background(), 7, 1, strings.Repeat("a", MaxCommentLength+1))
	assert.ErrorIs(t, err, ErrCommentTooLong)
}

func TestComment_MultibyteLength(t *testing.T) {
	repo := &mockRepository{
		createCommentFn: func(_ context.Context, memberID, postID int64, content string) (*Comment, error) {
			return &Comment{ID: 1, MemberID: memberID, PostID: postID, Content: content}, nil
		},
	}
	service := NewService(repo)

	// Length is counted in characters, not bytes
	_, err := service.Comment(context.Background(), 7, 1, strings.Repeat("ॐ", MaxCommentLength))
	require.NoError(t, err)

	_, err = service.Comment(context.Background(), 7, 1, strings.Repeat("ॐ", MaxCommentLength+1))
	assert.ErrorIs(t, err, ErrCommentTooLong)
}

func TestComment_Empty(t *testing.T) {
	service := NewService(&mockRepository{})

	_, err := service.Comment(context.Background(), 7, 1, "   ")

	assert.ErrorIs(t, err, ErrEmptyComment)
}

func TestComment_TrimsWhitespace(t *testing.T) {
	repo := &mockRepository{
		createCommentFn: func(_ context.Context, _, _ int64, content string) (*Comment, error) {
			assert.Equal(t, "sadhu sadhu", content)
			return &Comment{ID: 1, Content: content}, nil
		},
	}
	service := NewService(repo)

	_, err := service.Comment(context.Background(), 7, 1, "  sadhu sadhu  ")

	require.NoError(t, err)
}

func TestFeed_ClampsPagination(t *testing.T) {
	repo := &mockRepository{
		listFeedFn: func(_ context.Context, limit, offset int) ([]*FeedItem, error) {
			assert.Equal(t, 20, limit)
			assert.Equal(t, 0, offset)
			return nil, nil
		},
	}
	service := NewService(repo)

	items, err := service.Feed(context.Background(), 500, -3)

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
