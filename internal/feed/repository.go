package feed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// Repository handles feed data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new feed repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreatePost appends a new post to the feed
func (r *Repository) CreatePost(ctx context.Context, memberID int64, postType PostType, content, photoURL, videoURL *string) (*Post, error) {
	query := `
		INSERT INTO ashram_posts (member_id, type, content, photo_url, video_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, member_id, type, content, photo_url, video_url, created_at
	`

	post := &Post{}
	err := r.db.QueryRowContext(ctx, query, memberID, postType, content, photoURL, videoURL).Scan(
		&post.ID,
		&post.MemberID,
		&post.Type,
		&post.Content,
		&post.PhotoURL,
		&post.VideoURL,
		&post.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// ListFeed retrieves posts newest-first with author info and engagement
// counts in a single query
func (r *Repository) ListFeed(ctx context.Context, limit, offset int) ([]*FeedItem, error) {
	query := `
		SELECT p.id, p.member_id, p.type, p.content, p.photo_url, p.video_url, p.created_at,
		       m.id, m.name, m.mode,
		       (SELECT COUNT(*) FROM ashram_reactions x WHERE x.post_id = p.id) AS reaction_count,
		       (SELECT COUNT(*) FROM ashram_comments c WHERE c.post_id = p.id) AS comment_count
		FROM ashram_posts p
		JOIN ashram_members m ON m.id = p.member_id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed: %w", err)
	}
	defer rows.Close()

	var items []*FeedItem
	for rows.Next() {
		item := &FeedItem{}
		if err := rows.Scan(
			&item.ID,
			&item.MemberID,
			&item.Type,
			&item.Content,
			&item.PhotoURL,
			&item.VideoURL,
			&item.CreatedAt,
			&item.Member.ID,
			&item.Member.Name,
			&item.Member.Mode,
			&item.ReactionCount,
			&item.CommentCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan feed item: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

// UpsertReaction records a member's stance on a post. The unique constraint
// on (member_id, post_id) makes a repeat reaction replace the prior one.
func (r *Repository) UpsertReaction(ctx context.Context, memberID, postID int64, reactionType string) (*Reaction, error) {
	query := `
		INSERT INTO ashram_reactions (member_id, post_id, type)
		VALUES ($1, $2, $3)
		ON CONFLICT (member_id, post_id)
		DO UPDATE SET type = EXCLUDED.type, created_at = NOW()
		RETURNING id, member_id, post_id, type, created_at
	`

	reaction := &Reaction{}
	err := r.db.QueryRowContext(ctx, query, memberID, postID, reactionType).Scan(
		&reaction.ID,
		&reaction.MemberID,
		&reaction.PostID,
		&reaction.Type,
		&reaction.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to save reaction: %w", err)
	}

	return reaction, nil
}

// DeleteReaction removes a member's reaction from a post
func (r *Repository) DeleteReaction(ctx context.Context, memberID, postID int64) error {
	query := `DELETE FROM ashram_reactions WHERE member_id = $1 AND post_id = $2`

	if _, err := r.db.ExecContext(ctx, query, memberID, postID); err != nil {
		return fmt.Errorf("failed to remove reaction: %w", err)
	}
	return nil
}

// CreateComment appends a comment to a post
func (r *Repository) CreateComment(ctx context.Context, memberID, postID int64, content string) (*Comment, error) {
	query := `
		INSERT INTO ashram_comments (member_id, post_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, member_id, post_id, content, created_at
	`

	comment := &Comment{}
	err := r.db.QueryRowContext(ctx, query, memberID, postID, content).Scan(
		&comment.ID,
		&comment.MemberID,
		&comment.PostID,
		&comment.Content,
		&comment.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return comment, nil
}

// ListComments retrieves a post's comments oldest-first with member names
func (r *Repository) ListComments(ctx context.Context, postID int64) ([]*Comment, error) {
	query := `
		SELECT c.id, c.member_id, c.post_id, c.content, m.name, c.created_at
		FROM ashram_comments c
		JOIN ashram_members m ON m.id = c.member_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*Comment
	for rows.Next() {
		comment := &Comment{}
		if err := rows.Scan(
			&comment.ID,
			&comment.MemberID,
			&comment.PostID,
			&comment.Content,
			&comment.MemberName,
			&comment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}

	return comments, nil
}

// isForeignKeyViolation reports whether err is a Postgres FK constraint error
func isForeignKeyViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23503"
	}
	return false
}
