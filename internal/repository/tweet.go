package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/shinonome-inc/backend-final-assignment-koya/internal/model"
)

type tweetRepository struct {
	db *sqlx.DB
}

func NewTweetRepository(db *sqlx.DB) TweetRepository {
	return &tweetRepository{db: db}
}

// Create inserts a new tweet attributed to userID.
func (r *tweetRepository) Create(ctx context.Context, userID int64, content string) (*model.Tweet, error) {
	query := `
		INSERT INTO tweets (user_id, content)
		VALUES ($1, $2)
		RETURNING id, user_id, content, created_at
	`
	var t model.Tweet
	err := r.db.GetContext(ctx, &t, query, userID, content)
	if err != nil {
		return nil, fmt.Errorf("insert tweet: %w", err)
	}
	return &t, nil
}

// GetByID retrieves a single tweet with its like count.
func (r *tweetRepository) GetByID(ctx context.Context, tweetID int64) (*model.Tweet, error) {
	query := `
		SELECT t.id, t.user_id, t.content, t.created_at, COUNT(l.id) AS like_count
		FROM tweets t
		LEFT JOIN likes l ON l.tweet_id = t.id
		WHERE t.id = $1
		GROUP BY t.id
	`
	var t model.Tweet
	err := r.db.GetContext(ctx, &t, query, tweetID)
	if err == sql.ErrNoRows {
		return nil, model.ErrTweetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tweet: %w", err)
	}
	return &t, nil
}

// Delete removes a tweet. Only the owner's delete takes effect; when no row
// matched we distinguish "someone else's tweet" from "no such tweet".
func (r *tweetRepository) Delete(ctx context.Context, tweetID, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tweets WHERE id = $1 AND user_id = $2`, tweetID, userID)
	if err != nil {
		return fmt.Errorf("delete tweet: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM tweets WHERE id = $1)`, tweetID); err != nil {
			return fmt.Errorf("check tweet exists: %w", err)
		}
		if exists {
			return model.ErrNotTweetOwner
		}
		return model.ErrTweetNotFound
	}

	return nil
}

// ListByUser returns a user's tweets newest first with like counts aggregated
// in the same query.
func (r *tweetRepository) ListByUser(ctx context.Context, userID int64) ([]model.Tweet, error) {
	query := `
		SELECT t.id, t.user_id, t.content, t.created_at, COUNT(l.id) AS like_count
		FROM tweets t
		LEFT JOIN likes l ON l.tweet_id = t.id
		WHERE t.user_id = $1
		GROUP BY t.id
		ORDER BY t.created_at DESC, t.id DESC
	`
	tweets := []model.Tweet{}
	if err := r.db.SelectContext(ctx, &tweets, query, userID); err != nil {
		return nil, fmt.Errorf("list tweets by user: %w", err)
	}
	return tweets, nil
}

// ListAll returns the home timeline: every tweet, ascending by creation time,
// with author summary and like count.
func (r *tweetRepository) ListAll(ctx context.Context) ([]model.Tweet, error) {
	query := `
		SELECT t.id, t.user_id, t.content, t.created_at,
		       u.username AS author_username,
		       COUNT(l.id) AS like_count
		FROM tweets t
		JOIN users u ON u.id = t.user_id
		LEFT JOIN likes l ON l.tweet_id = t.id
		GROUP BY t.id, u.username
		ORDER BY t.created_at ASC, t.id ASC
	`

	type tweetWithAuthor struct {
		model.Tweet
		AuthorUsername string `db:"author_username"`
	}

	var rows []tweetWithAuthor
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list all tweets: %w", err)
	}

	tweets := make([]model.Tweet, len(rows))
	for i, row := range rows {
		t := row.Tweet
		t.Author = &model.UserSummary{ID: t.UserID, Username: row.AuthorUsername}
		tweets[i] = t
	}
	return tweets, nil
}

// CheckLikes checks which tweets the user has liked.
// Returns a map of tweet_id -> liked (true/false).
func (r *tweetRepository) CheckLikes(ctx context.Context, userID int64, tweetIDs []int64) (map[int64]bool, error) {
	if len(tweetIDs) == 0 {
		return make(map[int64]bool), nil
	}

	query := `SELECT tweet_id FROM likes WHERE user_id = $1 AND tweet_id = ANY($2)`
	var likedIDs []int64
	err := r.db.SelectContext(ctx, &likedIDs, query, userID, pq.Array(tweetIDs))
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("check likes: %w", err)
	}

	result := make(map[int64]bool)
	for _, id := range tweetIDs {
		result[id] = false
	}
	for _, id := range likedIDs {
		result[id] = true
	}

	return result, nil
}

// Like inserts a like record. The (user_id, tweet_id) unique constraint is
// the authority on duplicates; its violation maps to ErrAlreadyLiked.
func (r *tweetRepository) Like(ctx context.Context, tweetID, userID int64) error {
	query := `INSERT INTO likes (user_id, tweet_id) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, userID, tweetID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return model.ErrAlreadyLiked
		}
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

// Unlike deletes a like record. Returns ErrNotLiked if not found.
func (r *tweetRepository) Unlike(ctx context.Context, tweetID, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE user_id = $1 AND tweet_id = $2`, userID, tweetID)
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrNotLiked
	}
	return nil
}

// Exists checks if a tweet exists.
func (r *tweetRepository) Exists(ctx context.Context, tweetID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM tweets WHERE id = $1)`, tweetID)
	if err != nil {
		return false, fmt.Errorf("check tweet exists: %w", err)
	}
	return exists, nil
}
