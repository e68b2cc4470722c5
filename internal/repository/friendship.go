package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/shinonome-inc/backend-final-assignment-koya/internal/model"
)

type friendshipRepository struct {
	db *sqlx.DB
}

func NewFriendshipRepository(db *sqlx.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

// Create inserts a follow edge. ON CONFLICT DO NOTHING makes the uniqueness
// decision atomic: concurrent duplicate follows resolve to exactly one row,
// and the loser sees inserted=false.
func (r *friendshipRepository) Create(ctx context.Context, followerID, followingID int64) (bool, error) {
	query := `
		INSERT INTO friendships (follower_id, following_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, following_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return false, fmt.Errorf("failed to create friendship: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// Delete removes a follow edge; zero rows affected means there was nothing
// to unfollow.
func (r *friendshipRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	query := `DELETE FROM friendships WHERE follower_id = $1 AND following_id = $2`
	result, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("failed to delete friendship: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrNotFollowing
	}

	return nil
}

func (r *friendshipRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM friendships WHERE follower_id = $1 AND following_id = $2)`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, followerID, followingID)
	if err != nil {
		return false, fmt.Errorf("failed to check friendship existence: %w", err)
	}
	return exists, nil
}

// CountFollowing counts edges where the user is the follower.
func (r *friendshipRepository) CountFollowing(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM friendships WHERE follower_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count following: %w", err)
	}
	return count, nil
}

// CountFollowers counts edges where the user is followed.
func (r *friendshipRepository) CountFollowers(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM friendships WHERE following_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}
	return count, nil
}

// ListFollowing retrieves the users the given user follows, most recent
// friendship first.
func (r *friendshipRepository) ListFollowing(ctx context.Context, userID int64) ([]model.FollowEntry, error) {
	query := `
		SELECT u.id, u.username, f.created_at
		FROM friendships f
		JOIN users u ON u.id = f.following_id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC, f.id DESC
	`
	return r.listEntries(ctx, query, userID, "list following")
}

// ListFollowers retrieves the users following the given user, most recent
// friendship first.
func (r *friendshipRepository) ListFollowers(ctx context.Context, userID int64) ([]model.FollowEntry, error) {
	query := `
		SELECT u.id, u.username, f.created_at
		FROM friendships f
		JOIN users u ON u.id = f.follower_id
		WHERE f.following_id = $1
		ORDER BY f.created_at DESC, f.id DESC
	`
	return r.listEntries(ctx, query, userID, "list followers")
}

func (r *friendshipRepository) listEntries(ctx context.Context, query string, userID int64, op string) ([]model.FollowEntry, error) {
	type userWithTime struct {
		model.UserSummary
		CreatedAt time.Time `db:"created_at"`
	}

	var rows []userWithTime
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	entries := make([]model.FollowEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, model.FollowEntry{
			User:       row.UserSummary,
			FollowedAt: row.CreatedAt,
		})
	}
	return entries, nil
}
