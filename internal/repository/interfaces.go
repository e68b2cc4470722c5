package repository

import (
	"context"

	"github.com/shinonome-inc/backend-final-assignment-koya/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type TweetRepository interface {
	Create(ctx context.Context, userID int64, content string) (*model.Tweet, error)
	GetByID(ctx context.Context, tweetID int64) (*model.Tweet, error)
	// Delete removes a tweet owned by userID; its likes go with it via the
	// cascade on likes.tweet_id.
	Delete(ctx context.Context, tweetID, userID int64) error
	// ListByUser returns the user's tweets newest first, each annotated with
	// its like count.
	ListByUser(ctx context.Context, userID int64) ([]model.Tweet, error)
	// ListAll returns every tweet oldest first (the home timeline order),
	// each with author summary and like count.
	ListAll(ctx context.Context) ([]model.Tweet, error)
	// CheckLikes reports which of the given tweets the user has liked.
	CheckLikes(ctx context.Context, userID int64, tweetIDs []int64) (map[int64]bool, error)
	Like(ctx context.Context, tweetID, userID int64) error
	Unlike(ctx context.Context, tweetID, userID int64) error
	Exists(ctx context.Context, tweetID int64) (bool, error)
}

type FriendshipRepository interface {
	// Create inserts a follow edge. Returns false when the edge already
	// existed (resolved by the unique constraint, not a prior read).
	Create(ctx context.Context, followerID, followingID int64) (bool, error)
	Delete(ctx context.Context, followerID, followingID int64) error
	Exists(ctx context.Context, followerID, followingID int64) (bool, error)
	CountFollowing(ctx context.Context, userID int64) (int, error)
	CountFollowers(ctx context.Context, userID int64) (int, error)
	// ListFollowing returns edges where the user is the follower, newest
	// edge first, carrying the followed user's summary.
	ListFollowing(ctx context.Context, userID int64) ([]model.FollowEntry, error)
	// ListFollowers returns edges where the user is followed, newest edge
	// first, carrying the follower's summary.
	ListFollowers(ctx context.Context, userID int64) ([]model.FollowEntry, error)
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	Revoke(ctx context.Context, id string, replacedBy *string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
}
