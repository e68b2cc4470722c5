package model

import (
	"errors"
	"time"
)

// Tweet represents a short text post owned by exactly one user.
type Tweet struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Aggregated/joined fields (not columns of the tweets table)
	LikeCount int          `db:"like_count" json:"like_count"`
	IsLiked   bool         `json:"is_liked"`
	Author    *UserSummary `json:"author,omitempty"`
}

// CreateTweetRequest is the request body for creating a tweet.
type CreateTweetRequest struct {
	Content string `json:"content"`
}

// FeedResponse is the home timeline: every tweet, oldest first.
type FeedResponse struct {
	Tweets []Tweet `json:"tweets"`
}

var (
	ErrTweetNotFound  = errors.New("tweet not found")
	ErrNotTweetOwner  = errors.New("not the owner of this tweet")
	ErrEmptyContent   = errors.New("content must not be empty")
	ErrContentTooLong = errors.New("content too long")

	ErrAlreadyLiked = errors.New("already liked this tweet")
	ErrNotLiked     = errors.New("not liked this tweet")
)
