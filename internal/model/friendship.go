package model

import (
	"errors"
	"time"
)

// FollowEntry is one row of a follower/following list: the counterpart user
// plus when the edge was created.
type FollowEntry struct {
	User       UserSummary `json:"user"`
	FollowedAt time.Time   `json:"followed_at"`
}

// FollowListResponse wraps an ordered follower or following list.
type FollowListResponse struct {
	Users []FollowEntry `json:"users"`
}

var (
	ErrAlreadyFollowing   = errors.New("already following this user")
	ErrNotFollowing       = errors.New("not following this user")
	ErrCannotFollowSelf   = errors.New("cannot follow yourself")
	ErrCannotUnfollowSelf = errors.New("cannot unfollow yourself")
)
