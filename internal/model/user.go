package model

import (
	"errors"
	"time"
)

// User represents a registered account. Identity is immutable after signup;
// there is no profile-edit flow.
type User struct {
	ID             int64     `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	Email          string    `db:"email" json:"email"`
	PasswordHashed string    `db:"password_hashed" json:"-"` // "-" hides from JSON output
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// UserSummary is the lightweight projection used in follow lists and tweet
// author fields.
type UserSummary struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
}

// RegisterRequest represents the data needed to sign up
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the data needed to log in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileResponse is the view-ready projection of a profile page: the profile
// user's tweets annotated with like data, follow counts, and the set of users
// the viewer follows (for rendering follow/unfollow affordances).
type ProfileResponse struct {
	User            *User         `json:"user"`
	Tweets          []Tweet       `json:"tweets"`
	FollowingNumber int           `json:"following_number"`
	FollowerNumber  int           `json:"follower_number"`
	ViewerFollowing []UserSummary `json:"viewer_following"`
	IsFollowing     bool          `json:"is_following"`
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameExists is returned when attempting to create a user with a taken username
	ErrUsernameExists = errors.New("username already exists")

	// ErrInvalidCredentials is returned when login credentials are incorrect
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a missing or malformed signup field. Field names the
// offending form field so the caller can surface a per-field message.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
