package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/shinonome-inc/backend-final-assignment-koya/internal/model"
	"github.com/shinonome-inc/backend-final-assignment-koya/internal/repository"
)

// UserService handles business logic for user accounts and the profile
// projection.
type UserService struct {
	repo           repository.UserRepository
	friendshipRepo repository.FriendshipRepository
	tweetRepo      repository.TweetRepository
}

func NewUserService(
	repo repository.UserRepository,
	friendshipRepo repository.FriendshipRepository,
	tweetRepo repository.TweetRepository,
) *UserService {
	return &UserService{
		repo:           repo,
		friendshipRepo: friendshipRepo,
		tweetRepo:      tweetRepo,
	}
}

// Register creates a new user account. Each required field gets its own
// validation error so the caller can surface per-field messages.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, &model.ValidationError{Field: "username", Message: "username is required"}
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, &model.ValidationError{Field: "email", Message: "email is required"}
	}
	if req.Password == "" {
		return nil, &model.ValidationError{Field: "password", Message: "password is required"}
	}

	// Check if username already exists. The unique index on users.username is
	// the real guard; a concurrent duplicate surfaces as the same error from
	// repo.Create.
	exists, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, model.ErrUsernameExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:       req.Username,
		Email:          req.Email,
		PasswordHashed: string(hashedPassword),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if err == model.ErrUsernameExists {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user with username and password. Every failure mode
// collapses into ErrInvalidCredentials so the response never reveals whether
// the username or the password was wrong.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte(req.Password))
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByUsername retrieves a user by username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// Profile builds the profile page projection for profileUsername as seen by
// viewerID: the profile user's tweets annotated with like counts and a
// liked-by-viewer flag, follow counts computed from friendship rows, and the
// set of users the viewer follows.
func (s *UserService) Profile(ctx context.Context, viewerID int64, profileUsername string) (*model.ProfileResponse, error) {
	profileUser, err := s.repo.GetByUsername(ctx, profileUsername)
	if err != nil {
		return nil, err
	}

	tweets, err := s.tweetRepo.ListByUser(ctx, profileUser.ID)
	if err != nil {
		return nil, fmt.Errorf("list profile tweets: %w", err)
	}

	author := model.UserSummary{ID: profileUser.ID, Username: profileUser.Username}
	tweetIDs := make([]int64, len(tweets))
	for i := range tweets {
		tweets[i].Author = &author
		tweetIDs[i] = tweets[i].ID
	}

	// Single batch query for the viewer's liked set (membership test per
	// tweet, not N+1 lookups).
	likeMap, err := s.tweetRepo.CheckLikes(ctx, viewerID, tweetIDs)
	if err != nil {
		return nil, fmt.Errorf("check viewer likes: %w", err)
	}
	for i := range tweets {
		tweets[i].IsLiked = likeMap[tweets[i].ID]
	}

	followingNumber, err := s.friendshipRepo.CountFollowing(ctx, profileUser.ID)
	if err != nil {
		return nil, fmt.Errorf("count following: %w", err)
	}

	followerNumber, err := s.friendshipRepo.CountFollowers(ctx, profileUser.ID)
	if err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}

	viewerFollowingEntries, err := s.friendshipRepo.ListFollowing(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("list viewer following: %w", err)
	}

	viewerFollowing := make([]model.UserSummary, len(viewerFollowingEntries))
	for i, entry := range viewerFollowingEntries {
		viewerFollowing[i] = entry.User
	}

	isFollowing, err := s.friendshipRepo.Exists(ctx, viewerID, profileUser.ID)
	if err != nil {
		return nil, fmt.Errorf("check following: %w", err)
	}

	return &model.ProfileResponse{
		User:            profileUser,
		Tweets:          tweets,
		FollowingNumber: followingNumber,
		FollowerNumber:  followerNumber,
		ViewerFollowing: viewerFollowing,
		IsFollowing:     isFollowing,
	}, nil
}
