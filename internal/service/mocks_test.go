package service

// Hand-written fakes for the repository interfaces. Each test sets only the
// function fields it cares about; unset fields fall back to an empty-state
// default (user missing, no edges, no tweets). Because the services depend
// on interfaces, no database is needed here.

import (
	"context"

	"github.com/shinonome-inc/backend-final-assignment-koya/internal/model"
)

type mockUserRepository struct {
	createFn           func(ctx context.Context, user *model.User) error
	getByIDFn          func(ctx context.Context, id int64) (*model.User, error)
	getByUsernameFn    func(ctx context.Context, username string) (*model.User, error)
	existsByUsernameFn func(ctx context.Context, username string) (bool, error)

	createCalls []*model.User
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	m.createCalls = append(m.createCalls, user)
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameFn != nil {
		return m.existsByUsernameFn(ctx, username)
	}
	return false, nil
}

type mockFriendshipRepository struct {
	createFn         func(ctx context.Context, followerID, followingID int64) (bool, error)
	deleteFn         func(ctx context.Context, followerID, followingID int64) error
	existsFn         func(ctx context.Context, followerID, followingID int64) (bool, error)
	countFollowingFn func(ctx context.Context, userID int64) (int, error)
	countFollowersFn func(ctx context.Context, userID int64) (int, error)
	listFollowingFn  func(ctx context.Context, userID int64) ([]model.FollowEntry, error)
	listFollowersFn  func(ctx context.Context, userID int64) ([]model.FollowEntry, error)

	createCalls int
	deleteCalls int
}

func (m *mockFriendshipRepository) Create(ctx context.Context, followerID, followingID int64) (bool, error) {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, followerID, followingID)
	}
	return true, nil
}

func (m *mockFriendshipRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, followerID, followingID)
	}
	return nil
}

func (m *mockFriendshipRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, followerID, followingID)
	}
	return false, nil
}

func (m *mockFriendshipRepository) CountFollowing(ctx context.Context, userID int64) (int, error) {
	if m.countFollowingFn != nil {
		return m.countFollowingFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockFriendshipRepository) CountFollowers(ctx context.Context, userID int64) (int, error) {
	if m.countFollowersFn != nil {
		return m.countFollowersFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockFriendshipRepository) ListFollowing(ctx context.Context, userID int64) ([]model.FollowEntry, error) {
	if m.listFollowingFn != nil {
		return m.listFollowingFn(ctx, userID)
	}
	return []model.FollowEntry{}, nil
}

func (m *mockFriendshipRepository) ListFollowers(ctx context.Context, userID int64) ([]model.FollowEntry, error) {
	if m.listFollowersFn != nil {
		return m.listFollowersFn(ctx, userID)
	}
	return []model.FollowEntry{}, nil
}

type mockTweetRepository struct {
	createFn     func(ctx context.Context, userID int64, content string) (*model.Tweet, error)
	getByIDFn    func(ctx context.Context, tweetID int64) (*model.Tweet, error)
	deleteFn     func(ctx context.Context, tweetID, userID int64) error
	listByUserFn func(ctx context.Context, userID int64) ([]model.Tweet, error)
	listAllFn    func(ctx context.Context) ([]model.Tweet, error)
	checkLikesFn func(ctx context.Context, userID int64, tweetIDs []int64) (map[int64]bool, error)
	likeFn       func(ctx context.Context, tweetID, userID int64) error
	unlikeFn     func(ctx context.Context, tweetID, userID int64) error
	existsFn     func(ctx context.Context, tweetID int64) (bool, error)

	likeCalls   int
	unlikeCalls int
}

func (m *mockTweetRepository) Create(ctx context.Context, userID int64, content string) (*model.Tweet, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, content)
	}
	return &model.Tweet{ID: 1, UserID: userID, Content: content}, nil
}

func (m *mockTweetRepository) GetByID(ctx context.Context, tweetID int64) (*model.Tweet, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, tweetID)
	}
	return nil, model.ErrTweetNotFound
}

func (m *mockTweetRepository) Delete(ctx context.Context, tweetID, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, tweetID, userID)
	}
	return model.ErrTweetNotFound
}

func (m *mockTweetRepository) ListByUser(ctx context.Context, userID int64) ([]model.Tweet, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return []model.Tweet{}, nil
}

func (m *mockTweetRepository) ListAll(ctx context.Context) ([]model.Tweet, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return []model.Tweet{}, nil
}

func (m *mockTweetRepository) CheckLikes(ctx context.Context, userID int64, tweetIDs []int64) (map[int64]bool, error) {
	if m.checkLikesFn != nil {
		return m.checkLikesFn(ctx, userID, tweetIDs)
	}
	result := make(map[int64]bool, len(tweetIDs))
	for _, id := range tweetIDs {
		result[id] = false
	}
	return result, nil
}

func (m *mockTweetRepository) Like(ctx context.Context, tweetID, userID int64) error {
	m.likeCalls++
	if m.likeFn != nil {
		return m.likeFn(ctx, tweetID, userID)
	}
	return nil
}

func (m *mockTweetRepository) Unlike(ctx context.Context, tweetID, userID int64) error {
	m.unlikeCalls++
	if m.unlikeFn != nil {
		return m.unlikeFn(ctx, tweetID, userID)
	}
	return model.ErrNotLiked
}

func (m *mockTweetRepository) Exists(ctx context.Context, tweetID int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, tweetID)
	}
	return false, nil
}
