package handler

// Repository fakes for handler tests. Handlers are exercised through real
// services over these fakes, mounted on a chi router the way production
// wiring does it, so the tests cover URL params, status mapping, and the
// JSON envelope.

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/shinonome-inc/backend-final-assignment-koya/internal/model"
	"github.com/shinonome-inc/backend-final-assignment-koya/internal/transport/http/middleware"
)

type fakeUserRepo struct {
	createFn           func(ctx context.Context, user *model.User) error
	getByIDFn          func(ctx context.Context, id int64) (*model.User, error)
	getByUsernameFn    func(ctx context.Context, username string) (*model.User, error)
	existsByUsernameFn func(ctx context.Context, username string) (bool, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	user.ID = 1
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if f.getByUsernameFn != nil {
		return f.getByUsernameFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if f.existsByUsernameFn != nil {
		return f.existsByUsernameFn(ctx, username)
	}
	return false, nil
}

type fakeFriendshipRepo struct {
	createFn         func(ctx context.Context, followerID, followingID int64) (bool, error)
	deleteFn         func(ctx context.Context, followerID, followingID int64) error
	existsFn         func(ctx context.Context, followerID, followingID int64) (bool, error)
	countFollowingFn func(ctx context.Context, userID int64) (int, error)
	countFollowersFn func(ctx context.Context, userID int64) (int, error)
	listFollowingFn  func(ctx context.Context, userID int64) ([]model.FollowEntry, error)
	listFollowersFn  func(ctx context.Context, userID int64) ([]model.FollowEntry, error)
}

func (f *fakeFriendshipRepo) Create(ctx context.Context, followerID, followingID int64) (bool, error) {
	if f.createFn != nil {
		return f.createFn(ctx, followerID, followingID)
	}
	return true, nil
}

func (f *fakeFriendshipRepo) Delete(ctx context.Context, followerID, followingID int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, followerID, followingID)
	}
	return nil
}

func (f *fakeFriendshipRepo) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	if f.existsFn != nil {
		return f.existsFn(ctx, followerID, followingID)
	}
	return false, nil
}

func (f *fakeFriendshipRepo) CountFollowing(ctx context.Context, userID int64) (int, error) {
	if f.countFollowingFn != nil {
		return f.countFollowingFn(ctx, userID)
	}
	return 0, nil
}

func (f *fakeFriendshipRepo) CountFollowers(ctx context.Context, userID int64) (int, error) {
	if f.countFollowersFn != nil {
		return f.countFollowersFn(ctx, userID)
	}
	return 0, nil
}

func (f *fakeFriendshipRepo) ListFollowing(ctx context.Context, userID int64) ([]model.FollowEntry, error) {
	if f.listFollowingFn != nil {
		return f.listFollowingFn(ctx, userID)
	}
	return []model.FollowEntry{}, nil
}

func (f *fakeFriendshipRepo) ListFollowers(ctx context.Context, userID int64) ([]model.FollowEntry, error) {
	if f.listFollowersFn != nil {
		return f.listFollowersFn(ctx, userID)
	}
	return []model.FollowEntry{}, nil
}

type fakeTweetRepo struct {
	createFn     func(ctx context.Context, userID int64, content string) (*model.Tweet, error)
	getByIDFn    func(ctx context.Context, tweetID int64) (*model.Tweet, error)
	deleteFn     func(ctx context.Context, tweetID, userID int64) error
	listByUserFn func(ctx context.Context, userID int64) ([]model.Tweet, error)
	listAllFn    func(ctx context.Context) ([]model.Tweet, error)
	checkLikesFn func(ctx context.Context, userID int64, tweetIDs []int64) (map[int64]bool, error)
	likeFn       func(ctx context.Context, tweetID, userID int64) error
	unlikeFn     func(ctx context.Context, tweetID, userID int64) error
	existsFn     func(ctx context.Context, tweetID int64) (bool, error)
}

func (f *fakeTweetRepo) Create(ctx context.Context, userID int64, content string) (*model.Tweet, error) {
	if f.createFn != nil {
		return f.createFn(ctx, userID, content)
	}
	return &model.Tweet{ID: 1, UserID: userID, Content: content}, nil
}

func (f *fakeTweetRepo) GetByID(ctx context.Context, tweetID int64) (*model.Tweet, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, tweetID)
	}
	return nil, model.ErrTweetNotFound
}

func (f *fakeTweetRepo) Delete(ctx context.Context, tweetID, userID int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, tweetID, userID)
	}
	return model.ErrTweetNotFound
}

func (f *fakeTweetRepo) ListByUser(ctx context.Context, userID int64) ([]model.Tweet, error) {
	if f.listByUserFn != nil {
		return f.listByUserFn(ctx, userID)
	}
	return []model.Tweet{}, nil
}

func (f *fakeTweetRepo) ListAll(ctx context.Context) ([]model.Tweet, error) {
	if f.listAllFn != nil {
		return f.listAllFn(ctx)
	}
	return []model.Tweet{}, nil
}

func (f *fakeTweetRepo) CheckLikes(ctx context.Context, userID int64, tweetIDs []int64) (map[int64]bool, error) {
	if f.checkLikesFn != nil {
		return f.checkLikesFn(ctx, userID, tweetIDs)
	}
	result := make(map[int64]bool, len(tweetIDs))
	for _, id := range tweetIDs {
		result[id] = false
	}
	return result, nil
}

func (f *fakeTweetRepo) Like(ctx context.Context, tweetID, userID int64) error {
	if f.likeFn != nil {
		return f.likeFn(ctx, tweetID, userID)
	}
	return nil
}

func (f *fakeTweetRepo) Unlike(ctx context.Context, tweetID, userID int64) error {
	if f.unlikeFn != nil {
		return f.unlikeFn(ctx, tweetID, userID)
	}
	return model.ErrNotLiked
}

func (f *fakeTweetRepo) Exists(ctx context.Context, tweetID int64) (bool, error) {
	if f.existsFn != nil {
		return f.existsFn(ctx, tweetID)
	}
	return false, nil
}

type fakeRefreshTokenRepo struct {
	createFn          func(ctx context.Context, token *model.RefreshToken) error
	findByTokenHashFn func(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	revokeFn          func(ctx context.Context, id string, replacedBy *string) error
	revokeAllFn       func(ctx context.Context, userID int64) error
}

func (f *fakeRefreshTokenRepo) Create(ctx context.Context, token *model.RefreshToken) error {
	if f.createFn != nil {
		return f.createFn(ctx, token)
	}
	token.ID = "token-1"
	return nil
}

func (f *fakeRefreshTokenRepo) FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	if f.findByTokenHashFn != nil {
		return f.findByTokenHashFn(ctx, tokenHash)
	}
	return nil, model.ErrRefreshTokenNotFound
}

func (f *fakeRefreshTokenRepo) Revoke(ctx context.Context, id string, replacedBy *string) error {
	if f.revokeFn != nil {
		return f.revokeFn(ctx, id, replacedBy)
	}
	return nil
}

func (f *fakeRefreshTokenRepo) RevokeAllForUser(ctx context.Context, userID int64) error {
	if f.revokeAllFn != nil {
		return f.revokeAllFn(ctx, userID)
	}
	return nil
}

// asUser injects the authenticated user ID the way AuthMiddleware would.
func asUser(userID int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// doRequest mounts the router and performs the request, returning the recorder.
func doRequest(router chi.Router, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
