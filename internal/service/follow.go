package service

import (
	"context"
	"log"

	"github.com/shinonome-inc/backend-final-assignment-koya/internal/model"
	"github.com/shinonome-inc/backend-final-assignment-koya/internal/repository"
)

type FollowService struct {
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
}

func NewFollowService(
	friendshipRepo repository.FriendshipRepository,
	userRepo repository.UserRepository,
) *FollowService {
	return &FollowService{
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
	}
}

// Follow creates a friendship from followerID to the user named
// targetUsername. Duplicate detection rides on the unique constraint: an
// insert that affects zero rows means the edge already existed, so concurrent
// duplicate submissions cannot create two edges.
func (s *FollowService) Follow(ctx context.Context, followerID int64, targetUsername string) error {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}

	if target.ID == followerID {
		return model.ErrCannotFollowSelf
	}

	inserted, err := s.friendshipRepo.Create(ctx, followerID, target.ID)
	if err != nil {
		return err
	}
	if !inserted {
		return model.ErrAlreadyFollowing
	}

	log.Printf("[FollowService] User %d followed user %d", followerID, target.ID)
	return nil
}

// Unfollow removes the friendship from followerID to targetUsername.
// Self-unfollow is reported with its own sentinel: unlike self-follow it is
// surfaced as a success-shaped response upstream, mirroring the original
// product behavior.
func (s *FollowService) Unfollow(ctx context.Context, followerID int64, targetUsername string) error {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}

	if target.ID == followerID {
		return model.ErrCannotUnfollowSelf
	}

	if err := s.friendshipRepo.Delete(ctx, followerID, target.ID); err != nil {
		return err
	}

	log.Printf("[FollowService] User %d unfollowed user %d", followerID, target.ID)
	return nil
}

// FollowingList returns who the named user follows, most recent friendship
// first.
func (s *FollowService) FollowingList(ctx context.Context, username string) (*model.FollowListResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	entries, err := s.friendshipRepo.ListFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &model.FollowListResponse{Users: entries}, nil
}

// FollowerList returns who follows the named user, most recent friendship
// first.
func (s *FollowService) FollowerList(ctx context.Context, username string) (*model.FollowListResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	entries, err := s.friendshipRepo.ListFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &model.FollowListResponse{Users: entries}, nil
}
