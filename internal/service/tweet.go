package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/shinonome-inc/backend-final-assignment-koya/internal/model"
	"github.com/shinonome-inc/backend-final-assignment-koya/internal/repository"
)

// TweetService handles tweet creation/deletion, likes, and the home timeline.
type TweetService struct {
	tweetRepo repository.TweetRepository
	userRepo  repository.UserRepository
	maxLength int
}

func NewTweetService(
	tweetRepo repository.TweetRepository,
	userRepo repository.UserRepository,
	maxLength int,
) *TweetService {
	return &TweetService{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
		maxLength: maxLength,
	}
}

// Create posts a new tweet attributed to userID. The length limit counts
// runes, not bytes.
func (s *TweetService) Create(ctx context.Context, userID int64, req model.CreateTweetRequest) (*model.Tweet, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, model.ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > s.maxLength {
		return nil, model.ErrContentTooLong
	}

	tweet, err := s.tweetRepo.Create(ctx, userID, content)
	if err != nil {
		return nil, fmt.Errorf("create tweet: %w", err)
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err == nil {
		tweet.Author = &model.UserSummary{ID: author.ID, Username: author.Username}
	}

	return tweet, nil
}

// GetByID retrieves a single tweet with author, like count, and the viewer's
// liked flag.
func (s *TweetService) GetByID(ctx context.Context, tweetID int64, viewerID *int64) (*model.Tweet, error) {
	tweet, err := s.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, tweet.UserID)
	if err == nil {
		tweet.Author = &model.UserSummary{ID: author.ID, Username: author.Username}
	}

	if viewerID != nil {
		likeStatus, err := s.tweetRepo.CheckLikes(ctx, *viewerID, []int64{tweetID})
		if err != nil {
			log.Printf("[TweetService] Failed to check like status: %v", err)
		} else {
			tweet.IsLiked = likeStatus[tweetID]
		}
	}

	return tweet, nil
}

// Delete removes a tweet. Ownership is enforced in the repository; a
// non-owner gets ErrNotTweetOwner, never a silent delete.
func (s *TweetService) Delete(ctx context.Context, tweetID, userID int64) error {
	if err := s.tweetRepo.Delete(ctx, tweetID, userID); err != nil {
		return err
	}
	log.Printf("[TweetService] User %d deleted tweet %d", userID, tweetID)
	return nil
}

// Like records that userID liked tweetID. The unique constraint on
// (user_id, tweet_id) decides duplicates, so a concurrent double-tap yields
// one row and one ErrAlreadyLiked.
func (s *TweetService) Like(ctx context.Context, tweetID, userID int64) error {
	exists, err := s.tweetRepo.Exists(ctx, tweetID)
	if err != nil {
		return fmt.Errorf("check tweet exists: %w", err)
	}
	if !exists {
		return model.ErrTweetNotFound
	}

	if err := s.tweetRepo.Like(ctx, tweetID, userID); err != nil {
		return err
	}

	log.Printf("[TweetService] User %d liked tweet %d", userID, tweetID)
	return nil
}

// Unlike removes userID's like on tweetID.
func (s *TweetService) Unlike(ctx context.Context, tweetID, userID int64) error {
	if err := s.tweetRepo.Unlike(ctx, tweetID, userID); err != nil {
		return err
	}
	log.Printf("[TweetService] User %d unliked tweet %d", userID, tweetID)
	return nil
}

// HomeFeed returns every tweet in ascending creation order, annotated with
// the viewer's liked flags. Ascending is the product's defined timeline
// order.
func (s *TweetService) HomeFeed(ctx context.Context, viewerID int64) (*model.FeedResponse, error) {
	tweets, err := s.tweetRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list timeline: %w", err)
	}

	if len(tweets) > 0 {
		tweetIDs := make([]int64, len(tweets))
		for i := range tweets {
			tweetIDs[i] = tweets[i].ID
		}

		likeMap, err := s.tweetRepo.CheckLikes(ctx, viewerID, tweetIDs)
		if err != nil {
			// Degrade gracefully: the feed is still useful without flags.
			log.Printf("[TweetService] Failed to check feed likes: %v", err)
		} else {
			for i := range tweets {
				tweets[i].IsLiked = likeMap[tweets[i].ID]
			}
		}
	}

	return &model.FeedResponse{Tweets: tweets}, nil
}
