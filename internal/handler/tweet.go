package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shinonome-inc/backend-final-assignment-koya/internal/httputil"
	"github.com/shinonome-inc/backend-final-assignment-koya/internal/model"
	"github.com/shinonome-inc/backend-final-assignment-koya/internal/service"
	"github.com/shinonome-inc/backend-final-assignment-koya/internal/transport/http/middleware"
)

type TweetHandler struct {
	tweetService *service.TweetService
}

func NewTweetHandler(tweetService *service.TweetService) *TweetHandler {
	return &TweetHandler{
		tweetService: tweetService,
	}
}

// Create handles POST /tweets
// Creates a new tweet attributed to the authenticated caller.
func (h *TweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreateTweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	tweet, err := h.tweetService.Create(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyContent):
			httputil.WriteValidationError(w, "content", "Content must not be empty")
		case errors.Is(err, model.ErrContentTooLong):
			httputil.WriteValidationError(w, "content", "Content is too long")
		default:
			log.Printf("[ERROR] CreateTweet handler: %v", err)
			httputil.WriteInternalError(w, "Failed to create tweet")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, tweet)
}

// GetByID handles GET /tweets/{id}
func (h *TweetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	tweetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid tweet ID")
		return
	}

	var viewerID *int64
	if id, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		viewerID = &id
	}

	tweet, err := h.tweetService.GetByID(r.Context(), tweetID, viewerID)
	if err != nil {
		if errors.Is(err, model.ErrTweetNotFound) {
			httputil.WriteNotFound(w, "Tweet not found")
			return
		}
		log.Printf("[ERROR] GetTweet handler: %v", err)
		httputil.WriteInternalError(w, "Failed to get tweet")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, tweet)
}

// Delete handles DELETE /tweets/{id}
// Only the owner may delete a tweet.
func (h *TweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	tweetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid tweet ID")
		return
	}

	if err := h.tweetService.Delete(r.Context(), tweetID, userID); err != nil {
		switch {
		case errors.Is(err, model.ErrTweetNotFound):
			httputil.WriteNotFound(w, "Tweet not found")
		case errors.Is(err, model.ErrNotTweetOwner):
			httputil.WriteForbidden(w, "You can only delete your own tweets")
		default:
			log.Printf("[ERROR] DeleteTweet handler: %v", err)
			httputil.WriteInternalError(w, "Failed to delete tweet")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Tweet deleted",
	})
}

// Like handles POST /tweets/{id}/like
func (h *TweetHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	tweetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid tweet ID")
		return
	}

	if err := h.tweetService.Like(r.Context(), tweetID, userID); err != nil {
		switch {
		case errors.Is(err, model.ErrTweetNotFound):
			httputil.WriteNotFound(w, "Tweet not found")
		case errors.Is(err, model.ErrAlreadyLiked):
			httputil.WriteConflict(w, err.Error())
		default:
			log.Printf("[ERROR] Like handler: %v", err)
			httputil.WriteInternalError(w, "Failed to like tweet")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Tweet liked",
	})
}

// Unlike handles DELETE /tweets/{id}/like
func (h *TweetHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	tweetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid tweet ID")
		return
	}

	if err := h.tweetService.Unlike(r.Context(), tweetID, userID); err != nil {
		switch {
		case errors.Is(err, model.ErrNotLiked):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[ERROR] Unlike handler: %v", err)
			httputil.WriteInternalError(w, "Failed to unlike tweet")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Tweet unliked",
	})
}

// GetFeed handles GET /feed
// Returns the home timeline for the authenticated user: every tweet, oldest
// first, with like counts and liked-by-viewer flags.
func (h *TweetHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	feed, err := h.tweetService.HomeFeed(r.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] GetFeed handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, "Failed to get feed")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, feed)
}
