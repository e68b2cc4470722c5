package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shinonome-inc/backend-final-assignment-koya/internal/handler"
	"github.com/shinonome-inc/backend-final-assignment-koya/internal/httputil"
	authmw "github.com/shinonome-inc/backend-final-assignment-koya/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler   *handler.AuthHandler
	UserHandler   *handler.UserHandler
	FollowHandler *handler.FollowHandler
	TweetHandler  *handler.TweetHandler
	JWTSecret     string
	Denylist      authmw.TokenDenylist
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/refresh", cfg.AuthHandler.Refresh)
	})

	// Tweet detail works with or without a session; the liked flag is only
	// filled in for authenticated viewers.
	r.With(authmw.OptionalAuthMiddleware(cfg.JWTSecret, cfg.Denylist)).Get("/tweets/{id}", cfg.TweetHandler.GetByID)

	// Protected routes - require authentication
	r.Group(func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.JWTSecret, cfg.Denylist))

		r.Get("/me", cfg.AuthHandler.Me)

		r.Post("/auth/logout", cfg.AuthHandler.Logout)
		r.Post("/auth/logout-all", cfg.AuthHandler.LogoutAll)

		r.Route("/users/{username}", func(r chi.Router) {
			r.Get("/", cfg.UserHandler.GetProfile)
			r.Get("/following", cfg.FollowHandler.GetFollowing)
			r.Get("/followers", cfg.FollowHandler.GetFollowers)
			r.Post("/follow", cfg.FollowHandler.Follow)
			r.Delete("/follow", cfg.FollowHandler.Unfollow)
		})

		r.Get("/feed", cfg.TweetHandler.GetFeed)

		r.Post("/tweets", cfg.TweetHandler.Create)
		r.Delete("/tweets/{id}", cfg.TweetHandler.Delete)
		r.Post("/tweets/{id}/like", cfg.TweetHandler.Like)
		r.Delete("/tweets/{id}/like", cfg.TweetHandler.Unlike)
	})

	return r
}
