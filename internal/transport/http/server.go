package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"

	"github.com/shinonome-inc/backend-final-assignment-koya/internal/config"
	"github.com/shinonome-inc/backend-final-assignment-koya/internal/database"
	"github.com/shinonome-inc/backend-final-assignment-koya/internal/handler"
	"github.com/shinonome-inc/backend-final-assignment-koya/internal/redis"
	"github.com/shinonome-inc/backend-final-assignment-koya/internal/repository"
	"github.com/shinonome-inc/backend-final-assignment-koya/internal/service"
)

// Run loads configuration, prepares storage, wires the dependency graph, and
// serves HTTP until the process exits.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := database.Migrate(cfg); err != nil {
		return err
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Redis backs the access-token denylist. The app still works without
	// it, logout then only revokes refresh tokens.
	var denylist *redis.Client
	if cfg.RedisURL != "" {
		denylist, err = redis.NewClient(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := denylist.Ping(context.Background()); err != nil {
			return fmt.Errorf("failed to reach redis: %w", err)
		}
		defer denylist.Close()
	} else {
		log.Println("REDIS_URL not set, access-token denylist disabled")
	}

	userRepo := repository.NewUserRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	userService := service.NewUserService(userRepo, friendshipRepo, tweetRepo)
	followService := service.NewFollowService(friendshipRepo, userRepo)
	tweetService := service.NewTweetService(tweetRepo, userRepo, cfg.TweetMaxLength)

	var authService *service.AuthService
	if denylist != nil {
		authService = service.NewAuthService(refreshTokenRepo, denylist, cfg)
	} else {
		authService = service.NewAuthService(refreshTokenRepo, nil, cfg)
	}

	routerCfg := RouterConfig{
		AuthHandler:   handler.NewAuthHandler(userService, authService),
		UserHandler:   handler.NewUserHandler(userService),
		FollowHandler: handler.NewFollowHandler(followService),
		TweetHandler:  handler.NewTweetHandler(tweetService),
		JWTSecret:     cfg.JWTSecret,
	}
	if denylist != nil {
		routerCfg.Denylist = denylist
	}

	router := NewRouter(routerCfg)

	addr := ":" + cfg.ServerPort
	log.Printf("Starting server on %s", addr)
	return stdhttp.ListenAndServe(addr, router)
}
