package setup

import (
	"time"

	"github.com/forum-dev/forum-api/internal/config"
	"github.com/forum-dev/forum-api/internal/handler"
	"github.com/forum-dev/forum-api/internal/jwt"
	"github.com/forum-dev/forum-api/internal/middleware"
	"github.com/forum-dev/forum-api/internal/service"
	"github.com/forum-dev/forum-api/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Jwt            jwt.JwtService
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(
		cfg.Private.AccessTokenKey,
		cfg.Private.RefreshTokenKey,
		time.Duration(cfg.Public.AccessTokenTTL),
		time.Duration(cfg.Public.RefreshTokenTTL),
	)

	users := service.NewUser(storage)
	auth := service.NewAuth(storage, storage, jwtService)
	threads := service.NewThread(storage, storage)
	comments := service.NewComment(storage, storage)

	h := handler.New(users, auth, threads, comments, storage)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtService),
		Jwt:            jwtService,
	}, nil
}
