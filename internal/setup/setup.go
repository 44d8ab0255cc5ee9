package setup

import (
	"github.com/goblog-dev/goblog/internal/config"
	"github.com/goblog-dev/goblog/internal/handler"
	"github.com/goblog-dev/goblog/internal/jwt"
	"github.com/goblog-dev/goblog/internal/markdown"
	"github.com/goblog-dev/goblog/internal/middleware"
	"github.com/goblog-dev/goblog/internal/service"
	"github.com/goblog-dev/goblog/internal/storage/pg"
)

// Dependencies holds all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Jwt            jwt.JwtService
}

// SetupDependencies initializes the dependency graph for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage)
	user := service.NewUser(storage)
	account := service.NewAccount(storage)
	post := service.NewPost(storage)
	comment := service.NewComment(storage)

	md := markdown.New()

	h := handler.New(auth, user, account, post, comment, md, cfg, jwtService, storage)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtService),
		Jwt:            jwtService,
	}, nil
}
