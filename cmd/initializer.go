package main

import (
	"database/sql"
	"log"

	"github.com/redis/go-redis/v9"

	"okoloBack/internal/config"
	"okoloBack/internal/geo"
	"okoloBack/internal/handlers"
	"okoloBack/internal/repositories"
	"okoloBack/internal/services"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	cfg      config.Config
	db       *sql.DB
	locator  *geo.PostLocator

	userRepo       *repositories.UserRepository
	postRepo       *repositories.PostRepository
	settlementRepo *repositories.SettlementRepository
	reputationRepo *repositories.ReputationRepository

	userHandler       *handlers.UserHandler
	postHandler       *handlers.PostHandler
	feedHandler       *handlers.FeedHandler
	settlementHandler *handlers.SettlementHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	locator := geo.NewPostLocator(rdb, cfg.Redis.GeoKey)

	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	postRepo := repositories.PostRepository{DB: db}
	settlementRepo := repositories.SettlementRepository{DB: db}
	reputationRepo := repositories.ReputationRepository{DB: db}

	// Services
	userService := &services.UserService{UserRepo: &userRepo}
	postService := &services.PostService{
		PostRepo:        &postRepo,
		UserRepo:        &userRepo,
		Locator:         locator,
		MinRadiusMeters: cfg.Posts.MinRadiusMeters,
		MaxRadiusMeters: cfg.Posts.MaxRadiusMeters,
	}
	feedService := &services.FeedService{
		UserRepo:            &userRepo,
		PostRepo:            &postRepo,
		Locator:             locator,
		SearchCeilingMeters: cfg.Feed.SearchCeilingMeters,
		CandidateLimit:      cfg.Feed.CandidateLimit,
	}
	settlementService := &services.SettlementService{
		SettlementRepo: &settlementRepo,
		Locator:        locator,
	}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	postHandler := &handlers.PostHandler{Service: postService}
	feedHandler := &handlers.FeedHandler{Service: feedService}
	settlementHandler := &handlers.SettlementHandler{Service: settlementService}

	return &application{
		errorLog:          errorLog,
		infoLog:           infoLog,
		cfg:               cfg,
		db:                db,
		locator:           locator,
		userRepo:          &userRepo,
		postRepo:          &postRepo,
		settlementRepo:    &settlementRepo,
		reputationRepo:    &reputationRepo,
		userHandler:       userHandler,
		postHandler:       postHandler,
		feedHandler:       feedHandler,
		settlementHandler: settlementHandler,
	}
}
