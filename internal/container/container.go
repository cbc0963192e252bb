package container

import (
	"context"
	"fmt"
	"time"

	"movierec/internal/cache"
	"movierec/internal/config"
	"movierec/internal/database"
	"movierec/internal/logger"
	"movierec/internal/recommend"
	"movierec/internal/repository"
	"movierec/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type Container struct {
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Logger *logrus.Logger

	CatalogRepo repository.CatalogRepository
	ReviewRepo  repository.ReviewRepository
	UserRepo    repository.UserRepository

	TMDB           *services.TMDBClient
	CatalogService *services.CatalogService
	UserService    *services.UserService
	Seeder         *services.CatalogSeeder

	Orchestrator *recommend.Orchestrator
}

func New(ctx context.Context) (*Container, error) {
	log := logger.Get()

	db, err := database.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	redisClient, err := cache.New(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	catalogRepo := repository.NewCatalogRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	userRepo := repository.NewUserRepository(db)

	tmdbBaseURL, tmdbAPIKey := config.TMDBConfig()
	tmdb := services.NewTMDBClient(&services.TMDBConfig{
		BaseURL: tmdbBaseURL,
		APIKey:  tmdbAPIKey,
		Timeout: 30 * time.Second,
		Logger:  log,
		Redis:   redisClient,
	})

	catalogService := services.NewCatalogService(tmdb, catalogRepo, log)
	classifier := services.NewSentimentClient(config.ClassifierConfig(), 10*time.Second, log)

	similar := recommend.NewSimilarityRecommender(catalogRepo, log)
	fallback := recommend.NewFallbackRecommender(catalogRepo, log)
	orchestrator := recommend.NewOrchestrator(similar, fallback, reviewRepo, classifier, log)

	return &Container{
		DB:             db,
		Redis:          redisClient,
		Logger:         log,
		CatalogRepo:    catalogRepo,
		ReviewRepo:     reviewRepo,
		UserRepo:       userRepo,
		TMDB:           tmdb,
		CatalogService: catalogService,
		UserService:    services.NewUserService(userRepo, log),
		Seeder:         services.NewCatalogSeeder(catalogService, tmdb, log),
		Orchestrator:   orchestrator,
	}, nil
}

func (c *Container) Close() {
	if c.Redis != nil {
		c.Redis.Close()
		c.Logger.Info("Redis connection closed")
	}
	if c.DB != nil {
		c.DB.Close()
		c.Logger.Info("Database connection closed")
	}
}
