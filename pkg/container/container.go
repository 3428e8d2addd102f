package container

import (
	"context"
	"fmt"
	"time"

	"livraria-api/internal/config"
	"livraria-api/internal/domains/livro/handler"
	"livraria-api/internal/domains/livro/repository"
	"livraria-api/internal/domains/livro/service"
	infraCache "livraria-api/internal/infrastructure/cache"
	"livraria-api/internal/infrastructure/database"
	"livraria-api/pkg/cache"
	"livraria-api/pkg/logger"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the whole process.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	LivroRepo    repository.LivroRepository
	LivroService service.LivroService
	LivroHandler *handler.Handler

	// Redis handle kept separately for Cleanup; nil when the in-memory
	// fallback is in use.
	redis *infraCache.RedisCache
}

// NewContainer wires config -> infrastructure -> repository -> service ->
// handler, in that order. A database failure aborts startup; a Redis failure
// only downgrades the cache to the in-memory implementation.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(context.Background()); err != nil {
		logger.Warn("redis unavailable, using in-memory cache", err)
		c.Cache = infraCache.NewMemoryCache()
	} else {
		c.Cache = redisCache
		c.redis = redisCache
	}

	c.LivroRepo = repository.NewPostgresRepository(db.Pool)
	c.LivroService = service.NewLivroService(c.LivroRepo, c.Cache)
	c.LivroHandler = handler.NewHandler(c.LivroService)

	return c, nil
}

// Cleanup releases the infrastructure handles on shutdown.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Warn("failed to close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
