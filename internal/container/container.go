package container

import (
	"fmt"

	"school-activities/internal/config"
	"school-activities/internal/registry"
	"school-activities/internal/service"
	"school-activities/pkg/logger"
	"school-activities/pkg/metrics"
	"school-activities/pkg/redis"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *logger.Logger
	RedisClient     *redis.Client
	MetricsRegistry *prometheus.Registry // nil when metrics are disabled
	Services        *service.Services
}

// New creates a new dependency injection container. Redis is optional: a
// missing or unreachable server only disables the listing cache.
func New(cfg *config.Config, logger *logger.Logger) (*Container, error) {
	seed, err := registry.LoadSeed(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}

	reg, err := registry.New(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to build registry: %w", err)
	}
	logger.WithField("activities", len(seed)).Info("Activity registry seeded")

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL, cfg.Environment, logger.Logger)
		if err != nil {
			logger.WithError(err).Warn("Failed to initialize Redis client, proceeding without caching")
		} else {
			redisClient = client
			logger.Info("Redis client initialized successfully")
		}
	} else {
		logger.Info("Redis URL not configured, proceeding without caching")
	}

	var (
		promRegistry *prometheus.Registry
		m            *metrics.Metrics
	)
	if cfg.MetricsEnabled {
		promRegistry = prometheus.NewRegistry()
		promRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.New(promRegistry)
	}

	var cacheService *service.CacheService
	if redisClient != nil {
		cacheService = service.NewCacheService(redisClient, logger.Logger)
	}

	services := &service.Services{
		Activity: service.NewActivityService(reg, cacheService, m, logger),
	}

	return &Container{
		Config:          cfg,
		Logger:          logger,
		RedisClient:     redisClient,
		MetricsRegistry: promRegistry,
		Services:        services,
	}, nil
}

// GetActivityService returns the activity service
func (c *Container) GetActivityService() service.ActivityService {
	return c.Services.Activity
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetRedisClient returns the Redis client (may be nil if not configured)
func (c *Container) GetRedisClient() *redis.Client {
	return c.RedisClient
}

// HasRedis returns true if Redis client is available
func (c *Container) HasRedis() bool {
	return c.RedisClient != nil
}

// Close releases external connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		return c.RedisClient.Close()
	}
	return nil
}
