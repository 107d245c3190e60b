package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rrens/kopiloka/internal/api"
	customMiddleware "github.com/Rrens/kopiloka/internal/api/middleware"
	"github.com/Rrens/kopiloka/internal/assistant"
	"github.com/Rrens/kopiloka/internal/catalog"
	"github.com/Rrens/kopiloka/internal/config"
	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/Rrens/kopiloka/internal/events"
	"github.com/Rrens/kopiloka/internal/logging"
	"github.com/Rrens/kopiloka/internal/repository/mongo"
	"github.com/Rrens/kopiloka/internal/repository/postgres"
	"github.com/Rrens/kopiloka/internal/repository/redis"
	"github.com/Rrens/kopiloka/internal/repository/sqlstore"
	"github.com/Rrens/kopiloka/internal/store"
	"github.com/Rrens/kopiloka/internal/telemetry"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file - try multiple locations
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(p); err == nil {
			fmt.Printf("Loaded .env from: %s\n", p)
			break
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCloser, err := logging.Setup(cfg.Logging, cfg.IsProduction())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}
	defer logCloser.Close()

	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up tracing")
	}

	log.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("store", cfg.Store.Driver).
		Msg("Starting KOPILOKA API server")

	cat, err := catalog.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load catalog")
	}
	log.Info().Int("products", cat.Len()).Msg("Catalog loaded")

	var redisClient *redis.Client
	connectRedis := func() *redis.Client {
		if redisClient == nil {
			redisClient, err = redis.NewClient(ctx, cfg.Redis)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to connect to Redis")
			}
		}
		return redisClient
	}

	docs, err := openStore(ctx, cfg, connectRedis)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("Failed to open store")
	}

	var chatLimiter customMiddleware.Limiter
	if cfg.Redis.Enabled {
		limits := cfg.Assistant.RateLimit
		chatLimiter = redis.NewRateLimiter(connectRedis(), limits.RequestsPerMinute, limits.Burst)
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.Events.Enabled() {
		publisher = events.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic)
		log.Info().Strs("brokers", cfg.Events.Brokers).Str("topic", cfg.Events.Topic).Msg("Publishing order events to Kafka")
	}

	router := api.NewRouter(cfg, api.Dependencies{
		Store:       docs,
		Catalog:     cat,
		Responder:   assistant.New(),
		Publisher:   publisher,
		ChatLimiter: chatLimiter,
	})

	var handler http.Handler = router
	if cfg.Telemetry.Enabled {
		handler = telemetry.Middleware(cfg.Telemetry.ServiceName)(router)
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Msgf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := publisher.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close event publisher")
	}
	if err := docs.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close store")
	}
	if redisClient != nil && cfg.Store.Driver != config.DriverRedis {
		redisClient.Close()
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	log.Info().Msg("Server stopped")
}

// openStore opens the document store selected by store.driver
func openStore(ctx context.Context, cfg *config.Config, connectRedis func() *redis.Client) (domain.DocumentStore, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		log.Warn().Msg("Using in-memory store; data is lost on restart")
		return store.NewMemory(), nil

	case config.DriverSQLite:
		return sqlstore.OpenSQLite(ctx, cfg.Store.SQLitePath)

	case config.DriverMySQL:
		return sqlstore.OpenMySQL(ctx, cfg.Store.MySQLDSN)

	case config.DriverPostgres:
		if err := postgres.RunMigrations(cfg.Database.DSN(), cfg.Database.MigrationsURL); err != nil {
			return nil, err
		}
		db, err := postgres.NewDB(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return postgres.NewDocumentStore(db), nil

	case config.DriverRedis:
		return redis.NewDocumentStore(connectRedis(), 0), nil

	case config.DriverMongo:
		return mongo.Open(ctx, cfg.Store.MongoURI, cfg.Store.MongoDatabase)
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
