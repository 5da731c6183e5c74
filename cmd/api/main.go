package main

import (
	"context"
	"net/http"
	"os"

	"minimart-backend/internal/api"
	"minimart-backend/internal/application"
	"minimart-backend/internal/config"
	"minimart-backend/internal/infrastructure/idempotency"
	"minimart-backend/internal/infrastructure/paystack"
	"minimart-backend/internal/infrastructure/repository"
	"minimart-backend/internal/ports"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// Initialize logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("⚠️  Warning: .env file not found")
	}

	cfg := config.Load()
	if cfg.Paystack.SecretKey == "" {
		logger.Fatal().Str("env", cfg.Env).Msg("Paystack secret key for this deployment mode is required")
	}

	// Connect to MongoDB
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDatabase)

	// Initialize repositories
	tenantRepo := repository.NewMongoTenantRepository(db)
	mappingRepo := repository.NewMongoDomainMappingRepository(db)

	// Optional idempotency guard for payee/split creation
	var idemStore ports.IdempotencyStore
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		idemStore = idempotency.NewRedisStore(rdb)
		logger.Info().Str("addr", cfg.RedisAddr).Msg("Idempotency guard enabled")
	}

	// Payment gateway adapter with the credential selected for this
	// deployment mode
	gateway := paystack.NewClient(paystack.Config{
		BaseURL:           cfg.Paystack.BaseURL,
		SecretKey:         cfg.Paystack.SecretKey,
		CommissionPercent: cfg.Paystack.CommissionPercent,
		Currency:          cfg.Paystack.Currency,
		Country:           cfg.Paystack.Country,
	}, logger)

	// Initialize application services
	directoryService := application.NewDirectoryService(mappingRepo, cfg.PlatformSuffix, logger)
	catalogService := application.NewCatalogService(tenantRepo, logger)
	splitService := application.NewSplitService(gateway, idemStore, logger)

	r := api.NewRouter(cfg, directoryService, catalogService, splitService, gateway, logger)

	logger.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Msg("Starting API server")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
