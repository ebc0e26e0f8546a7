package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/masjid-digital/donation-processor/internal/domain/port/persistence"
	donationUseCase "github.com/masjid-digital/donation-processor/internal/domain/usecase/donation"
	paymentMethodUseCase "github.com/masjid-digital/donation-processor/internal/domain/usecase/paymentmethod"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/api/handler"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/api/routes"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/codegen"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/database"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/database/migration"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/logger"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/repository"
	timeProvider "github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/time"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          "postgres",
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay / time.Second),
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	donationRepo := repository.NewDonationRepository(dbManager.DB(), appLogger)
	paymentMethodRepo := repository.NewPaymentMethodRepository(dbManager.DB(), appLogger)

	// Unit of work binds transaction-scoped repositories
	uow := database.NewUnitOfWork(
		dbManager.DB(),
		appLogger,
		func(db *gorm.DB) persistence.DonationRepository {
			return repository.NewDonationRepository(db, appLogger)
		},
		func(db *gorm.DB) persistence.PaymentMethodRepository {
			return repository.NewPaymentMethodRepository(db, appLogger)
		},
	)

	// Initialize use cases
	codeGenerator := codegen.NewRandomCodeGenerator()

	registry := paymentMethodUseCase.NewRegistry(paymentMethodRepo, tp, appLogger)

	donationService := donationUseCase.NewService(
		uow,
		donationRepo,
		paymentMethodRepo,
		codeGenerator,
		tp,
		appLogger,
		donationUseCase.Config{
			MinimumAmount: cfg.Donation.MinimumAmount,
			CodeLength:    cfg.Donation.CodeLength,
			StatsMonths:   cfg.Donation.StatsMonths,
		},
	)

	// Seed default payment methods on a fresh database
	if err := migration.SeedDefaultPaymentMethods(context.Background(), registry); err != nil {
		appLogger.Error("Failed to seed default payment methods", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize API handlers
	donationHandler := handler.NewDonationHandler(donationService, appLogger)
	paymentMethodHandler := handler.NewPaymentMethodHandler(registry, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager.Ping)

	// Initialize Gin router
	router := gin.New()

	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, donationHandler, paymentMethodHandler, healthHandler, cfg.Auth.JWTSecret, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	if err := appLogger.Flush(); err != nil {
		log.Printf("Failed to flush logs: %v", err)
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("DP_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or DP_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}
	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("DP_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or DP_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}
	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("DP_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or DP_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}
	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("DP_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or DP_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Donation.MinimumAmount <= 0 {
		missingConfigs = append(missingConfigs, "donation.minimumAmount")
	}
	if cfg.Donation.CodeLength <= 0 {
		missingConfigs = append(missingConfigs, "donation.codeLength")
	}
	if cfg.Donation.StatsMonths <= 0 {
		missingConfigs = append(missingConfigs, "donation.statsMonths")
	}

	if cfg.Auth.JWTSecret == "" {
		if cfg.Environment == config.Production && os.Getenv("DP_AUTH_JWT_SECRET") == "" {
			missingConfigs = append(missingConfigs, "auth.jwtSecret (or DP_AUTH_JWT_SECRET environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "auth.jwtSecret")
		}
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
