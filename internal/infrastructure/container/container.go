// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	pantryapp "github.com/pantrio/v1/internal/application/pantry"
	"github.com/pantrio/v1/internal/infrastructure/cache"
	"github.com/pantrio/v1/internal/infrastructure/config"
	"github.com/pantrio/v1/internal/infrastructure/http/server"
	gormRepo "github.com/pantrio/v1/internal/infrastructure/persistence/gorm"
	"github.com/pantrio/v1/internal/infrastructure/persistence/memory"
	"github.com/pantrio/v1/internal/infrastructure/persistence/sqlite"
	"github.com/pantrio/v1/internal/ports/inbound"
	"github.com/pantrio/v1/internal/ports/outbound"
	"github.com/pantrio/v1/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	// Infrastructure modules
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,

	// Repository modules
	RepositoryModule,

	// Service modules
	ServiceModule,

	// HTTP modules
	HTTPModule,

	// Lifecycle hooks
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the GORM database connection for the
// configured driver
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		logLevel := gormLogger.Silent
		if cfg.App.Debug {
			logLevel = gormLogger.Info
		}

		var db *gorm.DB
		var err error

		switch cfg.Database.Driver {
		case "postgres":
			db, err = gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
				Logger: gormLogger.Default.LogMode(logLevel),
			})
			if err != nil {
				return nil, fmt.Errorf("failed to connect to postgres: %w", err)
			}

			if cfg.Database.AutoMigrate {
				if err := db.AutoMigrate(&gormRepo.StockItemModel{}); err != nil {
					return nil, fmt.Errorf("failed to migrate database: %w", err)
				}
			}

			sqlDB, err := db.DB()
			if err != nil {
				return nil, err
			}
			sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
			sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
			sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

			log.Info("Connected to postgres database",
				zap.String("host", cfg.Database.Host),
				zap.String("database", cfg.Database.Database),
			)

		default:
			db, err = sqlite.SetupDatabase(cfg.Database.SQLitePath, logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
			}

			log.Info("Connected to SQLite database",
				zap.String("path", cfg.Database.SQLitePath),
				zap.Bool("in_memory", cfg.Database.SQLitePath == ""),
			)
		}

		if cfg.Database.SeedDemoData {
			if err := sqlite.SeedDatabase(db); err != nil {
				log.Warn("Failed to seed database", zap.Error(err))
			}
		}

		return db, nil
	},
)

// CacheModule provides caching. Redis when configured, otherwise the
// in-process fallback.
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Redis.Enabled {
			return cache.NewRedisCache(&cfg.Redis, log)
		}

		log.Info("Using in-memory cache")
		return memory.NewCacheRepository(), nil
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewStockItemRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(
		itemRepo outbound.StockItemRepository,
		cacheRepo outbound.CacheRepository,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.PantryService {
		return pantryapp.NewPantryService(itemRepo, cacheRepo, log, cfg.Inventory.ExpiryWindowDays)
	},
)

// HTTPModule provides HTTP server and handlers
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Pantrio application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Pantrio application")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
