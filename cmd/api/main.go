// Package main provides the entry point for the RecipeHub API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	apprecipe "github.com/recipehub/recipehub/internal/application/recipe"
	"github.com/recipehub/recipehub/internal/infrastructure/config"
	"github.com/recipehub/recipehub/internal/infrastructure/http/apiserver"
	gormrepo "github.com/recipehub/recipehub/internal/infrastructure/persistence/gorm"
	"github.com/recipehub/recipehub/internal/infrastructure/persistence/migrations"
	"github.com/recipehub/recipehub/internal/infrastructure/persistence/postgres"
	"github.com/recipehub/recipehub/internal/infrastructure/persistence/sqlite"
	"github.com/recipehub/recipehub/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config directory")
	seed := flag.Bool("seed", false, "seed demo recipes on startup")
	migrateCmd := flag.String("migrate", "", "run a migration command and exit: up, down, version, force=<v>")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	if *migrateCmd != "" {
		if err := runMigrationCommand(cfg, appLogger, *migrateCmd); err != nil {
			appLogger.Fatal("Migration command failed", zap.Error(err))
		}
		return
	}

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", zap.Error(err))
	}

	if *seed {
		if err := sqlite.SeedDatabase(db); err != nil {
			appLogger.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	recipeRepo := gormrepo.NewRecipeRepository(db)
	recipeService := apprecipe.NewRecipeService(recipeRepo, appLogger)

	server := apiserver.NewServer(cfg, appLogger, recipeService, db)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		appLogger.Info("Starting RecipeHub server",
			zap.Int("port", cfg.Server.Port),
			zap.String("environment", cfg.App.Environment),
		)

		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	appLogger.Info("Server exited")
}

// runMigrationCommand connects to Postgres and runs a single migration
// command: "up", "down", "version", or "force=<v>".
func runMigrationCommand(cfg *config.Config, appLogger *zap.Logger, command string) error {
	if cfg.Database.Driver != "postgres" {
		return fmt.Errorf("migration commands require the postgres driver, got %q", cfg.Database.Driver)
	}

	db, err := postgres.Connect(cfg, appLogger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}
	defer sqlDB.Close()

	migrator, err := migrations.New(sqlDB, cfg.Database.Database, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer migrator.Close()

	switch {
	case command == "up":
		return migrator.Up()

	case command == "down":
		return migrator.Down()

	case command == "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		appLogger.Info("Current migration version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)
		return nil

	case strings.HasPrefix(command, "force="):
		version, err := strconv.Atoi(strings.TrimPrefix(command, "force="))
		if err != nil {
			return fmt.Errorf("invalid force version %q: %w", strings.TrimPrefix(command, "force="), err)
		}
		return migrator.Force(version)

	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
}

// setupDatabase opens the configured database. SQLite auto-migrates the
// schema; Postgres runs the versioned migrations when auto_migrate is on.
func setupDatabase(cfg *config.Config, appLogger *zap.Logger) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "postgres":
		db, err := postgres.Connect(cfg, appLogger)
		if err != nil {
			return nil, err
		}

		if cfg.Database.AutoMigrate {
			sqlDB, err := db.DB()
			if err != nil {
				return nil, fmt.Errorf("failed to access underlying connection: %w", err)
			}

			migrator, err := migrations.New(sqlDB, cfg.Database.Database, appLogger)
			if err != nil {
				return nil, fmt.Errorf("failed to create migrator: %w", err)
			}

			if err := migrator.Up(); err != nil {
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}

		return db, nil

	case "sqlite":
		return sqlite.SetupDatabase(cfg.Database.Path, sqliteLogLevel(cfg.Database.LogLevel))

	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

func sqliteLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug":
		return gormlogger.Info
	case "info":
		return gormlogger.Warn
	default:
		return gormlogger.Silent
	}
}
