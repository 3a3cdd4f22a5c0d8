package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/snnyvrz/library-manager/internal/config"
	"github.com/snnyvrz/library-manager/internal/model"
)

func dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(SQLiteDSN(cfg.DSN())), nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
}

// SQLiteDSN turns on foreign key enforcement, which go-sqlite3 leaves off.
func SQLiteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

func gormConfig(ginMode string) *gorm.Config {
	level := gormlogger.Warn
	if ginMode == "release" {
		level = gormlogger.Error
	}
	return &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
	}
}

// ConnectWithRetry opens the configured store and pings it, retrying up to
// cfg.DBMaxAttempts times. It gives up early when ctx is done.
func ConnectWithRetry(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= cfg.DBMaxAttempts; attempt++ {
		var database *gorm.DB
		database, err = gorm.Open(d, gormConfig(cfg.GinMode))
		if err == nil {
			err = Ping(ctx, database)
			if err == nil {
				logger.Info("database connection ok",
					zap.String("driver", cfg.DBDriver),
					zap.Int("attempt", attempt),
				)
				return database, nil
			}
			_ = Close(database)
		}

		logger.Warn("db not ready",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", cfg.DBMaxAttempts),
			zap.Error(err),
		)

		if attempt == cfg.DBMaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.DBRetryDelay):
		}
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", cfg.DBMaxAttempts, err)
}

func Ping(ctx context.Context, database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Migrate creates or updates the writers and books tables.
func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(&model.Writer{}, &model.Book{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
