package db

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ryan-the-brodsky/tastemaker/internal/logger"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
	"github.com/ryan-the-brodsky/tastemaker/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewPostgresService connects to Postgres using POSTGRES_* environment
// variables. When POSTGRES_HOST is unset it falls back to a local sqlite
// file so the server can run without a database container.
func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	if _, ok := os.LookupEnv("POSTGRES_HOST"); !ok {
		sqlitePath := utils.GetEnv("SQLITE_PATH", "tastemaker.db", log)
		serviceLog.Warn("POSTGRES_HOST not set, falling back to sqlite", "path", sqlitePath)
		gdb, err := gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
		if err != nil {
			serviceLog.Error("Failed to open sqlite fallback", "error", err)
			return nil, fmt.Errorf("failed to open sqlite fallback: %w", err)
		}
		return &PostgresService{db: gdb, log: serviceLog}, nil
	}

	log.Info("Loading environment variables...")
	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "tastemaker", log)
	log.Debug("Environment variables loaded")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		serviceLog.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}
	serviceLog.Info("uuid-ossp extension enabled")

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.Session{},
		&types.ComparisonResult{},
		&types.StyleRule{},
		&types.StudioChoice{},
		&types.InteractionRecording{},
		&types.InteractionFrame{},
		&types.TemporalMetric{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
