package database

import (
	"strings"

	"tempwork-backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the store named by dsn and migrates the schema. A Postgres
// DSN/URL selects the postgres driver; anything else is treated as a SQLite
// file path, which is the default single-file local store.
func Open(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if isPostgresDSN(dsn) {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Business{},
		&models.EmployeeProfile{},
		&models.Review{},
		&models.ActivityLog{},
	); err != nil {
		return nil, err
	}

	log.Info().Str("dialect", dialector.Name()).Msg("database connected, schema migrated")
	return db, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
