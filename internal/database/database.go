package database

import (
	"fmt"
	"strings"

	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database named by databaseURL:
//
//	"" or ":memory:"  in-memory sqlite
//	"sqlite:<path>"   sqlite file
//	"mysql://<dsn>"   mysql
//	anything else     postgres DSN or URL
func Connect(databaseURL string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	memory := false
	switch {
	case databaseURL == "" || databaseURL == ":memory:" || databaseURL == "sqlite::memory:":
		memory = true
		db, err = gorm.Open(sqlite.Open(":memory:"), config)
	case strings.HasPrefix(databaseURL, "sqlite:"):
		dbPath := strings.TrimPrefix(databaseURL, "sqlite:")
		dbPath = dbPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
		db, err = gorm.Open(sqlite.Open(dbPath), config)
	case strings.HasPrefix(databaseURL, "mysql://"):
		db, err = gorm.Open(mysql.Open(strings.TrimPrefix(databaseURL, "mysql://")), config)
	default:
		db, err = gorm.Open(postgres.Open(databaseURL), config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if memory {
		// Every sqlite connection to :memory: opens its own empty database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access connection pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	log := zap.L().Named("database")
	log.Info("running database migrations")

	err := db.AutoMigrate(
		&models.Worker{},
		&models.Field{},
		&models.Schedule{},
	)

	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Info("database migrations completed")
	return nil
}
