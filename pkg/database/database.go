package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSQLitePath = "growthai.db"

// Open connects to postgres when dsn looks like a postgres DSN and falls back
// to a sqlite file otherwise.
func Open(dsn string) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		PrepareStmt:    false,
		TranslateError: true,
	}

	if isPostgresDSN(dsn) {
		pgConfig := postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}
		db, err := gorm.Open(postgres.New(pgConfig), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get database instance: %w", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		return db, nil
	}

	if dsn == "" {
		dsn = defaultSQLitePath
	}
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	return db, nil
}

func InitDB(dsn string) *gorm.DB {
	db, err := Open(dsn)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if isPostgresDSN(dsn) {
		log.Println("Connected to PostgreSQL")
	} else {
		log.Println("DATABASE_URL is not a postgres DSN, using SQLite")
	}
	return db
}

func MigrateDatabase(db *gorm.DB, models ...interface{}) error {
	for _, model := range models {
		if !db.Migrator().HasTable(model) {
			if err := db.Migrator().CreateTable(model); err != nil {
				return err
			}
			log.Printf("Created table for %T\n", model)
		} else {
			if err := db.Migrator().AutoMigrate(model); err != nil {
				return err
			}
			log.Printf("Updated table for %T\n", model)
		}
	}
	return nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
