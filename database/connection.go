// Package database holds the optional MariaDB-backed scrape-history store.
// The whole package is a no-op when no database is configured.
package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"github.com/nextwipe/wipetime/backend/config"
)

var DB *sql.DB

// InitDB opens the connection pool and verifies it with a ping.
func InitDB(cfg config.DatabaseConfig) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
	)

	var err error
	DB, err = sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	if err = DB.Ping(); err != nil {
		DB.Close()
		DB = nil
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Str("host", cfg.Host).Str("db", cfg.DBName).Msg("Connected to scrape-history database")
	return nil
}

// CloseDB closes the connection pool on shutdown.
func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Info().Msg("Database connection closed")
	}
}
