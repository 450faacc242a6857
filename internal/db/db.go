package db

import (
	"expense_splitter/internal/config" // Application configuration

	"gorm.io/driver/mysql"  // MySQL driver for GORM
	"gorm.io/driver/sqlite" // SQLite driver for GORM (file-based fallback)
	"gorm.io/gorm"          // GORM ORM library
)

// Open connects to MySQL when a DB host is configured, and otherwise
// falls back to a local sqlite database file.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBHost != "" {
		dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
}
