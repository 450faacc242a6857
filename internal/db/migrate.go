package db

import (
	"expense_splitter/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Migrate performs automatic migration for the database schema.
// AutoMigrate will create tables, missing foreign keys, constraints,
// columns and indexes.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(&domain.User{}, &domain.Transaction{})
}
