// Package gormstore implements the store interfaces on top of GORM/Postgres.
package gormstore

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates or updates the schema for every model.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Category{},
		&models.Counter{},
		&models.Content{},
	)
}

// isDuplicateError detects unique constraint violations across drivers.
func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
