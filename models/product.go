package models

import (
	"time"

	"github.com/lib/pq"
)

type Product struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	SalePrice   float64        `json:"salePrice"`
	Category    string         `json:"category"` // category name, not a foreign key
	Brand       string         `json:"brand"`
	Stock       int            `json:"stock"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	IsNew       bool           `json:"isNew"`
	IsActive    bool           `json:"isActive"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
