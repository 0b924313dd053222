package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/models"
	"golang.org/x/crypto/bcrypt"
)

// SeedDefaults installs the dashboard counters, the initial storefront
// content, and a bootstrap admin account. Safe to run on every startup:
// records that already exist are left untouched.
func SeedDefaults(s Store) error {
	counters := []models.Counter{
		{Name: "total_orders", Value: 0},
		{Name: "total_customers", Value: 0},
		{Name: "total_products", Value: 0},
		{Name: "total_revenue", Value: 0},
	}
	for i := range counters {
		if err := s.CreateCounter(&counters[i]); err != nil && !errors.Is(err, ErrDuplicate) {
			return fmt.Errorf("seed counter %s: %w", counters[i].Name, err)
		}
	}

	content := []models.Content{
		{
			Type:        models.ContentTypeHero,
			Title:       "Welcome to Our Store",
			Description: "Discover our latest collection of products",
			Image:       "/images/hero/hero-main.jpg",
			Order:       1,
			Active:      true,
		},
		{
			Type:        models.ContentTypeFeature,
			Title:       "Free Shipping",
			Description: "Free shipping on orders over $50",
			Image:       "/images/features/shipping.jpg",
			Order:       1,
			Active:      true,
		},
		{
			Type:        models.ContentTypeFeature,
			Title:       "Secure Payment",
			Description: "100% secure payment processing",
			Image:       "/images/features/payment.jpg",
			Order:       2,
			Active:      true,
		},
	}
	for i := range content {
		if err := s.CreateContent(&content[i]); err != nil && !errors.Is(err, ErrDuplicate) {
			return fmt.Errorf("seed content %s/%d: %w", content[i].Type, content[i].Order, err)
		}
	}

	return seedAdmin(s)
}

// seedAdmin creates the bootstrap admin account. Without it no session can
// be opened and every mutating endpoint would be unreachable.
func seedAdmin(s Store) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	if _, err := s.GetUserByEmail(email); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("look up admin user: %w", err)
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.User{
		Email:    email,
		Name:     "Admin",
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := s.CreateUser(&admin); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	return nil
}
