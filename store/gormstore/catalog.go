package gormstore

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/models"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

func (s *Store) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("created_at asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) GetProduct(id string) (models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, store.ErrNotFound
		}
		return models.Product{}, err
	}
	return product, nil
}

func (s *Store) CreateProduct(p *models.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return s.db.Create(p).Error
}

func (s *Store) UpdateProduct(p *models.Product) error {
	return s.db.Save(p).Error
}

func (s *Store) DeleteProduct(id string) error {
	res := s.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("created_at asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Store) GetCategory(id string) (models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Category{}, store.ErrNotFound
		}
		return models.Category{}, err
	}
	return category, nil
}

func (s *Store) CreateCategory(c *models.Category) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := s.db.Create(c).Error; err != nil {
		if isDuplicateError(err) {
			return store.ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *Store) UpdateCategory(c *models.Category) error {
	if err := s.db.Save(c).Error; err != nil {
		if isDuplicateError(err) {
			return store.ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *Store) DeleteCategory(id string) error {
	res := s.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
