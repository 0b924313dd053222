package gormstore

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/models"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

func (s *Store) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Items").Order("created_at asc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) GetOrder(id string) (models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, store.ErrNotFound
		}
		return models.Order{}, err
	}
	return order, nil
}

func (s *Store) CreateOrder(o *models.Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return s.db.Create(o).Error
}

// UpdateOrder replaces the order record and its item rows.
func (s *Store) UpdateOrder(o *models.Order) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OrderItem{}, "order_id = ?", o.ID).Error; err != nil {
			return err
		}
		for i := range o.Items {
			o.Items[i].ID = 0
			o.Items[i].OrderID = o.ID
		}
		return tx.Save(o).Error
	})
}

func (s *Store) DeleteOrder(id string) error {
	res := s.db.Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
