package gormstore

import (
	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/models"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

func (s *Store) ListCounters() ([]models.Counter, error) {
	var counters []models.Counter
	if err := s.db.Order("id asc").Find(&counters).Error; err != nil {
		return nil, err
	}
	return counters, nil
}

func (s *Store) CreateCounter(c *models.Counter) error {
	if err := s.db.Create(c).Error; err != nil {
		if isDuplicateError(err) {
			return store.ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *Store) UpsertCounter(name string, value int) (models.Counter, error) {
	counter := models.Counter{Name: name, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": value}),
	}).Create(&counter).Error
	if err != nil {
		return models.Counter{}, err
	}

	// Re-read so the caller sees the canonical row (id of the existing
	// record when the insert conflicted).
	var out models.Counter
	if err := s.db.First(&out, "name = ?", name).Error; err != nil {
		return models.Counter{}, err
	}
	return out, nil
}

func (s *Store) ListContent() ([]models.Content, error) {
	var content []models.Content
	if err := s.db.Order("sort_order asc").Find(&content).Error; err != nil {
		return nil, err
	}
	return content, nil
}

func (s *Store) CreateContent(c *models.Content) error {
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
