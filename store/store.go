// Package store defines the persistence interfaces for the admin API.
// Two implementations exist: gormstore (Postgres) and memstore (in-memory).
package store

import (
	"errors"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrDuplicate      = errors.New("duplicate record")
)

type UserStore interface {
	ListUsers() ([]models.User, error)
	GetUser(id string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	CreateUser(u *models.User) error
	UpdateUser(u *models.User) error
	DeleteUser(id string) error
}

type SessionStore interface {
	CreateSession(s *models.Session) error
	GetSession(token string) (models.Session, error)
	// DeleteSession is idempotent: deleting an unknown token is not an error.
	DeleteSession(token string) error
}

type ProductStore interface {
	ListProducts() ([]models.Product, error)
	GetProduct(id string) (models.Product, error)
	CreateProduct(p *models.Product) error
	UpdateProduct(p *models.Product) error
	DeleteProduct(id string) error
}

type OrderStore interface {
	ListOrders() ([]models.Order, error)
	GetOrder(id string) (models.Order, error)
	CreateOrder(o *models.Order) error
	UpdateOrder(o *models.Order) error
	DeleteOrder(id string) error
}

type CategoryStore interface {
	ListCategories() ([]models.Category, error)
	GetCategory(id string) (models.Category, error)
	CreateCategory(c *models.Category) error
	UpdateCategory(c *models.Category) error
	DeleteCategory(id string) error
}

type CounterStore interface {
	ListCounters() ([]models.Counter, error)
	CreateCounter(c *models.Counter) error
	// UpsertCounter creates the counter when the name is unknown,
	// otherwise overwrites its value.
	UpsertCounter(name string, value int) (models.Counter, error)
}

type ContentStore interface {
	// ListContent returns all content blocks ordered by Order ascending.
	ListContent() ([]models.Content, error)
	CreateContent(c *models.Content) error
}

// Store bundles every resource store behind one dependency.
type Store interface {
	UserStore
	SessionStore
	ProductStore
	OrderStore
	CategoryStore
	CounterStore
	ContentStore
}
