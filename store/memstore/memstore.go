// Package memstore is an in-memory store implementation. It backs the API
// when no database is configured and the test suite. Collections are
// independent; there are no cross-resource transactions.
package memstore

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/models"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

type Store struct {
	mu sync.RWMutex

	users      map[string]models.User
	sessions   map[string]models.Session
	products   map[string]models.Product
	orders     map[string]models.Order
	categories map[string]models.Category
	counters   map[string]models.Counter
	content    map[string]models.Content

	nextCounterID uint
}

func New() *Store {
	return &Store{
		users:         make(map[string]models.User),
		sessions:      make(map[string]models.Session),
		products:      make(map[string]models.Product),
		orders:        make(map[string]models.Order),
		categories:    make(map[string]models.Category),
		counters:      make(map[string]models.Counter),
		content:       make(map[string]models.Content),
		nextCounterID: 1,
	}
}

// ---------- Users ----------

func (s *Store) ListUsers() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sortByCreation(users, func(u models.User) (time.Time, string) { return u.CreatedAt, u.ID })
	return users, nil
}

func (s *Store) GetUser(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return u, nil
}

func (s *Store) GetUserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *Store) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return store.ErrDuplicateEmail
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now().UTC()
	s.users[u.ID] = *u
	return nil
}

func (s *Store) UpdateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; !ok {
		return store.ErrNotFound
	}
	for _, existing := range s.users {
		if existing.ID != u.ID && existing.Email == u.Email {
			return store.ErrDuplicateEmail
		}
	}
	s.users[u.ID] = *u
	return nil
}

func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

// ---------- Sessions ----------

func (s *Store) CreateSession(sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now().UTC()
	}
	s.sessions[sess.Token] = *sess
	return nil
}

func (s *Store) GetSession(token string) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return models.Session{}, store.ErrNotFound
	}
	return sess, nil
}

func (s *Store) DeleteSession(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

// ---------- Products ----------

func (s *Store) ListProducts() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	sortByCreation(products, func(p models.Product) (time.Time, string) { return p.CreatedAt, p.ID })
	return products, nil
}

func (s *Store) GetProduct(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return models.Product{}, store.ErrNotFound
	}
	return p, nil
}

func (s *Store) CreateProduct(p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.products[p.ID] = *p
	return nil
}

func (s *Store) UpdateProduct(p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID]; !ok {
		return store.ErrNotFound
	}
	p.UpdatedAt = time.Now().UTC()
	s.products[p.ID] = *p
	return nil
}

func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

// ---------- Orders ----------

func (s *Store) ListOrders() ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		o.Items = append([]models.OrderItem(nil), o.Items...)
		orders = append(orders, o)
	}
	sortByCreation(orders, func(o models.Order) (time.Time, string) { return o.CreatedAt, o.ID })
	return orders, nil
}

func (s *Store) GetOrder(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, store.ErrNotFound
	}
	o.Items = append([]models.OrderItem(nil), o.Items...)
	return o, nil
}

func (s *Store) CreateOrder(o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.CreatedAt = time.Now().UTC()
	stored := *o
	stored.Items = append([]models.OrderItem(nil), o.Items...)
	s.orders[o.ID] = stored
	return nil
}

func (s *Store) UpdateOrder(o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[o.ID]; !ok {
		return store.ErrNotFound
	}
	stored := *o
	stored.Items = append([]models.OrderItem(nil), o.Items...)
	s.orders[o.ID] = stored
	return nil
}

func (s *Store) DeleteOrder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.orders, id)
	return nil
}

// ---------- Categories ----------

func (s *Store) ListCategories() ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, c)
	}
	sortByCreation(categories, func(c models.Category) (time.Time, string) { return c.CreatedAt, c.ID })
	return categories, nil
}

func (s *Store) GetCategory(id string) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return models.Category{}, store.ErrNotFound
	}
	return c, nil
}

func (s *Store) CreateCategory(c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if existing.Name == c.Name {
			return store.ErrDuplicate
		}
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now().UTC()
	s.categories[c.ID] = *c
	return nil
}

func (s *Store) UpdateCategory(c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[c.ID]; !ok {
		return store.ErrNotFound
	}
	for _, existing := range s.categories {
		if existing.ID != c.ID && existing.Name == c.Name {
			return store.ErrDuplicate
		}
	}
	s.categories[c.ID] = *c
	return nil
}

func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

// ---------- Counters ----------

func (s *Store) ListCounters() ([]models.Counter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counters := make([]models.Counter, 0, len(s.counters))
	for _, c := range s.counters {
		counters = append(counters, c)
	}
	sort.Slice(counters, func(i, j int) bool { return counters[i].ID < counters[j].ID })
	return counters, nil
}

func (s *Store) CreateCounter(c *models.Counter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.counters[c.Name]; ok {
		return store.ErrDuplicate
	}
	c.ID = s.nextCounterID
	s.nextCounterID++
	s.counters[c.Name] = *c
	return nil
}

func (s *Store) UpsertCounter(name string, value int) (models.Counter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counter, ok := s.counters[name]
	if !ok {
		counter = models.Counter{ID: s.nextCounterID, Name: name}
		s.nextCounterID++
	}
	counter.Value = value
	s.counters[name] = counter
	return counter, nil
}

// ---------- Content ----------

func (s *Store) ListContent() ([]models.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content := make([]models.Content, 0, len(s.content))
	for _, c := range s.content {
		content = append(content, c)
	}
	sort.Slice(content, func(i, j int) bool {
		if content[i].Order != content[j].Order {
			return content[i].Order < content[j].Order
		}
		return content[i].CreatedAt.Before(content[j].CreatedAt)
	})
	return content, nil
}

func (s *Store) CreateContent(c *models.Content) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.content {
		if existing.Type == c.Type && existing.Order == c.Order {
			return store.ErrDuplicate
		}
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.content[c.ID] = *c
	return nil
}

// sortByCreation orders records by creation time, falling back to ID so
// records created in the same instant keep a stable order.
func sortByCreation[T any](items []T, key func(T) (time.Time, string)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return idi < idj
	})
}
