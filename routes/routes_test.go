package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/models"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store/memstore"
)

// setupAPI builds the full router on a seeded in-memory store, the same
// wiring main uses without a database.
func setupAPI(t *testing.T) (*gin.Engine, *memstore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := memstore.New()
	require.NoError(t, store.SeedDefaults(s))

	r := gin.New()
	SetupRoutes(r, s)
	return r, s
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var data []byte
	if body != nil {
		data, _ = json.Marshal(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func loginAdmin(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestMutationsRequireSession(t *testing.T) {
	r, _ := setupAPI(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/products"},
		{http.MethodPut, "/api/products/some-id"},
		{http.MethodDelete, "/api/products/some-id"},
		{http.MethodPost, "/api/orders"},
		{http.MethodPost, "/api/users"},
		{http.MethodPost, "/api/categories"},
		{http.MethodPost, "/api/counters"},
		{http.MethodPut, "/api/counters"},
		{http.MethodPost, "/api/content"},
	}

	for _, p := range paths {
		w := doJSON(r, p.method, p.path, "", gin.H{})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}
}

func TestListsArePublic(t *testing.T) {
	r, _ := setupAPI(t)

	for _, path := range []string{
		"/api/products", "/api/orders", "/api/users",
		"/api/categories", "/api/counters", "/api/content",
	} {
		w := doJSON(r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestLoginThenManageProducts(t *testing.T) {
	r, s := setupAPI(t)
	token := loginAdmin(t, r)

	created := doJSON(r, http.MethodPost, "/api/products", token, gin.H{
		"name":  "Shirt",
		"price": 19.99,
		"stock": 5,
	})
	require.Equal(t, http.StatusOK, created.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &product))

	updated := doJSON(r, http.MethodPut, "/api/products/"+product.ID, token, gin.H{"stock": 2})
	require.Equal(t, http.StatusOK, updated.Code)

	got, err := s.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock)

	deleted := doJSON(r, http.MethodDelete, "/api/products/"+product.ID, token, nil)
	require.Equal(t, http.StatusOK, deleted.Code)

	_, err = s.GetProduct(product.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLogoutEndsSession(t *testing.T) {
	r, _ := setupAPI(t)
	token := loginAdmin(t, r)

	me := doJSON(r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, me.Code)

	logout := doJSON(r, http.MethodPut, "/api/auth", "", gin.H{"token": token})
	require.Equal(t, http.StatusOK, logout.Code)

	meAfter := doJSON(r, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, meAfter.Code)
}

func TestSeededDashboardData(t *testing.T) {
	r, _ := setupAPI(t)

	counters := doJSON(r, http.MethodGet, "/api/counters", "", nil)
	require.Equal(t, http.StatusOK, counters.Code)

	var counterList []models.Counter
	require.NoError(t, json.Unmarshal(counters.Body.Bytes(), &counterList))
	assert.Len(t, counterList, 4)

	content := doJSON(r, http.MethodGet, "/api/content", "", nil)
	require.Equal(t, http.StatusOK, content.Code)

	var contentList []models.Content
	require.NoError(t, json.Unmarshal(content.Body.Bytes(), &contentList))
	require.Len(t, contentList, 3)
	// Ordered by rank ascending.
	assert.LessOrEqual(t, contentList[0].Order, contentList[1].Order)
	assert.LessOrEqual(t, contentList[1].Order, contentList[2].Order)
}

func TestUserConflictScenario(t *testing.T) {
	r, _ := setupAPI(t)
	token := loginAdmin(t, r)

	first := doJSON(r, http.MethodPost, "/api/users", token, gin.H{"email": "a@x.com", "password": "p"})
	require.Equal(t, http.StatusOK, first.Code)

	var user map[string]interface{}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &user))
	assert.NotEmpty(t, user["id"])
	assert.Equal(t, "user", user["role"])

	second := doJSON(r, http.MethodPost, "/api/users", token, gin.H{"email": "a@x.com", "password": "p"})
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.JSONEq(t, `{"error":"User with this email already exists"}`, second.Body.String())
}
