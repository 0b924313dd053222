package productcontroller

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
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store/memstore"
)

func setupRouter(t *testing.T) (*gin.Engine, *memstore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := memstore.New()
	r := gin.New()
	r.GET("/api/products", GetProducts(s))
	r.GET("/api/products/export", ExportProductsToExcel(s))
	r.POST("/api/products", CreateProduct(s))
	r.PUT("/api/products/:id", UpdateProduct(s))
	r.DELETE("/api/products/:id", DeleteProduct(s))
	return r, s
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var data []byte
	if body != nil {
		data, _ = json.Marshal(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateThenList(t *testing.T) {
	r, _ := setupRouter(t)

	created := doJSON(r, http.MethodPost, "/api/products", gin.H{
		"name":     "Shirt",
		"price":    19.99,
		"category": "Apparel",
		"stock":    10,
		"images":   []string{"shirt.jpg"},
		"isActive": true,
	})
	require.Equal(t, http.StatusOK, created.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &product))
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Shirt", product.Name)

	list := doJSON(r, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, list.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, product.ID, products[0].ID)
}

func TestCreateRejectsMissingName(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/products", gin.H{"price": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRejectsNegativeStock(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/products", gin.H{"name": "X", "stock": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePatchesOnlyGivenFields(t *testing.T) {
	r, s := setupRouter(t)

	product := models.Product{Name: "Shirt", Description: "Plain", Price: 20, Stock: 10}
	require.NoError(t, s.CreateProduct(&product))

	w := doJSON(r, http.MethodPut, "/api/products/"+product.ID, gin.H{"stock": 3})
	require.Equal(t, http.StatusOK, w.Code)

	got, err := s.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock)
	assert.Equal(t, "Shirt", got.Name)
	assert.Equal(t, "Plain", got.Description)
	assert.Equal(t, 20.0, got.Price)
}

func TestUpdateNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPut, "/api/products/missing", gin.H{"stock": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, w.Body.String())
}

func TestDeleteThenList(t *testing.T) {
	r, s := setupRouter(t)

	product := models.Product{Name: "Shirt", Price: 20}
	require.NoError(t, s.CreateProduct(&product))

	first := doJSON(r, http.MethodDelete, "/api/products/"+product.ID, nil)
	require.Equal(t, http.StatusOK, first.Code)

	list := doJSON(r, http.MethodGet, "/api/products", nil)
	var products []models.Product
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &products))
	assert.Empty(t, products)

	second := doJSON(r, http.MethodDelete, "/api/products/"+product.ID, nil)
	assert.Equal(t, http.StatusNotFound, second.Code)
}

func TestExportProducts(t *testing.T) {
	r, s := setupRouter(t)

	product := models.Product{Name: "Shirt", Price: 20, Images: []string{"a.jpg", "b.jpg"}}
	require.NoError(t, s.CreateProduct(&product))

	w := doJSON(r, http.MethodGet, "/api/products/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "products.xlsx")
	assert.NotZero(t, w.Body.Len())
}
