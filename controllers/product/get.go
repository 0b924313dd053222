package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

// GetProducts returns the full product collection. Filtering happens client
// side in the dashboard.
func GetProducts(s store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := s.ListProducts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
