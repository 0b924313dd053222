package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

func DeleteProduct(s store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := s.DeleteProduct(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
