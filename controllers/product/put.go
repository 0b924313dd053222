package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

// UpdateProductInput is a field-level patch: nil fields keep the stored value.
type UpdateProductInput struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" binding:"omitempty,gte=0"`
	SalePrice   *float64  `json:"salePrice" binding:"omitempty,gte=0"`
	Category    *string   `json:"category"`
	Brand       *string   `json:"brand"`
	Stock       *int      `json:"stock" binding:"omitempty,gte=0"`
	Images      *[]string `json:"images"`
	IsNew       *bool     `json:"isNew"`
	IsActive    *bool     `json:"isActive"`
}

// UpdateProduct patches an existing product by ID.
func UpdateProduct(s store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		product, err := s.GetProduct(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload"})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.SalePrice != nil {
			product.SalePrice = *input.SalePrice
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Brand != nil {
			product.Brand = *input.Brand
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		if input.Images != nil {
			product.Images = *input.Images
		}
		if input.IsNew != nil {
			product.IsNew = *input.IsNew
		}
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}

		if err := s.UpdateProduct(&product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
