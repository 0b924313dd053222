package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/models"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

type CreateProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"gte=0"`
	SalePrice   float64  `json:"salePrice" binding:"gte=0"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Stock       int      `json:"stock" binding:"gte=0"`
	Images      []string `json:"images"`
	IsNew       bool     `json:"isNew"`
	IsActive    bool     `json:"isActive"`
}

// CreateProduct assigns a fresh id and stores the product.
func CreateProduct(s store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload"})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			SalePrice:   input.SalePrice,
			Category:    input.Category,
			Brand:       input.Brand,
			Stock:       input.Stock,
			Images:      input.Images,
			IsNew:       input.IsNew,
			IsActive:    input.IsActive,
		}

		if err := s.CreateProduct(&product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
