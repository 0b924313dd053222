package categoryController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/models"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// UpdateCategoryInput is a field-level patch: nil fields keep the stored value.
type UpdateCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

func GetAllCategories(s store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := s.ListCategories()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func CreateCategory(s store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category payload"})
			return
		}

		category := models.Category{
			Name:        input.Name,
			Description: input.Description,
			Image:       input.Image,
		}

		if err := s.CreateCategory(&category); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

// UpdateCategory renames or redescribes a category. Products keep referencing
// categories by name, so a rename does not cascade.
func UpdateCategory(s store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		category, err := s.GetCategory(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		var input UpdateCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category payload"})
			return
		}

		if input.Name != nil {
			category.Name = *input.Name
		}
		if input.Description != nil {
			category.Description = *input.Description
		}
		if input.Image != nil {
			category.Image = *input.Image
		}

		if err := s.UpdateCategory(&category); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

func DeleteCategory(s store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := s.DeleteCategory(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
