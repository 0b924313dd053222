package contentController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/models"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

type CreateContentInput struct {
	Type        string `json:"type" binding:"required,oneof=hero feature testimonial"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
	Order       int    `json:"order"`
	Active      bool   `json:"active"`
}

// GetContent lists all content blocks ordered by their rank.
func GetContent(s store.ContentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, err := s.ListContent()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
			return
		}
		c.JSON(http.StatusOK, content)
	}
}

// CreateContent inserts a new content block. A duplicate (type, order) pair
// surfaces as a plain 500, matching the store-side unique constraint.
func CreateContent(s store.ContentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateContentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content payload"})
			return
		}

		content := models.Content{
			Type:        models.ContentType(input.Type),
			Title:       input.Title,
			Description: input.Description,
			Image:       input.Image,
			Link:        input.Link,
			Order:       input.Order,
			Active:      input.Active,
		}

		if err := s.CreateContent(&content); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create content"})
			return
		}

		c.JSON(http.StatusOK, content)
	}
}
