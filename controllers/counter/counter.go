package counterController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/models"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

type CounterInput struct {
	Name  string `json:"name" binding:"required"`
	Value int    `json:"value"`
}

func GetCounters(s store.CounterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		counters, err := s.ListCounters()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch counters"})
			return
		}
		c.JSON(http.StatusOK, counters)
	}
}

// CreateCounter inserts a new named counter. A duplicate name surfaces as a
// plain 500, matching the store-side unique constraint.
func CreateCounter(s store.CounterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CounterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid counter payload"})
			return
		}

		counter := models.Counter{Name: input.Name, Value: input.Value}
		if err := s.CreateCounter(&counter); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create counter"})
			return
		}

		c.JSON(http.StatusOK, counter)
	}
}

// UpsertCounter creates the counter when the name is unknown, otherwise
// overwrites its value.
func UpsertCounter(s store.CounterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CounterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid counter payload"})
			return
		}

		counter, err := s.UpsertCounter(input.Name, input.Value)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update counter"})
			return
		}

		c.JSON(http.StatusOK, counter)
	}
}
