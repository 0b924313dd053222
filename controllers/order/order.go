package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/models"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderInput struct {
	CustomerName string           `json:"customerName" binding:"required"`
	Email        string           `json:"email" binding:"required,email"`
	Items        []OrderItemInput `json:"items" binding:"required,dive"`
	Total        float64          `json:"total" binding:"gte=0"`
}

// UpdateOrderInput is a field-level patch: nil fields keep the stored value.
type UpdateOrderInput struct {
	CustomerName *string           `json:"customerName"`
	Email        *string           `json:"email" binding:"omitempty,email"`
	Items        *[]OrderItemInput `json:"items" binding:"omitempty,dive"`
	Total        *float64          `json:"total" binding:"omitempty,gte=0"`
	Status       *string           `json:"status"`
}

func mapItems(inputs []OrderItemInput) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, models.OrderItem{ProductID: in.ProductID, Quantity: in.Quantity})
	}
	return items
}

// -------- Handlers --------

func GetOrders(s store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := s.ListOrders()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// CreateOrder stores a new order. The status is always forced to "pending"
// no matter what the payload says.
func CreateOrder(s store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload"})
			return
		}

		order := models.Order{
			CustomerName: input.CustomerName,
			Email:        input.Email,
			Items:        mapItems(input.Items),
			Total:        input.Total,
			Status:       models.OrderStatusPending,
		}

		if err := s.CreateOrder(&order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		broadcastOrder(order)
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrder patches an order. Any status from the known set may overwrite
// any other; there is no transition checking.
func UpdateOrder(s store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		order, err := s.GetOrder(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		var input UpdateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload"})
			return
		}

		if input.Status != nil {
			status := models.OrderStatus(*input.Status)
			if !models.ValidOrderStatus(status) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
				return
			}
			order.Status = status
		}
		if input.CustomerName != nil {
			order.CustomerName = *input.CustomerName
		}
		if input.Email != nil {
			order.Email = *input.Email
		}
		if input.Items != nil {
			order.Items = mapItems(*input.Items)
		}
		if input.Total != nil {
			order.Total = *input.Total
		}

		if err := s.UpdateOrder(&order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		broadcastOrder(order)
		c.JSON(http.StatusOK, order)
	}
}

func DeleteOrder(s store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := s.DeleteOrder(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
