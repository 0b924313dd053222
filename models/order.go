package models

import "time"

type OrderStatus string

const (
	// Order statuses (admin dashboard flow)
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting processing
	OrderStatusProcessing OrderStatus = "processing" // Being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the items
)

type Order struct {
	ID           string      `gorm:"primaryKey" json:"id"`
	CustomerName string      `json:"customerName"`
	Email        string      `json:"email"`
	Items        []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total        float64     `json:"total"`
	Status       OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}

type OrderItem struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   string `gorm:"index" json:"-"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	default:
		return false
	}
}
