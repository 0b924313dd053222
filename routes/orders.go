package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/Ali-Haider-Developer/E-Commerce-Admin/controllers/order"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/middleware"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

// SetupOrderRoutes registers order endpoints and the live order feed.
func SetupOrderRoutes(api *gin.RouterGroup, s store.Store) {
	orders := api.Group("/orders")
	{
		orders.GET("", orderControllers.GetOrders(s))
		orders.GET("/ws", orderControllers.OrderFeedHandler)

		protected := orders.Group("", middleware.RequireSession(s))
		{
			protected.POST("", orderControllers.CreateOrder(s))
			protected.PUT("/:id", orderControllers.UpdateOrder(s))
			protected.DELETE("/:id", orderControllers.DeleteOrder(s))
		}
	}
}
