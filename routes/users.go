package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/Ali-Haider-Developer/E-Commerce-Admin/controllers/user"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/middleware"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

// SetupUserRoutes registers user management endpoints.
func SetupUserRoutes(api *gin.RouterGroup, s store.Store) {
	users := api.Group("/users")
	{
		users.GET("", userControllers.GetAllUsers(s))

		protected := users.Group("", middleware.RequireSession(s))
		{
			protected.POST("", userControllers.CreateUser(s))
			protected.PUT("/:id", userControllers.UpdateUser(s))
			protected.DELETE("/:id", userControllers.DeleteUser(s))
		}
	}
}
