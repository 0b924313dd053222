package routes

import (
	"github.com/gin-gonic/gin"

	authController "github.com/Ali-Haider-Developer/E-Commerce-Admin/controllers/auth"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/middleware"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

// SetupAuthRoutes registers login, logout, and current-user endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, s store.Store) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login(s))
		auth.PUT("", authController.Logout(s))
		auth.GET("/me", middleware.RequireSession(s), authController.Me(s))
	}
}
