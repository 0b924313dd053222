package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

// SetupRoutes is the single entry point that wires up every /api route group.
// Reads are public; mutations (except login/logout) require a session.
func SetupRoutes(r *gin.Engine, s store.Store) {
	api := r.Group("/api")

	SetupAuthRoutes(api, s)
	SetupCatalogRoutes(api, s)
	SetupOrderRoutes(api, s)
	SetupUserRoutes(api, s)
	SetupSiteRoutes(api, s)
}
