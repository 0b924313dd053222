package routes

import (
	"github.com/gin-gonic/gin"

	contentController "github.com/Ali-Haider-Developer/E-Commerce-Admin/controllers/content"
	counterController "github.com/Ali-Haider-Developer/E-Commerce-Admin/controllers/counter"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/middleware"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

// SetupSiteRoutes registers counter and storefront content endpoints.
func SetupSiteRoutes(api *gin.RouterGroup, s store.Store) {
	counters := api.Group("/counters")
	{
		counters.GET("", counterController.GetCounters(s))

		protected := counters.Group("", middleware.RequireSession(s))
		{
			protected.POST("", counterController.CreateCounter(s))
			protected.PUT("", counterController.UpsertCounter(s))
		}
	}

	content := api.Group("/content")
	{
		content.GET("", contentController.GetContent(s))
		content.POST("", middleware.RequireSession(s), contentController.CreateContent(s))
	}
}
