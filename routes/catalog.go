package routes

import (
	"github.com/gin-gonic/gin"

	categoryController "github.com/Ali-Haider-Developer/E-Commerce-Admin/controllers/category"
	productcontroller "github.com/Ali-Haider-Developer/E-Commerce-Admin/controllers/product"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/middleware"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

// SetupCatalogRoutes registers product and category endpoints.
func SetupCatalogRoutes(api *gin.RouterGroup, s store.Store) {
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(s))
		products.GET("/export", productcontroller.ExportProductsToExcel(s))

		protected := products.Group("", middleware.RequireSession(s))
		{
			protected.POST("", productcontroller.CreateProduct(s))
			protected.PUT("/:id", productcontroller.UpdateProduct(s))
			protected.DELETE("/:id", productcontroller.DeleteProduct(s))
		}
	}

	categories := api.Group("/categories")
	{
		categories.GET("", categoryController.GetAllCategories(s))

		protected := categories.Group("", middleware.RequireSession(s))
		{
			protected.POST("", categoryController.CreateCategory(s))
			protected.PUT("/:id", categoryController.UpdateCategory(s))
			protected.DELETE("/:id", categoryController.DeleteCategory(s))
		}
	}
}
