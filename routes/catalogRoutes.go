package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/woodora/woodora-api/controllers"
	"github.com/woodora/woodora-api/middlewares"
)

func CatalogRoutes(server *gin.Engine) {
	server.GET("/categories", controllers.GetCategories)
	server.GET("/categories/:id", controllers.GetCategory)
	server.GET("/products", controllers.GetProducts)
	server.GET("/products/:id", controllers.GetProduct)

	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/categories", controllers.CreateCategory)
		admin.PUT("/categories/:id", controllers.UpdateCategory)
		admin.DELETE("/categories/:id", controllers.DeleteCategory)

		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)
		admin.POST("/product-images", controllers.UploadProductImages)
	}
}
