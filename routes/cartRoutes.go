package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/woodora/woodora-api/controllers"
	"github.com/woodora/woodora-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.GET("", controllers.GetCart)
		cart.POST("", controllers.AddCartItem)
		cart.PATCH("/items/:itemId", controllers.UpdateCartItem)
		cart.DELETE("/items/:itemId", controllers.DeleteCartItem)
		cart.DELETE("", controllers.ClearCart)
	}
}
