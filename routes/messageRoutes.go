package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/woodora/woodora-api/controllers"
	"github.com/woodora/woodora-api/middlewares"
)

func MessageRoutes(server *gin.Engine) {
	server.POST("/contact", controllers.CreateMessage)

	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/messages", controllers.GetMessages)
		admin.PATCH("/messages/:id/read", controllers.MarkMessageRead)
		admin.DELETE("/messages/:id", controllers.DeleteMessage)
	}
}
