package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/woodora/woodora-api/controllers"
	"github.com/woodora/woodora-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("", middlewares.RequireAuth())
	{
		orders.POST("/orders", controllers.CreateOrder)
		orders.GET("/users/:userId/orders", controllers.GetOrdersByCustomerId)
		orders.GET("/orders/:orderId", controllers.GetOrderById)
		orders.POST("/payment-requests", controllers.CreatePaymentRequest)
	}

	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/orders", controllers.GetOrders)
		admin.GET("/orders/export", controllers.ExportOrdersToExcel)
		admin.GET("/orders/undelivered", controllers.GetUndeliveredOrders)
		admin.PATCH("/orders/:orderId/status", controllers.UpdateOrderStatus)
		admin.DELETE("/orders/:orderId", controllers.DeleteOrder)
		admin.GET("/ws/orders", controllers.OrderWebSocketHandler)

		admin.GET("/payment-requests", controllers.GetPaymentRequests)
		admin.PATCH("/payment-requests/:id/status", controllers.UpdatePaymentRequestStatus)
	}
}
