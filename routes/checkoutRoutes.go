package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/woodora/woodora-api/controllers"
	"github.com/woodora/woodora-api/middlewares"
)

func CheckoutRoutes(server *gin.Engine) {
	checkout := server.Group("/checkout", middlewares.RequireAuth())
	{
		checkout.POST("", controllers.BeginCheckout)
		checkout.GET("/:sessionId", controllers.GetCheckoutSession)
		checkout.PUT("/:sessionId/shipping", controllers.SubmitShipping)
		checkout.PUT("/:sessionId/payment", controllers.SubmitPayment)
		checkout.POST("/:sessionId/back", controllers.CheckoutBack)
		checkout.GET("/:sessionId/summary", controllers.CheckoutSummary)
		checkout.POST("/:sessionId/submit", controllers.SubmitCheckout)
		checkout.DELETE("/:sessionId", controllers.CancelCheckout)
	}
}
