package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Woodora API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- POST "/auth/verify-email/:activationToken" - Activate user account
- POST "/auth/forgot-password" - Request password reset
- POST "/auth/reset-password/:resetToken" - Reset user password

CATALOG
- GET "/categories" - List categories
- GET "/categories/:id" - Get category by ID
- GET "/products" - List products (category, minPrice, maxPrice, search, sort, page)
- GET "/products/:id" - Get product by ID

CART
- GET "/cart" - Get the cart
- POST "/cart" - Add an item
- PATCH "/cart/items/:itemId" - Change quantity
- DELETE "/cart/items/:itemId" - Remove an item
- DELETE "/cart" - Clear the cart

CHECKOUT
- POST "/checkout" - Start the checkout wizard
- GET "/checkout/:sessionId" - Wizard state
- PUT "/checkout/:sessionId/shipping" - Submit shipping address
- PUT "/checkout/:sessionId/payment" - Submit payment method
- POST "/checkout/:sessionId/back" - Go one step back
- GET "/checkout/:sessionId/summary" - Review summary
- POST "/checkout/:sessionId/submit" - Place the order
- DELETE "/checkout/:sessionId" - Abandon checkout

ORDERS
- GET "/users/:userId/orders" - Orders for a user
- GET "/orders/:orderId" - Order by ID
- POST "/payment-requests" - Raise a manual payment verification request

ADMIN
- GET "/admin/orders", PATCH "/admin/orders/:orderId/status", DELETE "/admin/orders/:orderId"
- GET "/admin/orders/export" - Orders as xlsx
- GET "/admin/orders/undelivered" - Undelivered order count
- GET "/admin/ws/orders" - Live order feed
- GET|PATCH|DELETE "/admin/payment-requests"
- POST|PUT|DELETE "/admin/categories"
- POST|PUT|DELETE "/admin/products" and image upload
- GET "/admin/messages", PATCH "/admin/messages/:id/read", DELETE "/admin/messages/:id"

CONTACT
- POST "/contact" - Send a message`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
