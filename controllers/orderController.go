package controllers

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/woodora/woodora-api/initializers"
	"github.com/woodora/woodora-api/middlewares"
	"github.com/woodora/woodora-api/models"
	"github.com/woodora/woodora-api/services"
)

type createOrderBody struct {
	Items []struct {
		ProductID int `json:"productId" binding:"required"`
		Quantity  int `json:"quantity" binding:"required,gt=0"`
	} `json:"items" binding:"required,min=1,dive"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod" binding:"required"`
	TotalPrice      float64                `json:"totalPrice" binding:"required"`
}

// CreateOrder places an order directly from a submitted item list, bypassing
// the checkout wizard. Prices come from the catalog, never from the client;
// the quoted total must agree with the recomputed one or the request fails.
func CreateOrder(ctx *gin.Context) {
	userId, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body createOrderBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := services.ValidateShippingAddress(body.ShippingAddress); len(errs) > 0 {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Validation failed",
			"errors":  errs,
		})
		return
	}
	if !models.IsValidPaymentMethod(body.PaymentMethod) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown payment method")
		return
	}

	var items []models.CartItem
	for _, line := range body.Items {
		var product models.Product
		if err := initializers.DB.Preload("Images").First(&product, line.ProductID).Error; err != nil {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found: "+strconv.Itoa(line.ProductID))
			return
		}
		item := models.CartItem{
			ProductId:       int(product.ID),
			ProductName:     product.Name,
			ProductPrice:    product.Price,
			ProductQuantity: line.Quantity,
		}
		if len(product.Images) > 0 {
			item.ProductImageUrl = product.Images[0].Url
		}
		items = append(items, item)
	}

	prices := services.CalculatePrices(items)
	if !prices.MatchesQuote(body.TotalPrice) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Submitted total does not match the computed price")
		return
	}

	outcome, err := services.SimulatePayment(ctx.Request.Context(), body.PaymentMethod, body.ShippingAddress.Email)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadGateway, "Payment processing failed")
		return
	}

	order := buildOrder(userId, items, body.ShippingAddress, body.PaymentMethod, prices, outcome)

	if err := persistOrder(&order, userId, body.PaymentMethod); err != nil {
		log.Println("Order creation error:", err)
		middlewares.RecordOrderOperation("create", false)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	middlewares.RecordOrderOperation("create", true)
	announceOrderCreated(order)

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order placed successfully.",
		"orderId": order.ID,
		"order":   order,
	})
}

func GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("OrderItems")
	countQuery := initializers.DB.Model(&models.Order{})

	if search := ctx.Query("search"); search != "" {
		query = query.Where("id LIKE ?", "%"+search+"%")
		countQuery = countQuery.Where("id LIKE ?", "%"+search+"%")
	}

	if status := ctx.Query("status"); status != "" {
		normalized, err := models.NormalizeOrderStatus(status)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status filter")
			return
		}
		query = query.Where("status = ?", normalized)
		countQuery = countQuery.Where("status = ?", normalized)
	}

	query = query.Order("created_at " + sortOrder)

	result := query.Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func GetOrdersByCustomerId(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse userId")
		return
	}

	// Customers can only list their own orders; admins can list anyone's.
	authUserId, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}
	if authUserId != userId && !isAdmin(ctx) {
		sendErrorResponse(ctx, http.StatusForbidden, "Cannot list another user's orders")
		return
	}

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var orders []models.Order
	query := initializers.DB.Preload("OrderItems").Where("user_id = ?", userId)
	if result := query.Order("created_at " + sortOrder).Find(&orders); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func GetOrderById(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if result := initializers.DB.Preload("OrderItems").First(&order, orderId); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found.")
		return
	}

	authUserId, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}
	if order.UserID != authUserId && !isAdmin(ctx) {
		sendErrorResponse(ctx, http.StatusForbidden, "Cannot view another user's order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// UpdateOrderStatus transitions an order to a new status. Incoming casing is
// normalized before the write; Delivered also stamps DeliveredAt.
func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	status, err := models.NormalizeOrderStatus(orderStatusData.Status)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	updates := map[string]any{"status": status}
	if status == models.OrderStatusDelivered {
		updates["delivered_at"] = time.Now()
	}

	result := initializers.DB.Model(&models.Order{}).Where("id = ?", orderId).Updates(updates)
	if result.Error != nil {
		log.Println(result.Error)
		middlewares.RecordOrderOperation("status_update", false)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found.")
		return
	}

	middlewares.RecordOrderOperation("status_update", true)
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
		"status":  status,
	})
}

func DeleteOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id.")
		return
	}

	if result := initializers.DB.Delete(&models.Order{}, orderId); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}

func GetUndeliveredOrders(ctx *gin.Context) {
	var count int64

	result := initializers.DB.
		Model(&models.Order{}).
		Where("status NOT IN ?", []models.OrderStatus{models.OrderStatusDelivered, models.OrderStatusCancelled}).
		Count(&count)

	if result.Error != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count undelivered orders"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"undeliveredOrderCount": count})
}

func isAdmin(ctx *gin.Context) bool {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return false
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "admin"
}
