package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/woodora/woodora-api/events"
	"github.com/woodora/woodora-api/initializers"
	"github.com/woodora/woodora-api/middlewares"
	"github.com/woodora/woodora-api/models"
	"github.com/woodora/woodora-api/services"
	"gorm.io/gorm"
)

// CheckoutSessions holds every in-flight wizard. Checkout state is transient;
// nothing is persisted until a successful submission.
var CheckoutSessions = services.NewCheckoutStore()

var orderEventBus *events.Bus

// SetEventBus wires the AMQP bus used for order lifecycle events. A nil bus
// disables events without disabling checkout.
func SetEventBus(bus *events.Bus) {
	orderEventBus = bus
}

// sessionForUser loads a session and refuses access by anyone but its owner.
func sessionForUser(ctx *gin.Context) (*services.CheckoutSession, int, bool) {
	userId, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return nil, 0, false
	}

	session, err := CheckoutSessions.Get(ctx.Param("sessionId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Checkout session not found")
		return nil, 0, false
	}
	if session.UserID != userId {
		sendErrorResponse(ctx, http.StatusForbidden, "Checkout session belongs to another user")
		return nil, 0, false
	}
	return session, userId, true
}

func respondValidation(ctx *gin.Context, err error) bool {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Validation failed",
			"errors":  verr.Fields,
		})
		return true
	}
	return false
}

func BeginCheckout(ctx *gin.Context) {
	userId, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	cart, err := findOrCreateCart(userId)
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to load cart")
		return
	}
	if len(cart.Items) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Cart is empty")
		return
	}

	session := CheckoutSessions.Begin(userId)
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"session": session})
}

func GetCheckoutSession(ctx *gin.Context) {
	session, _, ok := sessionForUser(ctx)
	if !ok {
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"session": session})
}

func SubmitShipping(ctx *gin.Context) {
	session, _, ok := sessionForUser(ctx)
	if !ok {
		return
	}

	var addr models.ShippingAddress
	if err := ctx.ShouldBindJSON(&addr); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := CheckoutSessions.SubmitShipping(session.ID, addr)
	if err != nil {
		if respondValidation(ctx, err) {
			return
		}
		sendErrorResponse(ctx, http.StatusConflict, err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"session": updated})
}

func SubmitPayment(ctx *gin.Context) {
	session, _, ok := sessionForUser(ctx)
	if !ok {
		return
	}

	var details services.PaymentDetails
	if err := ctx.ShouldBindJSON(&details); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Card numbers, UPI ids and CVVs are validated here and discarded. Only
	// the method name makes it onto the session.
	updated, err := CheckoutSessions.SubmitPayment(session.ID, details)
	if err != nil {
		if respondValidation(ctx, err) {
			return
		}
		sendErrorResponse(ctx, http.StatusConflict, err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"session": updated})
}

func CheckoutBack(ctx *gin.Context) {
	session, _, ok := sessionForUser(ctx)
	if !ok {
		return
	}

	updated, err := CheckoutSessions.Back(session.ID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusConflict, err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"session": updated})
}

// CheckoutSummary assembles the review-step view: cart contents plus the price
// breakdown that will be snapshotted into the order.
func CheckoutSummary(ctx *gin.Context) {
	session, userId, ok := sessionForUser(ctx)
	if !ok {
		return
	}

	cart, err := findOrCreateCart(userId)
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to load cart")
		return
	}

	prices := services.CalculatePrices(cart.Items)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"session": session,
		"items":   cart.Items,
		"prices":  prices,
	})
}

func CancelCheckout(ctx *gin.Context) {
	session, _, ok := sessionForUser(ctx)
	if !ok {
		return
	}
	CheckoutSessions.Cancel(session.ID)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Checkout cancelled"})
}

// SubmitCheckout runs the payment simulator for the chosen method, persists the
// order (and a payment request for manually verified methods) in one
// transaction, then clears the cart. Any failure before the commit leaves the
// cart intact for retry.
func SubmitCheckout(ctx *gin.Context) {
	session, userId, ok := sessionForUser(ctx)
	if !ok {
		return
	}

	// Claim the session before any work so a double-submit of the same wizard
	// cannot create two orders. The claim is released on every failure path.
	session, err := CheckoutSessions.BeginSubmit(session.ID)
	if err != nil {
		if errors.Is(err, services.ErrSubmitInProgress) {
			sendErrorResponse(ctx, http.StatusConflict, "Checkout is already being submitted")
			return
		}
		sendErrorResponse(ctx, http.StatusConflict, "Checkout is not at the review step")
		return
	}

	cart, err := findOrCreateCart(userId)
	if err != nil {
		CheckoutSessions.FailSubmit(session.ID)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to load cart")
		return
	}
	if len(cart.Items) == 0 {
		CheckoutSessions.FailSubmit(session.ID)
		sendErrorResponse(ctx, http.StatusBadRequest, "Cart is empty")
		return
	}

	prices := services.CalculatePrices(cart.Items)

	outcome, err := services.SimulatePayment(ctx.Request.Context(), session.PaymentMethod, session.ShippingAddress.Email)
	if err != nil {
		CheckoutSessions.FailSubmit(session.ID)
		middlewares.RecordCheckoutSubmission(session.PaymentMethod, false)
		sendErrorResponse(ctx, http.StatusBadGateway, "Payment processing failed")
		return
	}

	order := buildOrder(userId, cart.Items, session.ShippingAddress, session.PaymentMethod, prices, outcome)

	if err := persistOrder(&order, userId, session.PaymentMethod); err != nil {
		CheckoutSessions.FailSubmit(session.ID)
		log.Println("Order creation error:", err)
		middlewares.RecordCheckoutSubmission(session.PaymentMethod, false)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	if _, err := CheckoutSessions.Complete(session.ID, int(order.ID)); err != nil {
		// The order exists; a stale wizard state is not worth failing the request over.
		log.Println("Checkout completion error:", err)
	}

	if err := clearCartForUser(userId); err != nil {
		log.Println("Failed to clear cart after checkout:", err)
	}

	middlewares.RecordCheckoutSubmission(session.PaymentMethod, true)
	middlewares.RecordOrderOperation("create", true)

	announceOrderCreated(order)

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order placed successfully.",
		"orderId": order.ID,
		"order":   order,
	})
}

// buildOrder assembles the order snapshot: item copies, the price breakdown and
// the settlement outcome, captured once at creation.
func buildOrder(userId int, items []models.CartItem, addr models.ShippingAddress, method string, prices services.OrderPrices, outcome services.PaymentOutcome) models.Order {
	order := models.Order{
		UserID:          userId,
		ShippingAddress: addr,
		PaymentMethod:   method,
		ItemsPrice:      prices.ItemsPrice,
		ShippingPrice:   prices.ShippingPrice,
		TaxPrice:        prices.TaxPrice,
		TotalPrice:      prices.TotalPrice,
		IsPaid:          outcome.Paid,
		PaidAt:          outcome.PaidAt,
		Status:          models.OrderStatusPending,
		PaymentResult: models.PaymentResult{
			TransactionID: outcome.TransactionID,
			Status:        outcome.Status,
			UpdateTime:    outcome.PaidAt,
			Email:         outcome.Email,
		},
	}
	for _, item := range items {
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			ProductId: item.ProductId,
			Name:      item.ProductName,
			Price:     item.ProductPrice,
			Quantity:  item.ProductQuantity,
			ImageUrl:  item.ProductImageUrl,
		})
	}
	return order
}

// persistOrder writes the order, plus a pending payment request for manually
// verified methods, in one transaction.
func persistOrder(order *models.Order, userId int, method string) error {
	return initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if services.RequiresManualVerification(method) {
			request := models.PaymentRequest{
				OrderID:       int(order.ID),
				UserID:        userId,
				Amount:        order.TotalPrice,
				PaymentMethod: method,
				Status:        models.PaymentRequestPending,
			}
			if err := tx.Create(&request).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func announceOrderCreated(order models.Order) {
	publishOrderCreated(order)
	broadcastNewOrder(order)
	go notifyPaymentWebhook(order)
}

func publishOrderCreated(order models.Order) {
	event := events.OrderEvent{
		OrderID:       int(order.ID),
		UserID:        order.UserID,
		Type:          events.EventOrderCreated,
		Status:        string(order.Status),
		Total:         order.TotalPrice,
		Email:         order.ShippingAddress.Email,
		CustomerName:  order.ShippingAddress.Name,
		PaymentMethod: order.PaymentMethod,
	}
	if err := orderEventBus.PublishOrderEvent(event); err != nil {
		log.Println("Failed to publish order.created event:", err)
	}
}

func publishOrderPaid(order models.Order) {
	event := events.OrderEvent{
		OrderID:       int(order.ID),
		UserID:        order.UserID,
		Type:          events.EventOrderPaid,
		Status:        string(order.Status),
		Total:         order.TotalPrice,
		Email:         order.ShippingAddress.Email,
		CustomerName:  order.ShippingAddress.Name,
		PaymentMethod: order.PaymentMethod,
	}
	if err := orderEventBus.PublishOrderEvent(event); err != nil {
		log.Println("Failed to publish order.paid event:", err)
	}
}

// notifyPaymentWebhook posts an IPN-style notification to the configured
// endpoint so back-office systems can mirror settlement state. Best effort.
func notifyPaymentWebhook(order models.Order) {
	webhookURL := os.Getenv("PAYMENT_WEBHOOK_URL")
	if webhookURL == "" {
		return
	}

	payload := map[string]any{
		"order_id":       order.ID,
		"transaction_id": order.PaymentResult.TransactionID,
		"status":         order.PaymentResult.Status,
		"payment_method": order.PaymentMethod,
		"amount":         order.TotalPrice,
	}

	resp, err := resty.New().SetTimeout(10*time.Second).
		R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(payload).
		Post(webhookURL)

	if err != nil {
		log.Printf("Payment webhook error for order %d: %v", order.ID, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Payment webhook for order %d returned status %d: %s", order.ID, resp.StatusCode(), resp.Body())
	}
}
