package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/woodora/woodora-api/initializers"
	"github.com/woodora/woodora-api/middlewares"
	"github.com/woodora/woodora-api/models"
	"github.com/woodora/woodora-api/services"
	"gorm.io/gorm"
)

// CreatePaymentRequest lets a user raise a manual-verification request for an
// unpaid order, e.g. after paying a upi order out of band. Checkout creates
// these automatically for upi and rupay orders.
func CreatePaymentRequest(ctx *gin.Context) {
	userId, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body struct {
		OrderID int    `json:"orderId" binding:"required"`
		Notes   string `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	var order models.Order
	if err := initializers.DB.First(&order, body.OrderID).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}
	if order.UserID != userId {
		sendErrorResponse(ctx, http.StatusForbidden, "Order belongs to another user")
		return
	}
	if order.IsPaid {
		sendErrorResponse(ctx, http.StatusBadRequest, "Order is already paid")
		return
	}

	request := models.PaymentRequest{
		OrderID:       int(order.ID),
		UserID:        userId,
		Amount:        order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
		Status:        models.PaymentRequestPending,
		Notes:         body.Notes,
	}

	if err := initializers.DB.Create(&request).Error; err != nil {
		log.Println("Payment request creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create payment request")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"paymentRequest": request})
}

func GetPaymentRequests(ctx *gin.Context) {
	query := initializers.DB.Order("created_at desc")

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.PaymentRequest
	if err := query.Find(&requests).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch payment requests", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"paymentRequests": requests})
}

// UpdatePaymentRequestStatus approves or rejects a pending request. Approval
// marks the linked order paid in the same transaction as the request update,
// so the two records cannot drift apart.
func UpdatePaymentRequestStatus(ctx *gin.Context) {
	requestId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid payment request id")
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
		Notes  string `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	newStatus := models.PaymentRequestStatus(body.Status)

	var paidOrder models.Order

	// Approval cascade: the request and its order change in one transaction.
	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		var request models.PaymentRequest
		if err := tx.First(&request, requestId).Error; err != nil {
			return err
		}
		var order models.Order
		if err := tx.First(&order, request.OrderID).Error; err != nil {
			return err
		}

		if err := services.ApplyPaymentRequestTransition(&request, &order, newStatus, body.Notes, time.Now()); err != nil {
			return err
		}

		if err := tx.Save(&request).Error; err != nil {
			return err
		}
		if newStatus != models.PaymentRequestCompleted {
			return nil
		}
		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		paidOrder = order
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Payment request not found")
			return
		}
		if errors.Is(err, services.ErrInvalidRequestStatus) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Status must be completed, rejected or cancelled")
			return
		}
		if errors.Is(err, services.ErrRequestNotPending) {
			sendErrorResponse(ctx, http.StatusConflict, "Only pending payment requests can be updated")
			return
		}
		log.Println("Payment request update error:", err)
		middlewares.RecordOrderOperation("payment_approval", false)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update payment request")
		return
	}

	middlewares.RecordOrderOperation("payment_approval", true)

	if newStatus == models.PaymentRequestCompleted && paidOrder.ID != 0 {
		publishOrderPaid(paidOrder)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Payment request updated successfully."})
}
