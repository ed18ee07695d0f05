package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/woodora/woodora-api/models"
)

var (
	ErrRequestNotPending      = errors.New("payment request is not pending")
	ErrInvalidRequestStatus   = errors.New("payment request status must be completed, rejected or cancelled")
	ErrRequestOrderMismatched = errors.New("order does not belong to the payment request")
)

// ApplyPaymentRequestTransition moves a pending request to its final status and,
// on approval, marks the linked order paid. Both records are mutated in memory;
// the caller persists them inside one transaction so they cannot drift apart.
// Rejection and cancellation leave the order untouched.
func ApplyPaymentRequestTransition(request *models.PaymentRequest, order *models.Order, newStatus models.PaymentRequestStatus, notes string, now time.Time) error {
	switch newStatus {
	case models.PaymentRequestCompleted, models.PaymentRequestRejected, models.PaymentRequestCancelled:
	default:
		return ErrInvalidRequestStatus
	}
	if request.Status != models.PaymentRequestPending {
		return ErrRequestNotPending
	}
	if request.OrderID != int(order.ID) {
		return ErrRequestOrderMismatched
	}

	request.Status = newStatus
	if notes != "" {
		request.Notes = notes
	}

	if newStatus != models.PaymentRequestCompleted {
		return nil
	}

	order.IsPaid = true
	order.PaidAt = &now
	order.PaymentResult.Status = "completed"
	order.PaymentResult.UpdateTime = &now
	if order.PaymentResult.TransactionID == "" {
		order.PaymentResult.TransactionID = request.PaymentMethod + "-request-" + strconv.Itoa(int(request.ID))
	}
	return nil
}
