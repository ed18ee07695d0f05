package services

import (
	"testing"
	"time"

	"github.com/woodora/woodora-api/models"
)

func pendingRequestAndOrder() (models.PaymentRequest, models.Order) {
	var order models.Order
	order.ID = 10
	order.TotalPrice = 2860
	order.PaymentMethod = models.PaymentMethodUPI
	order.Status = models.OrderStatusPending

	var request models.PaymentRequest
	request.ID = 3
	request.OrderID = 10
	request.Amount = order.TotalPrice
	request.PaymentMethod = models.PaymentMethodUPI
	request.Status = models.PaymentRequestPending
	return request, order
}

func TestApprovalMarksRequestAndOrderTogether(t *testing.T) {
	request, order := pendingRequestAndOrder()
	now := time.Now()

	if err := ApplyPaymentRequestTransition(&request, &order, models.PaymentRequestCompleted, "verified by ref 123", now); err != nil {
		t.Fatal(err)
	}

	if request.Status != models.PaymentRequestCompleted {
		t.Errorf("request status = %q, want completed", request.Status)
	}
	if request.Notes != "verified by ref 123" {
		t.Errorf("notes = %q, want the admin note", request.Notes)
	}
	if !order.IsPaid {
		t.Error("approving the request must mark the order paid")
	}
	if order.PaidAt == nil || !order.PaidAt.Equal(now) {
		t.Errorf("PaidAt = %v, want %v", order.PaidAt, now)
	}
	if order.PaymentResult.Status != "completed" {
		t.Errorf("payment result status = %q, want completed", order.PaymentResult.Status)
	}
	if order.PaymentResult.TransactionID != "upi-request-3" {
		t.Errorf("fallback transaction id = %q", order.PaymentResult.TransactionID)
	}
}

func TestApprovalKeepsExistingTransactionID(t *testing.T) {
	request, order := pendingRequestAndOrder()
	order.PaymentResult.TransactionID = "RUPAY-abc"

	if err := ApplyPaymentRequestTransition(&request, &order, models.PaymentRequestCompleted, "", time.Now()); err != nil {
		t.Fatal(err)
	}
	if order.PaymentResult.TransactionID != "RUPAY-abc" {
		t.Errorf("transaction id overwritten: %q", order.PaymentResult.TransactionID)
	}
}

func TestRejectionLeavesOrderUntouched(t *testing.T) {
	for _, status := range []models.PaymentRequestStatus{
		models.PaymentRequestRejected,
		models.PaymentRequestCancelled,
	} {
		request, order := pendingRequestAndOrder()
		if err := ApplyPaymentRequestTransition(&request, &order, status, "", time.Now()); err != nil {
			t.Fatal(err)
		}
		if request.Status != status {
			t.Errorf("request status = %q, want %q", request.Status, status)
		}
		if order.IsPaid || order.PaidAt != nil || order.PaymentResult.Status != "" {
			t.Errorf("%s must not modify the order: %+v", status, order)
		}
	}
}

func TestTransitionRequiresPendingRequest(t *testing.T) {
	request, order := pendingRequestAndOrder()
	request.Status = models.PaymentRequestCompleted

	err := ApplyPaymentRequestTransition(&request, &order, models.PaymentRequestRejected, "", time.Now())
	if err != ErrRequestNotPending {
		t.Fatalf("want ErrRequestNotPending, got %v", err)
	}
	if request.Status != models.PaymentRequestCompleted {
		t.Error("a settled request must not change status")
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	request, order := pendingRequestAndOrder()
	if err := ApplyPaymentRequestTransition(&request, &order, "pending", "", time.Now()); err != ErrInvalidRequestStatus {
		t.Fatalf("want ErrInvalidRequestStatus, got %v", err)
	}
}

func TestTransitionRejectsMismatchedOrder(t *testing.T) {
	request, order := pendingRequestAndOrder()
	order.ID = 99
	if err := ApplyPaymentRequestTransition(&request, &order, models.PaymentRequestCompleted, "", time.Now()); err != ErrRequestOrderMismatched {
		t.Fatalf("want ErrRequestOrderMismatched, got %v", err)
	}
}
