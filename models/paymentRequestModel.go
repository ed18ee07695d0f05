package models

import "gorm.io/gorm"

type PaymentRequestStatus string

const (
	PaymentRequestPending   PaymentRequestStatus = "pending"
	PaymentRequestCompleted PaymentRequestStatus = "completed"
	PaymentRequestRejected  PaymentRequestStatus = "rejected"
	PaymentRequestCancelled PaymentRequestStatus = "cancelled"
)

// PaymentRequest is the manual-verification record created alongside orders paid
// with methods that have no gateway settlement (upi, rupay). An admin approving
// the request is what marks the linked order paid.
type PaymentRequest struct {
	gorm.Model
	OrderID       int                  `json:"orderId" gorm:"index"`
	UserID        int                  `json:"userId" gorm:"index"`
	Amount        float64              `json:"amount"`
	PaymentMethod string               `json:"paymentMethod"`
	Status        PaymentRequestStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Notes         string               `json:"notes"`
}
