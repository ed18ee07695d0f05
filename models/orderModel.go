package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// Payment methods accepted at checkout. Everything except cod is simulated.
const (
	PaymentMethodCard   = "credit_card"
	PaymentMethodPayPal = "paypal"
	PaymentMethodUPI    = "upi"
	PaymentMethodRuPay  = "rupay"
	PaymentMethodCOD    = "cod"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// NormalizeOrderStatus maps a status string of any casing onto the canonical
// Title-cased value stored in the database.
func NormalizeOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "pending":
		return OrderStatusPending, nil
	case "processing":
		return OrderStatusProcessing, nil
	case "shipped":
		return OrderStatusShipped, nil
	case "delivered":
		return OrderStatusDelivered, nil
	case "cancelled":
		return OrderStatusCancelled, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

// IsValidPaymentMethod reports whether method is one of the accepted checkout methods.
func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCard, PaymentMethodPayPal, PaymentMethodUPI, PaymentMethodRuPay, PaymentMethodCOD:
		return true
	}
	return false
}

// ShippingAddress is captured at checkout step one and embedded immutably into the order.
type ShippingAddress struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// PaymentResult is the fabricated gateway summary. Card numbers, UPI ids and the
// like are never persisted; this is all that survives of the payment step.
type PaymentResult struct {
	TransactionID string     `json:"id"`
	Status        string     `json:"status"`
	UpdateTime    *time.Time `json:"update_time"`
	Email         string     `json:"email"`
}

type OrderItem struct {
	gorm.Model
	OrderID   int     `json:"orderId"`
	ProductId int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageUrl  string  `json:"imageUrl"`
}

type Order struct {
	gorm.Model
	UserID          int             `json:"userId" gorm:"index"`
	OrderItems      []OrderItem     `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ShippingAddress ShippingAddress `json:"shippingAddress" gorm:"embedded;embeddedPrefix:ship_"`
	PaymentMethod   string          `json:"paymentMethod"`
	ItemsPrice      float64         `json:"itemsPrice"`
	ShippingPrice   float64         `json:"shippingPrice"`
	TaxPrice        float64         `json:"taxPrice"`
	TotalPrice      float64         `json:"totalPrice"`
	IsPaid          bool            `json:"isPaid"`
	PaidAt          *time.Time      `json:"paidAt"`
	PaymentResult   PaymentResult   `json:"paymentResult" gorm:"embedded;embeddedPrefix:payment_"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(20);default:'Pending'"`
	DeliveredAt     *time.Time      `json:"deliveredAt"`
}
