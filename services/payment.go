package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/woodora/woodora-api/models"
)

// GatewayDelay stands in for a real gateway round-trip. Tests shorten it.
var GatewayDelay = 1500 * time.Millisecond

// PaymentOutcome is the fabricated settlement result a simulator returns. It is
// the only payment data that is ever persisted.
type PaymentOutcome struct {
	TransactionID string
	Status        string
	Paid          bool
	PaidAt        *time.Time
	Email         string
}

func transactionID(method string) string {
	return strings.ToUpper(method) + "-" + uuid.NewString()
}

func sleepGateway(ctx context.Context) error {
	select {
	case <-time.After(GatewayDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SimulatePayment fabricates a settlement for the given method.
//
// card, paypal and rupay settle immediately after the gateway delay. upi settles
// pending and stays unpaid until an admin approves its payment request. cod skips
// the delay entirely and carries no payer email.
func SimulatePayment(ctx context.Context, method, email string) (PaymentOutcome, error) {
	switch method {
	case models.PaymentMethodCard, models.PaymentMethodPayPal, models.PaymentMethodRuPay:
		if err := sleepGateway(ctx); err != nil {
			return PaymentOutcome{}, err
		}
		now := time.Now()
		return PaymentOutcome{
			TransactionID: transactionID(method),
			Status:        "completed",
			Paid:          true,
			PaidAt:        &now,
			Email:         email,
		}, nil
	case models.PaymentMethodUPI:
		if err := sleepGateway(ctx); err != nil {
			return PaymentOutcome{}, err
		}
		return PaymentOutcome{
			TransactionID: transactionID(method),
			Status:        "pending",
			Email:         email,
		}, nil
	case models.PaymentMethodCOD:
		return PaymentOutcome{
			TransactionID: transactionID(method),
			Status:        "pending",
		}, nil
	default:
		return PaymentOutcome{}, ErrUnknownPaymentMethod
	}
}

// RequiresManualVerification reports whether orders paid with method get a
// payment request that an admin has to act on.
func RequiresManualVerification(method string) bool {
	return method == models.PaymentMethodUPI || method == models.PaymentMethodRuPay
}
