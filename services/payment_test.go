package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/woodora/woodora-api/models"
)

func init() {
	// keep gateway round-trips out of the test clock
	GatewayDelay = time.Millisecond
}

func TestSimulatePaymentSettledMethods(t *testing.T) {
	for _, method := range []string{models.PaymentMethodCard, models.PaymentMethodPayPal, models.PaymentMethodRuPay} {
		outcome, err := SimulatePayment(context.Background(), method, "buyer@example.com")
		if err != nil {
			t.Fatalf("%s: %v", method, err)
		}
		if !outcome.Paid || outcome.Status != "completed" {
			t.Errorf("%s: want paid/completed, got paid=%v status=%q", method, outcome.Paid, outcome.Status)
		}
		if outcome.PaidAt == nil {
			t.Errorf("%s: PaidAt not set", method)
		}
		if outcome.Email != "buyer@example.com" {
			t.Errorf("%s: email not carried through", method)
		}
		if !strings.HasPrefix(outcome.TransactionID, strings.ToUpper(method)+"-") {
			t.Errorf("%s: transaction id %q lacks method prefix", method, outcome.TransactionID)
		}
	}
}

func TestSimulatePaymentUPIAlwaysPending(t *testing.T) {
	outcome, err := SimulatePayment(context.Background(), models.PaymentMethodUPI, "buyer@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Paid || outcome.Status != "pending" {
		t.Errorf("upi must settle pending and unpaid, got paid=%v status=%q", outcome.Paid, outcome.Status)
	}
	if outcome.PaidAt != nil {
		t.Error("upi outcome must not carry PaidAt")
	}
}

func TestSimulatePaymentCOD(t *testing.T) {
	outcome, err := SimulatePayment(context.Background(), models.PaymentMethodCOD, "buyer@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Paid || outcome.Status != "pending" {
		t.Errorf("cod must settle pending and unpaid, got paid=%v status=%q", outcome.Paid, outcome.Status)
	}
	if outcome.Email != "" {
		t.Errorf("cod outcome must not carry an email, got %q", outcome.Email)
	}
}

func TestSimulatePaymentUnknownMethod(t *testing.T) {
	if _, err := SimulatePayment(context.Background(), "cheque", ""); err != ErrUnknownPaymentMethod {
		t.Errorf("want ErrUnknownPaymentMethod, got %v", err)
	}
}

func TestSimulatePaymentHonorsCancellation(t *testing.T) {
	old := GatewayDelay
	GatewayDelay = time.Second
	defer func() { GatewayDelay = old }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := SimulatePayment(ctx, models.PaymentMethodCard, ""); err == nil {
		t.Error("cancelled context should abort the gateway delay")
	}
}

func TestRequiresManualVerification(t *testing.T) {
	if !RequiresManualVerification(models.PaymentMethodUPI) || !RequiresManualVerification(models.PaymentMethodRuPay) {
		t.Error("upi and rupay require manual verification")
	}
	if RequiresManualVerification(models.PaymentMethodCard) || RequiresManualVerification(models.PaymentMethodCOD) {
		t.Error("card and cod must not require manual verification")
	}
}
