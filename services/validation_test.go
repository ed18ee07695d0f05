package services

import (
	"testing"

	"github.com/woodora/woodora-api/models"
)

func validAddress() models.ShippingAddress {
	return models.ShippingAddress{
		Name:       "Asha Verma",
		Address:    "12 Teak Lane",
		City:       "Pune",
		State:      "Maharashtra",
		PostalCode: "411001",
		Country:    "India",
		Phone:      "9876543210",
		Email:      "asha@example.com",
	}
}

func TestValidateShippingAddress(t *testing.T) {
	if errs := ValidateShippingAddress(validAddress()); len(errs) != 0 {
		t.Fatalf("valid address rejected: %v", errs)
	}

	t.Run("missing city", func(t *testing.T) {
		addr := validAddress()
		addr.City = ""
		errs := ValidateShippingAddress(addr)
		if _, ok := errs["city"]; !ok {
			t.Errorf("expected city error, got %v", errs)
		}
	})

	t.Run("short phone", func(t *testing.T) {
		addr := validAddress()
		addr.Phone = "98765"
		errs := ValidateShippingAddress(addr)
		if _, ok := errs["phone"]; !ok {
			t.Errorf("expected phone error, got %v", errs)
		}
	})

	t.Run("formatted phone rejected as entered", func(t *testing.T) {
		addr := validAddress()
		addr.Phone = "98765-43210"
		errs := ValidateShippingAddress(addr)
		if _, ok := errs["phone"]; !ok {
			t.Errorf("expected phone error for formatted number, got %v", errs)
		}
	})

	t.Run("bad email", func(t *testing.T) {
		addr := validAddress()
		addr.Email = "not-an-email"
		errs := ValidateShippingAddress(addr)
		if _, ok := errs["email"]; !ok {
			t.Errorf("expected email error, got %v", errs)
		}
	})
}

func TestValidatePaymentDetails(t *testing.T) {
	tests := []struct {
		name      string
		details   PaymentDetails
		wantField string
	}{
		{"missing method", PaymentDetails{}, "method"},
		{"unknown method", PaymentDetails{Method: "bitcoin"}, "method"},
		{"card missing cvv", PaymentDetails{
			Method: models.PaymentMethodCard, CardName: "A", CardNumber: "4111111111111111", ExpiryDate: "12/27",
		}, "cvv"},
		{"upi without at-sign", PaymentDetails{Method: models.PaymentMethodUPI, UpiID: "userpaytm"}, "upiId"},
		{"rupay missing id", PaymentDetails{Method: models.PaymentMethodRuPay}, "rupayId"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePaymentDetails(tt.details)
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("expected %q error, got %v", tt.wantField, errs)
			}
		})
	}

	valid := []PaymentDetails{
		{Method: models.PaymentMethodCard, CardName: "A", CardNumber: "4111111111111111", ExpiryDate: "12/27", CVV: "123"},
		{Method: models.PaymentMethodUPI, UpiID: "user@paytm"},
		{Method: models.PaymentMethodRuPay, RupayID: "RU1234"},
		{Method: models.PaymentMethodPayPal},
		{Method: models.PaymentMethodCOD},
	}
	for _, details := range valid {
		if errs := ValidatePaymentDetails(details); len(errs) != 0 {
			t.Errorf("%s: valid details rejected: %v", details.Method, errs)
		}
	}
}
