package models

import "testing"

func TestNormalizeOrderStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    OrderStatus
		wantErr bool
	}{
		{"Pending", OrderStatusPending, false},
		{"pending", OrderStatusPending, false},
		{"PENDING", OrderStatusPending, false},
		{" delivered ", OrderStatusDelivered, false},
		{"Cancelled", OrderStatusCancelled, false},
		{"processing", OrderStatusProcessing, false},
		{"shipped", OrderStatusShipped, false},
		{"returned", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeOrderStatus(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeOrderStatus(%q) expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeOrderStatus(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeOrderStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsValidPaymentMethod(t *testing.T) {
	for _, method := range []string{PaymentMethodCard, PaymentMethodPayPal, PaymentMethodUPI, PaymentMethodRuPay, PaymentMethodCOD} {
		if !IsValidPaymentMethod(method) {
			t.Errorf("%q should be valid", method)
		}
	}
	for _, method := range []string{"", "card", "CREDIT_CARD", "netbanking"} {
		if IsValidPaymentMethod(method) {
			t.Errorf("%q should be invalid", method)
		}
	}
}
