package services

import (
	"regexp"
	"strings"

	"github.com/woodora/woodora-api/models"
)

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upiPattern   = regexp.MustCompile(`^[\w.\-]+@[\w\-]+$`)
)

// PaymentDetails carries the method-specific fields entered at checkout step two.
// They are validated and immediately discarded; only the method survives.
type PaymentDetails struct {
	Method     string `json:"method"`
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
	UpiID      string `json:"upiId"`
	RupayID    string `json:"rupayId"`
}

// ValidateShippingAddress returns a field-keyed error map; an empty map means valid.
// Phone must be exactly ten digits. Formatted numbers are rejected as entered,
// no sanitizing happens before the check.
func ValidateShippingAddress(addr models.ShippingAddress) map[string]string {
	errs := make(map[string]string)

	required := map[string]string{
		"name":       addr.Name,
		"address":    addr.Address,
		"city":       addr.City,
		"state":      addr.State,
		"postalCode": addr.PostalCode,
		"country":    addr.Country,
		"phone":      addr.Phone,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs[field] = field + " is required"
		}
	}

	if _, ok := errs["phone"]; !ok && !phonePattern.MatchString(addr.Phone) {
		errs["phone"] = "phone must be exactly 10 digits"
	}

	if strings.TrimSpace(addr.Email) == "" {
		errs["email"] = "email is required"
	} else if !emailPattern.MatchString(addr.Email) {
		errs["email"] = "email is invalid"
	}

	return errs
}

// ValidatePaymentDetails returns a field-keyed error map; an empty map means valid.
func ValidatePaymentDetails(details PaymentDetails) map[string]string {
	errs := make(map[string]string)

	if details.Method == "" {
		errs["method"] = "payment method is required"
		return errs
	}
	if !models.IsValidPaymentMethod(details.Method) {
		errs["method"] = "unknown payment method"
		return errs
	}

	switch details.Method {
	case models.PaymentMethodCard:
		if strings.TrimSpace(details.CardName) == "" {
			errs["cardName"] = "cardName is required"
		}
		if strings.TrimSpace(details.CardNumber) == "" {
			errs["cardNumber"] = "cardNumber is required"
		}
		if strings.TrimSpace(details.ExpiryDate) == "" {
			errs["expiryDate"] = "expiryDate is required"
		}
		if strings.TrimSpace(details.CVV) == "" {
			errs["cvv"] = "cvv is required"
		}
	case models.PaymentMethodUPI:
		if strings.TrimSpace(details.UpiID) == "" {
			errs["upiId"] = "upiId is required"
		} else if !upiPattern.MatchString(details.UpiID) {
			errs["upiId"] = "upiId must look like name@provider"
		}
	case models.PaymentMethodRuPay:
		if strings.TrimSpace(details.RupayID) == "" {
			errs["rupayId"] = "rupayId is required"
		}
	}

	return errs
}
