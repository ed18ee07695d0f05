package services

import (
	"math"

	"github.com/woodora/woodora-api/models"
)

const (
	// Orders above this items subtotal ship free.
	FreeShippingThreshold = 10000.0
	FlatShippingFee       = 500.0
	TaxRate               = 0.18
)

// OrderPrices is the price breakdown captured once at order creation.
type OrderPrices struct {
	ItemsPrice    float64 `json:"itemsPrice"`
	ShippingPrice float64 `json:"shippingPrice"`
	TaxPrice      float64 `json:"taxPrice"`
	TotalPrice    float64 `json:"totalPrice"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculatePrices derives the shipping, tax and total for a cart. Pure function
// of the cart contents; the result is snapshotted into the order at submission.
func CalculatePrices(items []models.CartItem) OrderPrices {
	var prices OrderPrices
	for _, item := range items {
		prices.ItemsPrice += item.ProductPrice * float64(item.ProductQuantity)
	}
	prices.ItemsPrice = round2(prices.ItemsPrice)

	if prices.ItemsPrice > FreeShippingThreshold {
		prices.ShippingPrice = 0
	} else {
		prices.ShippingPrice = FlatShippingFee
	}

	prices.TaxPrice = round2(TaxRate * prices.ItemsPrice)
	prices.TotalPrice = round2(prices.ItemsPrice + prices.ShippingPrice + prices.TaxPrice)
	return prices
}

// MatchesQuote reports whether a client-quoted total agrees with the computed
// one. Both sides are rounded to paise, so the tolerance only absorbs float
// representation noise, never a real price difference.
func (p OrderPrices) MatchesQuote(quotedTotal float64) bool {
	return math.Abs(p.TotalPrice-quotedTotal) < 0.005
}
