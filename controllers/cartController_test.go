package controllers

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func TestUpdateCartItemBodyAcceptsZeroQuantity(t *testing.T) {
	var body updateCartItemBody
	if err := binding.JSON.BindBody([]byte(`{"productQuantity":0}`), &body); err != nil {
		t.Fatalf("zero quantity must bind (it removes the item), got %v", err)
	}
	if body.ProductQuantity == nil || *body.ProductQuantity != 0 {
		t.Fatalf("quantity = %v, want 0", body.ProductQuantity)
	}

	// negative quantities bind too; the handler routes them to removal
	var negative updateCartItemBody
	if err := binding.JSON.BindBody([]byte(`{"productQuantity":-2}`), &negative); err != nil {
		t.Fatalf("negative quantity must bind, got %v", err)
	}

	var missing updateCartItemBody
	if err := binding.JSON.BindBody([]byte(`{}`), &missing); err == nil {
		t.Fatal("a body without productQuantity must be rejected")
	}
}
