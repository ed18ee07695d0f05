package services

import (
	"errors"
	"testing"

	"github.com/woodora/woodora-api/models"
)

func TestCheckoutHappyPath(t *testing.T) {
	store := NewCheckoutStore()
	session := store.Begin(7)
	if session.Step != StepShipping {
		t.Fatalf("new session starts at %v, want shipping", session.Step)
	}

	session, err := store.SubmitShipping(session.ID, validAddress())
	if err != nil {
		t.Fatal(err)
	}
	if session.Step != StepPayment {
		t.Fatalf("after shipping, step = %v, want payment", session.Step)
	}

	session, err = store.SubmitPayment(session.ID, PaymentDetails{Method: models.PaymentMethodCOD})
	if err != nil {
		t.Fatal(err)
	}
	if session.Step != StepReview {
		t.Fatalf("after payment, step = %v, want review", session.Step)
	}

	session, err = store.Complete(session.ID, 42)
	if err != nil {
		t.Fatal(err)
	}
	if session.Step != StepSuccess || session.OrderID != 42 {
		t.Fatalf("after completion, step = %v orderID = %d", session.Step, session.OrderID)
	}
}

func TestCheckoutForwardNavigationGuarded(t *testing.T) {
	store := NewCheckoutStore()
	session := store.Begin(1)

	addr := validAddress()
	addr.Phone = "98765"
	if _, err := store.SubmitShipping(session.ID, addr); err == nil {
		t.Fatal("invalid address must block the shipping step")
	} else {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("want ValidationError, got %T", err)
		}
		if _, ok := verr.Fields["phone"]; !ok {
			t.Errorf("expected phone error, got %v", verr.Fields)
		}
	}

	got, err := store.Get(session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Step != StepShipping {
		t.Errorf("failed validation must not advance the wizard, step = %v", got.Step)
	}

	// payment cannot be submitted before shipping passed
	if _, err := store.SubmitPayment(session.ID, PaymentDetails{Method: models.PaymentMethodCOD}); err != ErrWrongStep {
		t.Errorf("want ErrWrongStep, got %v", err)
	}
}

func TestCheckoutBackKeepsData(t *testing.T) {
	store := NewCheckoutStore()
	session := store.Begin(1)

	if _, err := store.SubmitShipping(session.ID, validAddress()); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SubmitPayment(session.ID, PaymentDetails{Method: models.PaymentMethodUPI, UpiID: "user@paytm"}); err != nil {
		t.Fatal(err)
	}

	session, err := store.Back(session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if session.Step != StepPayment {
		t.Fatalf("back from review lands on %v, want payment", session.Step)
	}
	if session.ShippingAddress.City != "Pune" || session.PaymentMethod != models.PaymentMethodUPI {
		t.Error("back navigation must not lose entered data")
	}

	session, _ = store.Back(session.ID)
	session, _ = store.Back(session.ID)
	if session.Step != StepShipping {
		t.Errorf("back never goes past shipping, got %v", session.Step)
	}
}

func TestCheckoutCompleteOnlyFromReview(t *testing.T) {
	store := NewCheckoutStore()
	session := store.Begin(1)
	if _, err := store.Complete(session.ID, 1); err != ErrWrongStep {
		t.Errorf("completing from shipping should fail, got %v", err)
	}
}

// reviewSession drives a fresh wizard to the review step.
func reviewSession(t *testing.T, store *CheckoutStore, userID int) *CheckoutSession {
	t.Helper()
	session := store.Begin(userID)
	if _, err := store.SubmitShipping(session.ID, validAddress()); err != nil {
		t.Fatal(err)
	}
	session, err := store.SubmitPayment(session.ID, PaymentDetails{Method: models.PaymentMethodCOD})
	if err != nil {
		t.Fatal(err)
	}
	return session
}

func TestCheckoutSubmitClaimIsExclusive(t *testing.T) {
	store := NewCheckoutStore()
	session := reviewSession(t, store, 5)

	if _, err := store.BeginSubmit(session.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := store.BeginSubmit(session.ID); err != ErrSubmitInProgress {
		t.Fatalf("second submit claim should be refused, got %v", err)
	}
	// no other mutation may slip in while the claim is held
	if _, err := store.Back(session.ID); err != ErrSubmitInProgress {
		t.Errorf("back during submission should be refused, got %v", err)
	}
	if _, err := store.SubmitShipping(session.ID, validAddress()); err != ErrSubmitInProgress {
		t.Errorf("shipping update during submission should be refused, got %v", err)
	}

	session, err := store.Complete(session.ID, 11)
	if err != nil {
		t.Fatal(err)
	}
	if session.Step != StepSuccess || session.OrderID != 11 {
		t.Fatalf("after completion, step = %v orderID = %d", session.Step, session.OrderID)
	}
}

func TestCheckoutFailSubmitReleasesClaim(t *testing.T) {
	store := NewCheckoutStore()
	session := reviewSession(t, store, 6)

	if _, err := store.BeginSubmit(session.ID); err != nil {
		t.Fatal(err)
	}
	store.FailSubmit(session.ID)

	// the user can retry after a failed attempt
	if _, err := store.BeginSubmit(session.ID); err != nil {
		t.Fatalf("retry after failure should reclaim the session, got %v", err)
	}
}

func TestCheckoutSubmitClaimRequiresReviewStep(t *testing.T) {
	store := NewCheckoutStore()
	session := store.Begin(8)
	if _, err := store.BeginSubmit(session.ID); err != ErrWrongStep {
		t.Errorf("claiming from shipping should fail, got %v", err)
	}
}

func TestCheckoutBeginDiscardsStaleSession(t *testing.T) {
	store := NewCheckoutStore()
	first := store.Begin(9)
	store.Begin(9)
	if _, err := store.Get(first.ID); err != ErrSessionNotFound {
		t.Errorf("starting over must discard the old session, got %v", err)
	}
}

func TestCheckoutCancel(t *testing.T) {
	store := NewCheckoutStore()
	session := store.Begin(3)
	store.Cancel(session.ID)
	if _, err := store.Get(session.ID); err != ErrSessionNotFound {
		t.Errorf("cancelled session still retrievable: %v", err)
	}
}
