package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/woodora/woodora-api/models"
)

// Checkout wizard steps. The flow is linear: forward transitions are guarded by
// the step's validator, Back is unguarded and loses no entered data.
type CheckoutStep int

const (
	StepShipping CheckoutStep = iota + 1
	StepPayment
	StepReview
	StepSuccess
)

var (
	ErrSessionNotFound      = errors.New("checkout session not found")
	ErrWrongStep            = errors.New("operation not allowed at this step")
	ErrSubmitInProgress     = errors.New("checkout submission already in progress")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)

// ValidationError wraps a field-keyed error map so controllers can return it as
// a 422 body instead of a generic message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

// CheckoutSession holds one user's in-flight wizard state. Method-specific
// payment fields are validated and dropped; only the chosen method is kept.
type CheckoutSession struct {
	ID              string                 `json:"id"`
	UserID          int                    `json:"userId"`
	Step            CheckoutStep           `json:"step"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	OrderID         int                    `json:"orderId"`
	CreatedAt       time.Time              `json:"createdAt"`

	// submitting is set while one request holds the submission claim, so a
	// concurrent double-submit cannot create two orders from the same session.
	submitting bool
}

// CheckoutStore keeps sessions in memory. A session is single-user state;
// abandoning checkout simply leaves the entry to be removed on the next Begin
// for the same user or an explicit Cancel.
type CheckoutStore struct {
	mu       sync.Mutex
	sessions map[string]*CheckoutSession
}

func NewCheckoutStore() *CheckoutStore {
	return &CheckoutStore{sessions: make(map[string]*CheckoutSession)}
}

// Begin starts a fresh wizard at the shipping step, discarding any earlier
// session the user abandoned.
func (s *CheckoutStore) Begin(userID int) *CheckoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		if session.UserID == userID {
			delete(s.sessions, id)
		}
	}

	session := &CheckoutSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Step:      StepShipping,
		CreatedAt: time.Now(),
	}
	s.sessions[session.ID] = session
	return session
}

func (s *CheckoutStore) Get(id string) (*CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

// SubmitShipping validates the address and advances Shipping -> Payment.
// Resubmitting from a later step is allowed and overwrites the stored address
// without moving the wizard backward.
func (s *CheckoutStore) SubmitShipping(id string, addr models.ShippingAddress) (*CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.Step == StepSuccess {
		return nil, ErrWrongStep
	}
	if session.submitting {
		return nil, ErrSubmitInProgress
	}

	if errs := ValidateShippingAddress(addr); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	session.ShippingAddress = addr
	if session.Step == StepShipping {
		session.Step = StepPayment
	}
	copied := *session
	return &copied, nil
}

// SubmitPayment validates the method details and advances Payment -> Review.
func (s *CheckoutStore) SubmitPayment(id string, details PaymentDetails) (*CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.Step < StepPayment || session.Step == StepSuccess {
		return nil, ErrWrongStep
	}
	if session.submitting {
		return nil, ErrSubmitInProgress
	}

	if errs := ValidatePaymentDetails(details); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	session.PaymentMethod = details.Method
	if session.Step == StepPayment {
		session.Step = StepReview
	}
	copied := *session
	return &copied, nil
}

// Back moves one step toward Shipping. It is unguarded and keeps all entered data.
func (s *CheckoutStore) Back(id string) (*CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.Step == StepSuccess {
		return nil, ErrWrongStep
	}
	if session.submitting {
		return nil, ErrSubmitInProgress
	}
	if session.Step > StepShipping {
		session.Step--
	}
	copied := *session
	return &copied, nil
}

// BeginSubmit claims a review-step session for submission. The claim is
// exclusive: a second submit attempt fails until Complete or FailSubmit
// releases it.
func (s *CheckoutStore) BeginSubmit(id string) (*CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.Step != StepReview {
		return nil, ErrWrongStep
	}
	if session.submitting {
		return nil, ErrSubmitInProgress
	}
	session.submitting = true
	copied := *session
	return &copied, nil
}

// FailSubmit releases the submission claim after a failed attempt so the user
// can retry.
func (s *CheckoutStore) FailSubmit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.submitting = false
	}
}

// Complete marks the wizard successful after the order has been persisted.
func (s *CheckoutStore) Complete(id string, orderID int) (*CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.Step != StepReview {
		return nil, ErrWrongStep
	}
	session.Step = StepSuccess
	session.OrderID = orderID
	session.submitting = false
	copied := *session
	return &copied, nil
}

// Cancel discards an in-flight session. Nothing was persisted before Success,
// so cancellation is just deletion.
func (s *CheckoutStore) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
