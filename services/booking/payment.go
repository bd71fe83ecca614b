package booking

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"coachly/models"
)

// PaymentProcessor creates payment intents for a booking's outstanding
// balance. The ledger on the record stays authoritative: amounts actually
// received are recorded through RecordPayment, never inferred here.
type PaymentProcessor interface {
	CreatePaymentIntent(ctx context.Context, b models.Booking, currency string) (*stripe.PaymentIntent, error)
}

// StripePaymentHandler implements PaymentProcessor with Stripe payment
// intents.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewStripePaymentHandler returns a handler. Callers must have set
// stripe.Key beforehand.
func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

// CreatePaymentIntent opens a Stripe payment intent for the booking's
// amount due, in the smallest currency unit.
func (h *StripePaymentHandler) CreatePaymentIntent(ctx context.Context, b models.Booking, currency string) (*stripe.PaymentIntent, error) {
	if b.PaymentInfo.AmountDue <= 0 {
		return nil, fmt.Errorf("booking %s has no outstanding balance", b.ID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(b.PaymentInfo.AmountDue * 100))),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	params.AddMetadata("bookingId", b.ID)
	params.AddMetadata("bookingNumber", b.BookingNumber)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent for booking %s: %w", b.ID, err)
	}

	h.logger.Info("payment intent created",
		zap.String("bookingId", b.ID),
		zap.String("paymentIntent", pi.ID),
		zap.Int64("amount", pi.Amount))
	return pi, nil
}
