package provider

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v82"
)

// ErrNoSession reports that a payment intent has no discoverable checkout
// session. Callers treat it as a soft miss, not a provider failure.
var ErrNoSession = errors.New("no checkout session for payment intent")

// Client is the capability surface this service needs from the payment
// provider. One instance per credential mode.
type Client interface {
	CreateProduct(ctx context.Context, name, description string) (*stripe.Product, error)
	CreatePrice(ctx context.Context, productID string, unitAmount int64, currency string) (*stripe.Price, error)
	CreatePaymentLink(ctx context.Context, priceID string, quantity int64) (*stripe.PaymentLink, error)
	ListPaymentIntents(ctx context.Context, limit int64) ([]*stripe.PaymentIntent, error)
	FindSessionByIntent(ctx context.Context, intentID string) (*stripe.CheckoutSession, error)
	GetSessionWithLineItems(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error)
	GetProduct(ctx context.Context, productID string) (*stripe.Product, error)
}
