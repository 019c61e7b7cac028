package provider

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeClient implements Client against the Stripe API. The underlying
// client.API carries its own key, so live and test instances stay independent.
type StripeClient struct {
	api *client.API
}

func NewStripeClient(apiKey string) *StripeClient {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeClient{api: api}
}

func (c *StripeClient) CreateProduct(ctx context.Context, name, description string) (*stripe.Product, error) {
	params := &stripe.ProductParams{
		Name: stripe.String(name),
	}
	if description != "" {
		params.Description = stripe.String(description)
	}
	params.Context = ctx
	return c.api.Products.New(params)
}

func (c *StripeClient) CreatePrice(ctx context.Context, productID string, unitAmount int64, currency string) (*stripe.Price, error) {
	params := &stripe.PriceParams{
		Product:     stripe.String(productID),
		UnitAmount:  stripe.Int64(unitAmount),
		Currency:    stripe.String(currency),
		TaxBehavior: stripe.String(string(stripe.PriceTaxBehaviorExclusive)),
	}
	params.Context = ctx
	return c.api.Prices.New(params)
}

func (c *StripeClient) CreatePaymentLink(ctx context.Context, priceID string, quantity int64) (*stripe.PaymentLink, error) {
	params := &stripe.PaymentLinkParams{
		LineItems: []*stripe.PaymentLinkLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(quantity),
			},
		},
		AutomaticTax: &stripe.PaymentLinkAutomaticTaxParams{
			Enabled: stripe.Bool(true),
		},
		PhoneNumberCollection: &stripe.PaymentLinkPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	return c.api.PaymentLinks.New(params)
}

func (c *StripeClient) ListPaymentIntents(ctx context.Context, limit int64) ([]*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentListParams{}
	params.Context = ctx
	params.Limit = stripe.Int64(limit)
	// one page only, no auto-pagination past the limit
	params.Single = true
	params.AddExpand("data.latest_charge")

	var intents []*stripe.PaymentIntent
	it := c.api.PaymentIntents.List(params)
	for it.Next() {
		intents = append(intents, it.PaymentIntent())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return intents, nil
}

func (c *StripeClient) FindSessionByIntent(ctx context.Context, intentID string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionListParams{
		PaymentIntent: stripe.String(intentID),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(1)
	params.Single = true

	it := c.api.CheckoutSessions.List(params)
	if it.Next() {
		return it.CheckoutSession(), nil
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return nil, ErrNoSession
}

func (c *StripeClient) GetSessionWithLineItems(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("line_items")
	return c.api.CheckoutSessions.Get(sessionID, params)
}

func (c *StripeClient) GetProduct(ctx context.Context, productID string) (*stripe.Product, error) {
	params := &stripe.ProductParams{}
	params.Context = ctx
	return c.api.Products.Get(productID, params)
}
