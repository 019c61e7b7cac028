package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v82"
)

type ProviderMock struct {
	mock.Mock
}

func (m *ProviderMock) CreateProduct(ctx context.Context, name, description string) (*stripe.Product, error) {
	args := m.Called(ctx, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.Product), args.Error(1)
}

func (m *ProviderMock) CreatePrice(ctx context.Context, productID string, unitAmount int64, currency string) (*stripe.Price, error) {
	args := m.Called(ctx, productID, unitAmount, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.Price), args.Error(1)
}

func (m *ProviderMock) CreatePaymentLink(ctx context.Context, priceID string, quantity int64) (*stripe.PaymentLink, error) {
	args := m.Called(ctx, priceID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.PaymentLink), args.Error(1)
}

func (m *ProviderMock) ListPaymentIntents(ctx context.Context, limit int64) ([]*stripe.PaymentIntent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stripe.PaymentIntent), args.Error(1)
}

func (m *ProviderMock) FindSessionByIntent(ctx context.Context, intentID string) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *ProviderMock) GetSessionWithLineItems(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *ProviderMock) GetProduct(ctx context.Context, productID string) (*stripe.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.Product), args.Error(1)
}
