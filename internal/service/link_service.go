package service

import (
	"context"
	"fmt"

	"github.com/nmoretti/payment-link-gateway/internal/dto"
	"github.com/nmoretti/payment-link-gateway/internal/provider"
)

type LinkService struct {
	client provider.Client
}

func NewLinkService(client provider.Client) *LinkService {
	return &LinkService{client: client}
}

type LinkResult struct {
	PaymentLinkID string
	URL           string
}

// CreateLink runs the dependent creation sequence product -> price -> payment
// link. The first provider failure aborts the remaining steps.
func (s *LinkService) CreateLink(ctx context.Context, p dto.LinkParams) (*LinkResult, error) {
	product, err := s.client.CreateProduct(ctx, p.ProductName, p.ProductDescription)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	price, err := s.client.CreatePrice(ctx, product.ID, p.UnitAmount, p.Currency)
	if err != nil {
		return nil, fmt.Errorf("create price: %w", err)
	}

	link, err := s.client.CreatePaymentLink(ctx, price.ID, p.Quantity)
	if err != nil {
		return nil, fmt.Errorf("create payment link: %w", err)
	}

	return &LinkResult{PaymentLinkID: link.ID, URL: link.URL}, nil
}
