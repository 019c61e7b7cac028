package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v82"
	"golang.org/x/sync/errgroup"

	"github.com/nmoretti/payment-link-gateway/internal/model"
	"github.com/nmoretti/payment-link-gateway/internal/provider"
)

type PaymentService struct {
	client      provider.Client
	pageLimit   int64
	concurrency int
}

func NewPaymentService(client provider.Client, pageLimit int64, concurrency int) *PaymentService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &PaymentService{client: client, pageLimit: pageLimit, concurrency: concurrency}
}

// ListSuccessful lists recent payment intents, keeps the succeeded ones and
// resolves each into a denormalized record. Resolution runs concurrently per
// intent; a failed or session-less intent drops that record only, never the
// whole report. Listing order is preserved.
func (s *PaymentService) ListSuccessful(ctx context.Context) ([]model.PaymentRecord, error) {
	intents, err := s.client.ListPaymentIntents(ctx, s.pageLimit)
	if err != nil {
		return nil, fmt.Errorf("list payment intents: %w", err)
	}

	var succeeded []*stripe.PaymentIntent
	for _, intent := range intents {
		if intent.Status == stripe.PaymentIntentStatusSucceeded {
			succeeded = append(succeeded, intent)
		}
	}

	resolved := make([]*model.PaymentRecord, len(succeeded))
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for i, intent := range succeeded {
		i, intent := i, intent
		g.Go(func() error {
			record, err := s.resolveRecord(ctx, intent)
			if err != nil {
				if errors.Is(err, provider.ErrNoSession) {
					log.Debug().Str("intent", intent.ID).Msg("no checkout session, dropping record")
				} else {
					log.Warn().Err(err).Str("intent", intent.ID).Msg("dropping unresolvable payment record")
				}
				return nil
			}
			resolved[i] = record
			return nil
		})
	}
	// goroutines never return an error, failures only drop their own slot
	_ = g.Wait()

	records := make([]model.PaymentRecord, 0, len(succeeded))
	for _, r := range resolved {
		if r != nil {
			records = append(records, *r)
		}
	}
	return records, nil
}

func (s *PaymentService) resolveRecord(ctx context.Context, intent *stripe.PaymentIntent) (*model.PaymentRecord, error) {
	found, err := s.client.FindSessionByIntent(ctx, intent.ID)
	if err != nil {
		return nil, err
	}

	session, err := s.client.GetSessionWithLineItems(ctx, found.ID)
	if err != nil {
		return nil, fmt.Errorf("retrieve session %s: %w", found.ID, err)
	}

	record := &model.PaymentRecord{
		ID:          intent.ID,
		Amount:      intent.Amount,
		Currency:    string(intent.Currency),
		Status:      string(intent.Status),
		Created:     model.EpochToInstant(intent.Created),
		BuyerEmail:  model.ContactUnavailable,
		BuyerName:   model.ContactUnavailable,
		BuyerPhone:  model.ContactUnavailable,
		ItemsBought: []model.LineItem{},
	}

	if details := session.CustomerDetails; details != nil {
		if details.Email != "" {
			record.BuyerEmail = details.Email
		}
		if details.Name != "" {
			record.BuyerName = details.Name
		}
		if details.Phone != "" {
			record.BuyerPhone = details.Phone
		}
	}
	// the charge's billing details are the fallback; phone is session-only
	if charge := intent.LatestCharge; charge != nil && charge.BillingDetails != nil {
		if record.BuyerEmail == model.ContactUnavailable && charge.BillingDetails.Email != "" {
			record.BuyerEmail = charge.BillingDetails.Email
		}
		if record.BuyerName == model.ContactUnavailable && charge.BillingDetails.Name != "" {
			record.BuyerName = charge.BillingDetails.Name
		}
	}

	if session.LineItems != nil {
		for _, item := range session.LineItems.Data {
			li := model.LineItem{
				Quantity:           item.Quantity,
				ProductDescription: model.DescriptionUnavailable,
			}
			if item.Price != nil && item.Price.Product != nil {
				product, err := s.client.GetProduct(ctx, item.Price.Product.ID)
				if err != nil {
					return nil, fmt.Errorf("resolve product %s: %w", item.Price.Product.ID, err)
				}
				li.ProductName = product.Name
				if product.Description != "" {
					li.ProductDescription = product.Description
				}
			}
			record.ItemsBought = append(record.ItemsBought, li)
		}
	}

	return record, nil
}
