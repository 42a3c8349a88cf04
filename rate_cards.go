package tms

import (
	"context"
	"net/http"
)

// RateCards manages the unit prices charged per service and route.
type RateCards struct {
	c *Client
}

func rateCardPath(id string) string {
	return "/rate-cards/" + pathSegment(id)
}

// List returns the rate cards matching params.
func (s *RateCards) List(ctx context.Context, params *ListRateCardsParams) ([]RateCard, error) {
	return call[[]RateCard](ctx, s.c, http.MethodGet, "/rate-cards", RequestOptions{Query: queryOf(params)})
}

// Get returns a single rate card.
func (s *RateCards) Get(ctx context.Context, id string) (*RateCard, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return call[*RateCard](ctx, s.c, http.MethodGet, rateCardPath(id), RequestOptions{})
}

// Create adds a rate card.
func (s *RateCards) Create(ctx context.Context, req CreateRateCardRequest) (*RateCard, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*RateCard](ctx, s.c, http.MethodPost, "/rate-cards", RequestOptions{Body: req})
}

// Update changes a rate card.
func (s *RateCards) Update(ctx context.Context, id string, req UpdateRateCardRequest) (*RateCard, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*RateCard](ctx, s.c, http.MethodPatch, rateCardPath(id), RequestOptions{Body: req})
}

// Delete removes a rate card.
func (s *RateCards) Delete(ctx context.Context, id string) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	_, err := s.c.Do(ctx, http.MethodDelete, rateCardPath(id), RequestOptions{})
	return err
}
