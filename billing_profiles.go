package tms

import (
	"context"
	"net/http"
)

// BillingProfiles manages recurring invoicing profiles and their cycle runs.
type BillingProfiles struct {
	c *Client
}

func billingProfilePath(id string) string {
	return "/billing-profiles/" + pathSegment(id)
}

// List returns a page of billing profiles matching params.
func (s *BillingProfiles) List(ctx context.Context, params *ListBillingProfilesParams) (*Page[BillingProfile], error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	return call[*Page[BillingProfile]](ctx, s.c, http.MethodGet, "/billing-profiles", RequestOptions{Query: queryOf(params)})
}

// Get returns a single billing profile.
func (s *BillingProfiles) Get(ctx context.Context, id string) (*BillingProfile, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return callData[*BillingProfile](ctx, s.c, http.MethodGet, billingProfilePath(id), RequestOptions{})
}

// Create adds a billing profile.
func (s *BillingProfiles) Create(ctx context.Context, req CreateBillingProfileRequest) (*BillingProfile, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return callData[*BillingProfile](ctx, s.c, http.MethodPost, "/billing-profiles", RequestOptions{Body: req})
}

// Update changes a billing profile. Nullable fields set to [Null] are cleared.
func (s *BillingProfiles) Update(ctx context.Context, id string, req UpdateBillingProfileRequest) (*BillingProfile, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return callData[*BillingProfile](ctx, s.c, http.MethodPatch, billingProfilePath(id), RequestOptions{Body: req})
}

// Delete deactivates a billing profile and returns its final state.
func (s *BillingProfiles) Delete(ctx context.Context, id string) (*BillingProfile, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return callData[*BillingProfile](ctx, s.c, http.MethodDelete, billingProfilePath(id), RequestOptions{})
}

// ListCycles returns a page of cycle runs of a billing profile.
func (s *BillingProfiles) ListCycles(ctx context.Context, id string, params *ListCycleRunsParams) (*Page[BillingCycleRun], error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}
	return call[*Page[BillingCycleRun]](ctx, s.c, http.MethodGet, billingProfilePath(id)+"/cycles", RequestOptions{Query: queryOf(params)})
}

// TriggerCycle runs the billing cycle of a profile now. A nil req sends an
// empty signed body and lets the backend pick the date.
func (s *BillingProfiles) TriggerCycle(ctx context.Context, id string, req *TriggerCycleRequest) (*BillingCycleRun, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if req == nil {
		req = &TriggerCycleRequest{}
	}
	return callData[*BillingCycleRun](ctx, s.c, http.MethodPost, billingProfilePath(id)+"/cycles", RequestOptions{Body: req})
}
