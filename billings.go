package tms

import (
	"context"
	"net/http"
)

// Billings manages billing records, the billable line items that invoices are
// built from.
type Billings struct {
	c *Client
}

func billingPath(id string) string {
	return "/billings/" + pathSegment(id)
}

// List returns a page of billing records matching params.
func (s *Billings) List(ctx context.Context, params *ListBillingsParams) (*Page[BillingRecord], error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	return call[*Page[BillingRecord]](ctx, s.c, http.MethodGet, "/billings", RequestOptions{Query: queryOf(params)})
}

// Get returns a single billing record.
func (s *Billings) Get(ctx context.Context, id string) (*BillingRecord, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return call[*BillingRecord](ctx, s.c, http.MethodGet, billingPath(id), RequestOptions{})
}

// Create records a billable item.
func (s *Billings) Create(ctx context.Context, req CreateBillingRequest) (*BillingRecord, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*BillingRecord](ctx, s.c, http.MethodPost, "/billings", RequestOptions{Body: req})
}

// Update changes a billing record.
func (s *Billings) Update(ctx context.Context, id string, req UpdateBillingRequest) (*BillingRecord, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*BillingRecord](ctx, s.c, http.MethodPatch, billingPath(id), RequestOptions{Body: req})
}

// Delete removes a billing record.
func (s *Billings) Delete(ctx context.Context, id string) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	_, err := s.c.Do(ctx, http.MethodDelete, billingPath(id), RequestOptions{})
	return err
}

// SendEmail mails a billing statement for the selected records.
func (s *Billings) SendEmail(ctx context.Context, req BillingEmailRequest) (*BillingEmailResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*BillingEmailResponse](ctx, s.c, http.MethodPost, "/billings/email", RequestOptions{Body: req})
}
