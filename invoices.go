package tms

import (
	"context"
	"net/http"
)

// Invoices manages invoices and their line items.
type Invoices struct {
	c *Client
}

func invoicePath(id string) string {
	return "/invoices/" + pathSegment(id)
}

// List returns a page of invoices matching params.
func (s *Invoices) List(ctx context.Context, params *ListInvoicesParams) (*Page[Invoice], error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	return call[*Page[Invoice]](ctx, s.c, http.MethodGet, "/invoices", RequestOptions{Query: queryOf(params)})
}

// Get returns an invoice with its line items.
func (s *Invoices) Get(ctx context.Context, id string) (*Invoice, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return call[*Invoice](ctx, s.c, http.MethodGet, invoicePath(id), RequestOptions{})
}

// Create drafts an invoice for a billing period.
func (s *Invoices) Create(ctx context.Context, req CreateInvoiceRequest) (*Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*Invoice](ctx, s.c, http.MethodPost, "/invoices", RequestOptions{Body: req})
}

// Update changes an invoice.
func (s *Invoices) Update(ctx context.Context, id string, req UpdateInvoiceRequest) (*Invoice, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*Invoice](ctx, s.c, http.MethodPatch, invoicePath(id), RequestOptions{Body: req})
}

// Delete removes a draft invoice.
func (s *Invoices) Delete(ctx context.Context, id string) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	_, err := s.c.Do(ctx, http.MethodDelete, invoicePath(id), RequestOptions{})
	return err
}

// Issue finalizes a draft invoice. A nil req sends an empty signed body.
func (s *Invoices) Issue(ctx context.Context, id string, req *IssueInvoiceRequest) (*Invoice, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if req == nil {
		req = &IssueInvoiceRequest{}
	}
	return callData[*Invoice](ctx, s.c, http.MethodPost, invoicePath(id)+"/issue", RequestOptions{Body: req})
}

// SendEmail mails the invoice PDF.
func (s *Invoices) SendEmail(ctx context.Context, id string, req SendInvoiceEmailRequest) (*SendInvoiceEmailResponse, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*SendInvoiceEmailResponse](ctx, s.c, http.MethodPost, invoicePath(id)+"/email", RequestOptions{Body: req})
}

// AddLineItems attaches billing records to a draft invoice.
func (s *Invoices) AddLineItems(ctx context.Context, id string, billingIDs []string) (*MessageResponse, error) {
	return s.lineItems(ctx, http.MethodPost, id, billingIDs)
}

// RemoveLineItems detaches billing records from a draft invoice. The billing
// ids travel in the signed DELETE body.
func (s *Invoices) RemoveLineItems(ctx context.Context, id string, billingIDs []string) (*MessageResponse, error) {
	return s.lineItems(ctx, http.MethodDelete, id, billingIDs)
}

func (s *Invoices) lineItems(ctx context.Context, method, id string, billingIDs []string) (*MessageResponse, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	req := LineItemsRequest{BillingIDs: billingIDs}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*MessageResponse](ctx, s.c, method, invoicePath(id)+"/line-items", RequestOptions{Body: req})
}
