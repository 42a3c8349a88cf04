package tms

import (
	"context"
	"net/http"
)

// Payments manages received payments, their invoice allocations, bank slips
// and FlashPay collection.
type Payments struct {
	c *Client
}

func paymentPath(id string) string {
	return "/payments/" + pathSegment(id)
}

// List returns a page of payments matching params.
func (s *Payments) List(ctx context.Context, params *ListPaymentsParams) (*Page[Payment], error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	return call[*Page[Payment]](ctx, s.c, http.MethodGet, "/payments", RequestOptions{Query: queryOf(params)})
}

// Get returns a payment with its allocations.
func (s *Payments) Get(ctx context.Context, id string) (*Payment, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return call[*Payment](ctx, s.c, http.MethodGet, paymentPath(id), RequestOptions{})
}

// Create records a payment and allocates it to invoices.
func (s *Payments) Create(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*Payment](ctx, s.c, http.MethodPost, "/payments", RequestOptions{Body: req})
}

// Update changes the status or reference of a payment.
func (s *Payments) Update(ctx context.Context, id string, req UpdatePaymentRequest) (*Payment, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*Payment](ctx, s.c, http.MethodPatch, paymentPath(id), RequestOptions{Body: req})
}

// Delete removes a payment.
func (s *Payments) Delete(ctx context.Context, id string) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	_, err := s.c.Do(ctx, http.MethodDelete, paymentPath(id), RequestOptions{})
	return err
}

// Allocations lists how a payment is split across invoices.
func (s *Payments) Allocations(ctx context.Context, id string) ([]PaymentAllocation, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return call[[]PaymentAllocation](ctx, s.c, http.MethodGet, paymentPath(id)+"/allocations", RequestOptions{})
}

// ReplaceAllocations swaps every allocation of a payment for allocations.
func (s *Payments) ReplaceAllocations(ctx context.Context, id string, allocations []AllocationInput) (*MessageResponse, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	req := ReplaceAllocationsRequest{Allocations: allocations}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*MessageResponse](ctx, s.c, http.MethodPut, paymentPath(id)+"/allocations", RequestOptions{Body: req})
}

// CreateAllocation assigns amount of a payment to an invoice.
func (s *Payments) CreateAllocation(ctx context.Context, id, invoiceID string, amount float64) (*PaymentAllocation, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	req := AllocationInput{InvoiceID: invoiceID, Amount: amount}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*PaymentAllocation](ctx, s.c, http.MethodPost, paymentPath(id)+"/allocations", RequestOptions{Body: req})
}

// Slip returns the bank slip of a payment, or nil when none was uploaded.
func (s *Payments) Slip(ctx context.Context, id string) (*BankSlip, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return call[*BankSlip](ctx, s.c, http.MethodGet, paymentPath(id)+"/slip", RequestOptions{})
}

// UploadSlip attaches a bank transfer slip to a payment.
func (s *Payments) UploadSlip(ctx context.Context, id string, req CreateBankSlipRequest) (*BankSlip, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*BankSlip](ctx, s.c, http.MethodPost, paymentPath(id)+"/slip", RequestOptions{Body: req})
}

// VerifySlip accepts or rejects the bank slip of a payment.
func (s *Payments) VerifySlip(ctx context.Context, id string, req VerifyBankSlipRequest) (*MessageResponse, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return call[*MessageResponse](ctx, s.c, http.MethodPost, paymentPath(id)+"/slip/verify", RequestOptions{Body: req})
}

// InitiateFlashPay opens a FlashPay collection. The response holds QR data
// or an app deeplink depending on req.FlashPayType.
func (s *Payments) InitiateFlashPay(ctx context.Context, req FlashPayRequest) (*FlashPayResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return callData[*FlashPayResponse](ctx, s.c, http.MethodPost, "/payments/flashpay", RequestOptions{Body: req})
}

// GenerateFlashPayQR is InitiateFlashPay kept for callers of the QR-only API.
func (s *Payments) GenerateFlashPayQR(ctx context.Context, req FlashPayRequest) (*FlashPayResponse, error) {
	return s.InitiateFlashPay(ctx, req)
}
