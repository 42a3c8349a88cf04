package tms

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// PaginationParams are the paging query parameters shared by list endpoints.
type PaginationParams struct {
	Page     int `json:"page,omitempty" validate:"omitempty,gte=1"`
	PageSize int `json:"pageSize,omitempty" validate:"omitempty,gte=1"`
}

// DateRangeParams filter list endpoints by creation date.
type DateRangeParams struct {
	DateFrom *openapi_types.Date `json:"date_from,omitempty"`
	DateTo   *openapi_types.Date `json:"date_to,omitempty"`
}

// Page is a paginated list response.
type Page[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// BillingStatus defines model for BillingRecord.Status.
type BillingStatus string

// Defines values for BillingStatus.
const (
	BillingStatusPending  BillingStatus = "pending"
	BillingStatusDraft    BillingStatus = "draft"
	BillingStatusInvoiced BillingStatus = "invoiced"
	BillingStatusPaid     BillingStatus = "paid"
	BillingStatusCanceled BillingStatus = "canceled"
)

// BillingRecord defines model for BillingRecord.
type BillingRecord struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	RateCardID   string          `json:"rate_card_id"`
	ContractorID string          `json:"contractor_id,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       BillingStatus   `json:"status"`
	WaybillID    string          `json:"waybill_id,omitempty"`
	CreatedAt    string          `json:"created_at"`
}

// CreateBillingRequest defines model for CreateBillingRequest.
type CreateBillingRequest struct {
	Name            string        `json:"name,omitempty"`
	RateCardID      string        `json:"rate_card_id" validate:"required"`
	ContractorID    string        `json:"contractor_id,omitempty"`
	SubcontractorID string        `json:"subcontractor_id,omitempty"`
	SenderAccountID string        `json:"sender_account_id,omitempty"`
	OrganizationID  string        `json:"organization_id,omitempty"`
	WaybillID       string        `json:"waybill_id,omitempty"`
	DeliveryID      string        `json:"delivery_id,omitempty"`
	Quantity        float64       `json:"quantity" validate:"gt=0"`
	Status          BillingStatus `json:"status,omitempty" validate:"omitempty,billing_status"`
}

// UpdateBillingRequest defines model for UpdateBillingRequest.
type UpdateBillingRequest struct {
	Name     string        `json:"name,omitempty"`
	Quantity *float64      `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Status   BillingStatus `json:"status,omitempty" validate:"omitempty,billing_status"`
}

// ListBillingsParams defines query parameters for Billings.List.
type ListBillingsParams struct {
	PaginationParams
	DateRangeParams
	ContractorID    string        `json:"contractor_id,omitempty"`
	SubcontractorID string        `json:"subcontractor_id,omitempty"`
	RateCardID      string        `json:"rate_card_id,omitempty"`
	Status          BillingStatus `json:"status,omitempty" validate:"omitempty,billing_status"`
	InvoiceID       string        `json:"invoice_id,omitempty"`
}

// BillingEmailFilter selects the billing records to send.
type BillingEmailFilter struct {
	ContractorID    string              `json:"contractor_id,omitempty"`
	SubcontractorID string              `json:"subcontractor_id,omitempty"`
	Status          BillingStatus       `json:"status,omitempty" validate:"omitempty,billing_status"`
	DateFrom        *openapi_types.Date `json:"date_from,omitempty"`
	DateTo          *openapi_types.Date `json:"date_to,omitempty"`
}

// BillingEmailRequest defines model for BillingEmailRequest.
type BillingEmailRequest struct {
	RecipientEmail openapi_types.Email `json:"recipient_email" validate:"required,email"`
	Subject        string              `json:"subject,omitempty"`
	Message        string              `json:"message,omitempty"`
	Filter         *BillingEmailFilter `json:"filter,omitempty"`
	BillingIDs     []string            `json:"billing_ids,omitempty"`
}

// BillingEmailResponse defines model for the Billings.SendEmail result.
type BillingEmailResponse struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message"`
	RecordsCount int             `json:"records_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// InvoiceStatus defines model for Invoice.Status.
type InvoiceStatus string

// Defines values for InvoiceStatus.
const (
	InvoiceStatusDraft    InvoiceStatus = "draft"
	InvoiceStatusIssued   InvoiceStatus = "issued"
	InvoiceStatusPaid     InvoiceStatus = "paid"
	InvoiceStatusPartial  InvoiceStatus = "partial"
	InvoiceStatusOverdue  InvoiceStatus = "overdue"
	InvoiceStatusCanceled InvoiceStatus = "canceled"
)

// InvoiceLineItem defines model for Invoice.line_items.Item.
type InvoiceLineItem struct {
	ID        string          `json:"id"`
	BillingID string          `json:"billing_id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
	WaybillNo string          `json:"waybill_no,omitempty"`
}

// Invoice defines model for Invoice.
type Invoice struct {
	ID              string            `json:"id"`
	InvoiceNo       string            `json:"invoice_no"`
	ContractorID    string            `json:"contractor_id,omitempty"`
	SenderAccountID string            `json:"sender_account_id,omitempty"`
	Status          InvoiceStatus     `json:"status"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	TaxAmount       decimal.Decimal   `json:"tax_amount"`
	DiscountAmount  *decimal.Decimal  `json:"discount_amount,omitempty"`
	TotalAmount     decimal.Decimal   `json:"total_amount"`
	IssueDate       string            `json:"issue_date,omitempty"`
	DueDate         string            `json:"due_date,omitempty"`
	PeriodStart     string            `json:"period_start"`
	PeriodEnd       string            `json:"period_end"`
	Notes           string            `json:"notes,omitempty"`
	PaymentTerms    string            `json:"payment_terms,omitempty"`
	CreatedAt       string            `json:"created_at"`
	LineItems       []InvoiceLineItem `json:"line_items,omitempty"`
}

// CreateInvoiceRequest defines model for CreateInvoiceRequest.
type CreateInvoiceRequest struct {
	ContractorID    string             `json:"contractor_id,omitempty"`
	SenderAccountID string             `json:"sender_account_id,omitempty"`
	BillingIDs      []string           `json:"billing_ids,omitempty"`
	PeriodStart     openapi_types.Date `json:"period_start" validate:"required"`
	PeriodEnd       openapi_types.Date `json:"period_end" validate:"required"`
	Notes           string             `json:"notes,omitempty"`
	PaymentTerms    string             `json:"payment_terms,omitempty"`
	TaxRate         *float64           `json:"tax_rate,omitempty" validate:"omitempty,gte=0"`
	Currency        string             `json:"currency,omitempty" validate:"omitempty,len=3,uppercase"`
}

// UpdateInvoiceRequest defines model for UpdateInvoiceRequest.
type UpdateInvoiceRequest struct {
	Status         InvoiceStatus `json:"status,omitempty" validate:"omitempty,invoice_status"`
	Notes          string        `json:"notes,omitempty"`
	PaymentTerms   string        `json:"payment_terms,omitempty"`
	TaxRate        *float64      `json:"tax_rate,omitempty" validate:"omitempty,gte=0"`
	DiscountAmount *float64      `json:"discount_amount,omitempty" validate:"omitempty,gte=0"`
}

// ListInvoicesParams defines query parameters for Invoices.List.
type ListInvoicesParams struct {
	PaginationParams
	ContractorID    string              `json:"contractor_id,omitempty"`
	SubcontractorID string              `json:"subcontractor_id,omitempty"`
	Status          InvoiceStatus       `json:"status,omitempty" validate:"omitempty,invoice_status"`
	IssueDateFrom   *openapi_types.Date `json:"issue_date_from,omitempty"`
	IssueDateTo     *openapi_types.Date `json:"issue_date_to,omitempty"`
	DueDateFrom     *openapi_types.Date `json:"due_date_from,omitempty"`
	DueDateTo       *openapi_types.Date `json:"due_date_to,omitempty"`
}

// IssueInvoiceRequest defines model for IssueInvoiceRequest.
type IssueInvoiceRequest struct {
	DueDate   *openapi_types.Date `json:"due_date,omitempty"`
	IssueDate *openapi_types.Date `json:"issue_date,omitempty"`
}

// SendInvoiceEmailRequest defines model for SendInvoiceEmailRequest.
type SendInvoiceEmailRequest struct {
	RecipientEmail openapi_types.Email   `json:"recipient_email" validate:"required,email"`
	CCEmails       []openapi_types.Email `json:"cc_emails,omitempty" validate:"omitempty,dive,email"`
	Subject        string                `json:"subject,omitempty"`
	Message        string                `json:"message,omitempty"`
}

// SendInvoiceEmailResponse defines model for the Invoices.SendEmail result.
type SendInvoiceEmailResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	InvoiceNo string `json:"invoice_no"`
}

// LineItemsRequest adds or removes billing records on an invoice.
type LineItemsRequest struct {
	BillingIDs []string `json:"billing_ids" validate:"min=1,dive,required"`
}
