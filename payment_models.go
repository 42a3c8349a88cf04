package tms

import (
	"encoding/json"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// PaymentStatus defines model for Payment.Status.
type PaymentStatus string

// Defines values for PaymentStatus.
const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusVerified PaymentStatus = "verified"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// PaymentMethod defines model for Payment.PaymentMethod.
type PaymentMethod string

// Defines values for PaymentMethod.
const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodFlashPay     PaymentMethod = "flashpay"
)

// PaymentAllocation defines model for PaymentAllocation.
type PaymentAllocation struct {
	ID        string          `json:"id"`
	PaymentID string          `json:"payment_id,omitempty"`
	InvoiceID string          `json:"invoice_id"`
	InvoiceNo string          `json:"invoice_no,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt string          `json:"created_at,omitempty"`
}

// AllocationInput assigns part of a payment to an invoice.
type AllocationInput struct {
	InvoiceID string  `json:"invoice_id" validate:"required"`
	Amount    float64 `json:"amount" validate:"gt=0"`
}

// Payment defines model for Payment.
type Payment struct {
	ID              string              `json:"id"`
	Amount          decimal.Decimal     `json:"amount"`
	PaymentMethod   PaymentMethod       `json:"payment_method"`
	PaymentDate     string              `json:"payment_date"`
	ReferenceNo     string              `json:"reference_no,omitempty"`
	Status          PaymentStatus       `json:"status"`
	Notes           string              `json:"notes,omitempty"`
	ContractorID    string              `json:"contractor_id,omitempty"`
	SubcontractorID string              `json:"subcontractor_id,omitempty"`
	SenderAccountID string              `json:"sender_account_id,omitempty"`
	CreatedAt       string              `json:"created_at"`
	Allocations     []PaymentAllocation `json:"allocations,omitempty"`
}

// CreatePaymentRequest defines model for CreatePaymentRequest.
type CreatePaymentRequest struct {
	Amount          float64            `json:"amount" validate:"gt=0"`
	PaymentMethod   PaymentMethod      `json:"payment_method" validate:"required,payment_method"`
	PaymentDate     openapi_types.Date `json:"payment_date" validate:"required"`
	Notes           string             `json:"notes,omitempty"`
	Allocations     []AllocationInput  `json:"allocations" validate:"required,dive"`
	ContractorID    string             `json:"contractor_id,omitempty"`
	SubcontractorID string             `json:"subcontractor_id,omitempty"`
	SenderAccountID string             `json:"sender_account_id,omitempty"`
}

// UpdatePaymentRequest defines model for UpdatePaymentRequest.
type UpdatePaymentRequest struct {
	Status      PaymentStatus `json:"status,omitempty" validate:"omitempty,payment_status"`
	Notes       string        `json:"notes,omitempty"`
	ReferenceNo string        `json:"reference_no,omitempty"`
}

// ListPaymentsParams defines query parameters for Payments.List.
type ListPaymentsParams struct {
	PaginationParams
	ContractorID    string              `json:"contractor_id,omitempty"`
	SubcontractorID string              `json:"subcontractor_id,omitempty"`
	SenderAccountID string              `json:"sender_account_id,omitempty"`
	InvoiceID       string              `json:"invoice_id,omitempty"`
	Status          PaymentStatus       `json:"status,omitempty" validate:"omitempty,payment_status"`
	PaymentMethod   PaymentMethod       `json:"payment_method,omitempty" validate:"omitempty,payment_method"`
	FromDate        *openapi_types.Date `json:"from_date,omitempty"`
	ToDate          *openapi_types.Date `json:"to_date,omitempty"`
}

// ReplaceAllocationsRequest defines model for ReplaceAllocationsRequest.
type ReplaceAllocationsRequest struct {
	Allocations []AllocationInput `json:"allocations" validate:"required,dive"`
}

// BankSlip defines model for BankSlip.
type BankSlip struct {
	ID                string          `json:"id"`
	PaymentID         string          `json:"payment_id"`
	SlipURL           string          `json:"slip_url"`
	BankName          string          `json:"bank_name"`
	TransferDate      string          `json:"transfer_date"`
	TransferAmount    decimal.Decimal `json:"transfer_amount"`
	TransferReference string          `json:"transfer_reference,omitempty"`
	Verified          *bool           `json:"verified,omitempty"`
	VerificationNotes string          `json:"verification_notes,omitempty"`
	CreatedAt         string          `json:"created_at"`
}

// CreateBankSlipRequest defines model for CreateBankSlipRequest.
type CreateBankSlipRequest struct {
	SlipURL           string             `json:"slip_url" validate:"required,url"`
	BankName          string             `json:"bank_name" validate:"required"`
	TransferDate      openapi_types.Date `json:"transfer_date" validate:"required"`
	TransferAmount    float64            `json:"transfer_amount" validate:"gt=0"`
	TransferReference string             `json:"transfer_reference,omitempty"`
}

// VerifyBankSlipRequest defines model for VerifyBankSlipRequest.
type VerifyBankSlipRequest struct {
	Verified          bool   `json:"verified"`
	VerificationNotes string `json:"verification_notes,omitempty"`
}

// FlashPayType defines model for FlashPayRequest.FlashpayType.
type FlashPayType string

// Defines values for FlashPayType.
const (
	FlashPayTypeQR  FlashPayType = "qr"
	FlashPayTypeApp FlashPayType = "app"
)

// FlashPayRequest defines model for FlashPayRequest.
type FlashPayRequest struct {
	Amount          float64           `json:"amount" validate:"gt=0"`
	Allocations     []AllocationInput `json:"allocations" validate:"required,dive"`
	FlashPayType    FlashPayType      `json:"flashpay_type" validate:"required,oneof=qr app"`
	FlashPayBank    string            `json:"flashpay_bank_code,omitempty"`
	Description     string            `json:"description,omitempty"`
	ContractorID    string            `json:"contractor_id,omitempty"`
	SubcontractorID string            `json:"subcontractor_id,omitempty"`
	SenderAccountID string            `json:"sender_account_id,omitempty"`
}

// FlashPayQRResponse defines model for FlashPayQRResponse.
type FlashPayQRResponse struct {
	ID        string `json:"id"`
	QRImage   string `json:"qr_image"`
	QRRawData string `json:"qr_raw_data"`
	TradeNo   string `json:"trade_no"`
}

// FlashPayAppResponse defines model for FlashPayAppResponse.
type FlashPayAppResponse struct {
	ID          string `json:"id"`
	DeeplinkURL string `json:"deeplink_url"`
	TradeNo     string `json:"trade_no"`
}

// FlashPayResponse holds either a [FlashPayQRResponse] or a [FlashPayAppResponse],
// depending on the requested [FlashPayType].
type FlashPayResponse struct {
	union json.RawMessage
}

// IsQR reports whether the response carries QR code data.
func (t FlashPayResponse) IsQR() bool {
	var probe struct {
		QRRawData *string `json:"qr_raw_data"`
	}
	return json.Unmarshal(t.union, &probe) == nil && probe.QRRawData != nil
}

// AsFlashPayQRResponse returns the union data inside the FlashPayResponse as a FlashPayQRResponse
func (t FlashPayResponse) AsFlashPayQRResponse() (FlashPayQRResponse, error) {
	var body FlashPayQRResponse
	err := json.Unmarshal(t.union, &body)
	return body, err
}

// FromFlashPayQRResponse overwrites any union data inside the FlashPayResponse as the provided FlashPayQRResponse
func (t *FlashPayResponse) FromFlashPayQRResponse(v FlashPayQRResponse) error {
	b, err := json.Marshal(v)
	t.union = b
	return err
}

// MergeFlashPayQRResponse performs a merge with any union data inside the FlashPayResponse, using the provided FlashPayQRResponse
func (t *FlashPayResponse) MergeFlashPayQRResponse(v FlashPayQRResponse) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	merged, err := runtime.JSONMerge(t.union, b)
	t.union = merged
	return err
}

// AsFlashPayAppResponse returns the union data inside the FlashPayResponse as a FlashPayAppResponse
func (t FlashPayResponse) AsFlashPayAppResponse() (FlashPayAppResponse, error) {
	var body FlashPayAppResponse
	err := json.Unmarshal(t.union, &body)
	return body, err
}

// FromFlashPayAppResponse overwrites any union data inside the FlashPayResponse as the provided FlashPayAppResponse
func (t *FlashPayResponse) FromFlashPayAppResponse(v FlashPayAppResponse) error {
	b, err := json.Marshal(v)
	t.union = b
	return err
}

// MergeFlashPayAppResponse performs a merge with any union data inside the FlashPayResponse, using the provided FlashPayAppResponse
func (t *FlashPayResponse) MergeFlashPayAppResponse(v FlashPayAppResponse) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	merged, err := runtime.JSONMerge(t.union, b)
	t.union = merged
	return err
}

// MarshalJSON serializes the underlying union for FlashPayResponse.
func (t FlashPayResponse) MarshalJSON() ([]byte, error) {
	b, err := t.union.MarshalJSON()
	return b, err
}

// UnmarshalJSON loads union data for FlashPayResponse.
func (t *FlashPayResponse) UnmarshalJSON(b []byte) error {
	err := t.union.UnmarshalJSON(b)
	return err
}
