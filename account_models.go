package tms

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// RateCard defines model for RateCard.
type RateCard struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	ServiceID         string          `json:"service_id"`
	Service           *ServiceRef     `json:"service,omitempty"`
	RouteID           string          `json:"route_id,omitempty"`
	ContractorID      string          `json:"contractor_id,omitempty"`
	SenderAccountType string          `json:"sender_account_type,omitempty"`
	Description       string          `json:"description,omitempty"`
	CreatedAt         string          `json:"created_at"`
}

// CreateRateCardRequest defines model for CreateRateCardRequest.
type CreateRateCardRequest struct {
	Name              string  `json:"name" validate:"required"`
	UnitPrice         float64 `json:"unit_price" validate:"gte=0"`
	ServiceID         string  `json:"service_id" validate:"required"`
	RouteID           string  `json:"route_id,omitempty"`
	ContractorID      string  `json:"contractor_id,omitempty"`
	SenderAccountType string  `json:"sender_account_type,omitempty"`
	Description       string  `json:"description,omitempty"`
}

// UpdateRateCardRequest defines model for UpdateRateCardRequest.
type UpdateRateCardRequest struct {
	Name              string   `json:"name,omitempty"`
	UnitPrice         *float64 `json:"unit_price,omitempty" validate:"omitempty,gte=0"`
	ServiceID         string   `json:"service_id,omitempty"`
	RouteID           string   `json:"route_id,omitempty"`
	ContractorID      string   `json:"contractor_id,omitempty"`
	SenderAccountType string   `json:"sender_account_type,omitempty"`
	Description       string   `json:"description,omitempty"`
}

// ListRateCardsParams defines query parameters for RateCards.List.
type ListRateCardsParams struct {
	ServiceID    string `json:"service_id,omitempty"`
	ContractorID string `json:"contractor_id,omitempty"`
}

// SenderAccount defines model for SenderAccount.
type SenderAccount struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	CompanyName string         `json:"company_name,omitempty"`
	SenderCode  string         `json:"sender_code"`
	Email       string         `json:"email,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	Type        string         `json:"type"`
	IsActive    bool           `json:"is_active"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   string         `json:"created_at"`
}

// CreateSenderAccountRequest defines model for CreateSenderAccountRequest.
type CreateSenderAccountRequest struct {
	Name        string              `json:"name" validate:"required"`
	CompanyName string              `json:"company_name,omitempty"`
	Email       openapi_types.Email `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string              `json:"phone,omitempty"`
	Type        string              `json:"type,omitempty"`
	IsActive    *bool               `json:"is_active,omitempty"`
	SenderCode  string              `json:"sender_code,omitempty"`
	AddressID   string              `json:"address_id,omitempty"`
	Metadata    map[string]any      `json:"metadata,omitempty"`
}

// UpdateSenderAccountRequest defines model for UpdateSenderAccountRequest.
type UpdateSenderAccountRequest struct {
	Name        string              `json:"name,omitempty"`
	CompanyName string              `json:"company_name,omitempty"`
	Email       openapi_types.Email `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string              `json:"phone,omitempty"`
	AddressID   string              `json:"address_id,omitempty"`
	IsActive    *bool               `json:"is_active,omitempty"`
	Metadata    map[string]any      `json:"metadata,omitempty"`
}

// ListSenderAccountsParams defines query parameters for SenderAccounts.List.
type ListSenderAccountsParams struct {
	Search   string `json:"search,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
	Limit    int    `json:"limit,omitempty" validate:"omitempty,gte=1"`
	Offset   int    `json:"offset,omitempty" validate:"omitempty,gte=0"`
}

// OffsetPagination describes the position of a sender account listing.
type OffsetPagination struct {
	Total      int `json:"total"`
	Limit      int `json:"limit"`
	Offset     int `json:"offset"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// SenderAccountList defines model for the SenderAccounts.List result.
type SenderAccountList struct {
	Data       []SenderAccount  `json:"data"`
	Pagination OffsetPagination `json:"pagination"`
}

// AddressType defines model for SenderAccountAddress.AddressType.
type AddressType string

// Defines values for AddressType.
const (
	AddressTypePickup    AddressType = "pickup"
	AddressTypeReturn    AddressType = "return"
	AddressTypeBilling   AddressType = "billing"
	AddressTypeWarehouse AddressType = "warehouse"
)

// SenderAccountAddress defines model for SenderAccountAddress.
type SenderAccountAddress struct {
	ID             string         `json:"id"`
	StreetLine     string         `json:"street_line"`
	BlockFloorRoom string         `json:"block_floor_room,omitempty"`
	City           string         `json:"city,omitempty"`
	State          string         `json:"state,omitempty"`
	Town           string         `json:"town,omitempty"`
	ZipCode        string         `json:"zip_code,omitempty"`
	Country        string         `json:"country,omitempty"`
	AddressType    AddressType    `json:"address_type"`
	IsDefault      bool           `json:"is_default"`
	Label          string         `json:"label,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	IsActive       *bool          `json:"is_active,omitempty"`
	CreatedAt      string         `json:"created_at,omitempty"`
}

// CreateSenderAccountAddressRequest defines model for CreateSenderAccountAddressRequest.
type CreateSenderAccountAddressRequest struct {
	StreetLine     string         `json:"street_line" validate:"required"`
	BlockFloorRoom string         `json:"block_floor_room,omitempty"`
	City           string         `json:"city,omitempty"`
	State          string         `json:"state,omitempty"`
	Town           string         `json:"town,omitempty"`
	ZipCode        string         `json:"zip_code,omitempty"`
	Country        string         `json:"country,omitempty"`
	AddressType    AddressType    `json:"address_type,omitempty" validate:"omitempty,address_type"`
	IsDefault      *bool          `json:"is_default,omitempty"`
	Label          string         `json:"label,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// AddressFields is the partial address of UpdateSenderAccountAddressRequest.
type AddressFields struct {
	StreetLine     string `json:"street_line,omitempty"`
	BlockFloorRoom string `json:"block_floor_room,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	Town           string `json:"town,omitempty"`
	ZipCode        string `json:"zip_code,omitempty"`
	Country        string `json:"country,omitempty"`
}

// UpdateSenderAccountAddressRequest defines model for UpdateSenderAccountAddressRequest.
type UpdateSenderAccountAddressRequest struct {
	Address     *AddressFields `json:"address,omitempty"`
	AddressType AddressType    `json:"address_type,omitempty" validate:"omitempty,address_type"`
	IsDefault   *bool          `json:"is_default,omitempty"`
	IsActive    *bool          `json:"is_active,omitempty"`
	Label       string         `json:"label,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// ListSenderAccountAddressesParams defines query parameters for SenderAccounts.ListAddresses.
type ListSenderAccountAddressesParams struct {
	AddressType AddressType `json:"address_type,omitempty" validate:"omitempty,address_type"`
	IsActive    *bool       `json:"is_active,omitempty"`
}

// BillingType defines model for BillingProfile.BillingType.
type BillingType string

// Defines values for BillingType.
const (
	BillingTypeConsolidated  BillingType = "consolidated"
	BillingTypeTransactional BillingType = "transactional"
)

// BillingCycle defines model for BillingProfile.BillingCycle.
type BillingCycle string

// Defines values for BillingCycle.
const (
	BillingCycleWeekly   BillingCycle = "weekly"
	BillingCycleBiweekly BillingCycle = "biweekly"
	BillingCycleMonthly  BillingCycle = "monthly"
	BillingCycleCustom   BillingCycle = "custom"
)

// PaymentTerms defines model for BillingProfile.PaymentTerms.
type PaymentTerms string

// Defines values for PaymentTerms.
const (
	PaymentTermsDueOnReceipt PaymentTerms = "due_on_receipt"
	PaymentTermsNet7         PaymentTerms = "net_7"
	PaymentTermsNet15        PaymentTerms = "net_15"
	PaymentTermsNet30        PaymentTerms = "net_30"
	PaymentTermsNet45        PaymentTerms = "net_45"
	PaymentTermsNet60        PaymentTerms = "net_60"
	PaymentTermsNet90        PaymentTerms = "net_90"
	PaymentTermsCustom       PaymentTerms = "custom"
)

// BillingProfile defines model for BillingProfile.
type BillingProfile struct {
	ID                string          `json:"id"`
	ContractorID      string          `json:"contractor_id,omitempty"`
	SenderAccountID   string          `json:"sender_account_id,omitempty"`
	BillingType       BillingType     `json:"billing_type"`
	BillingCycle      BillingCycle    `json:"billing_cycle"`
	CycleDay          *int            `json:"cycle_day,omitempty"`
	CycleWeekday      *int            `json:"cycle_weekday,omitempty"`
	CycleIntervalDays *int            `json:"cycle_interval_days,omitempty"`
	CycleAnchorDate   string          `json:"cycle_anchor_date,omitempty"`
	PaymentTerms      PaymentTerms    `json:"payment_terms"`
	PaymentTermsDays  *int            `json:"payment_terms_days,omitempty"`
	DefaultTaxRate    decimal.Decimal `json:"default_tax_rate"`
	DefaultCurrency   string          `json:"default_currency"`
	DefaultNotes      string          `json:"default_notes,omitempty"`
	AutoIssue         bool            `json:"auto_issue"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         string          `json:"created_at"`
}

// CreateBillingProfileRequest defines model for CreateBillingProfileRequest.
type CreateBillingProfileRequest struct {
	ContractorID      string              `json:"contractor_id,omitempty"`
	SenderAccountID   string              `json:"sender_account_id,omitempty"`
	BillingType       BillingType         `json:"billing_type" validate:"required,billing_type"`
	BillingCycle      BillingCycle        `json:"billing_cycle,omitempty" validate:"omitempty,billing_cycle"`
	CycleDay          *int                `json:"cycle_day,omitempty" validate:"omitempty,gte=1,lte=31"`
	CycleWeekday      *int                `json:"cycle_weekday,omitempty" validate:"omitempty,gte=0,lte=6"`
	CycleIntervalDays *int                `json:"cycle_interval_days,omitempty" validate:"omitempty,gte=1"`
	CycleAnchorDate   *openapi_types.Date `json:"cycle_anchor_date,omitempty"`
	PaymentTerms      PaymentTerms        `json:"payment_terms,omitempty" validate:"omitempty,payment_terms"`
	PaymentTermsDays  *int                `json:"payment_terms_days,omitempty" validate:"omitempty,gte=0"`
	DefaultTaxRate    *float64            `json:"default_tax_rate,omitempty" validate:"omitempty,gte=0"`
	DefaultCurrency   string              `json:"default_currency,omitempty" validate:"omitempty,len=3,uppercase"`
	DefaultNotes      string              `json:"default_notes,omitempty"`
	AutoIssue         *bool               `json:"auto_issue,omitempty"`
}

// UpdateBillingProfileRequest defines model for UpdateBillingProfileRequest.
// The Nullable fields can be cleared with [Null].
type UpdateBillingProfileRequest struct {
	BillingType       BillingType                  `json:"billing_type,omitempty" validate:"omitempty,billing_type"`
	BillingCycle      BillingCycle                 `json:"billing_cycle,omitempty" validate:"omitempty,billing_cycle"`
	CycleDay          Nullable[int]                `json:"cycle_day,omitzero"`
	CycleWeekday      Nullable[int]                `json:"cycle_weekday,omitzero"`
	CycleIntervalDays Nullable[int]                `json:"cycle_interval_days,omitzero"`
	CycleAnchorDate   Nullable[openapi_types.Date] `json:"cycle_anchor_date,omitzero"`
	PaymentTerms      PaymentTerms                 `json:"payment_terms,omitempty" validate:"omitempty,payment_terms"`
	PaymentTermsDays  Nullable[int]                `json:"payment_terms_days,omitzero"`
	DefaultTaxRate    *float64                     `json:"default_tax_rate,omitempty" validate:"omitempty,gte=0"`
	DefaultCurrency   string                       `json:"default_currency,omitempty" validate:"omitempty,len=3,uppercase"`
	DefaultNotes      Nullable[string]             `json:"default_notes,omitzero"`
	AutoIssue         *bool                        `json:"auto_issue,omitempty"`
	IsActive          *bool                        `json:"is_active,omitempty"`
}

// ListBillingProfilesParams defines query parameters for BillingProfiles.List.
type ListBillingProfilesParams struct {
	PaginationParams
	ContractorID    string       `json:"contractor_id,omitempty"`
	SenderAccountID string       `json:"sender_account_id,omitempty"`
	BillingType     BillingType  `json:"billing_type,omitempty" validate:"omitempty,billing_type"`
	BillingCycle    BillingCycle `json:"billing_cycle,omitempty" validate:"omitempty,billing_cycle"`
	IsActive        *bool        `json:"is_active,omitempty"`
}

// CycleRunStatus defines model for BillingCycleRun.Status.
type CycleRunStatus string

// Defines values for CycleRunStatus.
const (
	CycleRunPending    CycleRunStatus = "pending"
	CycleRunProcessing CycleRunStatus = "processing"
	CycleRunCompleted  CycleRunStatus = "completed"
	CycleRunFailed     CycleRunStatus = "failed"
	CycleRunSkipped    CycleRunStatus = "skipped"
)

// BillingCycleRun defines model for BillingCycleRun.
type BillingCycleRun struct {
	ID               string         `json:"id"`
	BillingProfileID string         `json:"billing_profile_id"`
	Status           CycleRunStatus `json:"status"`
	PeriodStart      string         `json:"period_start"`
	PeriodEnd        string         `json:"period_end"`
	InvoiceID        string         `json:"invoice_id,omitempty"`
	ErrorMessage     string         `json:"error_message,omitempty"`
	CreatedAt        string         `json:"created_at"`
}

// ListCycleRunsParams defines query parameters for BillingProfiles.ListCycles.
type ListCycleRunsParams struct {
	PaginationParams
	Status CycleRunStatus `json:"status,omitempty" validate:"omitempty,oneof=pending processing completed failed skipped"`
}

// TriggerCycleRequest defines model for TriggerCycleRequest.
type TriggerCycleRequest struct {
	AsOfDate *openapi_types.Date `json:"as_of_date,omitempty"`
}
