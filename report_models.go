package tms

import (
	"io"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// DeliveryEventType defines model for DeliveryEvent.EventType.
type DeliveryEventType string

// Defines values for DeliveryEventType.
const (
	DeliveryEventDraft                DeliveryEventType = "draft"
	DeliveryEventCreated              DeliveryEventType = "created"
	DeliveryEventPickedUp             DeliveryEventType = "picked_up"
	DeliveryEventAccepted             DeliveryEventType = "accepted"
	DeliveryEventDelivering           DeliveryEventType = "delivering"
	DeliveryEventDelivered            DeliveryEventType = "delivered"
	DeliveryEventFailed               DeliveryEventType = "failed"
	DeliveryEventException            DeliveryEventType = "exception"
	DeliveryEventCanceled             DeliveryEventType = "canceled"
	DeliveryEventRescheduled          DeliveryEventType = "rescheduled"
	DeliveryEventReturning            DeliveryEventType = "returning"
	DeliveryEventReturned             DeliveryEventType = "returned"
	DeliveryEventInTransitSorted      DeliveryEventType = "in_transit_sorted"
	DeliveryEventInTransitHubInbound  DeliveryEventType = "in_transit_hub_inbound"
	DeliveryEventInTransitHubOutbound DeliveryEventType = "in_transit_hub_outbound"
)

// DeliveryEvent defines model for DeliveryEvent.
type DeliveryEvent struct {
	ID          string            `json:"id"`
	WaybillID   string            `json:"waybill_id,omitempty"`
	PackageID   string            `json:"package_id,omitempty"`
	EventType   DeliveryEventType `json:"event_type"`
	EventTime   string            `json:"event_time"`
	Coordinates map[string]any    `json:"coordinates,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	Photos      []string          `json:"photos,omitempty"`
	CreatedAt   string            `json:"created_at"`
}

// CreateDeliveryEventRequest defines model for CreateDeliveryEventRequest.
// EventTime is an RFC 3339 timestamp.
type CreateDeliveryEventRequest struct {
	WaybillID   string            `json:"waybill_id,omitempty" validate:"required_without=PackageID"`
	PackageID   string            `json:"package_id,omitempty"`
	EventType   DeliveryEventType `json:"event_type" validate:"required,delivery_event_type"`
	EventTime   string            `json:"event_time,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Coordinates map[string]any    `json:"coordinates,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	Photos      []string          `json:"photos,omitempty" validate:"omitempty,dive,url"`
}

// PODPhoto is one proof-of-delivery image to upload.
type PODPhoto struct {
	// ContentType defaults to application/octet-stream.
	ContentType string
	Data        io.Reader
}

// ReportFormat selects the report encoding.
type ReportFormat string

// Defines values for ReportFormat.
const (
	ReportFormatJSON ReportFormat = "json"
	ReportFormatCSV  ReportFormat = "csv"
)

// ReportDateRangeParams are the required date bounds of a report.
type ReportDateRangeParams struct {
	DateFrom openapi_types.Date `json:"date_from" validate:"required"`
	DateTo   openapi_types.Date `json:"date_to" validate:"required"`
}

// BillingByServiceParams defines query parameters for Reports.BillingByService.
type BillingByServiceParams struct {
	ReportDateRangeParams
	ContractorID string `json:"contractor_id,omitempty"`
}

// ServiceAmount is one row of the billing-by-service report.
type ServiceAmount struct {
	Service   string          `json:"service"`
	ServiceID string          `json:"service_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
}

// ReportTotals sums a report's quantity and amount columns.
type ReportTotals struct {
	Quantity decimal.Decimal `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// BillingByServiceReport defines model for BillingByServiceReport.
type BillingByServiceReport struct {
	DateFrom string          `json:"date_from"`
	DateTo   string          `json:"date_to"`
	Data     []ServiceAmount `json:"data"`
	Totals   ReportTotals    `json:"totals"`
}

// OutstandingInvoicesParams defines query parameters for Reports.OutstandingInvoices.
type OutstandingInvoicesParams struct {
	ContractorID string `json:"contractor_id,omitempty"`
	Status       string `json:"status,omitempty" validate:"omitempty,oneof=issued overdue all"`
}

// OutstandingInvoice is one row of the outstanding invoices report.
type OutstandingInvoice struct {
	InvoiceNo   string          `json:"invoice_no"`
	Contractor  string          `json:"contractor"`
	IssueDate   string          `json:"issue_date"`
	DueDate     string          `json:"due_date"`
	Amount      decimal.Decimal `json:"amount"`
	Paid        decimal.Decimal `json:"paid"`
	Balance     decimal.Decimal `json:"balance"`
	DaysOverdue int             `json:"days_overdue"`
	AgingBucket string          `json:"aging_bucket"`
}

// OutstandingInvoicesReport defines model for OutstandingInvoicesReport.
type OutstandingInvoicesReport struct {
	DateAsOf string               `json:"date_as_of"`
	Data     []OutstandingInvoice `json:"data"`
	Summary  map[string]any       `json:"summary"`
}

// PaymentHistoryParams defines query parameters for Reports.PaymentHistory.
type PaymentHistoryParams struct {
	ReportDateRangeParams
	ContractorID string        `json:"contractor_id,omitempty"`
	Method       PaymentMethod `json:"method,omitempty" validate:"omitempty,payment_method"`
}

// PaymentHistoryEntry is one row of the payment history report.
type PaymentHistoryEntry struct {
	Date       string          `json:"date"`
	Reference  string          `json:"reference"`
	Contractor string          `json:"contractor"`
	Method     string          `json:"method"`
	Amount     decimal.Decimal `json:"amount"`
	Invoices   []string        `json:"invoices"`
	Status     string          `json:"status"`
}

// PaymentHistoryReport defines model for PaymentHistoryReport.
type PaymentHistoryReport struct {
	DateFrom string                `json:"date_from"`
	DateTo   string                `json:"date_to"`
	Data     []PaymentHistoryEntry `json:"data"`
	Summary  map[string]any        `json:"summary"`
}

// ReportPeriod defines model for RevenueSummaryParams.Period.
type ReportPeriod string

// Defines values for ReportPeriod.
const (
	ReportPeriodDaily   ReportPeriod = "daily"
	ReportPeriodWeekly  ReportPeriod = "weekly"
	ReportPeriodMonthly ReportPeriod = "monthly"
)

// RevenueSummaryParams defines query parameters for Reports.RevenueSummary.
type RevenueSummaryParams struct {
	ReportDateRangeParams
	ContractorID string       `json:"contractor_id,omitempty"`
	Period       ReportPeriod `json:"period,omitempty" validate:"omitempty,oneof=daily weekly monthly"`
}

// RevenuePeriod is one row of the revenue summary report.
type RevenuePeriod struct {
	Period   string          `json:"period"`
	Invoiced decimal.Decimal `json:"invoiced"`
	Paid     decimal.Decimal `json:"paid"`
	Pending  decimal.Decimal `json:"pending"`
}

// RevenueSummaryReport defines model for RevenueSummaryReport.
type RevenueSummaryReport struct {
	Period   ReportPeriod    `json:"period"`
	DateFrom string          `json:"date_from"`
	DateTo   string          `json:"date_to"`
	Data     []RevenuePeriod `json:"data"`
	Totals   map[string]any  `json:"totals"`
}
