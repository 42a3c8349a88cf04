package tms

import (
	"context"
	"net/http"

	"github.com/alphacargo/tms-go/signature"
)

// Reports runs the financial reports. Every report has a JSON form and a CSV
// form that is returned as raw bytes.
type Reports struct {
	c *Client
}

// BillingByService sums billed quantities and amounts per service.
func (s *Reports) BillingByService(ctx context.Context, params BillingByServiceParams) (*BillingByServiceReport, error) {
	return report[*BillingByServiceReport](ctx, s, "/reports/billing-by-service", params)
}

// BillingByServiceCSV is BillingByService rendered as CSV.
func (s *Reports) BillingByServiceCSV(ctx context.Context, params BillingByServiceParams) ([]byte, error) {
	return s.csv(ctx, "/reports/billing-by-service", params)
}

// OutstandingInvoices lists unpaid invoices with their aging bucket.
func (s *Reports) OutstandingInvoices(ctx context.Context, params *OutstandingInvoicesParams) (*OutstandingInvoicesReport, error) {
	if params == nil {
		params = &OutstandingInvoicesParams{}
	}
	return report[*OutstandingInvoicesReport](ctx, s, "/reports/outstanding-invoices", params)
}

// OutstandingInvoicesCSV is OutstandingInvoices rendered as CSV.
func (s *Reports) OutstandingInvoicesCSV(ctx context.Context, params *OutstandingInvoicesParams) ([]byte, error) {
	if params == nil {
		params = &OutstandingInvoicesParams{}
	}
	return s.csv(ctx, "/reports/outstanding-invoices", params)
}

// PaymentHistory lists payments received in a date range.
func (s *Reports) PaymentHistory(ctx context.Context, params PaymentHistoryParams) (*PaymentHistoryReport, error) {
	return report[*PaymentHistoryReport](ctx, s, "/reports/payment-history", params)
}

// PaymentHistoryCSV is PaymentHistory rendered as CSV.
func (s *Reports) PaymentHistoryCSV(ctx context.Context, params PaymentHistoryParams) ([]byte, error) {
	return s.csv(ctx, "/reports/payment-history", params)
}

// RevenueSummary buckets invoiced, paid and pending amounts per period.
func (s *Reports) RevenueSummary(ctx context.Context, params RevenueSummaryParams) (*RevenueSummaryReport, error) {
	return report[*RevenueSummaryReport](ctx, s, "/reports/revenue-summary", params)
}

// RevenueSummaryCSV is RevenueSummary rendered as CSV.
func (s *Reports) RevenueSummaryCSV(ctx context.Context, params RevenueSummaryParams) ([]byte, error) {
	return s.csv(ctx, "/reports/revenue-summary", params)
}

func report[T any](ctx context.Context, s *Reports, path string, params any) (T, error) {
	if err := validateRequest(params); err != nil {
		var zero T
		return zero, err
	}
	return call[T](ctx, s.c, http.MethodGet, path, RequestOptions{Query: params})
}

func (s *Reports) csv(ctx context.Context, path string, params any) ([]byte, error) {
	if err := validateRequest(params); err != nil {
		return nil, err
	}
	query, err := toObject(params)
	if err != nil {
		return nil, err
	}
	query[reportFormatKey] = signature.String(ReportFormatCSV)
	res, err := s.c.DoRaw(ctx, http.MethodGet, path, RawRequest{
		Query:          query,
		FailureMessage: "Failed to fetch report",
	})
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}

const reportFormatKey = "format"
