package tms

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/alphacargo/tms-go/signature"
)

func date(year int, month time.Month, day int) openapi_types.Date {
	return openapi_types.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func testWaybillRequest() CreateWaybillRequest {
	return CreateWaybillRequest{
		OutTradeNo:           "ORDER-1",
		Owner:                "warehouse-a",
		SenderName:           "Acme",
		SenderPhone:          "0212345678",
		SenderCityName:       "Bangkok",
		SenderDistrictName:   "Watthana",
		SenderPostCode:       "10110",
		SenderAddress:        "123 Sukhumvit Road",
		ReceiverName:         "John Doe",
		ReceiverPhone:        "0812345678",
		ReceiverProvinceName: "Bangkok",
		ReceiverCityName:     "Bangkok",
		ReceiverDistrictName: "Chatuchak",
		ReceiverPostCode:     "10900",
		ReceiverAddress:      "456 Phaholyothin Road",
		ParcelList: []Parcel{{
			OutParcelNo: "PKG-1",
			ItemDesc:    "Electronics",
			ItemValue:   1500,
			ProductList: []Product{{SKU: "SKU-1", Name: "Mouse"}},
		}},
	}
}

func TestResources(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		response string
		call     func(ctx context.Context, c *Client) (any, error)
		method   string
		path     string
		query    string
		// body maps top level members to their canonical JSON. nil expects no body.
		body  map[string]string
		check func(t *testing.T, got any)
	}{
		"waybills create": {
			response: `{"success":true,"data":{"waybill_no":"TH1","external_waybill_no":"ORDER-1","status":"created","packages":[{"package_no":"P1","external_package_no":"PKG-1"}]}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Waybills.Create(ctx, testWaybillRequest())
			},
			method: http.MethodPost,
			path:   "/api/waybills",
			body:   map[string]string{"outTradeNo": `"ORDER-1"`, "receiverPhone2": ""},
			check: func(t *testing.T, got any) {
				res := got.(*CreateWaybillResponse)
				if res.WaybillNo != "TH1" || len(res.Packages) != 1 {
					t.Fatalf("unexpected response %+v", res)
				}
			},
		},
		"waybills cancel escapes path": {
			response: `{"success":true,"message":"Waybill canceled"}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Waybills.Cancel(ctx, "EXT/1 2")
			},
			method: http.MethodDelete,
			path:   "/api/waybills/EXT%2F1%202",
			check: func(t *testing.T, got any) {
				if res := got.(*MessageResponse); res.Message != "Waybill canceled" {
					t.Fatalf("unexpected response %+v", res)
				}
			},
		},
		"waybills routes": {
			response: `{"code":0,"data":{"trackingNo":"TH1","state":"10","routes":[{"state":"10","createdAt":1700000000}]}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Waybills.Routes(ctx, "TH1")
			},
			method: http.MethodGet,
			path:   "/api/waybills/TH1/routes",
			query:  "mchId=merchant-001&nonceStr=" + testNonce + "&sign=" + emptySignature + "&timestamp=1700000000",
			check: func(t *testing.T, got any) {
				res := got.(*WaybillEvents)
				if len(res.Routes) != 1 || res.Routes[0].CreatedAt != 1700000000 {
					t.Fatalf("unexpected response %+v", res)
				}
			},
		},
		"waybills add package": {
			response: `{"success":true,"data":{"package_no":"P2","external_package_no":"PKG-2","waybill_id":"wb_1"}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Waybills.AddPackage(ctx, "TH1", AddPackageRequest{ExternalPackageNo: "PKG-2"})
			},
			method: http.MethodPost,
			path:   "/api/waybills/TH1/packages",
			body:   map[string]string{"external_package_no": `"PKG-2"`},
		},
		"waybills list additional services unwraps nested data": {
			response: `{"success":true,"data":{"data":[{"id":"as_1","service_id":"svc_cod","status":"pending"}]}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Waybills.ListAdditionalServices(ctx, "TH1")
			},
			method: http.MethodGet,
			path:   "/api/waybills/TH1/additional-services",
			check: func(t *testing.T, got any) {
				res := got.([]AdditionalService)
				if len(res) != 1 || res[0].Status != AdditionalServicePending {
					t.Fatalf("unexpected response %+v", res)
				}
			},
		},
		"waybills add additional services": {
			response: `{"success":true,"data":[{"id":"as_1"},{"id":"as_2"}]}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Waybills.AddAdditionalServices(ctx, "TH1", []string{"svc_cod", "svc_ins"})
			},
			method: http.MethodPost,
			path:   "/api/waybills/TH1/additional-services",
			body:   map[string]string{"service_ids": `["svc_cod","svc_ins"]`},
			check: func(t *testing.T, got any) {
				if res := got.([]AdditionalService); len(res) != 2 {
					t.Fatalf("unexpected response %+v", res)
				}
			},
		},
		"waybills update additional service": {
			response: `{"success":true,"data":{"data":{"id":"as_1","status":"completed"}}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Waybills.UpdateAdditionalService(ctx, "TH1", "as_1", UpdateAdditionalServiceRequest{Status: AdditionalServiceCompleted})
			},
			method: http.MethodPatch,
			path:   "/api/waybills/TH1/additional-services/as_1",
			body:   map[string]string{"status": `"completed"`},
			check: func(t *testing.T, got any) {
				if res := got.(*AdditionalService); res.Status != AdditionalServiceCompleted {
					t.Fatalf("unexpected response %+v", res)
				}
			},
		},
		"waybills consolidate": {
			response: `{"success":true,"data":{"masterWaybill":{"id":"wb_9","waybill_no":"TH9"},"subWaybills":[{"id":"wb_1","waybill_no":"TH1"}]}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Waybills.Consolidate(ctx, ConsolidateWaybillsRequest{
					WaybillIDs:        []string{"wb_1"},
					ExternalWaybillNo: "MASTER-1",
					Sender:            IDRef{ID: "sa_1"},
					Recipient: RecipientInput{
						Name:    "Jane",
						Phone:   "0899999999",
						Address: RecipientAddress{StreetLine: "1 Silom", City: "Bangkok", State: "Bangkok", ZipCode: "10500"},
					},
					ServiceID: "svc_std",
				})
			},
			method: http.MethodPost,
			path:   "/api/waybills/consolidated-waybills",
			body:   map[string]string{"sender": `{"id":"sa_1"}`, "waybill_ids": `["wb_1"]`},
			check: func(t *testing.T, got any) {
				if res := got.(*ConsolidateWaybillsResponse); res.MasterWaybill.WaybillNo != "TH9" {
					t.Fatalf("unexpected response %+v", res)
				}
			},
		},
		"billings list": {
			response: `{"success":true,"data":{"data":[{"id":"b1","quantity":"2","unit_price":50,"total_amount":100.5}],"page":2,"pageSize":50,"total":51,"totalPages":2}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				from := date(2024, time.January, 1)
				return c.Billings.List(ctx, &ListBillingsParams{
					PaginationParams: PaginationParams{Page: 2, PageSize: 50},
					DateRangeParams:  DateRangeParams{DateFrom: &from},
					Status:           BillingStatusPaid,
				})
			},
			method: http.MethodGet,
			path:   "/api/billings",
			query:  "date_from=2024-01-01&page=2&pageSize=50&status=paid",
			check: func(t *testing.T, got any) {
				res := got.(*Page[BillingRecord])
				if res.TotalPages != 2 || len(res.Data) != 1 {
					t.Fatalf("unexpected response %+v", res)
				}
				if !res.Data[0].TotalAmount.Equal(decimal.RequireFromString("100.5")) || !res.Data[0].Quantity.Equal(decimal.NewFromInt(2)) {
					t.Fatalf("unexpected amounts %+v", res.Data[0])
				}
			},
		},
		"billings list without params": {
			response: `{"success":true,"data":{"data":[],"page":1,"pageSize":20,"total":0,"totalPages":0}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Billings.List(ctx, nil)
			},
			method: http.MethodGet,
			path:   "/api/billings",
		},
		"billings update": {
			response: `{"success":true,"data":{"id":"b1","status":"canceled"}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Billings.Update(ctx, "b1", UpdateBillingRequest{Status: BillingStatusCanceled})
			},
			method: http.MethodPatch,
			path:   "/api/billings/b1",
			body:   map[string]string{"status": `"canceled"`, "quantity": ""},
		},
		"billings delete": {
			response: `{"success":true,"message":"Billing deleted"}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Billings.Delete(ctx, "b1")
			},
			method: http.MethodDelete,
			path:   "/api/billings/b1",
		},
		"billings send email": {
			response: `{"success":true,"message":"sent","records_count":3,"total_amount":450}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Billings.SendEmail(ctx, BillingEmailRequest{RecipientEmail: "ops@example.com", BillingIDs: []string{"b1"}})
			},
			method: http.MethodPost,
			path:   "/api/billings/email",
			body:   map[string]string{"recipient_email": `"ops@example.com"`, "billing_ids": `["b1"]`},
			check: func(t *testing.T, got any) {
				res := got.(*BillingEmailResponse)
				if res.RecordsCount != 3 || !res.TotalAmount.Equal(decimal.NewFromInt(450)) {
					t.Fatalf("unexpected response %+v", res)
				}
			},
		},
		"invoices create": {
			response: `{"success":true,"data":{"id":"inv_1","invoice_no":"INV-1","status":"draft"}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Invoices.Create(ctx, CreateInvoiceRequest{
					PeriodStart: date(2024, time.January, 1),
					PeriodEnd:   date(2024, time.January, 31),
					Currency:    "THB",
				})
			},
			method: http.MethodPost,
			path:   "/api/invoices",
			body:   map[string]string{"period_start": `"2024-01-01"`, "period_end": `"2024-01-31"`, "currency": `"THB"`},
		},
		"invoices issue without body": {
			response: `{"success":true,"data":{"data":{"id":"inv_1","status":"issued"}}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Invoices.Issue(ctx, "inv_1", nil)
			},
			method: http.MethodPost,
			path:   "/api/invoices/inv_1/issue",
			body:   map[string]string{},
			check: func(t *testing.T, got any) {
				if res := got.(*Invoice); res.Status != InvoiceStatusIssued {
					t.Fatalf("unexpected response %+v", res)
				}
			},
		},
		"invoices send email": {
			response: `{"success":true,"message":"sent","invoice_no":"INV-1"}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Invoices.SendEmail(ctx, "inv_1", SendInvoiceEmailRequest{RecipientEmail: "ap@example.com"})
			},
			method: http.MethodPost,
			path:   "/api/invoices/inv_1/email",
			body:   map[string]string{"recipient_email": `"ap@example.com"`},
		},
		"invoices remove line items signs delete body": {
			response: `{"success":true,"message":"removed"}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Invoices.RemoveLineItems(ctx, "inv_1", []string{"b1", "b2"})
			},
			method: http.MethodDelete,
			path:   "/api/invoices/inv_1/line-items",
			body:   map[string]string{"billing_ids": `["b1","b2"]`},
		},
		"payments create": {
			response: `{"success":true,"data":{"id":"pay_1","amount":1500.25,"status":"pending"}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Payments.Create(ctx, CreatePaymentRequest{
					Amount:        1500.25,
					PaymentMethod: PaymentMethodBankTransfer,
					PaymentDate:   date(2024, time.February, 1),
					Allocations:   []AllocationInput{{InvoiceID: "inv_1", Amount: 1500.25}},
				})
			},
			method: http.MethodPost,
			path:   "/api/payments",
			body: map[string]string{
				"amount":      `1500.25`,
				"allocations": `[{"amount":1500.25,"invoice_id":"inv_1"}]`,
			},
			check: func(t *testing.T, got any) {
				if res := got.(*Payment); !res.Amount.Equal(decimal.RequireFromString("1500.25")) {
					t.Fatalf("unexpected response %+v", res)
				}
			},
		},
		"payments replace allocations": {
			response: `{"success":true,"message":"Allocations updated"}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Payments.ReplaceAllocations(ctx, "pay_1", []AllocationInput{{InvoiceID: "inv_2", Amount: 10}})
			},
			method: http.MethodPut,
			path:   "/api/payments/pay_1/allocations",
			body:   map[string]string{"allocations": `[{"amount":10,"invoice_id":"inv_2"}]`},
		},
		"payments slip absent": {
			response: `{"success":true,"data":null}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Payments.Slip(ctx, "pay_1")
			},
			method: http.MethodGet,
			path:   "/api/payments/pay_1/slip",
			check: func(t *testing.T, got any) {
				if res := got.(*BankSlip); res != nil {
					t.Fatalf("expected no slip, got %+v", res)
				}
			},
		},
		"payments verify slip": {
			response: `{"success":true,"message":"verified"}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Payments.VerifySlip(ctx, "pay_1", VerifyBankSlipRequest{Verified: false})
			},
			method: http.MethodPost,
			path:   "/api/payments/pay_1/slip/verify",
			body:   map[string]string{"verified": `false`},
		},
		"payments flashpay": {
			response: `{"success":true,"data":{"data":{"id":"fp_1","qr_image":"data:image/png;base64,AA==","qr_raw_data":"000201","trade_no":"T1"}}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Payments.InitiateFlashPay(ctx, FlashPayRequest{
					Amount:       100,
					Allocations:  []AllocationInput{{InvoiceID: "inv_1", Amount: 100}},
					FlashPayType: FlashPayTypeQR,
				})
			},
			method: http.MethodPost,
			path:   "/api/payments/flashpay",
			body:   map[string]string{"flashpay_type": `"qr"`},
			check: func(t *testing.T, got any) {
				res := got.(*FlashPayResponse)
				qr, err := res.AsFlashPayQRResponse()
				if err != nil || !res.IsQR() || qr.QRRawData != "000201" {
					t.Fatalf("unexpected response %+v (%v)", qr, err)
				}
			},
		},
		"rate cards list": {
			response: `{"success":true,"data":[{"id":"rc_1"}]}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.RateCards.List(ctx, &ListRateCardsParams{ServiceID: "svc_std"})
			},
			method: http.MethodGet,
			path:   "/api/rate-cards",
			query:  "service_id=svc_std",
		},
		"rate cards update": {
			response: `{"success":true,"data":{"id":"rc_1","unit_price":0}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				price := 0.0
				return c.RateCards.Update(ctx, "rc_1", UpdateRateCardRequest{UnitPrice: &price})
			},
			method: http.MethodPatch,
			path:   "/api/rate-cards/rc_1",
			body:   map[string]string{"unit_price": `0`, "name": ""},
		},
		"sender accounts list": {
			response: `{"success":true,"data":{"data":[{"id":"sa_1","name":"Acme"}],"pagination":{"total":1,"limit":10,"offset":0}}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				active := true
				return c.SenderAccounts.List(ctx, &ListSenderAccountsParams{Search: "acme", IsActive: &active, Limit: 10})
			},
			method: http.MethodGet,
			path:   "/api/sender-accounts",
			query:  "is_active=true&limit=10&search=acme",
			check: func(t *testing.T, got any) {
				res := got.(*SenderAccountList)
				if res.Pagination.Total != 1 || res.Data[0].Name != "Acme" {
					t.Fatalf("unexpected response %+v", res)
				}
			},
		},
		"sender accounts update uses put": {
			response: `{"success":true,"data":{"id":"sa_1","name":"Acme Co"}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.SenderAccounts.Update(ctx, "sa_1", UpdateSenderAccountRequest{Name: "Acme Co"})
			},
			method: http.MethodPut,
			path:   "/api/sender-accounts/sa_1",
			body:   map[string]string{"name": `"Acme Co"`},
		},
		"sender accounts list addresses": {
			response: `{"success":true,"data":{"data":[{"id":"addr_1","street_line":"1 Silom","address_type":"pickup","is_default":true}]}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.SenderAccounts.ListAddresses(ctx, "sa_1", &ListSenderAccountAddressesParams{AddressType: AddressTypePickup})
			},
			method: http.MethodGet,
			path:   "/api/sender-accounts/sa_1/addresses",
			query:  "address_type=pickup",
			check: func(t *testing.T, got any) {
				res := got.([]SenderAccountAddress)
				if len(res) != 1 || !res[0].IsDefault {
					t.Fatalf("unexpected response %+v", res)
				}
			},
		},
		"sender accounts update address": {
			response: `{"success":true,"data":{"id":"addr_1","street_line":"2 Silom"}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.SenderAccounts.UpdateAddress(ctx, "sa_1", "addr_1", UpdateSenderAccountAddressRequest{
					Address: &AddressFields{StreetLine: "2 Silom"},
				})
			},
			method: http.MethodPut,
			path:   "/api/sender-accounts/sa_1/addresses/addr_1",
			body:   map[string]string{"address": `{"street_line":"2 Silom"}`},
		},
		"billing profiles get unwraps nested data": {
			response: `{"success":true,"data":{"data":{"id":"bp_1","billing_type":"consolidated","default_tax_rate":"7"}}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.BillingProfiles.Get(ctx, "bp_1")
			},
			method: http.MethodGet,
			path:   "/api/billing-profiles/bp_1",
			check: func(t *testing.T, got any) {
				res := got.(*BillingProfile)
				if res.ID != "bp_1" || !res.DefaultTaxRate.Equal(decimal.NewFromInt(7)) {
					t.Fatalf("unexpected response %+v", res)
				}
			},
		},
		"billing profiles update clears fields": {
			response: `{"success":true,"data":{"data":{"id":"bp_1"}}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.BillingProfiles.Update(ctx, "bp_1", UpdateBillingProfileRequest{
					CycleDay:     NewNullable(15),
					DefaultNotes: Null[string](),
				})
			},
			method: http.MethodPatch,
			path:   "/api/billing-profiles/bp_1",
			body:   map[string]string{"cycle_day": `15`, "default_notes": `null`, "cycle_weekday": ""},
		},
		"billing profiles delete returns profile": {
			response: `{"success":true,"data":{"data":{"id":"bp_1","is_active":false}}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.BillingProfiles.Delete(ctx, "bp_1")
			},
			method: http.MethodDelete,
			path:   "/api/billing-profiles/bp_1",
		},
		"billing profiles list cycles": {
			response: `{"success":true,"data":{"data":[{"id":"run_1","status":"completed"}],"page":1,"pageSize":20,"total":1,"totalPages":1}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.BillingProfiles.ListCycles(ctx, "bp_1", &ListCycleRunsParams{Status: CycleRunCompleted})
			},
			method: http.MethodGet,
			path:   "/api/billing-profiles/bp_1/cycles",
			query:  "status=completed",
		},
		"billing profiles trigger cycle": {
			response: `{"success":true,"data":{"data":{"id":"run_2","status":"processing"}}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				asOf := date(2024, time.March, 1)
				return c.BillingProfiles.TriggerCycle(ctx, "bp_1", &TriggerCycleRequest{AsOfDate: &asOf})
			},
			method: http.MethodPost,
			path:   "/api/billing-profiles/bp_1/cycles",
			body:   map[string]string{"as_of_date": `"2024-03-01"`},
			check: func(t *testing.T, got any) {
				if res := got.(*BillingCycleRun); res.Status != CycleRunProcessing {
					t.Fatalf("unexpected response %+v", res)
				}
			},
		},
		"delivery events create": {
			response: `{"success":true,"data":{"id":"ev_1","event_type":"delivered"}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.DeliveryEvents.Create(ctx, CreateDeliveryEventRequest{
					WaybillID: "wb_1",
					EventType: DeliveryEventDelivered,
					EventTime: "2024-02-01T10:00:00+07:00",
				})
			},
			method: http.MethodPost,
			path:   "/api/delivery-events",
			body:   map[string]string{"event_type": `"delivered"`, "waybill_id": `"wb_1"`},
		},
		"delivery events delete pod escapes url": {
			response: `{"success":true}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.DeliveryEvents.DeletePOD(ctx, "ev_1", "https://cdn.example/pod 1.jpg")
			},
			method: http.MethodDelete,
			path:   "/api/delivery-events/ev_1/pods/https%3A%2F%2Fcdn.example%2Fpod%201.jpg",
		},
		"reports billing by service": {
			response: `{"success":true,"data":{"date_from":"2024-01-01","date_to":"2024-01-31","data":[{"service":"Standard","service_id":"svc_std","quantity":10,"amount":"1234.50"}],"totals":{"quantity":10,"amount":1234.5}}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Reports.BillingByService(ctx, BillingByServiceParams{
					ReportDateRangeParams: ReportDateRangeParams{DateFrom: date(2024, time.January, 1), DateTo: date(2024, time.January, 31)},
					ContractorID:          "ct_1",
				})
			},
			method: http.MethodGet,
			path:   "/api/reports/billing-by-service",
			query:  "contractor_id=ct_1&date_from=2024-01-01&date_to=2024-01-31",
			check: func(t *testing.T, got any) {
				res := got.(*BillingByServiceReport)
				if len(res.Data) != 1 || !res.Data[0].Amount.Equal(res.Totals.Amount) {
					t.Fatalf("unexpected response %+v", res)
				}
			},
		},
		"reports outstanding invoices without params": {
			response: `{"success":true,"data":{"date_as_of":"2024-02-01","data":[],"summary":{}}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Reports.OutstandingInvoices(ctx, nil)
			},
			method: http.MethodGet,
			path:   "/api/reports/outstanding-invoices",
		},
		"reports revenue summary": {
			response: `{"success":true,"data":{"period":"monthly","data":[{"period":"2024-01","invoiced":100,"paid":60,"pending":40}]}}`,
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Reports.RevenueSummary(ctx, RevenueSummaryParams{
					ReportDateRangeParams: ReportDateRangeParams{DateFrom: date(2024, time.January, 1), DateTo: date(2024, time.June, 30)},
					Period:                ReportPeriodMonthly,
				})
			},
			method: http.MethodGet,
			path:   "/api/reports/revenue-summary",
			query:  "date_from=2024-01-01&date_to=2024-06-30&period=monthly",
			check: func(t *testing.T, got any) {
				res := got.(*RevenueSummaryReport)
				if len(res.Data) != 1 || !res.Data[0].Pending.Equal(decimal.NewFromInt(40)) {
					t.Fatalf("unexpected response %+v", res)
				}
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client, rec := newTestClient(t, http.StatusOK, tc.response)
			got, err := tc.call(context.Background(), client)
			if err != nil {
				t.Fatalf("call error = %v", err)
			}

			req := rec.last(t)
			if req.Method != tc.method || req.Path != tc.path {
				t.Fatalf("request = %s %s, want %s %s", req.Method, req.Path, tc.method, tc.path)
			}
			if req.RawQuery != tc.query {
				t.Fatalf("query = %q, want %q", req.RawQuery, tc.query)
			}
			assertSignedBody(t, req.Body, tc.body)
			if tc.check != nil {
				tc.check(t, got)
			}
		})
	}
}

// assertSignedBody checks that raw is a verifiable signed object holding
// want. An empty canonical value asserts the member is absent.
func assertSignedBody(t *testing.T, raw []byte, want map[string]string) {
	t.Helper()
	if want == nil {
		if len(raw) != 0 {
			t.Fatalf("unexpected body %s", raw)
		}
		return
	}
	signed := decodeSigned(t, raw)
	for key, canonical := range want {
		value, ok := signed[key]
		if canonical == "" {
			if ok {
				t.Fatalf("member %q should be absent in %s", key, raw)
			}
			continue
		}
		if !ok {
			t.Fatalf("member %q missing in %s", key, raw)
		}
		if got := signature.Canonicalize(value); got != canonical {
			t.Fatalf("member %q = %s, want %s", key, got, canonical)
		}
	}
}

func TestResourcesRequireIDs(t *testing.T) {
	t.Parallel()

	client, rec := newTestClient(t, http.StatusOK, `{}`)
	ctx := context.Background()

	calls := map[string]func() error{
		"waybill events": func() error { _, err := client.Waybills.Events(ctx, " "); return err },
		"billing get":    func() error { _, err := client.Billings.Get(ctx, ""); return err },
		"invoice issue":  func() error { _, err := client.Invoices.Issue(ctx, "", nil); return err },
		"payment slip":   func() error { _, err := client.Payments.Slip(ctx, ""); return err },
		"address get":    func() error { _, err := client.SenderAccounts.Address(ctx, "sa_1", ""); return err },
		"pod delete":     func() error { return client.DeliveryEvents.DeletePOD(ctx, "ev_1", "") },
		"rate card del":  func() error { return client.RateCards.Delete(ctx, "") },
		"profile cycles": func() error { _, err := client.BillingProfiles.ListCycles(ctx, "", nil); return err },
	}
	for name, call := range calls {
		if err := call(); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("%s: error = %v, want ErrInvalidRequest", name, err)
		}
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.reqs) != 0 {
		t.Fatalf("invalid calls reached the server: %d requests", len(rec.reqs))
	}
}
