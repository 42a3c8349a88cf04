package tms

import (
	"errors"
	"strings"

	"github.com/alphacargo/tms-go/signature"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "0.1.0"

// Client talks to the TMS API. It is immutable after construction and safe
// for concurrent use.
type Client struct {
	baseURL string
	signer  signature.Signer
	cfg     config

	Waybills        *Waybills
	Billings        *Billings
	Invoices        *Invoices
	Payments        *Payments
	RateCards       *RateCards
	SenderAccounts  *SenderAccounts
	BillingProfiles *BillingProfiles
	DeliveryEvents  *DeliveryEvents
	Reports         *Reports
}

// NewClient builds a [Client] for the API rooted at baseURL. apiKey is sent
// as mchId in every signed payload; apiSecret keys the digest when
// [signature.SchemeHMACSHA256] is selected.
func NewClient(baseURL, apiKey, apiSecret string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("tms: baseURL is required")
	}
	if apiKey == "" {
		return nil, errors.New("tms: apiKey is required")
	}
	if apiSecret == "" {
		return nil, errors.New("tms: apiSecret is required")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		signer: signature.Signer{
			APIKey:    apiKey,
			APISecret: apiSecret,
			Scheme:    cfg.scheme,
			Clock:     cfg.clock,
			Nonce:     cfg.nonce,
		},
		cfg: cfg,
	}
	c.Waybills = &Waybills{c: c}
	c.Billings = &Billings{c: c}
	c.Invoices = &Invoices{c: c}
	c.Payments = &Payments{c: c}
	c.RateCards = &RateCards{c: c}
	c.SenderAccounts = &SenderAccounts{c: c}
	c.BillingProfiles = &BillingProfiles{c: c}
	c.DeliveryEvents = &DeliveryEvents{c: c}
	c.Reports = &Reports{c: c}
	return c, nil
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}
