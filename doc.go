// Package tms is the Go SDK for the transport management system API. It
// covers waybills and tracking, billing, invoicing, payments, rate cards,
// sender accounts, billing profiles, delivery events and reports.
//
// # Signing
//
// Mutating requests carry their authentication inside the JSON body. Before
// sending, [Client] adds mchId (the API key), nonceStr (32 random
// alphanumerics), timestamp (Unix seconds) and sign. sign is the uppercase hex
// SHA-256 of the canonical JSON of the body without sign, as produced by the
// signature package. The tracking lookups sign their query string the same
// way.
//
// # Responses
//
// The backend answers in two shapes. Non-2xx responses and 2xx responses with
// a non-zero code and success set to false are returned as [*Error];
// [Error.Kind] tells them apart. Everything else is a success, and the data
// member is unwrapped when present. Network failures, timeouts and bodies
// that are not JSON are returned as [*RequestError]; use errors.Is with
// [ErrTimeout] or [ErrInvalidResponse] to tell them apart.
//
// # Usage
//
//	client, err := tms.NewClient("https://tms.example.com/api", apiKey, apiSecret,
//		tms.WithTimeout(10*time.Second),
//		tms.WithLogger(logrus.StandardLogger()),
//	)
//	if err != nil {
//		return err
//	}
//	events, err := client.Waybills.Events(ctx, "TH24020001")
//
// A Client is safe for concurrent use.
package tms
