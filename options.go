package tms

import (
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alphacargo/tms-go/signature"
)

// DefaultTimeout bounds every request unless [WithTimeout] overrides it.
const DefaultTimeout = 30 * time.Second

type config struct {
	timeout    time.Duration
	headers    http.Header
	httpClient *http.Client
	logger     logrus.FieldLogger
	userAgent  string
	scheme     signature.Scheme
	clock      func() time.Time
	nonce      func() string
}

func defaultConfig() config {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return config{
		timeout:    DefaultTimeout,
		headers:    make(http.Header),
		httpClient: http.DefaultClient,
		logger:     discard,
		userAgent:  "tms-go/" + Version,
		scheme:     signature.SchemeSHA256,
		clock:      time.Now,
	}
}

// Option customizes the client behavior.
type Option func(*config)

// WithTimeout sets the absolute timeout applied to each request.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("tms: timeout must be positive")
	}
	return func(cfg *config) {
		cfg.timeout = d
	}
}

// WithHeaders adds headers sent with every request. Later calls add to
// earlier ones. A Content-Type given here replaces application/json, except on
// multipart uploads.
func WithHeaders(headers map[string]string) Option {
	return func(cfg *config) {
		for k, v := range headers {
			cfg.headers.Set(k, v)
		}
	}
}

// WithHTTPClient replaces http.DefaultClient. The client's own Timeout still
// applies in addition to [WithTimeout].
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		if client != nil {
			cfg.httpClient = client
		}
	}
}

// WithLogger enables debug logging of every call. Secrets and signatures are
// never logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cfg *config) {
		cfg.userAgent = ua
	}
}

// WithSignatureScheme selects how request signatures are digested. The
// backend verifies [signature.SchemeSHA256], the default.
func WithSignatureScheme(scheme signature.Scheme) Option {
	return func(cfg *config) {
		cfg.scheme = scheme
	}
}

// withClock provides deterministic time in tests.
func withClock(fn func() time.Time) Option {
	return func(cfg *config) {
		cfg.clock = fn
	}
}

// withNonce provides deterministic nonces in tests.
func withNonce(fn func() string) Option {
	return func(cfg *config) {
		cfg.nonce = fn
	}
}
