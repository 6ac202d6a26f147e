// config.go
// ---------
// Client configuration: construction-time options for retries, backoff,
// credentials and scoping. A Config is assembled once by NewClient and is
// read-only afterwards.
package questdeck

import (
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	defaultRetryDelay = time.Second

	// MaxPageLimit is the largest page size the API accepts; larger
	// requested limits are clamped to it.
	MaxPageLimit = 100
)

// Config holds all client settings. Use NewClient with Options rather than
// constructing one directly.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.questdeck.io/v1". Required.
	BaseURL string

	// Credential supplies the Authorization header. Optional.
	Credential Credential

	// Timeout bounds each individual transport call.
	Timeout time.Duration

	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int

	// RetryDelay is the base backoff delay; see retryBackoff for growth.
	RetryDelay time.Duration

	// AutoRetryRateLimit enables the retry loop. When false every request
	// gets exactly one attempt.
	AutoRetryRateLimit bool

	// AutoIdempotencyKey generates an Idempotency-Key for POST and PATCH
	// requests that don't carry one, making them safe to retry.
	AutoIdempotencyKey bool

	// RetryableStatuses is the set of server error statuses worth retrying.
	RetryableStatuses map[int]bool

	// DefaultCompanyID scopes company-bound services when no explicit
	// company is chosen per call.
	DefaultCompanyID string

	// ExtraHeaders are added to every request.
	ExtraHeaders map[string]string

	Logger    zerolog.Logger
	Transport Transport
}

func defaultConfig() Config {
	return Config{
		Timeout:            defaultTimeout,
		MaxRetries:         defaultMaxRetries,
		RetryDelay:         defaultRetryDelay,
		AutoRetryRateLimit: true,
		AutoIdempotencyKey: true,
		RetryableStatuses:  map[int]bool{500: true, 502: true, 503: true, 504: true},
		Logger:             zerolog.Nop(),
	}
}

func (c *Config) retryable(status int) bool {
	return c.RetryableStatuses[status]
}

// Option configures a Client at construction time.
type Option func(*Config)

// WithBaseURL sets the API root URL.
func WithBaseURL(u string) Option {
	return func(c *Config) { c.BaseURL = u }
}

// WithCredential sets the credential used for the Authorization header.
func WithCredential(cred Credential) Option {
	return func(c *Config) { c.Credential = cred }
}

// WithAPIKey authenticates with a static bearer API key.
func WithAPIKey(key string) Option {
	return WithCredential(APIKey(key))
}

// WithTimeout bounds each transport call.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.Timeout = d }
}

// WithMaxRetries sets the number of retries after the first attempt.
func WithMaxRetries(n int) Option {
	return func(c *Config) { c.MaxRetries = n }
}

// WithRetryDelay sets the base backoff delay.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Config) { c.RetryDelay = d }
}

// WithAutoRetryRateLimit toggles automatic retries.
func WithAutoRetryRateLimit(enabled bool) Option {
	return func(c *Config) { c.AutoRetryRateLimit = enabled }
}

// WithAutoIdempotencyKey toggles idempotency key generation for POST/PATCH.
func WithAutoIdempotencyKey(enabled bool) Option {
	return func(c *Config) { c.AutoIdempotencyKey = enabled }
}

// WithRetryableStatuses replaces the set of retryable server statuses.
func WithRetryableStatuses(statuses ...int) Option {
	return func(c *Config) {
		c.RetryableStatuses = make(map[int]bool, len(statuses))
		for _, s := range statuses {
			c.RetryableStatuses[s] = true
		}
	}
}

// WithDefaultCompanyID scopes company-bound services.
func WithDefaultCompanyID(id string) Option {
	return func(c *Config) { c.DefaultCompanyID = id }
}

// WithExtraHeader adds a header to every request.
func WithExtraHeader(key, value string) Option {
	return func(c *Config) {
		if c.ExtraHeaders == nil {
			c.ExtraHeaders = map[string]string{}
		}
		c.ExtraHeaders[key] = value
	}
}

// WithLogger attaches a structured logger. The client logs attempt-level
// events at debug severity; logging never affects behavior.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Config) { c.Logger = log }
}

// WithTransport substitutes the transport, mainly for tests.
func WithTransport(t Transport) Option {
	return func(c *Config) { c.Transport = t }
}

// envPrefix is the prefix of the environment variables read by
// ConfigFromEnv, e.g. QUESTDECK_API_KEY.
const envPrefix = "QUESTDECK_"

// ConfigFromEnv derives Options from QUESTDECK_* environment variables:
// BASE_URL, API_KEY, COMPANY_ID, TIMEOUT (duration), MAX_RETRIES.
// Unset variables yield no option, so explicit Options passed after these
// still win.
func ConfigFromEnv() ([]Option, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, err
	}

	var opts []Option
	if v := k.String("base.url"); v != "" {
		opts = append(opts, WithBaseURL(v))
	}
	if v := k.String("api.key"); v != "" {
		opts = append(opts, WithAPIKey(v))
	}
	if v := k.String("company.id"); v != "" {
		opts = append(opts, WithDefaultCompanyID(v))
	}
	if k.Exists("timeout") {
		opts = append(opts, WithTimeout(k.Duration("timeout")))
	}
	if k.Exists("max.retries") {
		opts = append(opts, WithMaxRetries(k.Int("max.retries")))
	}
	return opts, nil
}
