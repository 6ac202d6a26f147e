// ratelimit.go
// ------------
// Resolution of rate-limit information from response headers. The API
// advertises its limits through the structured RateLimit header
// ("policy";r=REMAINING;t=SECONDS, optionally with alternative policies),
// with a plain integer Retry-After header as fallback for the reset time.
// The body of a 429 response is never consulted.
package questdeck

import (
	"net/http"

	"github.com/questdeck/questdeck-go/internal"
)

const (
	headerRateLimit  = "RateLimit"
	headerRetryAfter = "Retry-After"
)

// rateLimitInfo holds what the server told us about the current window.
// Nil fields mean the server did not say.
type rateLimitInfo struct {
	RetryAfter *int // seconds until reset
	Remaining  *int // requests left in the window
}

// parseRateLimitHeaders extracts retry and quota hints from the response
// headers. The "t" parameter of the first RateLimit policy gives the reset
// time, falling back to Retry-After; the "r" parameter gives the remaining
// quota, with no fallback.
func parseRateLimitHeaders(h http.Header) rateLimitInfo {
	var info rateLimitInfo

	raw := h.Get(headerRateLimit)
	if raw != "" {
		if v, ok := internal.ExtractPolicyField(raw, "t"); ok {
			info.RetryAfter = &v
		}
		if v, ok := internal.ExtractPolicyField(raw, "r"); ok {
			info.Remaining = &v
		}
	}

	if info.RetryAfter == nil {
		if v, ok := internal.ParseSeconds(h.Get(headerRetryAfter)); ok {
			info.RetryAfter = &v
		}
	}

	return info
}
