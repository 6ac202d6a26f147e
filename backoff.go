// backoff.go
// ----------
// Exponential backoff with jitter for the retry loop.
package questdeck

import (
	"math/rand/v2"
	"time"
)

// retryBackoff returns the wait before retry number attempt (0-indexed).
// The base is the configured delay, raised to the server hint when the
// server asked for a longer wait, then doubled per attempt. A uniform
// jitter in [0, delay/4) spreads out concurrent retriers.
func retryBackoff(base time.Duration, attempt int, hint time.Duration) time.Duration {
	if base <= 0 {
		base = time.Second
	}
	if hint > base {
		base = hint
	}
	d := base << uint(attempt)
	if jit := d / 4; jit > 0 {
		d += rand.N(jit)
	}
	return d
}
