// request_executor.go
// -------------------
// The requestExecutor drives one logical API call: send, classify, decide
// whether to retry, back off, repeat. It runs entirely on the caller's
// goroutine and keeps no state across invocations, so any number of calls
// can be in flight concurrently.
package questdeck

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

// operation is a fully-prepared request: resolved URL, merged headers,
// serialized body. Built once by Client.prepare and replayed verbatim on
// every attempt.
type operation struct {
	method string
	path   string
	url    string
	header http.Header
	body   []byte
}

type requestExecutor struct {
	cfg       *Config
	transport Transport
	log       zerolog.Logger

	// wait is the backoff sleep; overridable in tests.
	wait func(ctx context.Context, d time.Duration) error
}

// do executes the operation with up to MaxRetries+1 attempts. Attempts are
// strictly sequential: the next one never starts before the previous
// outcome and its backoff wait have completed.
//
// Retry rules:
//   - 429 is retried with the server's hint, regardless of idempotency.
//   - retryable 5xx and connect/timeout faults are retried only when the
//     verb is repeat-safe or the request carries an idempotency key.
//   - everything else surfaces immediately.
func (re *requestExecutor) do(ctx context.Context, op *operation) (*Response, error) {
	// A misconfigured negative MaxRetries must not zero out the loop:
	// every call gets at least one attempt.
	maxAttempts := 1
	if re.cfg.AutoRetryRateLimit && re.cfg.MaxRetries > 0 {
		maxAttempts = re.cfg.MaxRetries + 1
	}
	retrySafe := canRetry(op.method, op.header)

	var last error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		re.log.Debug().
			Str("method", op.method).
			Str("path", op.path).
			Int("attempt", attempt+1).
			Int("max_attempts", maxAttempts).
			Msg("sending request")

		start := time.Now()
		resp, err := re.transport.Send(ctx, op.method, op.url, op.header, op.body)
		elapsed := time.Since(start)

		if err != nil {
			// Cancellation is not a network fault: propagate as-is and
			// never retry.
			if ctx.Err() != nil {
				return nil, fmt.Errorf("questdeck: request aborted: %w", ctx.Err())
			}
			nerr := &NetworkError{Err: err}
			if !isRetryableTransportError(err) || !retrySafe || attempt == maxAttempts-1 {
				re.log.Debug().
					Str("method", op.method).
					Str("path", op.path).
					Int("attempt", attempt+1).
					Err(err).
					Msg("network failure")
				return nil, nerr
			}
			last = nerr
			if werr := re.backoff(ctx, attempt, 0); werr != nil {
				return nil, werr
			}
			continue
		}

		re.log.Debug().
			Str("method", op.method).
			Str("path", op.path).
			Int("status", resp.StatusCode).
			Dur("elapsed", elapsed).
			Int("attempt", attempt+1).
			Msg("received response")

		cerr := classifyResponse(resp.StatusCode, resp.Header, resp.Body)
		if cerr == nil {
			return resp, nil
		}

		switch e := cerr.(type) {
		case *RateLimitError:
			// Replaying a rate-limited request is always safe: the server
			// rejected it without acting on it.
			last = e
			if attempt == maxAttempts-1 {
				return nil, e
			}
			var hint time.Duration
			if e.RetryAfter != nil {
				hint = time.Duration(*e.RetryAfter) * time.Second
			}
			if werr := re.backoff(ctx, attempt, hint); werr != nil {
				return nil, werr
			}

		case *ServerError:
			if !re.cfg.retryable(resp.StatusCode) || !retrySafe {
				return nil, e
			}
			last = e
			if attempt == maxAttempts-1 {
				return nil, e
			}
			if werr := re.backoff(ctx, attempt, 0); werr != nil {
				return nil, werr
			}

		default:
			return nil, cerr
		}
	}

	// Unreachable while maxAttempts >= 1: every branch above returns on the
	// final attempt. Kept so the loop can never fall through silently.
	return nil, last
}

func (re *requestExecutor) backoff(ctx context.Context, attempt int, hint time.Duration) error {
	d := retryBackoff(re.cfg.RetryDelay, attempt, hint)
	re.log.Debug().
		Dur("backoff", d).
		Int("attempt", attempt+1).
		Msg("retrying after backoff")
	return re.wait(ctx, d)
}

// sleepContext waits for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("questdeck: request aborted: %w", ctx.Err())
	case <-t.C:
		return nil
	}
}

// isRetryableTransportError keeps the retry-eligible set narrow: timeouts
// and connection-level faults (refused, reset, failed dial). DNS and TLS
// failures are not retried; they rarely resolve within a backoff window.
func isRetryableTransportError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	return false
}
