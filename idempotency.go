// idempotency.go
// --------------
// Retry safety for non-idempotent verbs. GET, PUT and DELETE are repeat-safe
// by definition; POST and PATCH may only be retried when the request carries
// an Idempotency-Key header, so the server can deduplicate replays.
package questdeck

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderIdempotencyKey marks a mutating request as safe to replay.
const HeaderIdempotencyKey = "Idempotency-Key"

// canRetry decides whether a request may be sent again after a transient
// failure. The decision depends only on the verb and the presence of an
// idempotency key.
func canRetry(method string, header http.Header) bool {
	switch method {
	case http.MethodGet, http.MethodPut, http.MethodDelete:
		return true
	}
	return header.Get(HeaderIdempotencyKey) != ""
}

// needsIdempotencyKey reports whether the verb requires a key before it can
// be retried.
func needsIdempotencyKey(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPatch:
		return true
	}
	return false
}

func newIdempotencyKey() string {
	return uuid.NewString()
}
