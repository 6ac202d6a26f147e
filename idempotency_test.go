package questdeck

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanRetrySafeVerbs(t *testing.T) {
	empty := http.Header{}
	assert.True(t, canRetry(http.MethodGet, empty))
	assert.True(t, canRetry(http.MethodPut, empty))
	assert.True(t, canRetry(http.MethodDelete, empty))
}

func TestCanRetryUnsafeVerbsNeedKey(t *testing.T) {
	empty := http.Header{}
	assert.False(t, canRetry(http.MethodPost, empty))
	assert.False(t, canRetry(http.MethodPatch, empty))

	keyed := http.Header{}
	keyed.Set(HeaderIdempotencyKey, "x")
	assert.True(t, canRetry(http.MethodPost, keyed))
	assert.True(t, canRetry(http.MethodPatch, keyed))
}

func TestNeedsIdempotencyKey(t *testing.T) {
	assert.True(t, needsIdempotencyKey(http.MethodPost))
	assert.True(t, needsIdempotencyKey(http.MethodPatch))
	assert.False(t, needsIdempotencyKey(http.MethodGet))
	assert.False(t, needsIdempotencyKey(http.MethodPut))
	assert.False(t, needsIdempotencyKey(http.MethodDelete))
}

func TestNewIdempotencyKeyUnique(t *testing.T) {
	a := newIdempotencyKey()
	b := newIdempotencyKey()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
