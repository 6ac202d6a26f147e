// mock/transport.go
// -----------------
// A scripted Transport for tests and examples. Responses are served in the
// order they were enqueued; once the script runs out the transport falls
// back to Always429 (if set) or a plain 200.
package mock

import (
	"context"
	"net/http"
	"sync"

	questdeck "github.com/questdeck/questdeck-go"
)

// Call records one request the transport received.
type Call struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

type step struct {
	resp *questdeck.Response
	err  error
}

// Transport is a scripted questdeck.Transport. The zero value answers every
// request with 200 and an empty JSON object.
type Transport struct {
	mu    sync.Mutex
	steps []step
	calls []Call

	// Always429 makes the transport answer 429 (with an exhausted
	// RateLimit header) whenever the script is empty.
	Always429 bool
}

// EnqueueResponse appends a scripted response.
func (t *Transport) EnqueueResponse(status int, header http.Header, body []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if header == nil {
		header = http.Header{}
	}
	t.steps = append(t.steps, step{resp: &questdeck.Response{
		StatusCode: status,
		Header:     header,
		Body:       body,
	}})
}

// EnqueueError appends a scripted transport failure.
func (t *Transport) EnqueueError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.steps = append(t.steps, step{err: err})
}

// Calls returns a copy of every request received so far.
func (t *Transport) Calls() []Call {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Call, len(t.calls))
	copy(out, t.calls)
	return out
}

// Send implements questdeck.Transport.
func (t *Transport) Send(_ context.Context, method, url string, header http.Header, body []byte) (*questdeck.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls = append(t.calls, Call{
		Method: method,
		URL:    url,
		Header: header.Clone(),
		Body:   append([]byte(nil), body...),
	})

	if len(t.steps) > 0 {
		next := t.steps[0]
		t.steps = t.steps[1:]
		if next.err != nil {
			return nil, next.err
		}
		return next.resp, nil
	}

	if t.Always429 {
		h := http.Header{}
		h.Set("RateLimit", `"default";r=0;t=0`)
		return &questdeck.Response{
			StatusCode: http.StatusTooManyRequests,
			Header:     h,
			Body:       []byte(`{"detail":"Rate limited"}`),
		}, nil
	}

	return &questdeck.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       []byte(`{}`),
	}, nil
}
