// transport.go
// ------------
// Transport is the seam between the retry core and the wire. The default
// implementation is a thin wrapper over net/http; tests and callers with
// special needs (custom TLS, proxies, recording) can substitute their own.
package questdeck

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
)

// Transport issues a single HTTP request. It performs no retries and no
// response interpretation; both belong to the request executor.
type Transport interface {
	Send(ctx context.Context, method, url string, header http.Header, body []byte) (*Response, error)
}

type netTransport struct {
	client *http.Client
}

func newNetTransport(timeout time.Duration) *netTransport {
	return &netTransport{client: &http.Client{Timeout: timeout}}
}

func (t *netTransport) Send(ctx context.Context, method, url string, header http.Header, body []byte) (*Response, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}
