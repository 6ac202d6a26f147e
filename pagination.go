// pagination.go
// -------------
// Offset-based pagination over list endpoints. A Page is one bounded slice
// of a collection; IterateAllPages walks the whole collection lazily, one
// page ahead at most.
package questdeck

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"strconv"
)

// Page is one slice of a paginated collection, as returned by a list
// endpoint.
type Page struct {
	Items  []json.RawMessage `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
	Total  int               `json:"total"`
}

// HasMore reports whether the collection extends past this page.
func (p *Page) HasMore() bool {
	return p.Offset+len(p.Items) < p.Total
}

// NextOffset is the offset of the page after this one.
func (p *Page) NextOffset() int {
	return p.Offset + p.Limit
}

// GetPaginated fetches a single page. The limit is clamped to
// [0, MaxPageLimit] and the offset to zero or above before the request is
// sent.
func (c *Client) GetPaginated(ctx context.Context, path string, limit, offset int, opts ...RequestOption) (*Page, error) {
	if limit < 0 {
		limit = 0
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	req := &Request{Method: http.MethodGet, Path: path, Query: url.Values{}}
	for _, opt := range opts {
		opt(req)
	}
	req.Query.Set("limit", strconv.Itoa(limit))
	req.Query.Set("offset", strconv.Itoa(offset))

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	var page Page
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("questdeck: decode page: %w", err)
	}
	return &page, nil
}

// IterateAllPages lazily yields every item of a collection in page order.
// The next page is fetched only once the current one has been consumed, so
// memory stays bounded by one page. Iteration stops at the first error,
// which is yielded as the final element.
func (c *Client) IterateAllPages(ctx context.Context, path string, limit int, opts ...RequestOption) iter.Seq2[json.RawMessage, error] {
	return func(yield func(json.RawMessage, error) bool) {
		offset := 0
		for {
			page, err := c.GetPaginated(ctx, path, limit, offset, opts...)
			if err != nil {
				yield(nil, err)
				return
			}
			for _, item := range page.Items {
				if !yield(item, nil) {
					return
				}
			}
			// An empty page with an overstated total would loop forever.
			if !page.HasMore() || len(page.Items) == 0 {
				return
			}
			offset = page.NextOffset()
		}
	}
}

// GetAll collects an entire collection into memory. Unlike IterateAllPages
// its memory use grows with the collection size.
func (c *Client) GetAll(ctx context.Context, path string, limit int, opts ...RequestOption) ([]json.RawMessage, error) {
	var items []json.RawMessage
	for item, err := range c.IterateAllPages(ctx, path, limit, opts...) {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// pageOf fetches one page and decodes its items into T. Used by the
// resource services.
func pageOf[T any](ctx context.Context, c *Client, path string, limit, offset int, opts ...RequestOption) ([]T, *Page, error) {
	page, err := c.GetPaginated(ctx, path, limit, offset, opts...)
	if err != nil {
		return nil, nil, err
	}
	items := make([]T, 0, len(page.Items))
	for _, raw := range page.Items {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, nil, fmt.Errorf("questdeck: decode list item: %w", err)
		}
		items = append(items, v)
	}
	return items, page, nil
}

// iterateOf is the typed counterpart of IterateAllPages.
func iterateOf[T any](ctx context.Context, c *Client, path string, limit int, opts ...RequestOption) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for raw, err := range c.IterateAllPages(ctx, path, limit, opts...) {
			if err != nil {
				yield(zero, err)
				return
			}
			var v T
			if err := json.Unmarshal(raw, &v); err != nil {
				yield(zero, fmt.Errorf("questdeck: decode list item: %w", err))
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
