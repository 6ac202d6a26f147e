package questdeck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageJSON(t *testing.T, ids []string, limit, offset, total int) []byte {
	t.Helper()
	items := make([]json.RawMessage, len(ids))
	for i, id := range ids {
		items[i] = json.RawMessage(fmt.Sprintf(`{"id":%q}`, id))
	}
	b, err := json.Marshal(Page{Items: items, Limit: limit, Offset: offset, Total: total})
	require.NoError(t, err)
	return b
}

func queryOf(t *testing.T, rawURL string) url.Values {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	return u.Query()
}

func TestPageDerivedFields(t *testing.T) {
	p := &Page{Items: make([]json.RawMessage, 2), Limit: 2, Offset: 0, Total: 5}
	assert.True(t, p.HasMore())
	assert.Equal(t, 2, p.NextOffset())

	last := &Page{Items: make([]json.RawMessage, 1), Limit: 2, Offset: 4, Total: 5}
	assert.False(t, last.HasMore())
}

func TestGetPaginatedClampsLimitAndOffset(t *testing.T) {
	ft := &fakeTransport{}
	ft.enqueue(200, nil, pageJSON(t, nil, 100, 0, 0))
	c, _ := newTestClient(t, ft)

	_, err := c.GetPaginated(context.Background(), "/items", 999, -5)
	require.NoError(t, err)

	q := queryOf(t, ft.calls[0].url)
	assert.Equal(t, "100", q.Get("limit"))
	assert.Equal(t, "0", q.Get("offset"))
}

func TestGetPaginatedNegativeLimitClampedToZero(t *testing.T) {
	ft := &fakeTransport{}
	ft.enqueue(200, nil, pageJSON(t, nil, 0, 0, 0))
	c, _ := newTestClient(t, ft)

	_, err := c.GetPaginated(context.Background(), "/items", -1, 3)
	require.NoError(t, err)

	q := queryOf(t, ft.calls[0].url)
	assert.Equal(t, "0", q.Get("limit"))
	assert.Equal(t, "3", q.Get("offset"))
}

func TestIterateAllPagesYieldsEveryItemInOrder(t *testing.T) {
	ft := &fakeTransport{}
	ft.enqueue(200, nil, pageJSON(t, []string{"c1", "c2"}, 2, 0, 5))
	ft.enqueue(200, nil, pageJSON(t, []string{"c3", "c4"}, 2, 2, 5))
	ft.enqueue(200, nil, pageJSON(t, []string{"c5"}, 2, 4, 5))
	c, _ := newTestClient(t, ft)

	var ids []string
	for raw, err := range c.IterateAllPages(context.Background(), "/items", 2) {
		require.NoError(t, err)
		var item struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(raw, &item))
		ids = append(ids, item.ID)
	}

	assert.Equal(t, []string{"c1", "c2", "c3", "c4", "c5"}, ids)
	assert.Equal(t, 3, ft.callCount())
}

func TestIterateAllPagesIsLazy(t *testing.T) {
	ft := &fakeTransport{}
	ft.enqueue(200, nil, pageJSON(t, []string{"c1", "c2"}, 2, 0, 5))
	ft.enqueue(200, nil, pageJSON(t, []string{"c3", "c4"}, 2, 2, 5))
	c, _ := newTestClient(t, ft)

	for range c.IterateAllPages(context.Background(), "/items", 2) {
		break
	}
	// Breaking inside the first page must not prefetch the second.
	assert.Equal(t, 1, ft.callCount())
}

func TestIterateAllPagesStopsOnEmptyPage(t *testing.T) {
	// An overstated total with an empty page must terminate, not spin.
	ft := &fakeTransport{}
	ft.enqueue(200, nil, pageJSON(t, nil, 2, 0, 10))
	c, _ := newTestClient(t, ft)

	count := 0
	for _, err := range c.IterateAllPages(context.Background(), "/items", 2) {
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, 0, count)
	assert.Equal(t, 1, ft.callCount())
}

func TestIterateAllPagesSurfacesErrors(t *testing.T) {
	ft := &fakeTransport{}
	ft.enqueue(200, nil, pageJSON(t, []string{"c1", "c2"}, 2, 0, 5))
	ft.enqueue(500, nil, []byte(`{"detail":"boom"}`))
	c, _ := newTestClient(t, ft, WithRetryableStatuses())

	var items, errs int
	for _, err := range c.IterateAllPages(context.Background(), "/items", 2) {
		if err != nil {
			errs++
			var srvErr *ServerError
			assert.ErrorAs(t, err, &srvErr)
			continue
		}
		items++
	}
	assert.Equal(t, 2, items)
	assert.Equal(t, 1, errs)
}

func TestGetAllCollectsSameItems(t *testing.T) {
	ft := &fakeTransport{}
	ft.enqueue(200, nil, pageJSON(t, []string{"c1", "c2"}, 2, 0, 3))
	ft.enqueue(200, nil, pageJSON(t, []string{"c3"}, 2, 2, 3))
	c, _ := newTestClient(t, ft)

	items, err := c.GetAll(context.Background(), "/items", 2)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.JSONEq(t, `{"id":"c1"}`, string(items[0]))
	assert.JSONEq(t, `{"id":"c3"}`, string(items[2]))
}

func TestTypedPageHelpers(t *testing.T) {
	ft := &fakeTransport{}
	ft.enqueue(200, nil, pageJSON(t, []string{"c1", "c2"}, 2, 0, 2))
	c, _ := newTestClient(t, ft)

	type record struct {
		ID string `json:"id"`
	}
	items, page, err := pageOf[record](context.Background(), c, "/items", 2, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "c1", items[0].ID)
	assert.Equal(t, 2, page.Total)
	assert.False(t, page.HasMore())
}

func TestHTTPMethodOfListRequests(t *testing.T) {
	ft := &fakeTransport{}
	ft.enqueue(200, nil, pageJSON(t, nil, 10, 0, 0))
	c, _ := newTestClient(t, ft)

	_, err := c.GetPaginated(context.Background(), "/items", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, ft.calls[0].method)
}
