package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/finprod/internal/logging"
	"github.com/rshade/finprod/internal/product"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	c, err := New(server.URL, WithHTTPClient(server.Client()))
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	c, err := New("http://localhost:3002/", WithTimeout(time.Second))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3002", c.BaseURL())
	assert.Equal(t, time.Second, c.HTTPClient.Timeout)

	_, err = New("localhost:3002")
	assert.Error(t, err)

	_, err = New("/relative")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/bp/products", r.URL.Path)
		assert.Equal(t, "trace-9", r.Header.Get("X-Request-Id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data":[
			{"id":"a","name":"Alpha","date_release":"2025-01-01T00:00:00.000Z","date_revision":"2026-01-01"},
			{"id":"b","name":"Beta"}
		]}`)
	})

	ctx := logging.ContextWithTraceID(context.Background(), "trace-9")
	items, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Alpha", items[0].Name)
	assert.Equal(t, "2025-01-01", items[0].DateRelease.String())
	assert.True(t, items[1].DateRelease.IsZero())
}

func TestList_EmptyData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	items, err := c.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGet_EscapesID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bp/products/a-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(product.Product{ID: "a-1", Name: "Alpha"})
	})

	p, err := c.Get(context.Background(), "a-1")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", p.Name)
}

func TestMutations(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Method+" "+r.URL.Path)
		mu.Unlock()
		switch r.Method {
		case http.MethodPost, http.MethodPut:
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			var p product.Product
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&p))
			assert.Equal(t, "abc", p.ID)
			assert.Equal(t, "2025-05-01", p.DateRelease.String())
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "ok " + r.Method, "data": p})
		case http.MethodDelete:
			_, _ = io.WriteString(w, `{"message":"Product removed successfully"}`)
		}
	})

	ctx := context.Background()
	p := product.Product{ID: "abc", DateRelease: product.MustParseDate("2025-05-01")}

	msg, err := c.Create(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "ok POST", msg)

	msg, err = c.Update(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "ok PUT", msg)

	msg, err = c.Delete(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Product removed successfully", msg)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"POST /bp/products", "PUT /bp/products/abc", "DELETE /bp/products/abc"}, seen)
}

func TestVerify(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bp/products/verification/abc", r.URL.Path)
		_, _ = io.WriteString(w, "true")
	})

	taken, err := c.Verify(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantMsg    string
		wantNotFnd bool
	}{
		{name: "json message", status: http.StatusNotFound, body: `{"name":"NotFoundError","message":"Not product found with that identifier"}`, wantMsg: "Not product found with that identifier", wantNotFnd: true},
		{name: "plain text", status: http.StatusBadRequest, body: "bad things", wantMsg: "bad things"},
		{name: "empty body", status: http.StatusInternalServerError, body: "", wantMsg: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.Delete(context.Background(), "abc")
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Contains(t, apiErr.Error(), tt.wantMsg)
			assert.Equal(t, tt.wantNotFnd, IsNotFound(err))
		})
	}
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	c, err := New(baseURL)
	require.NoError(t, err)

	_, err = c.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GET /bp/products")
	assert.False(t, IsNotFound(err))
}

func TestMalformedJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"data": [`)
	})

	_, err := c.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")
}
