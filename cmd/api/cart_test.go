package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"voltmart/internal/cart"
	"voltmart/internal/catalog"
	"voltmart/internal/ratelimiter"
	"voltmart/internal/wishlist"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	saved, err := wishlist.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { saved.Close() })

	return &application{
		config: config{
			env: "test",
			rateLimiter: ratelimiter.Config{
				RequestsPerTimeFrame: 100,
				TimeFrame:            0,
				Enabled:              false,
			},
		},
		catalog: catalog.New([]catalog.Product{
			{
				ID:           "p1",
				Name:         "Test Phone",
				Brand:        "TestBrand",
				Category:     "smartphones",
				Condition:    "new",
				DisplayPrice: "$1,000.00",
				RawPrice:     decimal.NewFromInt(1000),
			},
			{
				ID:           "p2",
				Name:         "Test Laptop",
				Brand:        "TestBrand",
				Category:     "laptops",
				Condition:    "new",
				DisplayPrice: "$1,500.00",
				RawPrice:     decimal.NewFromInt(1500),
			},
		}),
		carts:       cart.NewManager(),
		saved:       saved,
		logger:      zap.NewNop().Sugar(),
		rateLimiter: ratelimiter.NewFixedWindowLimiter(100, 0),
	}
}

type cartEnvelope struct {
	Data cartResponse `json:"data"`
}

type negotiationEnvelope struct {
	Data negotiationResponse `json:"data"`
}

// do sends a request through the full router, reusing the session so
// successive calls hit the same cart.
func do(t *testing.T, mux http.Handler, session, method, target string, body any) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(sessionHeader, session)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec, rec.Header().Get(sessionHeader)
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var env cartEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env.Data
}

func TestSessionHeaderIsIssued(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	rec, session := do(t, mux, "", http.MethodGet, "/v1/cart/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, session)
}

func TestAddCartItem(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	rec, session := do(t, mux, "", http.MethodPost, "/v1/cart/items/", map[string]any{
		"product_id": "p1",
		"quantity":   3,
		"color":      "Black",
		"storage":    "256GB",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeCart(t, rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.ItemCount)
	assert.Equal(t, 3000.0, resp.Subtotal)
	assert.Equal(t, "Black", resp.Items[0].Color)

	// same variant merges
	rec, _ = do(t, mux, session, http.MethodPost, "/v1/cart/items/", map[string]any{
		"product_id": "p1",
		"quantity":   2,
		"color":      "Black",
		"storage":    "256GB",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	resp = decodeCart(t, rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)

	// different color creates a second line
	rec, _ = do(t, mux, session, http.MethodPost, "/v1/cart/items/", map[string]any{
		"product_id": "p1",
		"color":      "White",
		"storage":    "256GB",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, decodeCart(t, rec).Items, 2)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	rec, _ := do(t, mux, "", http.MethodPost, "/v1/cart/items/", map[string]any{
		"product_id": "ghost",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddCartItemMissingProductID(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	rec, _ := do(t, mux, "", http.MethodPost, "/v1/cart/items/", map[string]any{
		"quantity": 2,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveCartItem(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	_, session := do(t, mux, "", http.MethodPost, "/v1/cart/items/", map[string]any{
		"product_id": "p1",
		"color":      "Black",
	})

	rec, _ := do(t, mux, session, http.MethodDelete, "/v1/cart/items/?product_id=p1&color=Black", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeCart(t, rec).Items)

	// second remove is still 200, not an error
	rec, _ = do(t, mux, session, http.MethodDelete, "/v1/cart/items/?product_id=p1&color=Black", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChangeQuantityFloorsAtOne(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	_, session := do(t, mux, "", http.MethodPost, "/v1/cart/items/", map[string]any{
		"product_id": "p1",
	})

	rec, _ := do(t, mux, session, http.MethodPatch, "/v1/cart/items/quantity", map[string]any{
		"product_id": "p1",
		"delta":      -5,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeCart(t, rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity)
}

func TestToggleProtection(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	_, session := do(t, mux, "", http.MethodPost, "/v1/cart/items/", map[string]any{
		"product_id": "p1",
		"quantity":   3,
	})

	rec, _ := do(t, mux, session, http.MethodPost, "/v1/cart/items/protection", map[string]any{
		"product_id": "p1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeCart(t, rec)
	assert.True(t, resp.Items[0].HasProtection)
	assert.Equal(t, 150.0, resp.Items[0].ProtectionCost)
	assert.Equal(t, 3150.0, resp.Subtotal)
}

func TestNegotiateItem(t *testing.T) {
	testCases := []struct {
		name     string
		offer    float64
		status   int
		verdict  string
		subtotal float64
	}{
		{name: "accepted at the boundary", offer: 2400, status: http.StatusOK, verdict: "accepted", subtotal: 2400},
		{name: "too low", offer: 2399, status: http.StatusOK, verdict: "rejected_too_low", subtotal: 3000},
		{name: "too high", offer: 3000, status: http.StatusOK, verdict: "rejected_too_high", subtotal: 3000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApplication(t)
			mux := app.mount()

			_, session := do(t, mux, "", http.MethodPost, "/v1/cart/items/", map[string]any{
				"product_id": "p1",
				"quantity":   3,
			})

			rec, _ := do(t, mux, session, http.MethodPost, "/v1/cart/items/negotiate", map[string]any{
				"product_id": "p1",
				"offer":      tc.offer,
			})
			require.Equal(t, tc.status, rec.Code)

			var env negotiationEnvelope
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
			assert.Equal(t, tc.verdict, string(env.Data.Verdict))
			assert.NotEmpty(t, env.Data.Message)
			assert.Equal(t, tc.subtotal, env.Data.Cart.Subtotal)
		})
	}
}

func TestNegotiateItemNotInCart(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	rec, _ := do(t, mux, "", http.MethodPost, "/v1/cart/items/negotiate", map[string]any{
		"product_id": "p1",
		"offer":      100,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNegotiateCartRedistributes(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	_, session := do(t, mux, "", http.MethodPost, "/v1/cart/items/", map[string]any{
		"product_id": "p1",
	})
	do(t, mux, session, http.MethodPost, "/v1/cart/items/", map[string]any{
		"product_id": "p2",
		"quantity":   2,
	})

	// base 1000 + 3000 = 4000; 3200 is exactly 20% off
	rec, _ := do(t, mux, session, http.MethodPost, "/v1/cart/negotiate", map[string]any{
		"offer": 3200,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var env negotiationEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	assert.True(t, env.Data.Accepted)
	assert.Equal(t, 3200.0, env.Data.Cart.Subtotal)
	require.Len(t, env.Data.Cart.Items, 2)
	assert.Equal(t, 800.0, env.Data.Cart.Items[0].UnitPrice)
	assert.Equal(t, 1200.0, env.Data.Cart.Items[1].UnitPrice)
}

func TestNegotiateEmptyCart(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	rec, _ := do(t, mux, "", http.MethodPost, "/v1/cart/negotiate", map[string]any{
		"offer": 100,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClearCart(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	_, session := do(t, mux, "", http.MethodPost, "/v1/cart/items/", map[string]any{
		"product_id": "p1",
	})

	rec, _ := do(t, mux, session, http.MethodDelete, "/v1/cart/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeCart(t, rec).Items)
}
