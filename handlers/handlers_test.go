package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricelens/config"
	"pricelens/models"
)

func newTestHandlers() *Handlers {
	return NewHandlers(config.Load())
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestParsePriceEndpoint(t *testing.T) {
	h := newTestHandlers()

	rr := postJSON(t, h.ParsePrice, `{"text":"Sale: $24.99 each"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.ParsePriceResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.NotNil(t, resp.Price)
	assert.Equal(t, "24.99", resp.Price.Value.StringFixed(2))
	assert.True(t, resp.Price.IsSalePrice)
	assert.Equal(t, "each", resp.Price.Context)

	// Unparseable text is not an error at the HTTP level.
	rr = postJSON(t, h.ParsePrice, `{"text":"out of stock"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Nil(t, resp.Price)
}

func TestResolvePricesEndpoint(t *testing.T) {
	h := newTestHandlers()

	rr := postJSON(t, h.ResolvePrices,
		`{"current_price_text":"Sale: $24.99","regular_price_text":"$34.99","promo_text":"Save 30%!"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.ResolvePricesResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.NotNil(t, resp.Result)
	require.NotNil(t, resp.Result.DiscountPercent)
	assert.Equal(t, 29, *resp.Result.DiscountPercent)
	assert.Equal(t, "Save 30%!", resp.Result.PromoText)
	assert.True(t, resp.Valid)
}

func TestLocatePricesEndpoint(t *testing.T) {
	h := newTestHandlers()

	rr := postJSON(t, h.LocatePrices,
		`{"page_text":"Board $89.99 $71.99 repeats $89.99 $71.99"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.LocatePricesResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "$71.99", resp.CurrentPriceText)
	assert.Equal(t, "$89.99", resp.RegularPriceText)
	require.NotNil(t, resp.Result)
	require.NotNil(t, resp.Result.DiscountPercent)
	assert.Equal(t, 20, *resp.Result.DiscountPercent)
	assert.True(t, resp.Valid)
}

func TestExtractTitleEndpoint(t *testing.T) {
	h := newTestHandlers()

	rr := postJSON(t, h.ExtractTitle,
		`{"title":"Enfamil NeuroPro Baby Formula Ready to Feed"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.ExtractTitleResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Enfamil", resp.Brand)
	assert.Equal(t, "Ready to Feed", resp.Size)
}

func TestMalformedBodyReturnsBadRequest(t *testing.T) {
	h := newTestHandlers()

	rr := postJSON(t, h.ResolvePrices, `{"current_price_text":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
