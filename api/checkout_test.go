package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
	"storefront/services"
	"storefront/storage"
)

const testSession = "test-session"

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	st, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	s := NewServer(st, nil, "")
	return s, s.Router()
}

// seedCart puts one priced line into the test session's cart without going
// through the catalog (which would need a database).
func seedCart(s *Server) {
	cart := services.NewCartStore(testSession, s.storage)
	cart.Add(models.ProposedItem{ProductID: 1, Name: "Burger", Quantity: 2, BasePrice: 25})
	s.mu.Lock()
	s.carts[testSession] = cart
	s.mu.Unlock()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, checkoutResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: testSession})
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp checkoutResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestCheckoutRequiresItems(t *testing.T) {
	_, h := newTestServer(t)
	rec, _ := doJSON(t, h, http.MethodPost, "/api/checkout", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCheckoutStepsWithoutOpenCheckout(t *testing.T) {
	_, h := newTestServer(t)
	rec, _ := doJSON(t, h, http.MethodPost, "/api/checkout/next", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPickupCheckoutFlow(t *testing.T) {
	s, h := newTestServer(t)
	seedCart(s)

	rec, resp := doJSON(t, h, http.MethodPost, "/api/checkout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, services.StepOrderType, resp.Step)
	assert.False(t, resp.StepComplete)
	assert.Equal(t, int64(50), resp.Subtotal)

	// advancing with no order type stays put
	_, resp = doJSON(t, h, http.MethodPost, "/api/checkout/next", "")
	assert.Equal(t, services.StepOrderType, resp.Step)

	_, resp = doJSON(t, h, http.MethodPut, "/api/checkout/order-type", `{"orderType":"pickup"}`)
	assert.True(t, resp.StepComplete)
	_, resp = doJSON(t, h, http.MethodPost, "/api/checkout/next", "")
	assert.Equal(t, services.StepContact, resp.Step)

	// empty phone keeps the gate closed
	_, resp = doJSON(t, h, http.MethodPut, "/api/checkout/contact", `{"firstName":"Omar","lastName":"K"}`)
	assert.False(t, resp.StepComplete)
	_, resp = doJSON(t, h, http.MethodPost, "/api/checkout/next", "")
	assert.Equal(t, services.StepContact, resp.Step)

	_, _ = doJSON(t, h, http.MethodPut, "/api/checkout/contact", `{"firstName":"Omar","lastName":"K","phone":"0560000000"}`)
	_, resp = doJSON(t, h, http.MethodPost, "/api/checkout/next", "")
	assert.Equal(t, services.StepDetails, resp.Step)

	_, _ = doJSON(t, h, http.MethodPut, "/api/checkout/branch", `{"branchId":2}`)
	_, resp = doJSON(t, h, http.MethodPost, "/api/checkout/next", "")
	assert.Equal(t, services.StepReview, resp.Step)

	// pickup carries no delivery fee
	assert.Equal(t, int64(0), resp.DeliveryPrice)
	assert.Equal(t, resp.Subtotal, resp.Total)

	// back is always allowed and keeps the draft
	_, resp = doJSON(t, h, http.MethodPost, "/api/checkout/back", "")
	assert.Equal(t, services.StepDetails, resp.Step)
	assert.Equal(t, int64(2), resp.Draft.BranchID)
	assert.Equal(t, "Omar", resp.Draft.Contact.FirstName)
}

func TestCancelCheckoutKeepsCart(t *testing.T) {
	s, h := newTestServer(t)
	seedCart(s)

	rec, _ := doJSON(t, h, http.MethodPost, "/api/checkout", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, h, http.MethodDelete, "/api/checkout", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// the draft is gone, the cart is not
	rec, _ = doJSON(t, h, http.MethodGet, "/api/checkout", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: testSession})
	cartRec := httptest.NewRecorder()
	h.ServeHTTP(cartRec, req)
	var cart cartResponse
	require.NoError(t, json.Unmarshal(cartRec.Body.Bytes(), &cart))
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(50), cart.Subtotal)
}

func TestSubmitRequiresReviewStep(t *testing.T) {
	s, h := newTestServer(t)
	seedCart(s)

	_, _ = doJSON(t, h, http.MethodPost, "/api/checkout", "")
	rec, _ := doJSON(t, h, http.MethodPost, "/api/checkout/submit", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}
