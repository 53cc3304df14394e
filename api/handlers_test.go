package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/storage"
)

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestOrderReadsRequireIdentity(t *testing.T) {
	_, h := newTestServer(t)

	// account reads are scoped to the signed-in user; anonymous requests
	// never reach the database
	rec := do(t, h, http.MethodGet, "/api/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/orders/7", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetOrderRejectsBadID(t *testing.T) {
	_, h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/orders/abc", "", map[string]string{"X-User-ID": "user-42"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddMenuItemDisabledWithoutToken(t *testing.T) {
	st, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	h := NewServer(st, nil, "").Router()

	rec := do(t, h, http.MethodPost, "/api/menu", `{"category":"food","name":"Burger","price":25}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddMenuItemRequiresAdminToken(t *testing.T) {
	st, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	h := NewServer(st, nil, "sesame").Router()

	body := `{"category":"food","name":"Burger","price":25}`
	rec := do(t, h, http.MethodPost, "/api/menu", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/menu", body, map[string]string{"X-Admin-Token": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
