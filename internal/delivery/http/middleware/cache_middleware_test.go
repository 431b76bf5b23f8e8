package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tourdesk/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCacheTestContext(t *testing.T, target string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	// Both requests resolve to the same registered route template.
	c.SetPath("/api/tours/:id")

	return c
}

func TestCacheKey_DistinguishesResources(t *testing.T) {
	a := newCacheTestContext(t, "/api/tours/aaaaaaaa-0000-0000-0000-000000000001")
	b := newCacheTestContext(t, "/api/tours/bbbbbbbb-0000-0000-0000-000000000002")

	keyA := cacheKey("tourdesk:catalog", a)
	keyB := cacheKey("tourdesk:catalog", b)

	assert.NotEqual(t, keyA, keyB)
}

func TestCacheKey_DistinguishesQueries(t *testing.T) {
	a := newCacheTestContext(t, "/api/tours/search?destination=Cusco")
	b := newCacheTestContext(t, "/api/tours/search?destination=Lima")

	assert.NotEqual(t, cacheKey("tourdesk:catalog", a), cacheKey("tourdesk:catalog", b))
}

func TestCacheKey_StableForSameRequest(t *testing.T) {
	a := newCacheTestContext(t, "/api/tours/aaaaaaaa-0000-0000-0000-000000000001")
	b := newCacheTestContext(t, "/api/tours/aaaaaaaa-0000-0000-0000-000000000001")

	assert.Equal(t, cacheKey("tourdesk:catalog", a), cacheKey("tourdesk:catalog", b))
}

func TestNewCatalogCache_PassThroughWhenDisabled(t *testing.T) {
	cfg := &config.Config{}

	mw := NewCatalogCache(cfg, nil)

	called := false
	next := func(c echo.Context) error {
		called = true

		return nil
	}

	c := newCacheTestContext(t, "/api/tours/aaaaaaaa-0000-0000-0000-000000000001")
	require.NoError(t, mw(next)(c))
	assert.True(t, called)
}
