package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/song-catalog/internal/config"
)

func TestResponseCacheDisabledPassesThrough(t *testing.T) {
	// Without a Redis client every request reaches the handler.
	rc := NewResponseCache(config.CacheConfig{Enabled: true, TTL: time.Minute, Prefix: "songs"}, nil)

	e := echo.New()
	calls := 0
	h := rc.Middleware()(func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, []string{})
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/songs", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, h(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 2, calls)

	// Invalidate must be a safe no-op as well.
	rc.Invalidate(t.Context(), "/songs")
}
