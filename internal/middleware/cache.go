package middleware

import (
	"bytes"
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/song-catalog/internal/config"
)

// bodyCapture duplicates the response body into a buffer while
// forwarding it to the client, so a successful response can be stored
// after the handler ran.
type bodyCapture struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (bc *bodyCapture) WriteHeader(code int) {
	bc.status = code
	bc.ResponseWriter.WriteHeader(code)
}

func (bc *bodyCapture) Write(b []byte) (int, error) {
	bc.buf.Write(b)
	return bc.ResponseWriter.Write(b)
}

// ResponseCache caches JSON GET responses in Redis, keyed per route.
// Unlike a TTL-only cache it supports explicit invalidation so a write
// through this instance is visible on the next read; the TTL still
// bounds staleness for writes from elsewhere. A nil Redis client turns
// every method into a no-op.
type ResponseCache struct {
	cfg config.CacheConfig
	rdb *redis.Client
}

func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) *ResponseCache {
	return &ResponseCache{cfg: cfg, rdb: rdb}
}

func (rc *ResponseCache) enabled() bool {
	return rc != nil && rc.cfg.Enabled && rc.rdb != nil
}

func (rc *ResponseCache) key(route string) string {
	return rc.cfg.Prefix + ":" + route
}

// Middleware serves cached bodies for GET requests and stores 200
// responses on a miss. Non-GET requests pass through untouched.
func (rc *ResponseCache) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rc.enabled() || c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Request().Context()
			key := rc.key(c.Path())

			if body, err := rc.rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			bc := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = bc
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if bc.status == http.StatusOK {
				if err := rc.rdb.SetEx(context.Background(), key, bc.buf.Bytes(), rc.cfg.TTL).Err(); err != nil {
					log.Warn().Err(err).Str("key", key).Msg("cache store failed")
				}
			}
			return nil
		}
	}
}

// Invalidate drops the cached body for a route after a write.
func (rc *ResponseCache) Invalidate(ctx context.Context, route string) {
	if !rc.enabled() {
		return
	}
	if err := rc.rdb.Del(ctx, rc.key(route)).Err(); err != nil {
		log.Warn().Err(err).Str("route", route).Msg("cache invalidate failed")
	}
}
