package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"tourdesk/config"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = time.Minute

// cacheWriter captures the response body while forwarding it to the client.
type cacheWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *cacheWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *cacheWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)

	return cw.ResponseWriter.Write(b)
}

func cacheKey(prefix string, c echo.Context) string {
	// Hash the concrete request path, not the route template: the template
	// collapses every /:id into one key and would serve one tour's body for
	// another's.
	r := c.Request()
	sum := sha1.Sum([]byte(r.URL.Path + "?" + r.URL.RawQuery))

	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// NewCatalogCache caches successful GET responses of the public catalog in
// Redis. With caching disabled or no Redis client configured it degrades to a
// pass-through.
func NewCatalogCache(cfg *config.Config, rdb *redis.Client) echo.MiddlewareFunc {
	if cfg.Cache == nil || !cfg.Cache.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	ttl := cfg.Cache.TTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	prefix := cfg.Cache.Prefix
	if prefix == "" {
		prefix = "tourdesk:catalog"
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Request().Context()
			key := cacheKey(prefix, c)

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil && len(body) > 0 {
				c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
				c.Response().Header().Set("X-Cache", "HIT")

				return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, body)
			}

			cw := &cacheWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if cw.status == http.StatusOK {
				// Write with a detached context so a canceled request does not
				// drop the entry.
				_ = rdb.SetEx(context.WithoutCancel(ctx), key, cw.buf.Bytes(), ttl).Err()
			}

			return nil
		}
	}
}
