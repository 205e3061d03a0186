package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for splitting the Authorization header
	"time"     // current time for the expiry check

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers
	"github.com/rs/zerolog/log"   // structured logging for rejected tokens

	"github.com/iliyamo/song-catalog/internal/auth"
)

// JWTAuth returns an Echo middleware that validates a Bearer access
// token and injects the verified subject into the request context under
// "user_id". Protected handlers must take identity from that key only,
// never from the request body. A request without an Authorization
// header is rejected before the wrapped handler runs; every verifier
// failure maps to the same 401 body so clients cannot distinguish an
// expired token from a forged one. The specific reason is logged.
func JWTAuth(mgr *auth.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "Missing token"})
			}
			scheme, raw, ok := strings.Cut(header, " ")
			if !ok || scheme != "Bearer" || raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "Invalid token"})
			}

			userID, err := mgr.Verify(raw, time.Now())
			if err != nil {
				// Keep the sub-reason out of the response; it only
				// helps an attacker probing the gate.
				log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
				return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "Invalid token"})
			}

			c.Set("user_id", userID)
			return next(c)
		}
	}
}
