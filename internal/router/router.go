package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iliyamo/song-catalog/internal/auth"
	"github.com/iliyamo/song-catalog/internal/handler"    // handlers that implement business logic
	"github.com/iliyamo/song-catalog/internal/middleware" // middleware for JWT authentication and caching
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance: the health check and the Prometheus
// metrics scrape endpoint.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler. This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterAuth registers the registration and login endpoints. Both
// bypass the auth gate: they are the operations that create credentials
// and mint tokens in the first place.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/register", a.Register)
	e.POST("/login", a.Login)
}

// RegisterSongs registers the protected catalog endpoints. The JWT
// middleware wraps the whole group, so no song handler ever runs for a
// request without a valid bearer token. The response cache only applies
// to the GET route; the middleware passes writes through untouched.
func RegisterSongs(e *echo.Echo, s *handler.SongHandler, mgr *auth.Manager, cache *middleware.ResponseCache) {
	g := e.Group("/songs")
	g.Use(middleware.JWTAuth(mgr))
	g.GET("", s.List, cache.Middleware())
	g.POST("", s.Add)
}
