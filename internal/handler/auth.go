package handler

import (
	"context"      // provides context with cancellation for DB calls
	"database/sql" // sentinel errors from the repository layer
	"errors"       // errors.Is comparisons
	"net/http"     // HTTP status codes and primitives
	"strings"      // string manipulation utilities
	"time"         // timeouts for DB calls and token issuance

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing
	"github.com/rs/zerolog/log"   // structured logging

	"github.com/iliyamo/song-catalog/internal/auth"       // password hashing and token issuing
	"github.com/iliyamo/song-catalog/internal/config"     // app configuration
	"github.com/iliyamo/song-catalog/internal/repository" // DB repositories
)

// AuthHandler bundles dependencies for the register and login endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Tokens *auth.Manager
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, t *auth.Manager) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Tokens: t}
}

// ----- DTOs -----

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a user from a (username, password) pair. The raw
// password is hashed before it goes anywhere near the database and is
// never echoed back. A duplicate username is reported as 400 by mapping
// the store's unique-index violation, so two concurrent registrations
// cannot both succeed.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "username/password required"})
	}

	hash, err := auth.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "hash failed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.Create(ctx, req.Username, hash); err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "create user failed"})
	}

	log.Info().Str("username", req.Username).Msg("new user registered")
	return c.JSON(http.StatusCreated, echo.Map{"msg": "User created successfully"})
}

// Login verifies credentials and returns a signed access token. An
// unknown username and a wrong password produce the identical 401 so
// the response cannot be used to enumerate accounts.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "query failed"})
	}
	if !auth.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "Invalid credentials"})
	}

	access, err := h.Tokens.Issue(u.ID, time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "issue token failed"})
	}

	log.Info().Str("username", u.Username).Msg("user logged in")
	return c.JSON(http.StatusOK, echo.Map{"token": access.Token})
}
