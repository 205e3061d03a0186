package router

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/song-catalog/internal/auth"
	"github.com/iliyamo/song-catalog/internal/config"
	"github.com/iliyamo/song-catalog/internal/handler"
	"github.com/iliyamo/song-catalog/internal/metrics"
	"github.com/iliyamo/song-catalog/internal/middleware"
	"github.com/iliyamo/song-catalog/internal/repository"
)

func newTestServer(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := config.Config{Env: "test", JWTSecret: "test-secret", AccessTTLMin: 60, BcryptCost: bcrypt.MinCost}
	tokens := auth.NewManager(cfg.JWTSecret, cfg.AccessTTLMin)
	cache := middleware.NewResponseCache(config.CacheConfig{}, nil)

	e := echo.New()
	RegisterRoutes(e)
	RegisterAuth(e, handler.NewAuthHandler(cfg, repository.NewUserRepo(db), tokens))
	RegisterSongs(e, handler.NewSongHandler(repository.NewSongRepo(db), cache, metrics.New()), tokens, cache)
	return e, mock
}

func do(e *echo.Echo, method, target, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// Walks the whole auth boundary: register, login, read the catalog with
// the issued token, get rejected without one, fail login with bogus
// credentials.
func TestRegisterLoginBrowseScenario(t *testing.T) {
	e, mock := newTestServer(t)

	hash, err := auth.HashPassword("testpass", bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("testuser", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT id,username,password_hash,created_at FROM users").
		WithArgs("testuser").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(1, "testuser", hash, time.Now()))
	mock.ExpectQuery("SELECT id,title,artist,album,duration,user_id,created_at FROM songs").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "artist", "album", "duration", "user_id", "created_at"}))
	mock.ExpectQuery("SELECT id,username,password_hash,created_at FROM users").
		WithArgs("wronguser").
		WillReturnError(sql.ErrNoRows)

	// Register.
	rec := do(e, http.MethodPost, "/register", `{"username":"testuser","password":"testpass"}`, "")
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Login with the same credentials.
	rec = do(e, http.MethodPost, "/login", `{"username":"testuser","password":"testpass"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Token)

	// Browse the catalog with the issued token.
	rec = do(e, http.MethodGet, "/songs", "", loginResp.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	// No header: the gate rejects before any handler runs.
	rec = do(e, http.MethodGet, "/songs", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Bogus credentials.
	rec = do(e, http.MethodPost, "/login", `{"username":"wronguser","password":"wrongpass"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthz(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestMetricsExposed(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
