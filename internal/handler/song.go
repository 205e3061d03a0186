package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/song-catalog/internal/metrics"
	"github.com/iliyamo/song-catalog/internal/middleware"
	"github.com/iliyamo/song-catalog/internal/model"
	"github.com/iliyamo/song-catalog/internal/queue"
	"github.com/iliyamo/song-catalog/internal/repository"
	queue_publisher "github.com/iliyamo/song-catalog/internal/service"
)

// SongHandler serves the protected catalog endpoints. All methods
// assume the JWT middleware already ran; identity is read from the
// context, never from the request body.
type SongHandler struct {
	Songs   *repository.SongRepo
	Cache   *middleware.ResponseCache
	Metrics *metrics.Metrics

	// publish is the song.added event hook, replaced in tests.
	publish func(context.Context, queue.SongAddedEvent) error
}

func NewSongHandler(songs *repository.SongRepo, cache *middleware.ResponseCache, m *metrics.Metrics) *SongHandler {
	return &SongHandler{
		Songs:   songs,
		Cache:   cache,
		Metrics: m,
		publish: queue_publisher.PublishSongAdded,
	}
}

// ----- DTOs -----

type addSongReq struct {
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Album    *string `json:"album"`
	Duration *uint32 `json:"duration"`
}

type songResp struct {
	ID       uint64  `json:"id"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Album    *string `json:"album"`
	Duration *uint32 `json:"duration"`
}

// List handles GET /songs and returns every catalog entry.
func (h *SongHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	songs, err := h.Songs.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "query failed"})
	}

	out := make([]songResp, 0, len(songs))
	for _, s := range songs {
		out = append(out, songResp{ID: s.ID, Title: s.Title, Artist: s.Artist, Album: s.Album, Duration: s.Duration})
	}
	return c.JSON(http.StatusOK, out)
}

// Add handles POST /songs. Ownership is taken from the verified token
// subject; a user_id supplied in the body is ignored so an
// authenticated user cannot attribute songs to someone else.
func (h *SongHandler) Add(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint64)
	if !ok || userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "Invalid token"})
	}

	var req addSongReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Artist = strings.TrimSpace(req.Artist)
	if req.Title == "" || req.Artist == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "title/artist required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	song := model.Song{
		Title:    req.Title,
		Artist:   req.Artist,
		Album:    req.Album,
		Duration: req.Duration,
		UserID:   &userID,
	}
	id, err := h.Songs.Create(ctx, song)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "create song failed"})
	}

	h.Metrics.SongsTotal.Inc()
	h.Cache.Invalidate(ctx, "/songs")

	// Best effort: a broker outage must not fail the request.
	if err := h.publish(ctx, queue.SongAddedEvent{
		SongID:  id,
		Title:   req.Title,
		Artist:  req.Artist,
		UserID:  userID,
		AddedAt: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		log.Warn().Err(err).Uint64("song_id", id).Msg("song.added publish failed")
	}

	log.Info().Str("title", req.Title).Uint64("user_id", userID).Msg("new song added")
	return c.JSON(http.StatusCreated, echo.Map{"msg": "Song added successfully"})
}
