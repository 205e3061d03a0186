package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/song-catalog/internal/model"
)

type SongRepo struct{ DB *sql.DB }

func NewSongRepo(db *sql.DB) *SongRepo { return &SongRepo{DB: db} }

// List returns all songs in insertion order.
func (r *SongRepo) List(ctx context.Context) ([]model.Song, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,title,artist,album,duration,user_id,created_at FROM songs ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs := make([]model.Song, 0)
	for rows.Next() {
		var s model.Song
		if err := rows.Scan(&s.ID, &s.Title, &s.Artist, &s.Album, &s.Duration, &s.UserID, &s.CreatedAt); err != nil {
			return nil, err
		}
		songs = append(songs, s)
	}
	return songs, rows.Err()
}

// Create inserts a song and returns its ID. Album, duration and the
// owner are nullable; nil pointers become SQL NULLs.
func (r *SongRepo) Create(ctx context.Context, s model.Song) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO songs (title, artist, album, duration, user_id) VALUES (?,?,?,?,?)",
		s.Title, s.Artist, s.Album, s.Duration, s.UserID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
