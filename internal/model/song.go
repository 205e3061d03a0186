package model

import "time"

// Song represents a catalog entry in the `songs` table. Title and
// artist are required; album, duration and the owning user are
// nullable columns and therefore pointers here. UserID records which
// authenticated user added the song.
//
// Fields:
//
//	ID        – primary key identifier of the song.
//	Title     – song title (required).
//	Artist    – performing artist (required).
//	Album     – album name, nil when unknown.
//	Duration  – length in seconds, nil when unknown.
//	UserID    – owner reference, nil for legacy rows.
//	CreatedAt – timestamp of creation.
type Song struct {
	ID        uint64    // songs.id
	Title     string    // songs.title
	Artist    string    // songs.artist
	Album     *string   // songs.album (nullable)
	Duration  *uint32   // songs.duration (nullable, seconds)
	UserID    *uint64   // songs.user_id (nullable)
	CreatedAt time.Time // songs.created_at
}
