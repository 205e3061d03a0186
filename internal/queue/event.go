// Package queue defines message payloads exchanged over the message broker.
package queue

// SongAddedEvent is published when a song is successfully inserted into
// the catalog. It carries enough information for downstream consumers
// to log or trigger analytics without querying the primary database.
type SongAddedEvent struct {
	SongID  uint64 `json:"song_id"`
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	UserID  uint64 `json:"user_id"`
	AddedAt string `json:"added_at"`
}
