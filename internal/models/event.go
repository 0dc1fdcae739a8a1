package models

// Event types published to Kafka.
const (
	EventUserRegistered  = "user_registered"
	EventFavoriteAdded   = "favorite_added"
	EventFavoriteRemoved = "favorite_removed"
)

// Event is the message body published for every successful write.
type Event struct {
	EventID   string   `json:"event_id"`
	Type      string   `json:"type"`
	UserID    string   `json:"user_id"`
	Timestamp int64    `json:"timestamp"`
	TmdbID    int64    `json:"tmdb_id,omitempty"`
	TmdbType  string   `json:"tmdb_type,omitempty"`
	TmdbName  string   `json:"tmdb_name,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
}
