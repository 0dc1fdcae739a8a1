package models

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteDB represents a favorite entry in the database.
// JSON keys follow the column names clients already consume.
type FavoriteDB struct {
	FavoriteID uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	TmdbID     int64     `json:"tmdbid" db:"tmdbid"`
	TmdbName   string    `json:"tmdbname" db:"tmdbname"`
	TmdbType   string    `json:"tmdbtype" db:"tmdbtype"`
	TmdbRating float64   `json:"tmdbrating" db:"tmdbrating"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// FavoriteKey identifies one favorite of a user.
type FavoriteKey struct {
	UserID   uuid.UUID
	TmdbID   int64
	TmdbType string
}
