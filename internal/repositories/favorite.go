package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-movie-favorites/internal/models"
)

const favoriteColumns = `id, user_id, tmdbid, tmdbname, tmdbtype, tmdbrating, created_at`

// FavoriteReadRepository handles favorite read operations
type FavoriteReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFavoriteReadRepository(db *sqlx.DB, txGetter TxGetter) *FavoriteReadRepository {
	return &FavoriteReadRepository{db: db, txGetter: txGetter}
}

// ListByUserID returns all favorites of a user, oldest first. The result is never nil.
func (r *FavoriteReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error) {
	const query = `
		SELECT ` + favoriteColumns + `
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	favorites := []models.FavoriteDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &favorites, query, userID)
	logQuery(query, []any{userID}, len(favorites), err)
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// GetByKey returns the favorite identified by key, or nil when there is none.
func (r *FavoriteReadRepository) GetByKey(ctx context.Context, key models.FavoriteKey) (*models.FavoriteDB, error) {
	const query = `
		SELECT ` + favoriteColumns + `
		FROM favorites
		WHERE tmdbid = $1 AND tmdbtype = $2 AND user_id = $3
		LIMIT 1
	`
	args := []any{key.TmdbID, key.TmdbType, key.UserID}

	var favorite models.FavoriteDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &favorite, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		logQuery(query, args, nil, nil)
		return nil, nil
	}
	logQuery(query, args, favorite.FavoriteID, err)
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

// FavoriteWriteRepository handles favorite write operations
type FavoriteWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFavoriteWriteRepository(db *sqlx.DB, txGetter TxGetter) *FavoriteWriteRepository {
	return &FavoriteWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a favorite and returns the stored row. It returns nil without
// error when the (user, tmdb id, tmdb type) triple already exists.
func (r *FavoriteWriteRepository) Save(ctx context.Context, favorite models.FavoriteDB) (*models.FavoriteDB, error) {
	const query = `
		INSERT INTO favorites (user_id, tmdbid, tmdbname, tmdbtype, tmdbrating)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, tmdbid, tmdbtype) DO NOTHING
		RETURNING ` + favoriteColumns

	args := []any{favorite.UserID, favorite.TmdbID, favorite.TmdbName, favorite.TmdbType, favorite.TmdbRating}

	var saved models.FavoriteDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		logQuery(query, args, "conflict", nil)
		return nil, nil
	}
	logQuery(query, args, saved.FavoriteID, err)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete removes the favorite identified by key and reports how many rows went away.
func (r *FavoriteWriteRepository) Delete(ctx context.Context, key models.FavoriteKey) (int64, error) {
	const query = `
		DELETE FROM favorites
		WHERE tmdbid = $1 AND tmdbtype = $2 AND user_id = $3
	`
	args := []any{key.TmdbID, key.TmdbType, key.UserID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return rowsAffected, err
}
