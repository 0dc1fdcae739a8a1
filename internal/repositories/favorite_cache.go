package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-movie-favorites/internal/logger"
	"github.com/sbilibin2017/gw-movie-favorites/internal/models"
)

// ErrCacheMiss is returned when no cached favorites exist for the user.
var ErrCacheMiss = errors.New("favorites not found in cache")

// FavoriteCacheRepository caches each user's favorites list in Redis.
//
// Every user has a generation counter. Lists are stored under a key that
// embeds the generation they were read at, and Delete bumps the counter, so a
// list read before a write and stored after it is never served.
type FavoriteCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached lists
}

// NewFavoriteCacheRepository creates a new repository instance with the given TTL
func NewFavoriteCacheRepository(client *redis.Client, expiration time.Duration) *FavoriteCacheRepository {
	return &FavoriteCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func generationKey(userID uuid.UUID) string {
	return fmt.Sprintf("favorites:%s:gen", userID)
}

func favoritesKey(userID uuid.UUID, version int64) string {
	return fmt.Sprintf("favorites:%s:%d", userID, version)
}

// Version returns the current cache generation of a user. A user that was
// never invalidated is at generation 0.
func (r *FavoriteCacheRepository) Version(ctx context.Context, userID uuid.UUID) (int64, error) {
	key := generationKey(userID)

	version, err := r.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		logger.Log.Debugw("cache version", "key", key, "error", err)
		return 0, err
	}
	return version, nil
}

// Get returns the favorites list cached for the given generation.
func (r *FavoriteCacheRepository) Get(ctx context.Context, userID uuid.UUID, version int64) ([]models.FavoriteDB, error) {
	key := favoritesKey(userID, version)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Debugw("cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	favorites := []models.FavoriteDB{}
	if err := json.Unmarshal(val, &favorites); err != nil {
		logger.Log.Warnw("cache entry is corrupt", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Debugw("cache hit", "key", key, "result", len(favorites))
	return favorites, nil
}

// Set caches the favorites list of a user read at the given generation.
func (r *FavoriteCacheRepository) Set(ctx context.Context, userID uuid.UUID, version int64, favorites []models.FavoriteDB) error {
	key := favoritesKey(userID, version)

	data, err := json.Marshal(favorites)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("cache set", "key", key, "result", len(favorites), "error", err)
	return err
}

// Delete invalidates the cached favorites of a user by moving it to the next
// generation and dropping the list of the previous one.
func (r *FavoriteCacheRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	key := generationKey(userID)

	next, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		logger.Log.Debugw("cache delete", "key", key, "error", err)
		return err
	}

	err = r.client.Del(ctx, favoritesKey(userID, next-1)).Err()
	logger.Log.Debugw("cache delete", "key", key, "generation", next, "error", err)
	return err
}
