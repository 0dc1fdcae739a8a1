package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-favorites/internal/logger"
	"github.com/sbilibin2017/gw-movie-favorites/internal/models"
)

//go:generate mockgen -source=favorite.go -destination=mock_favorite_test.go -package=services

// ErrFavoriteAlreadyExists is returned when the title is already in the user's favorites.
var ErrFavoriteAlreadyExists = errors.New("already in favorites")

// FavoriteReader defines read operations for favorites.
type FavoriteReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error)
	GetByKey(ctx context.Context, key models.FavoriteKey) (*models.FavoriteDB, error)
}

// FavoriteWriter defines write operations for favorites.
type FavoriteWriter interface {
	Save(ctx context.Context, favorite models.FavoriteDB) (*models.FavoriteDB, error)
	Delete(ctx context.Context, key models.FavoriteKey) (int64, error)
}

// FavoriteCache caches favorites lists per user and generation.
// Delete moves the user to a new generation.
type FavoriteCache interface {
	Version(ctx context.Context, userID uuid.UUID) (int64, error)
	Get(ctx context.Context, userID uuid.UUID, version int64) ([]models.FavoriteDB, error)
	Set(ctx context.Context, userID uuid.UUID, version int64, favorites []models.FavoriteDB) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// AfterCommitFunc schedules fn to run once the surrounding transaction commits.
type AfterCommitFunc func(ctx context.Context, fn func())

// FavoriteService handles the favorites list of a user.
type FavoriteService struct {
	reader      FavoriteReader
	writer      FavoriteWriter
	cache       FavoriteCache
	kafkaWriter KafkaWriter
	afterCommit AfterCommitFunc
}

// NewFavoriteService creates a new FavoriteService.
// cache and kafkaWriter may be nil; a nil afterCommit runs hooks immediately.
func NewFavoriteService(
	reader FavoriteReader,
	writer FavoriteWriter,
	cache FavoriteCache,
	kafkaWriter KafkaWriter,
	afterCommit AfterCommitFunc,
) *FavoriteService {
	if afterCommit == nil {
		afterCommit = func(_ context.Context, fn func()) { fn() }
	}
	return &FavoriteService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		afterCommit: afterCommit,
	}
}

// List returns the user's favorites, from cache when available.
// The cache generation is read before the store so that a list read ahead of
// a concurrent write is filed under the generation that write invalidated.
func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error) {
	cached := s.cache != nil
	var version int64
	if cached {
		var err error
		version, err = s.cache.Version(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to read favorites cache version", "userID", userID, "error", err)
			cached = false
		}
	}

	if cached {
		favorites, err := s.cache.Get(ctx, userID, version)
		if err == nil {
			return favorites, nil
		}
		logger.Log.Debugw("favorites cache miss", "userID", userID, "version", version, "error", err)
	}

	favorites, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list favorites", "userID", userID, "error", err)
		return nil, err
	}

	if cached {
		if err := s.cache.Set(ctx, userID, version, favorites); err != nil {
			logger.Log.Errorw("failed to cache favorites", "userID", userID, "error", err)
		}
	}

	return favorites, nil
}

// Add stores a new favorite for favorite.UserID.
// An existing (user, tmdb id, tmdb type) entry yields ErrFavoriteAlreadyExists.
func (s *FavoriteService) Add(ctx context.Context, favorite models.FavoriteDB) (*models.FavoriteDB, error) {
	key := models.FavoriteKey{UserID: favorite.UserID, TmdbID: favorite.TmdbID, TmdbType: favorite.TmdbType}

	existing, err := s.reader.GetByKey(ctx, key)
	if err != nil {
		logger.Log.Errorw("failed to check favorite", "userID", key.UserID, "tmdbID", key.TmdbID, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrFavoriteAlreadyExists
	}

	saved, err := s.writer.Save(ctx, favorite)
	if err != nil {
		logger.Log.Errorw("failed to save favorite", "userID", key.UserID, "tmdbID", key.TmdbID, "error", err)
		return nil, err
	}
	// lost the race against a concurrent insert of the same title
	if saved == nil {
		return nil, ErrFavoriteAlreadyExists
	}

	s.afterCommit(ctx, func() {
		s.invalidate(ctx, key.UserID)

		event := newEvent(models.EventFavoriteAdded, key.UserID)
		event.TmdbID = saved.TmdbID
		event.TmdbType = saved.TmdbType
		event.TmdbName = saved.TmdbName
		rating := saved.TmdbRating
		event.Rating = &rating
		publishEvent(ctx, s.kafkaWriter, event)
	})

	return saved, nil
}

// Remove deletes the favorite identified by key. Removing an absent entry is not an error.
func (s *FavoriteService) Remove(ctx context.Context, key models.FavoriteKey) error {
	n, err := s.writer.Delete(ctx, key)
	if err != nil {
		logger.Log.Errorw("failed to delete favorite", "userID", key.UserID, "tmdbID", key.TmdbID, "error", err)
		return err
	}
	if n == 0 {
		return nil
	}

	s.afterCommit(ctx, func() {
		s.invalidate(ctx, key.UserID)

		event := newEvent(models.EventFavoriteRemoved, key.UserID)
		event.TmdbID = key.TmdbID
		event.TmdbType = key.TmdbType
		publishEvent(ctx, s.kafkaWriter, event)
	})

	return nil
}

func (s *FavoriteService) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to invalidate favorites cache", "userID", userID, "error", err)
	}
}
