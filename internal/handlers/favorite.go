package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-favorites/internal/logger"
	"github.com/sbilibin2017/gw-movie-favorites/internal/middlewares"
	"github.com/sbilibin2017/gw-movie-favorites/internal/models"
	"github.com/sbilibin2017/gw-movie-favorites/internal/services"
)

//go:generate mockgen -source=favorite.go -destination=mock_favorite_test.go -package=handlers

// FavoriteLister returns a user's favorites.
type FavoriteLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error)
}

// FavoriteAdder stores a favorite.
type FavoriteAdder interface {
	Add(ctx context.Context, favorite models.FavoriteDB) (*models.FavoriteDB, error)
}

// FavoriteRemover deletes a favorite.
type FavoriteRemover interface {
	Remove(ctx context.Context, key models.FavoriteKey) error
}

// AddFavoriteRequest represents the JSON body for adding a favorite
// swagger:model AddFavoriteRequest
type AddFavoriteRequest struct {
	// TMDB id, a number or a numeric string
	// required: true
	// default: 42
	TmdbID FlexInt64 `json:"tmdbId"`

	// TMDB title
	// required: true
	// default: Fight Club
	TmdbName string `json:"tmdbName"`

	// TMDB media type
	// required: true
	// default: movie
	TmdbType string `json:"tmdbType"`

	// Rating, a number or a numeric string; zero is allowed
	// required: true
	// default: 8.4
	Rating *FlexFloat64 `json:"rating"`
}

// RemoveFavoriteRequest represents the JSON body for removing a favorite
// swagger:model RemoveFavoriteRequest
type RemoveFavoriteRequest struct {
	// required: true
	// default: 42
	TmdbID FlexInt64 `json:"tmdbId"`

	// required: true
	// default: movie
	TmdbType string `json:"tmdbType"`
}

// FavoritesResponse lists favorites
// swagger:model FavoritesResponse
type FavoritesResponse struct {
	Data []models.FavoriteDB `json:"data"`
}

// AddFavoriteResponse represents a successful add
// swagger:model AddFavoriteResponse
type AddFavoriteResponse struct {
	// default: Added to favorites
	Message string              `json:"message"`
	Data    []models.FavoriteDB `json:"data"`
}

// MessageResponse carries a bare success message
// swagger:model MessageResponse
type MessageResponse struct {
	// default: Removed from favorites
	Message string `json:"message"`
}

// NewGetFavoritesHandler returns an HTTP handler listing the caller's favorites.
// @Summary List favorites
// @Description Returns every favorite of the authenticated user
// @Tags favorites
// @Produce json
// @Success 200 {object} handlers.FavoritesResponse "Favorites"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Storage error"
// @Router /favorite [get]
// @Security BearerAuth
func NewGetFavoritesHandler(svc FavoriteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		identity, ok := middlewares.GetIdentityFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		favorites, err := svc.List(ctx, identity.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list favorites",
				"request_id", middlewares.GetRequestIDFromContext(ctx), "userID", identity.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if favorites == nil {
			favorites = []models.FavoriteDB{}
		}

		writeJSON(w, http.StatusOK, FavoritesResponse{Data: favorites})
	}
}

// NewAddFavoriteHandler returns an HTTP handler adding a title to the caller's favorites.
// @Summary Add favorite
// @Description Adds a TMDB title. A title already present for the same type is rejected.
// @Tags favorites
// @Accept json
// @Produce json
// @Param addFavoriteRequest body handlers.AddFavoriteRequest true "Favorite"
// @Success 200 {object} handlers.AddFavoriteResponse "Favorite added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or missing fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Already in favorites"
// @Failure 500 {object} handlers.ErrorResponse "Storage error"
// @Router /favorite [post]
// @Security BearerAuth
func NewAddFavoriteHandler(svc FavoriteAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		identity, ok := middlewares.GetIdentityFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req AddFavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request")
			return
		}
		if req.TmdbID == 0 || req.TmdbName == "" || req.TmdbType == "" || req.Rating == nil {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		saved, err := svc.Add(ctx, models.FavoriteDB{
			UserID:     identity.UserID,
			TmdbID:     int64(req.TmdbID),
			TmdbName:   req.TmdbName,
			TmdbType:   req.TmdbType,
			TmdbRating: float64(*req.Rating),
		})
		if err != nil {
			if errors.Is(err, services.ErrFavoriteAlreadyExists) {
				writeError(w, http.StatusConflict, "Already in favorites")
				return
			}
			logger.Log.Errorw("failed to add favorite",
				"request_id", middlewares.GetRequestIDFromContext(ctx), "userID", identity.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, AddFavoriteResponse{
			Message: "Added to favorites",
			Data:    []models.FavoriteDB{*saved},
		})
	}
}

// NewRemoveFavoriteHandler returns an HTTP handler removing a title from the caller's favorites.
// @Summary Remove favorite
// @Description Removes a TMDB title. Removing an absent title still succeeds.
// @Tags favorites
// @Accept json
// @Produce json
// @Param removeFavoriteRequest body handlers.RemoveFavoriteRequest true "Favorite key"
// @Success 200 {object} handlers.MessageResponse "Favorite removed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or missing fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Storage error"
// @Router /favorite [delete]
// @Security BearerAuth
func NewRemoveFavoriteHandler(svc FavoriteRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		identity, ok := middlewares.GetIdentityFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req RemoveFavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request")
			return
		}
		if req.TmdbID == 0 || req.TmdbType == "" {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		err := svc.Remove(ctx, models.FavoriteKey{
			UserID:   identity.UserID,
			TmdbID:   int64(req.TmdbID),
			TmdbType: req.TmdbType,
		})
		if err != nil {
			logger.Log.Errorw("failed to remove favorite",
				"request_id", middlewares.GetRequestIDFromContext(ctx), "userID", identity.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Removed from favorites"})
	}
}
