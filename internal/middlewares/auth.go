package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-favorites/internal/jwt"
	"github.com/sbilibin2017/gw-movie-favorites/internal/logger"
	"github.com/sbilibin2017/gw-movie-favorites/internal/models"
)

// ErrUnauthorized is returned by Authenticate for any request without a usable token.
var ErrUnauthorized = errors.New("unauthorized")

//go:generate mockgen -source=auth.go -destination=mock_auth_test.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Authenticate derives the caller identity from the request's bearer token.
// Missing headers, malformed tokens, bad signatures, expired tokens and tokens
// without a user id all yield ErrUnauthorized; the cause is wrapped for logging.
func Authenticate(ctx context.Context, tokener Tokener, r *http.Request) (*models.Identity, error) {
	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	claims, err := tokener.GetClaims(ctx, tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if claims == nil || claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: token carries no user id", ErrUnauthorized)
	}

	return &models.Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
	}, nil
}

// AuthMiddleware rejects unauthenticated requests with 401 and stores the
// identity of authenticated ones in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			identity, err := Authenticate(ctx, tokener, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "uri", r.RequestURI, "err", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetIdentityToContext(ctx, identity)))
		})
	}
}

// identityKey is an unexported type for the identity key in context
type identityKey struct{}

// SetIdentityToContext stores the authenticated identity in the context
func SetIdentityToContext(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentityFromContext returns the authenticated identity, or false when the
// request did not pass the auth middleware.
func GetIdentityFromContext(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*models.Identity)
	if !ok || identity == nil || identity.UserID == uuid.Nil {
		return nil, false
	}
	return identity, true
}
