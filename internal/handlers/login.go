package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-favorites/internal/logger"
	"github.com/sbilibin2017/gw-movie-favorites/internal/middlewares"
	"github.com/sbilibin2017/gw-movie-favorites/internal/models"
	"github.com/sbilibin2017/gw-movie-favorites/internal/services"
)

//go:generate mockgen -source=login.go -destination=mock_login_test.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, *models.UserDB, error)
}

// UserGetter loads the user behind an authenticated request.
type UserGetter interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// UserResponse is the public view of a user
// swagger:model UserResponse
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// default: Login successful
	Message string `json:"message"`
	// JWT token
	// default: JWT_TOKEN
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
			writeError(w, http.StatusBadRequest, "Invalid Content-Type, must be application/json")
			return
		}

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON format")
			return
		}
		if req.Username == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "Missing 'username' or 'password'")
			return
		}

		// storage and signing failures answer the same 401 as bad credentials
		token, user, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if !errors.Is(err, services.ErrInvalidCredentials) && !errors.Is(err, services.ErrUserDoesNotExist) {
				logger.Log.Errorw("login failed",
					"request_id", middlewares.GetRequestIDFromContext(r.Context()), "err", err)
			}
			writeError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Message: "Login successful",
			Token:   token,
			User:    UserResponse{ID: user.UserID, Username: user.Username},
		})
	}
}

// NewGetMeHandler returns an HTTP handler describing the authenticated user.
// @Summary Current user
// @Description Returns the user the bearer token was issued to
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UserResponse "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Storage error"
// @Router /login [get]
// @Security BearerAuth
func NewGetMeHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		identity, ok := middlewares.GetIdentityFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := svc.GetUser(ctx, identity.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			logger.Log.Errorw("failed to load user",
				"request_id", middlewares.GetRequestIDFromContext(ctx), "userID", identity.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, UserResponse{ID: user.UserID, Username: user.Username})
	}
}
