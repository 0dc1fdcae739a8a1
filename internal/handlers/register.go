package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-favorites/internal/logger"
	"github.com/sbilibin2017/gw-movie-favorites/internal/middlewares"
	"github.com/sbilibin2017/gw-movie-favorites/internal/models"
	"github.com/sbilibin2017/gw-movie-favorites/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register_test.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// RegisteredUser is the public view of a newly created user
// swagger:model RegisteredUser
type RegisteredUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User created successfully
	Message string           `json:"message"`
	Data    []RegisteredUser `json:"data"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. The password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid JSON or missing fields"
// @Failure 409 {object} handlers.ErrorResponse "Username already exists"
// @Failure 500 {object} handlers.ErrorResponse "Storage error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON format")
			return
		}
		if req.Username == "" {
			writeError(w, http.StatusBadRequest, "Missing 'username' in request body")
			return
		}
		if req.Password == "" {
			writeError(w, http.StatusBadRequest, "Missing required fields: username, password")
			return
		}

		user, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "Username already exists")
			case errors.Is(err, services.ErrPasswordTooLong):
				writeError(w, http.StatusBadRequest, "Password must not exceed 72 bytes")
			default:
				logger.Log.Errorw("failed to register user",
					"request_id", middlewares.GetRequestIDFromContext(r.Context()), "err", err)
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User created successfully",
			Data: []RegisteredUser{{
				ID:        user.UserID,
				Username:  user.Username,
				CreatedAt: user.CreatedAt,
			}},
		})
	}
}
