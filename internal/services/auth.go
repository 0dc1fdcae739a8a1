package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-favorites/internal/hasher"
	"github.com/sbilibin2017/gw-movie-favorites/internal/logger"
	"github.com/sbilibin2017/gw-movie-favorites/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth_test.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) (*models.UserDB, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	hasher      PasswordHasher
	jwt         JWTGenerator
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService instance. kafkaWriter may be nil.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	hasher PasswordHasher,
	jwt JWTGenerator,
	kafkaWriter KafkaWriter,
) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		hasher:      hasher,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
	}
}

// Register creates a new user. Duplicate usernames are detected by the
// storage uniqueness constraint and reported as ErrUserAlreadyExists.
func (svc *AuthService) Register(ctx context.Context, username, password string) (*models.UserDB, error) {
	hashedPassword, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, hashedPassword)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("user already exists", "username", username)
		return nil, ErrUserAlreadyExists
	}

	publishEvent(ctx, svc.kafkaWriter, newEvent(models.EventUserRegistered, user.UserID))

	return user, nil
}

// Login authenticates a user and returns a JWT token together with the user.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "username", username)
		return "", nil, ErrUserDoesNotExist
	}

	if err := svc.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, hasher.ErrMismatch) {
			logger.Log.Warnw("invalid credentials", "username", username)
			return "", nil, ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to verify password", "username", username, "err", err)
		return "", nil, err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// GetUser returns the user identified by userID.
func (svc *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "userID", userID)
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}
