package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/crypto"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/internal/validators"
	"github.com/MKhiriev/go-users-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and a PasswordHasher
// for password storage.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes passwords on registration and verifies them on login.
	hasher crypto.PasswordHasher

	// validator checks registration payloads.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and PasswordHasher and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.Auth, logger *logger.Logger) AuthService {
	tokenDuration := cfg.TokenDuration
	if tokenDuration == 0 {
		tokenDuration = config.DefaultTokenDuration
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewStructValidator(),
		tokenSignKey:   cfg.SecretKey,
		tokenDuration:  tokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account with a hashed password.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - a validation error matching validators.ErrValidation;
//   - ErrDuplicateIdentity if the name is already taken.
//
// Nothing is written when an error is returned.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("name", request.Name).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("error validating registration request: %w", err)
	}

	_, err := a.userRepository.FindUserByName(ctx, request.Name)
	switch {
	case err == nil:
		log.Debug().Str("name", request.Name).Msg("name is already registered")
		return models.User{}, ErrDuplicateIdentity
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("name", request.Name).Msg("user search by name failed")
		return models.User{}, fmt.Errorf("user search by name failed: %w", err)
	}

	passwordHash, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := request.User()
	user.PasswordHash = passwordHash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		return models.User{}, ErrDuplicateIdentity
	}
	if err != nil {
		log.Err(err).Str("name", user.Name).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", registeredUser.UserID).Str("name", registeredUser.Name).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user by name and password.
//
// An unknown name, an account without a password and a wrong password all
// produce the same ErrInvalidCredentials so callers cannot tell them apart.
func (a *authService) Login(ctx context.Context, name, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByName(ctx, name)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("name", name).Msg("login attempt for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("name", name).Msg("user search by name failed")
		return models.User{}, fmt.Errorf("user search by name failed: %w", err)
	}

	if !foundUser.HasPassword() || !a.hasher.Verify(password, foundUser.PasswordHash) {
		log.Debug().Int64("id", foundUser.UserID).Str("name", foundUser.Name).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// HashPassword exposes the configured hasher for the debug endpoint.
func (a *authService) HashPassword(ctx context.Context, password string) (string, error) {
	hash, err := a.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("password hashing failed: %w", err)
	}

	return hash, nil
}

// CreateToken issues a signed JWT whose subject is the user's name.
//
// The token is signed with the configured tokenSignKey and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user.Name, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, bad signature, malformed, no subject) is
// normalised to ErrInvalidToken so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}

// Authorize resolves the user a bearer token was issued to.
//
// An empty token, an invalid or expired token and a subject that no longer
// names an existing user all produce ErrUnauthenticated.
func (a *authService) Authorize(ctx context.Context, tokenString string) (models.User, error) {
	if tokenString == "" {
		return models.User{}, ErrUnauthenticated
	}

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	user, err := a.userRepository.FindUserByName(ctx, token.Subject)
	if errors.Is(err, store.ErrNoUserWasFound) {
		logger.FromContext(ctx).Debug().Str("subject", token.Subject).Msg("token subject does not resolve to a user")
		return models.User{}, ErrUnauthenticated
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by name failed: %w", err)
	}

	return user, nil
}
