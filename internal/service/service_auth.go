package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/project-elevate/internal/config"
	"github.com/MKhiriev/project-elevate/internal/logger"
	"github.com/MKhiriev/project-elevate/internal/store"
	"github.com/MKhiriev/project-elevate/internal/utils"
	"github.com/MKhiriev/project-elevate/internal/validators"
	"github.com/MKhiriev/project-elevate/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// passwordHashCost is the bcrypt work factor for new hashes.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// decoyHash is compared against when the email is unknown, so that both
	// failure paths cost one bcrypt comparison.
	decoyOnce sync.Once
	decoyHash string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		validator:        validators.NewAssessmentValidator(),
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// RegisterUser creates a new user account.
//
// The email is normalised and the password trimmed the same way Login trims
// it. The input is validated and the password hashed with a fresh salt before
// the account is stored.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if the input fails validation;
//   - a wrapped store.ErrEmailAlreadyExists if the email is taken;
//   - a wrapped storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, newUser models.NewUser) (models.User, error) {
	log := logger.FromContext(ctx)

	newUser.Email = models.NormalizeEmail(newUser.Email)
	newUser.Password = strings.TrimSpace(newUser.Password)
	newUser.Name = strings.TrimSpace(newUser.Name)

	if err := a.validator.Validate(ctx, newUser); err != nil {
		log.Error().Err(err).Str("email", newUser.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(newUser.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("email", newUser.Email).Msg("password hashing failed")
		if utils.IsPasswordTooLong(err) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        newUser.Email,
		PasswordHash: hash,
		Role:         newUser.Role,
		Name:         newUser.Name,
	})
	if err != nil {
		log.Err(err).Str("email", newUser.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Both fields are trimmed; an empty field yields ErrInvalidDataProvided. An
// unknown email and a wrong password both yield ErrInvalidCredentials.
// Repository failures other than "not found" are returned wrapped.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	request.Email = models.NormalizeEmail(request.Email)
	request.Password = strings.TrimSpace(request.Password)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Msg("invalid login request")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		utils.ComparePassword(request.Password, a.decoy())
		log.Info().Str("email", request.Email).Msg("login for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.ComparePassword(request.Password, foundUser.PasswordHash) {
		log.Info().Str("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the user's role, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", user.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) decoy() string {
	a.decoyOnce.Do(func() {
		a.decoyHash, _ = utils.HashPassword(utils.NewUUIDGenerator().Generate(), a.passwordHashCost)
	})

	return a.decoyHash
}
