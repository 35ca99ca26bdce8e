package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/project-elevate/internal/config"
	"github.com/MKhiriev/project-elevate/internal/logger"
	"github.com/MKhiriev/project-elevate/internal/store"
	"github.com/MKhiriev/project-elevate/internal/utils"
	"github.com/MKhiriev/project-elevate/internal/validators"
	"github.com/MKhiriev/project-elevate/models"
)

type bootstrapService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	account          config.Bootstrap
	passwordHashCost int

	logger *logger.Logger
}

func NewBootstrapService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) BootstrapService {
	return &bootstrapService{
		userRepository:   userRepository,
		validator:        validators.NewAssessmentValidator(),
		account:          cfg.Bootstrap,
		passwordHashCost: cfg.PasswordHashCost,
		logger:           logger,
	}
}

// Bootstrap creates the configured account or resets the password, role and
// name of an existing one with the same email. Safe to run on every start.
func (b *bootstrapService) Bootstrap(ctx context.Context) (models.User, error) {
	newUser := models.NewUser{
		Email:    models.NormalizeEmail(b.account.Email),
		Password: strings.TrimSpace(b.account.Password),
		Role:     models.Role(strings.TrimSpace(b.account.Role)),
		Name:     strings.TrimSpace(b.account.Name),
	}

	if err := b.validator.Validate(ctx, newUser); err != nil {
		return models.User{}, fmt.Errorf("%w: bootstrap account: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(newUser.Password, b.passwordHashCost)
	if err != nil {
		return models.User{}, fmt.Errorf("bootstrap account password hashing failed: %w", err)
	}

	user, err := b.userRepository.ReplaceUser(ctx, models.User{
		Email:        newUser.Email,
		PasswordHash: hash,
		Role:         newUser.Role,
		Name:         newUser.Name,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("bootstrap account upsert failed: %w", err)
	}

	b.logger.Info().Str("id", user.UserID).Str("email", user.Email).Str("role", string(user.Role)).Msg("bootstrap account ready")

	return user, nil
}
