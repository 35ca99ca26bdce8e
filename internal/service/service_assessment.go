package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/project-elevate/internal/config"
	"github.com/MKhiriev/project-elevate/internal/logger"
	"github.com/MKhiriev/project-elevate/internal/store"
	"github.com/MKhiriev/project-elevate/internal/validators"
	"github.com/MKhiriev/project-elevate/models"
)

// DemoSeedMarker names the seed marker claimed by the demonstration rows.
const DemoSeedMarker = "demo-assessments-v1"

type assessmentService struct {
	assessmentRepository store.AssessmentRepository
	validator            validators.Validator

	seedDisabled bool

	logger *logger.Logger
}

func NewAssessmentService(assessmentRepository store.AssessmentRepository, cfg config.App, logger *logger.Logger) AssessmentService {
	return &assessmentService{
		assessmentRepository: assessmentRepository,
		validator:            validators.NewAssessmentValidator(),
		seedDisabled:         cfg.DisableDemoSeed,
		logger:               logger,
	}
}

// ListAssessments returns the caller's assessments in insertion order.
//
// The first listing in the lifetime of the store, by whichever user, assigns
// the demonstration rows to that user. Later callers never see them unless
// they are the one who triggered seeding.
func (s *assessmentService) ListAssessments(ctx context.Context, userID string) ([]models.Assessment, error) {
	log := logger.FromContext(ctx)

	if !s.seedDisabled {
		if err := s.seed(ctx, userID); err != nil {
			log.Err(err).Str("user_id", userID).Msg("seeding demonstration assessments failed")
			return nil, err
		}
	}

	assessments, err := s.assessmentRepository.GetAssessmentsByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error fetching assessments")
		return nil, fmt.Errorf("error fetching assessments: %w", err)
	}

	return assessments, nil
}

func (s *assessmentService) seed(ctx context.Context, userID string) error {
	demo := DemoAssessments(userID)
	for i := range demo {
		demo[i] = demo[i].Normalize()
	}

	if err := s.validator.Validate(ctx, demo); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	seeded, err := s.assessmentRepository.SeedOnce(ctx, DemoSeedMarker, userID, demo)
	if err != nil {
		return fmt.Errorf("error seeding assessments: %w", err)
	}
	if seeded {
		logger.FromContext(ctx).Info().Str("user_id", userID).Int("count", len(demo)).Msg("demonstration assessments seeded")
	}

	return nil
}

// DemoAssessments returns the demonstration rows assigned to owner.
func DemoAssessments(owner string) []models.Assessment {
	return []models.Assessment{
		{
			CompanyName:     "Acme Corp",
			Priority:        models.PriorityHigh,
			Status:          models.StatusInProgress,
			PercentComplete: 60,
			DueDate:         time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			AssignedTo:      owner,
		},
		{
			CompanyName:     "TechStart Inc",
			Priority:        models.PriorityMedium,
			Status:          models.StatusNew,
			PercentComplete: 0,
			DueDate:         time.Date(2024, time.March, 30, 0, 0, 0, 0, time.UTC),
			AssignedTo:      owner,
		},
		{
			CompanyName:     "Global Solutions",
			Priority:        models.PriorityLow,
			Status:          models.StatusReview,
			PercentComplete: 90,
			DueDate:         time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			AssignedTo:      owner,
		},
	}
}
