package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/project-elevate/models"
)

// AssessmentServiceWrapper defines middleware composition for AssessmentService.
// Implementations wrap an existing AssessmentService to add behavior such as
// logging or validating.
type AssessmentServiceWrapper interface {
	Wrap(AssessmentService) AssessmentService
}

// AssessmentValidationService rejects calls that carry no caller identity
// before they reach the wrapped service.
type AssessmentValidationService struct {
	inner AssessmentService
}

func NewAssessmentValidationService() AssessmentServiceWrapper {
	return &AssessmentValidationService{}
}

func (v *AssessmentValidationService) Wrap(inner AssessmentService) AssessmentService {
	v.inner = inner
	return v
}

func (v *AssessmentValidationService) ListAssessments(ctx context.Context, userID string) ([]models.Assessment, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidDataProvided
	}

	return v.inner.ListAssessments(ctx, userID)
}
