package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/project-elevate/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, newUser models.NewUser) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AssessmentService interface {
	// ListAssessments returns the assessments assigned to userID, seeding the
	// demonstration rows first if nobody has done so yet.
	ListAssessments(ctx context.Context, userID string) ([]models.Assessment, error)
}

type BootstrapService interface {
	// Bootstrap upserts the configured bootstrap account.
	Bootstrap(ctx context.Context) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
