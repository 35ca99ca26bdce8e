package service

import (
	"github.com/MKhiriev/project-elevate/internal/config"
	"github.com/MKhiriev/project-elevate/internal/logger"
	"github.com/MKhiriev/project-elevate/internal/store"
)

type Services struct {
	AuthService       AuthService
	AssessmentService AssessmentService
	BootstrapService  BootstrapService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	assessmentService := NewAssessmentValidationService().
		Wrap(NewAssessmentService(storages.AssessmentRepository, cfg.App, logger))

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		AssessmentService: assessmentService,
		BootstrapService:  NewBootstrapService(storages.UserRepository, cfg.App, logger),
		AppInfoService:    appInfoService,
	}, nil
}
