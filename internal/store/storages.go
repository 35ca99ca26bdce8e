package store

import "github.com/MKhiriev/project-elevate/internal/logger"

// Storages groups every repository the service layer depends on.
type Storages struct {
	UserRepository       UserRepository
	AssessmentRepository AssessmentRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		AssessmentRepository: NewAssessmentRepository(db, log),
	}
}
