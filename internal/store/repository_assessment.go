package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/project-elevate/internal/logger"
	"github.com/MKhiriev/project-elevate/internal/utils"
	"github.com/MKhiriev/project-elevate/models"
)

// assessmentRepository is the SQL-backed implementation of
// [AssessmentRepository].
type assessmentRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

func NewAssessmentRepository(db *DB, logger *logger.Logger) AssessmentRepository {
	logger.Debug().Msg("creating assessment repository")
	return &assessmentRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

func (r *assessmentRepository) GetAssessmentsByUser(ctx context.Context, userID string) ([]models.Assessment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAssessmentsByUserQuery(r.db.statementBuilder, userID)
	if err != nil {
		log.Err(err).Str("func", "*assessmentRepository.GetAssessmentsByUser").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var assessments []models.Assessment
	err = r.db.withRetry(ctx, "get assessments by user", func(ctx context.Context) error {
		assessments, err = r.queryAssessments(ctx, query, args)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*assessmentRepository.GetAssessmentsByUser").Msg("error selecting assessments")
		return nil, err
	}

	return assessments, nil
}

func (r *assessmentRepository) queryAssessments(ctx context.Context, query string, args []any) ([]models.Assessment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	assessments := make([]models.Assessment, 0)
	for rows.Next() {
		var a models.Assessment
		if err = rows.Scan(
			&a.ID,
			&a.CompanyName,
			&a.Priority,
			&a.Status,
			&a.PercentComplete,
			&a.DueDate,
			&a.AssignedTo,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		assessments = append(assessments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return assessments, nil
}

// SeedOnce claims the seed marker and inserts assessments in one transaction.
// Concurrent callers are serialised by the marker's primary key: only the
// caller whose insert affected a row writes the assessments. An existing
// marker is detected with a plain read and no transaction is opened.
func (r *assessmentRepository) SeedOnce(ctx context.Context, marker, seededBy string, assessments []models.Assessment) (bool, error) {
	log := logger.FromContext(ctx)

	claimed, err := r.seedMarkerExists(ctx, marker)
	if err != nil {
		log.Err(err).Str("func", "*assessmentRepository.SeedOnce").Msg("error reading seed marker")
		return false, err
	}
	if claimed {
		return false, nil
	}

	query, args, err := buildClaimSeedMarkerQuery(r.db.statementBuilder, marker, seededBy, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*assessmentRepository.SeedOnce").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var seeded bool
	err = r.db.withRetry(ctx, "seed assessments", func(ctx context.Context) error {
		seeded = false
		return r.db.inTx(ctx, func(tx *sql.Tx) error {
			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if affected == 0 {
				return nil
			}

			if err = r.insertAssessments(ctx, tx, assessments); err != nil {
				return err
			}
			seeded = true
			return nil
		})
	})
	if err != nil {
		log.Err(err).Str("func", "*assessmentRepository.SeedOnce").Msg("error seeding assessments")
		return false, err
	}

	if seeded {
		log.Info().Str("marker", marker).Int("count", len(assessments)).Msg("demonstration assessments seeded")
	}

	return seeded, nil
}

func (r *assessmentRepository) seedMarkerExists(ctx context.Context, marker string) (bool, error) {
	query, args, err := buildCountSeedMarkerQuery(r.db.statementBuilder, marker)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	err = r.db.withRetry(ctx, "read seed marker", func(ctx context.Context) error {
		if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *assessmentRepository) insertAssessments(ctx context.Context, tx *sql.Tx, assessments []models.Assessment) error {
	if len(assessments) == 0 {
		return nil
	}

	now := time.Now().UTC()
	prepared := make([]models.Assessment, len(assessments))
	for i, a := range assessments {
		if a.ID == "" {
			a.ID = r.ids.Generate()
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		a.UpdatedAt = now
		a.DueDate = a.DueDate.UTC()
		prepared[i] = a
	}

	query, args, err := buildInsertAssessmentsQuery(r.db.statementBuilder, prepared)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsForeignKeyViolation(err) {
			return ErrAssigneeNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
