package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/project-elevate/models"
)

const (
	usersTable       = "users"
	assessmentsTable = "assessments"
	seedMarkersTable = "seed_markers"
)

var userColumns = []string{
	"id",
	"email",
	"password_hash",
	"role",
	"name",
	"created_at",
	"updated_at",
}

var assessmentColumns = []string{
	"id",
	"company_name",
	"priority",
	"status",
	"percent_complete",
	"due_date",
	"assigned_to",
	"created_at",
	"updated_at",
}

func buildInsertUserQuery(sb sq.StatementBuilderType, user models.User) (string, []any, error) {
	return sb.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.PasswordHash, user.Role, user.Name, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

// buildUpsertUserQuery inserts the user or, on an email conflict, overwrites
// the credential and profile columns of the existing row. id and created_at
// of an existing row are kept.
func buildUpsertUserQuery(sb sq.StatementBuilderType, user models.User) (string, []any, error) {
	return sb.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.PasswordHash, user.Role, user.Name, user.CreatedAt, user.UpdatedAt).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			password_hash = excluded.password_hash,
			role = excluded.role,
			name = excluded.name,
			updated_at = excluded.updated_at`).
		ToSql()
}

func buildSelectUserByEmailQuery(sb sq.StatementBuilderType, email string) (string, []any, error) {
	return sb.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

// buildSelectAssessmentsByUserQuery orders by id, which is a UUIDv7 and
// therefore follows insertion order.
func buildSelectAssessmentsByUserQuery(sb sq.StatementBuilderType, userID string) (string, []any, error) {
	return sb.Select(assessmentColumns...).
		From(assessmentsTable).
		Where(sq.Eq{"assigned_to": userID}).
		OrderBy("id").
		ToSql()
}

func buildInsertAssessmentsQuery(sb sq.StatementBuilderType, assessments []models.Assessment) (string, []any, error) {
	insert := sb.Insert(assessmentsTable).Columns(assessmentColumns...)
	for _, a := range assessments {
		insert = insert.Values(
			a.ID,
			a.CompanyName,
			a.Priority,
			a.Status,
			a.PercentComplete,
			a.DueDate,
			a.AssignedTo,
			a.CreatedAt,
			a.UpdatedAt,
		)
	}

	return insert.ToSql()
}

func buildCountSeedMarkerQuery(sb sq.StatementBuilderType, marker string) (string, []any, error) {
	return sb.Select("COUNT(*)").
		From(seedMarkersTable).
		Where(sq.Eq{"name": marker}).
		ToSql()
}

// buildClaimSeedMarkerQuery inserts the marker row unless it already exists.
// The statement affects exactly one row for the first caller and none after.
func buildClaimSeedMarkerQuery(sb sq.StatementBuilderType, marker, seededBy string, at time.Time) (string, []any, error) {
	return sb.Insert(seedMarkersTable).
		Columns("name", "seeded_by", "created_at").
		Values(marker, seededBy, at).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
}
