package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/project-elevate/models"
)

// AssessmentValidator checks assessments and the account inputs that own them.
type AssessmentValidator struct {
}

func NewAssessmentValidator() Validator {
	return &AssessmentValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types are
// [models.Assessment], []models.Assessment, [models.LoginRequest] and
// [models.NewUser], by value or by pointer.
func (v *AssessmentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Assessment:
		return v.validateAssessment(ctx, value, fields...)
	case *models.Assessment:
		return v.validateAssessment(ctx, *value, fields...)

	case []models.Assessment:
		return v.validateAssessments(ctx, value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.NewUser:
		return v.validateNewUser(ctx, value, fields...)
	case *models.NewUser:
		return v.validateNewUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateAssessment expects defaults and clamping to be applied already
// (see [models.Assessment.Normalize]).
func (v *AssessmentValidator) validateAssessment(ctx context.Context, a models.Assessment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCompanyName, FieldPriority, FieldStatus, FieldPercentComplete, FieldDueDate, FieldAssignedTo}
	}

	for _, f := range fields {
		switch f {
		case FieldCompanyName:
			if strings.TrimSpace(a.CompanyName) == "" {
				return ErrEmptyCompanyName
			}
		case FieldPriority:
			if !a.Priority.IsValid() {
				return ErrInvalidPriority
			}
		case FieldStatus:
			if !a.Status.IsValid() {
				return ErrInvalidStatus
			}
		case FieldPercentComplete:
			if a.PercentComplete < 0 || a.PercentComplete > 100 {
				return ErrInvalidPercent
			}
		case FieldDueDate:
			if a.DueDate.IsZero() {
				return ErrEmptyDueDate
			}
		case FieldAssignedTo:
			if strings.TrimSpace(a.AssignedTo) == "" {
				return ErrEmptyAssignee
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AssessmentValidator) validateAssessments(ctx context.Context, assessments []models.Assessment, fields ...string) error {
	if len(assessments) == 0 {
		return ErrEmptyAssessmentList
	}

	for i, a := range assessments {
		if err := v.validateAssessment(ctx, a, fields...); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
	}

	return nil
}

// validateLoginRequest checks presence only. The email format is not
// inspected on login.
func (v *AssessmentValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(request.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if strings.TrimSpace(request.Password) == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AssessmentValidator) validateNewUser(_ context.Context, user models.NewUser, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			email := strings.TrimSpace(user.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			if _, err := mail.ParseAddress(email); err != nil {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if strings.TrimSpace(user.Password) == "" {
				return ErrEmptyPassword
			}
		case FieldRole:
			if !user.Role.IsValid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
