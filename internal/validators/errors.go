package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyCompanyName    = errors.New("company name is required")
	ErrInvalidPriority     = errors.New("invalid priority")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidPercent      = errors.New("percent complete must be between 0 and 100")
	ErrEmptyDueDate        = errors.New("due date is required")
	ErrEmptyAssignee       = errors.New("assignee is required")
	ErrEmptyAssessmentList = errors.New("assessment list cannot be empty")

	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrEmptyPassword = errors.New("password is required")
	ErrInvalidRole   = errors.New("invalid role")
)
