package validators

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldCompanyName targets the trimmed company name of an assessment.
	FieldCompanyName = "company_name"

	// FieldPriority targets the priority enum of an assessment.
	FieldPriority = "priority"

	// FieldStatus targets the status enum of an assessment.
	FieldStatus = "status"

	// FieldPercentComplete targets the [0,100] progress value.
	FieldPercentComplete = "percent_complete"

	// FieldDueDate targets the required due date of an assessment.
	FieldDueDate = "due_date"

	// FieldAssignedTo targets the owning user reference of an assessment.
	FieldAssignedTo = "assigned_to"

	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
)
