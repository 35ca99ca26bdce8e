package models

import (
	"strings"
	"time"
)

// Priority is the urgency of an assessment.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// IsValid reports whether p belongs to the known priority set.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Status is the workflow state of an assessment.
type Status string

const (
	StatusNew        Status = "New"
	StatusInProgress Status = "In Progress"
	StatusReview     Status = "Review"
	StatusComplete   Status = "Complete"
)

// IsValid reports whether s belongs to the known status set.
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusReview, StatusComplete:
		return true
	}
	return false
}

const (
	minPercentComplete = 0
	maxPercentComplete = 100
)

// Assessment is the summary record of a consulting assessment.
// Records are owned by the user referenced in AssignedTo.
type Assessment struct {
	// ID is the unique identifier of the assessment (UUIDv7, time ordered).
	ID string `json:"id"`

	CompanyName     string    `json:"companyName"`
	Priority        Priority  `json:"priority"`
	Status          Status    `json:"status"`
	PercentComplete int       `json:"percentComplete"`
	DueDate         time.Time `json:"dueDate"`

	// AssignedTo is the ID of the owning user.
	AssignedTo string `json:"assignedTo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Assessment model.
func (a Assessment) TableName() string {
	return "assessments"
}

// Normalize applies the record defaults and bounds: the company name is
// trimmed, an empty priority becomes Medium, an empty status becomes New and
// PercentComplete is clamped to [0,100].
func (a Assessment) Normalize() Assessment {
	a.CompanyName = strings.TrimSpace(a.CompanyName)

	if a.Priority == "" {
		a.Priority = PriorityMedium
	}
	if a.Status == "" {
		a.Status = StatusNew
	}

	a.PercentComplete = min(max(a.PercentComplete, minPercentComplete), maxPercentComplete)

	return a
}
