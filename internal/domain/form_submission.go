package domain

import "time"

// SubmissionType enumerates the public lead-capture forms.
type SubmissionType string

const (
	SubmissionTypeDemo       SubmissionType = "demo"
	SubmissionTypeContact    SubmissionType = "contact"
	SubmissionTypeGetInTouch SubmissionType = "get_in_touch"
)

// SubmissionStatus enumerates the handling workflow.
type SubmissionStatus string

const (
	SubmissionStatusPending    SubmissionStatus = "pending"
	SubmissionStatusInProgress SubmissionStatus = "in_progress"
	SubmissionStatusCompleted  SubmissionStatus = "completed"
)

// ValidSubmissionStatus reports whether s is a member of the closed status set.
func ValidSubmissionStatus(s string) bool {
	switch SubmissionStatus(s) {
	case SubmissionStatusPending, SubmissionStatusInProgress, SubmissionStatusCompleted:
		return true
	}
	return false
}

// ValidSubmissionType reports whether t is a member of the closed type set.
func ValidSubmissionType(t string) bool {
	switch SubmissionType(t) {
	case SubmissionTypeDemo, SubmissionTypeContact, SubmissionTypeGetInTouch:
		return true
	}
	return false
}

// FormSubmission is a lead captured through a public form.
type FormSubmission struct {
	ID      int64            `json:"id"`
	Name    string           `json:"name"`
	Email   string           `json:"email"`
	Phone   *string          `json:"phone"`
	Type    SubmissionType   `json:"type"`
	Service *string          `json:"service"`
	Message *string          `json:"message"`
	Status  SubmissionStatus `json:"status"`
	UserID  *int64           `json:"userId,omitempty"`

	// Loaded relation.
	User *UserSummary `json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
