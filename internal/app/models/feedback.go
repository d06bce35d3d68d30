package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is one respondent's rating and optional comment for a course.
// CourseID is a soft reference: existence is checked when the feedback is
// created, but deleting the course later leaves the row in place.
type Feedback struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CourseID  uuid.UUID `json:"courseId" db:"course_id"`
	FullName  string    `json:"fullName" db:"full_name"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   *string   `json:"comment,omitempty" db:"comment"` // Nullable
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Rating bounds accepted for feedback.
const (
	RatingMin = 1
	RatingMax = 5
)
