package models

import (
	"time"

	"github.com/google/uuid"
)

// Course represents a catalogued course that can receive feedback.
type Course struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Code        string    `json:"code" db:"code"`
	Description *string   `json:"description,omitempty" db:"description"` // Nullable
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// CourseWithRating is a course row joined with the average of all its
// feedback ratings. Courses without feedback carry an average of 0.
type CourseWithRating struct {
	Course
	AvgRating float64 `json:"avgRating"`
}
