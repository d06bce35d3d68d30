package dto

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Name        string  `json:"name" validate:"required" example:"Distributed Systems"`
	Code        string  `json:"code" validate:"required" example:"CS452"`
	Description *string `json:"description,omitempty" example:"Consensus, replication and failure models"`
}

// UpdateCourseRequest is the payload for partially updating a course.
// Omitted fields keep their current values.
type UpdateCourseRequest struct {
	Name        *string `json:"name,omitempty"`
	Code        *string `json:"code,omitempty"`
	Description *string `json:"description,omitempty"`
}
