package dto

// CreateFeedbackRequest is the payload for submitting course feedback.
type CreateFeedbackRequest struct {
	CourseID string  `json:"courseId" validate:"required" example:"6f1e1c2a-9b1f-4e62-8f05-1c2d3e4f5a6b"`
	FullName string  `json:"fullName" validate:"required" example:"Ayse Yilmaz"`
	Rating   int     `json:"rating" validate:"required" example:"5"`
	Comment  *string `json:"comment,omitempty" example:"Great lectures, tough exams"`
}

// FeedbackView is the projection of a feedback row embedded in the course
// detail response. Identifiers are deliberately left out.
type FeedbackView struct {
	FullName string  `json:"fullName"`
	Comment  *string `json:"comment,omitempty"`
	Rating   int     `json:"rating"`
}
