package dto

import "github.com/okandemir/coursefeedback/internal/app/models"

// AnalyticsResponse is the aggregate rating view for one course.
// Distribution always contains all five buckets, zero-filled when empty.
type AnalyticsResponse struct {
	AvgRating     float64     `json:"avgRating"`
	TotalFeedback int         `json:"totalFeedback"`
	Distribution  map[int]int `json:"distribution"`
}

// CourseDetailResponse combines a course with its analytics and the
// projected list of feedback entries.
type CourseDetailResponse struct {
	Course    *models.Course    `json:"course"`
	Analytics AnalyticsResponse `json:"analytics"`
	Feedbacks []FeedbackView    `json:"feedbacks"`
}
