package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/okandemir/coursefeedback/internal/app/models"
	"github.com/okandemir/coursefeedback/internal/app/models/dto"
)

// AnalyticsService computes aggregate rating statistics for a course.
// Every call recomputes from the stores; there is no cached state.
type AnalyticsService struct {
	courseRepo   CourseRepository
	feedbackRepo FeedbackRepository
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(courseRepo CourseRepository, feedbackRepo FeedbackRepository) *AnalyticsService {
	return &AnalyticsService{
		courseRepo:   courseRepo,
		feedbackRepo: feedbackRepo,
	}
}

// Distribution returns the per-rating feedback counts for a course. All five
// buckets are pre-seeded to zero so consumers never see a missing key.
func (s *AnalyticsService) Distribution(ctx context.Context, courseID uuid.UUID) (map[int]int, error) {
	counts, err := s.feedbackRepo.CountByRating(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error computing rating distribution: %w", err)
	}

	distribution := make(map[int]int, models.RatingMax)
	for rating := models.RatingMin; rating <= models.RatingMax; rating++ {
		distribution[rating] = 0
	}
	for rating, count := range counts {
		distribution[rating] = count
	}

	return distribution, nil
}

// Summary returns the mean rating and total feedback count for a course.
// The mean of an empty set is defined as 0.
func (s *AnalyticsService) Summary(ctx context.Context, courseID uuid.UUID) (float64, int, error) {
	avg, total, err := s.feedbackRepo.RatingStats(ctx, courseID)
	if err != nil {
		return 0, 0, fmt.Errorf("error computing rating summary: %w", err)
	}

	return avg, total, nil
}

// Analytics combines Summary and Distribution into one response.
func (s *AnalyticsService) Analytics(ctx context.Context, courseID uuid.UUID) (*dto.AnalyticsResponse, error) {
	avg, total, err := s.Summary(ctx, courseID)
	if err != nil {
		return nil, err
	}

	distribution, err := s.Distribution(ctx, courseID)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyticsResponse{
		AvgRating:     avg,
		TotalFeedback: total,
		Distribution:  distribution,
	}, nil
}

// CourseDetail composes the course record, its analytics and the projected
// feedback list into the detail view. The four reads are independent, so a
// concurrent write may land between them; the result is treated as one
// snapshot regardless.
func (s *AnalyticsService) CourseDetail(ctx context.Context, courseID uuid.UUID) (*dto.CourseDetailResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, courseLookupError(err)
	}

	analytics, err := s.Analytics(ctx, courseID)
	if err != nil {
		return nil, err
	}

	feedbacks, err := s.feedbackRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}

	views := make([]dto.FeedbackView, 0, len(feedbacks))
	for _, feedback := range feedbacks {
		views = append(views, dto.FeedbackView{
			FullName: feedback.FullName,
			Comment:  feedback.Comment,
			Rating:   feedback.Rating,
		})
	}

	return &dto.CourseDetailResponse{
		Course:    course,
		Analytics: *analytics,
		Feedbacks: views,
	}, nil
}
