package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/okandemir/coursefeedback/internal/app/models"
	"github.com/okandemir/coursefeedback/internal/app/models/dto"
	"github.com/okandemir/coursefeedback/internal/pkg/apperrors"
	"github.com/okandemir/coursefeedback/internal/pkg/validation"
)

const (
	msgFeedbackFieldsRequired = "Course ID, full name and rating are required"
	msgRatingOutOfRange       = "Rating must be between 1 and 5"
)

// FeedbackService handles feedback-related operations
type FeedbackService struct {
	feedbackRepo FeedbackRepository
	courseRepo   CourseRepository
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedbackRepo FeedbackRepository, courseRepo CourseRepository) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		courseRepo:   courseRepo,
	}
}

// AddFeedback validates and persists a feedback entry. The referenced course
// must exist at creation time; nothing enforces the reference afterwards.
func (s *FeedbackService) AddFeedback(ctx context.Context, req dto.CreateFeedbackRequest) (*models.Feedback, error) {
	if err := validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(msgFeedbackFieldsRequired)
	}

	if !validation.NewNumericValidation(req.Rating).WithMin(models.RatingMin).WithMax(models.RatingMax).Validate() {
		return nil, apperrors.NewCustomError(apperrors.ErrRatingOutOfRange, msgRatingOutOfRange)
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return nil, apperrors.NewValidationError(msgInvalidCourseID)
	}

	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrCourseNotFound, msgCourseNotFound)
		}
		return nil, fmt.Errorf("error checking course: %w", err)
	}

	feedback := &models.Feedback{
		CourseID: courseID,
		FullName: req.FullName,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("error creating feedback: %w", err)
	}

	return feedback, nil
}

// ListByCourse returns all feedback for a course ordered newest first.
// The list is returned even when the course itself no longer exists, so
// orphaned entries stay readable.
func (s *FeedbackService) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*models.Feedback, error) {
	feedbacks, err := s.feedbackRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}

	if feedbacks == nil {
		feedbacks = []*models.Feedback{}
	}

	return feedbacks, nil
}
