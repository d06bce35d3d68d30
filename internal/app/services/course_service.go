package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/okandemir/coursefeedback/internal/app/models"
	"github.com/okandemir/coursefeedback/internal/app/models/dto"
	"github.com/okandemir/coursefeedback/internal/pkg/apperrors"
)

var validate = validator.New()

// User-facing messages, kept stable because the frontend matches on them.
const (
	msgCourseFieldsRequired = "Course name and code are required"
	msgCourseCodeExists     = "Course code already exists"
	msgCourseNotFound       = "Course not found"
	msgInvalidCourseID      = "Invalid course ID"
)

// CourseService handles course-related operations
type CourseService struct {
	courseRepo   CourseRepository
	feedbackRepo FeedbackRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseRepository, feedbackRepo FeedbackRepository) *CourseService {
	return &CourseService{
		courseRepo:   courseRepo,
		feedbackRepo: feedbackRepo,
	}
}

// CreateCourse validates and persists a new course. The code must not be in
// use by any existing course.
func (s *CourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	if err := validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(msgCourseFieldsRequired)
	}

	taken, err := s.courseRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("error checking course code: %w", err)
	}
	if taken {
		return nil, apperrors.NewCustomError(apperrors.ErrCourseCodeExists, msgCourseCodeExists)
	}

	course := &models.Course{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		// Concurrent create with the same code can slip past the check above.
		if errors.Is(err, apperrors.ErrCourseCodeExists) {
			return nil, apperrors.NewCustomError(apperrors.ErrCourseCodeExists, msgCourseCodeExists)
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return course, nil
}

// ListWithRatings returns every course together with the mean of its
// feedback ratings. The join is an explicit two-step read: one pass over
// courses, one grouped aggregate over feedback, merged here.
func (s *CourseService) ListWithRatings(ctx context.Context) ([]*models.CourseWithRating, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	averages, err := s.feedbackRepo.AverageRatingByCourse(ctx)
	if err != nil {
		return nil, fmt.Errorf("error aggregating ratings: %w", err)
	}

	result := make([]*models.CourseWithRating, 0, len(courses))
	for _, course := range courses {
		result = append(result, &models.CourseWithRating{
			Course:    *course,
			AvgRating: averages[course.ID], // zero value covers unrated courses
		})
	}

	return result, nil
}

// GetCourse retrieves a course by ID
func (s *CourseService) GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, courseLookupError(err)
	}

	return course, nil
}

// courseLookupError maps a repository lookup failure onto the user-facing
// not-found error, passing everything else through wrapped.
func courseLookupError(err error) error {
	if errors.Is(err, apperrors.ErrCourseNotFound) {
		return apperrors.NewCustomError(apperrors.ErrCourseNotFound, msgCourseNotFound)
	}
	return fmt.Errorf("error retrieving course: %w", err)
}

// UpdateCourse applies a partial update. Provided fields are re-validated;
// code uniqueness is not re-checked on update, matching the create-only
// uniqueness contract.
func (s *CourseService) UpdateCourse(ctx context.Context, id uuid.UUID, req dto.UpdateCourseRequest) (*models.Course, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, apperrors.NewValidationError(msgCourseFieldsRequired)
	}
	if req.Code != nil && strings.TrimSpace(*req.Code) == "" {
		return nil, apperrors.NewValidationError(msgCourseFieldsRequired)
	}

	course, err := s.courseRepo.Update(ctx, id, req.Name, req.Code, req.Description)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrCourseNotFound, msgCourseNotFound)
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return course, nil
}

// DeleteCourse removes a course by ID. Existing feedback for the course is
// kept; the reference becomes an orphan.
func (s *CourseService) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.NewCustomError(apperrors.ErrCourseNotFound, msgCourseNotFound)
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	return nil
}
