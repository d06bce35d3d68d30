package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/okandemir/coursefeedback/internal/app/models"
)

// Services defined in this package:
// - CourseService: course CRUD and the course list joined with average ratings
// - FeedbackService: feedback submission and per-course listing
// - AnalyticsService: rating distribution, summary and the composed course detail

// CourseRepository is the course persistence contract consumed by the
// services. Satisfied by repositories.CourseRepository and by in-memory
// fakes in tests.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, id uuid.UUID, name, code, description *string) (*models.Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FeedbackRepository is the feedback persistence contract consumed by the
// services.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*models.Feedback, error)
	AverageRatingByCourse(ctx context.Context) (map[uuid.UUID]float64, error)
	CountByRating(ctx context.Context, courseID uuid.UUID) (map[int]int, error)
	RatingStats(ctx context.Context, courseID uuid.UUID) (float64, int, error)
}
