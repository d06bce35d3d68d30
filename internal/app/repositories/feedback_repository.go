package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okandemir/coursefeedback/internal/app/models"
)

// FeedbackRepository handles database operations for feedback entries
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
	}
}

// Create inserts a new feedback entry and fills in its generated id and
// server-set creation timestamp.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	query := `
		INSERT INTO feedback (course_id, full_name, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		feedback.CourseID, feedback.FullName, feedback.Rating, feedback.Comment).
		Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating feedback: %w", err)
	}

	return nil
}

// ListByCourse retrieves all feedback for a course, newest first.
func (r *FeedbackRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*models.Feedback, error) {
	query := `
		SELECT id, course_id, full_name, rating, comment, created_at
		FROM feedback
		WHERE course_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []*models.Feedback
	for rows.Next() {
		var feedback models.Feedback
		if err := rows.Scan(
			&feedback.ID,
			&feedback.CourseID,
			&feedback.FullName,
			&feedback.Rating,
			&feedback.Comment,
			&feedback.CreatedAt,
		); err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, &feedback)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return feedbacks, nil
}

// AverageRatingByCourse returns the mean rating for every course that has
// at least one feedback entry, keyed by course id.
func (r *FeedbackRepository) AverageRatingByCourse(ctx context.Context) (map[uuid.UUID]float64, error) {
	query := `
		SELECT course_id, AVG(rating)::float8
		FROM feedback
		GROUP BY course_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	averages := make(map[uuid.UUID]float64)
	for rows.Next() {
		var courseID uuid.UUID
		var avg float64
		if err := rows.Scan(&courseID, &avg); err != nil {
			return nil, err
		}
		averages[courseID] = avg
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return averages, nil
}

// CountByRating groups a course's feedback by exact rating value.
// Ratings with no entries are absent from the result; the analytics
// service fills in the empty buckets.
func (r *FeedbackRepository) CountByRating(ctx context.Context, courseID uuid.UUID) (map[int]int, error) {
	query := `
		SELECT rating, COUNT(*)
		FROM feedback
		WHERE course_id = $1
		GROUP BY rating
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, err
		}
		counts[rating] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// RatingStats returns the mean rating and total entry count for a course.
// A course with no feedback yields (0, 0).
func (r *FeedbackRepository) RatingStats(ctx context.Context, courseID uuid.UUID) (float64, int, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0)::float8, COUNT(*)
		FROM feedback
		WHERE course_id = $1
	`

	var avg float64
	var total int
	err := r.db.QueryRow(ctx, query, courseID).Scan(&avg, &total)
	if err != nil {
		return 0, 0, fmt.Errorf("error computing rating stats: %w", err)
	}

	return avg, total, nil
}
