package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okandemir/coursefeedback/internal/app/models"
	"github.com/okandemir/coursefeedback/internal/pkg/apperrors"
	"github.com/okandemir/coursefeedback/internal/pkg/dberrors"
)

// CourseCodeUniqueConstraint is the unique index guarding course codes.
const CourseCodeUniqueConstraint = "courses_code_key"

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course and fills in its generated id and timestamp.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, code, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, course.Name, course.Code, course.Description).
		Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		// The service checks the code first, but two concurrent creates can
		// both pass that check; the unique index settles the race.
		if dberrors.IsDuplicateConstraintError(err, CourseCodeUniqueConstraint) {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	query := `
		SELECT id, name, code, description, created_at
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Code,
		&course.Description,
		&course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetAll retrieves all courses in insertion order.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, name, code, description, created_at
		FROM courses
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Code,
			&course.Description,
			&course.CreatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// ExistsByCode checks whether any course already uses the given code.
func (r *CourseRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE code = $1)`,
		code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course code: %w", err)
	}

	return exists, nil
}

// Update applies a partial update; nil fields keep their stored values.
// Returns the post-update record.
func (r *CourseRepository) Update(ctx context.Context, id uuid.UUID, name, code, description *string) (*models.Course, error) {
	query := `
		UPDATE courses
		SET name = COALESCE($2, name),
		    code = COALESCE($3, code),
		    description = COALESCE($4, description)
		WHERE id = $1
		RETURNING id, name, code, description, created_at
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id, name, code, description).Scan(
		&course.ID,
		&course.Name,
		&course.Code,
		&course.Description,
		&course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return &course, nil
}

// Delete removes a course by ID. Feedback rows referencing the course are
// deliberately left untouched.
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM courses WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
