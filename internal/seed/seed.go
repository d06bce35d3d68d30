package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/okandemir/coursefeedback/internal/app/models"
	"github.com/okandemir/coursefeedback/internal/app/repositories"
)

func strptr(s string) *string { return &s }

// CreateDemoData inserts a handful of demo courses with feedback so a fresh
// development database has something to show. It is a no-op when any course
// already exists.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := repositories.NewCourseRepository(dbPool)
	feedbackRepo := repositories.NewFeedbackRepository(dbPool)

	existing, err := courseRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Int("courses", len(existing)).Msg("Courses already present, skipping demo data")
		return nil
	}

	lgr.Info().Msg("Creating demo courses and feedback...")

	demo := []struct {
		course  models.Course
		ratings []int
	}{
		{
			course: models.Course{
				Name:        "Introduction to Algorithms",
				Code:        "CS201",
				Description: strptr("Sorting, searching, graphs and complexity"),
			},
			ratings: []int{5, 4, 5},
		},
		{
			course: models.Course{
				Name:        "Operating Systems",
				Code:        "CS342",
				Description: strptr("Processes, scheduling, memory and file systems"),
			},
			ratings: []int{4, 3},
		},
		{
			course: models.Course{
				Name: "Linear Algebra",
				Code: "MATH220",
			},
		},
	}

	names := []string{"Deniz Kaya", "Mert Aksoy", "Elif Sahin"}

	var finalErr error
	for _, entry := range demo {
		course := entry.course
		if err := courseRepo.Create(ctx, &course); err != nil {
			lgr.Error().Err(err).Str("code", course.Code).Msg("Error creating demo course")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		for i, rating := range entry.ratings {
			feedback := &models.Feedback{
				CourseID: course.ID,
				FullName: names[i%len(names)],
				Rating:   rating,
			}
			if err := feedbackRepo.Create(ctx, feedback); err != nil {
				lgr.Error().Err(err).Str("code", course.Code).Msg("Error creating demo feedback")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	return finalErr
}
