package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/okandemir/coursefeedback/internal/app/models"
	"github.com/okandemir/coursefeedback/internal/pkg/apperrors"
)

// fakeCourseRepo is an in-memory CourseRepository for tests.
type fakeCourseRepo struct {
	courses []*models.Course
	clock   time.Time
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *fakeCourseRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	for _, c := range r.courses {
		if c.Code == course.Code {
			return apperrors.ErrCourseCodeExists
		}
	}
	course.ID = uuid.New()
	course.CreatedAt = r.tick()
	stored := *course
	r.courses = append(r.courses, &stored)
	return nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	for _, c := range r.courses {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (r *fakeCourseRepo) GetAll(_ context.Context) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(r.courses))
	for _, c := range r.courses {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeCourseRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	for _, c := range r.courses {
		if c.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, id uuid.UUID, name, code, description *string) (*models.Course, error) {
	for _, c := range r.courses {
		if c.ID == id {
			if name != nil {
				c.Name = *name
			}
			if code != nil {
				c.Code = *code
			}
			if description != nil {
				d := *description
				c.Description = &d
			}
			copied := *c
			return &copied, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (r *fakeCourseRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, c := range r.courses {
		if c.ID == id {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

// fakeFeedbackRepo is an in-memory FeedbackRepository for tests. Entries are
// appended with strictly increasing timestamps so ordering is deterministic.
type fakeFeedbackRepo struct {
	feedbacks []*models.Feedback
	clock     time.Time
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *fakeFeedbackRepo) Create(_ context.Context, feedback *models.Feedback) error {
	r.clock = r.clock.Add(time.Second)
	feedback.ID = uuid.New()
	feedback.CreatedAt = r.clock
	stored := *feedback
	r.feedbacks = append(r.feedbacks, &stored)
	return nil
}

func (r *fakeFeedbackRepo) ListByCourse(_ context.Context, courseID uuid.UUID) ([]*models.Feedback, error) {
	var out []*models.Feedback
	// Walk backwards: insertion order plus strictly increasing timestamps
	// gives newest-first without sorting.
	for i := len(r.feedbacks) - 1; i >= 0; i-- {
		if r.feedbacks[i].CourseID == courseID {
			copied := *r.feedbacks[i]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeFeedbackRepo) AverageRatingByCourse(_ context.Context) (map[uuid.UUID]float64, error) {
	sums := make(map[uuid.UUID]int)
	counts := make(map[uuid.UUID]int)
	for _, f := range r.feedbacks {
		sums[f.CourseID] += f.Rating
		counts[f.CourseID]++
	}

	averages := make(map[uuid.UUID]float64, len(sums))
	for id, sum := range sums {
		averages[id] = float64(sum) / float64(counts[id])
	}
	return averages, nil
}

func (r *fakeFeedbackRepo) CountByRating(_ context.Context, courseID uuid.UUID) (map[int]int, error) {
	counts := make(map[int]int)
	for _, f := range r.feedbacks {
		if f.CourseID == courseID {
			counts[f.Rating]++
		}
	}
	return counts, nil
}

func (r *fakeFeedbackRepo) RatingStats(_ context.Context, courseID uuid.UUID) (float64, int, error) {
	sum, total := 0, 0
	for _, f := range r.feedbacks {
		if f.CourseID == courseID {
			sum += f.Rating
			total++
		}
	}
	if total == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(total), total, nil
}
