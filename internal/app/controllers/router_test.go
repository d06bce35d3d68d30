package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okandemir/coursefeedback/internal/app/controllers"
	"github.com/okandemir/coursefeedback/internal/app/models"
	"github.com/okandemir/coursefeedback/internal/app/routes"
	"github.com/okandemir/coursefeedback/internal/app/services"
	"github.com/okandemir/coursefeedback/internal/pkg/apperrors"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// memCourseStore is a slice-backed stand-in for the pgx course repository.
type memCourseStore struct {
	courses []*models.Course
	now     time.Time
}

func newMemCourseStore() *memCourseStore {
	return &memCourseStore{now: time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)}
}

func (s *memCourseStore) tick() time.Time {
	s.now = s.now.Add(time.Second)
	return s.now
}

func (s *memCourseStore) Create(_ context.Context, course *models.Course) error {
	for _, existing := range s.courses {
		if existing.Code == course.Code {
			return apperrors.ErrCourseCodeExists
		}
	}
	course.ID = uuid.New()
	course.CreatedAt = s.tick()
	stored := *course
	s.courses = append(s.courses, &stored)
	return nil
}

func (s *memCourseStore) GetByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	for _, course := range s.courses {
		if course.ID == id {
			copied := *course
			return &copied, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (s *memCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	result := make([]*models.Course, 0, len(s.courses))
	for _, course := range s.courses {
		copied := *course
		result = append(result, &copied)
	}
	return result, nil
}

func (s *memCourseStore) ExistsByCode(_ context.Context, code string) (bool, error) {
	for _, course := range s.courses {
		if course.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *memCourseStore) Update(_ context.Context, id uuid.UUID, name, code, description *string) (*models.Course, error) {
	for _, course := range s.courses {
		if course.ID != id {
			continue
		}
		if name != nil {
			course.Name = *name
		}
		if code != nil {
			course.Code = *code
		}
		if description != nil {
			course.Description = description
		}
		copied := *course
		return &copied, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (s *memCourseStore) Delete(_ context.Context, id uuid.UUID) error {
	for i, course := range s.courses {
		if course.ID == id {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

// memFeedbackStore is a slice-backed stand-in for the pgx feedback repository.
type memFeedbackStore struct {
	feedbacks []*models.Feedback
	now       time.Time
}

func newMemFeedbackStore() *memFeedbackStore {
	return &memFeedbackStore{now: time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)}
}

func (s *memFeedbackStore) Create(_ context.Context, feedback *models.Feedback) error {
	feedback.ID = uuid.New()
	s.now = s.now.Add(time.Second)
	feedback.CreatedAt = s.now
	stored := *feedback
	s.feedbacks = append(s.feedbacks, &stored)
	return nil
}

func (s *memFeedbackStore) ListByCourse(_ context.Context, courseID uuid.UUID) ([]*models.Feedback, error) {
	var result []*models.Feedback
	for i := len(s.feedbacks) - 1; i >= 0; i-- {
		if s.feedbacks[i].CourseID == courseID {
			copied := *s.feedbacks[i]
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *memFeedbackStore) AverageRatingByCourse(_ context.Context) (map[uuid.UUID]float64, error) {
	sums := make(map[uuid.UUID]int)
	counts := make(map[uuid.UUID]int)
	for _, feedback := range s.feedbacks {
		sums[feedback.CourseID] += feedback.Rating
		counts[feedback.CourseID]++
	}
	averages := make(map[uuid.UUID]float64, len(sums))
	for id, sum := range sums {
		averages[id] = float64(sum) / float64(counts[id])
	}
	return averages, nil
}

func (s *memFeedbackStore) CountByRating(_ context.Context, courseID uuid.UUID) (map[int]int, error) {
	counts := make(map[int]int)
	for _, feedback := range s.feedbacks {
		if feedback.CourseID == courseID {
			counts[feedback.Rating]++
		}
	}
	return counts, nil
}

func (s *memFeedbackStore) RatingStats(_ context.Context, courseID uuid.UUID) (float64, int, error) {
	sum, total := 0, 0
	for _, feedback := range s.feedbacks {
		if feedback.CourseID == courseID {
			sum += feedback.Rating
			total++
		}
	}
	if total == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(total), total, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *memCourseStore, *memFeedbackStore) {
	t.Helper()

	courseStore := newMemCourseStore()
	feedbackStore := newMemFeedbackStore()

	courseService := services.NewCourseService(courseStore, feedbackStore)
	feedbackService := services.NewFeedbackService(feedbackStore, courseStore)
	analyticsService := services.NewAnalyticsService(courseStore, feedbackStore)

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewCourseController(courseService, analyticsService),
		controllers.NewFeedbackController(feedbackService, analyticsService),
	)

	return router, courseStore, feedbackStore
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func seedCourse(t *testing.T, store *memCourseStore, name, code string) *models.Course {
	t.Helper()
	course := &models.Course{Name: name, Code: code}
	if err := store.Create(context.Background(), course); err != nil {
		t.Fatalf("seeding course %s failed: %v", code, err)
	}
	return course
}

func seedFeedback(t *testing.T, store *memFeedbackStore, courseID uuid.UUID, fullName string, rating int) {
	t.Helper()
	feedback := &models.Feedback{CourseID: courseID, FullName: fullName, Rating: rating}
	if err := store.Create(context.Background(), feedback); err != nil {
		t.Fatalf("seeding feedback failed: %v", err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if recorder.Body.String() != "API is running..." {
		t.Fatalf("unexpected body %q", recorder.Body.String())
	}
}

func TestCreateCourse_Endpoint(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/courses",
		`{"name":"Databases","code":"CS338","description":"Relational theory"}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if !strings.Contains(recorder.Body.String(), `"code":"CS338"`) {
		t.Fatalf("created course missing from body: %s", recorder.Body.String())
	}
}

func TestCreateCourse_MissingFields(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/courses", `{"name":"Databases"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Course name and code are required") {
		t.Fatalf("unexpected body %q", recorder.Body.String())
	}
}

func TestCreateCourse_DuplicateCodeIsBadRequest(t *testing.T) {
	router, courseStore, _ := newTestRouter(t)
	seedCourse(t, courseStore, "Networks", "CS456")

	recorder := doRequest(t, router, http.MethodPost, "/api/courses",
		`{"name":"Computer Networks","code":"CS456"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Course code already exists") {
		t.Fatalf("unexpected body %q", recorder.Body.String())
	}
}

func TestCreateCourse_MalformedJSON(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/courses", `{"name":`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Invalid request body") {
		t.Fatalf("unexpected body %q", recorder.Body.String())
	}
}

func TestGetCourses_IncludesAverageRating(t *testing.T) {
	router, courseStore, feedbackStore := newTestRouter(t)
	course := seedCourse(t, courseStore, "Algorithms", "CS201")
	seedCourse(t, courseStore, "Ethics", "PHIL110")
	seedFeedback(t, feedbackStore, course.ID, "Ada Yilmaz", 4)
	seedFeedback(t, feedbackStore, course.ID, "Kerem Demir", 5)

	recorder := doRequest(t, router, http.MethodGet, "/api/courses", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, `"avgRating":4.5`) {
		t.Fatalf("rated course average missing: %s", body)
	}
	if !strings.Contains(body, `"avgRating":0`) {
		t.Fatalf("unrated course must carry zero average: %s", body)
	}
}

func TestGetCourseByID_MalformedIDIsBadRequest(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/courses/not-a-uuid", "")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Invalid course ID") {
		t.Fatalf("unexpected body %q", recorder.Body.String())
	}
}

func TestGetCourseByID_AbsentIsNotFound(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/courses/"+uuid.New().String(), "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Course not found") {
		t.Fatalf("unexpected body %q", recorder.Body.String())
	}
}

func TestGetCourseByID_DetailView(t *testing.T) {
	router, courseStore, feedbackStore := newTestRouter(t)
	course := seedCourse(t, courseStore, "Graphics", "CS488")
	seedFeedback(t, feedbackStore, course.ID, "Selin Arslan", 5)
	seedFeedback(t, feedbackStore, course.ID, "Mert Aksoy", 3)

	recorder := doRequest(t, router, http.MethodGet, "/api/courses/"+course.ID.String(), "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	body := recorder.Body.String()
	if !strings.Contains(body, `"totalFeedback":2`) {
		t.Fatalf("analytics total missing: %s", body)
	}
	if !strings.Contains(body, `"avgRating":4`) {
		t.Fatalf("analytics average missing: %s", body)
	}
	if !strings.Contains(body, `"fullName":"Selin Arslan"`) {
		t.Fatalf("feedback projection missing: %s", body)
	}
}

func TestUpdateCourse_Endpoint(t *testing.T) {
	router, courseStore, _ := newTestRouter(t)
	course := seedCourse(t, courseStore, "Calculus", "MATH101")

	recorder := doRequest(t, router, http.MethodPut, "/api/courses/"+course.ID.String(),
		`{"name":"Calculus I"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	body := recorder.Body.String()
	if !strings.Contains(body, `"name":"Calculus I"`) {
		t.Fatalf("updated name missing: %s", body)
	}
	if !strings.Contains(body, `"code":"MATH101"`) {
		t.Fatalf("untouched code missing: %s", body)
	}
}

func TestDeleteCourse_Endpoint(t *testing.T) {
	router, courseStore, _ := newTestRouter(t)
	course := seedCourse(t, courseStore, "Compilers", "CS444")

	recorder := doRequest(t, router, http.MethodDelete, "/api/courses/"+course.ID.String(), "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Course deleted successfully") {
		t.Fatalf("unexpected body %q", recorder.Body.String())
	}

	// A second delete reports not found
	recorder = doRequest(t, router, http.MethodDelete, "/api/courses/"+course.ID.String(), "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", recorder.Code)
	}
}

func TestAddFeedback_Endpoint(t *testing.T) {
	router, courseStore, _ := newTestRouter(t)
	course := seedCourse(t, courseStore, "Operating Systems", "CS350")

	recorder := doRequest(t, router, http.MethodPost, "/api/feedback",
		`{"courseId":"`+course.ID.String()+`","fullName":"Deniz Kaya","rating":5,"comment":"Great lectures"}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if !strings.Contains(recorder.Body.String(), `"comment":"Great lectures"`) {
		t.Fatalf("comment missing: %s", recorder.Body.String())
	}
}

func TestAddFeedback_RatingOutOfRange(t *testing.T) {
	router, courseStore, _ := newTestRouter(t)
	course := seedCourse(t, courseStore, "Linear Algebra", "MATH225")

	recorder := doRequest(t, router, http.MethodPost, "/api/feedback",
		`{"courseId":"`+course.ID.String()+`","fullName":"Deniz Kaya","rating":6}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Rating must be between 1 and 5") {
		t.Fatalf("unexpected body %q", recorder.Body.String())
	}
}

func TestAddFeedback_AbsentCourseIsNotFound(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/feedback",
		`{"courseId":"`+uuid.New().String()+`","fullName":"Deniz Kaya","rating":4}`)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Course not found") {
		t.Fatalf("unexpected body %q", recorder.Body.String())
	}
}

func TestGetFeedbackByCourse_Endpoint(t *testing.T) {
	router, courseStore, feedbackStore := newTestRouter(t)
	course := seedCourse(t, courseStore, "Physics", "PHYS101")
	seedFeedback(t, feedbackStore, course.ID, "Ilk Yorum", 3)
	seedFeedback(t, feedbackStore, course.ID, "Son Yorum", 4)

	recorder := doRequest(t, router, http.MethodGet, "/api/feedback/"+course.ID.String(), "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	body := recorder.Body.String()

	// Newest first
	last := strings.Index(body, "Son Yorum")
	first := strings.Index(body, "Ilk Yorum")
	if last == -1 || first == -1 || last > first {
		t.Fatalf("expected newest-first ordering: %s", body)
	}
}

func TestGetFeedbackByCourse_EmptyIsJSONArray(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/feedback/"+uuid.New().String(), "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if strings.TrimSpace(recorder.Body.String()) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", recorder.Body.String())
	}
}

func TestGetFeedbackAnalytics_Endpoint(t *testing.T) {
	router, courseStore, feedbackStore := newTestRouter(t)
	course := seedCourse(t, courseStore, "Ethics", "PHIL110")
	for _, rating := range []int{5, 5, 4, 3, 5} {
		seedFeedback(t, feedbackStore, course.ID, "Anon", rating)
	}

	recorder := doRequest(t, router, http.MethodGet, "/api/feedback/analytics/"+course.ID.String(), "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, `"avgRating":4.4`) {
		t.Fatalf("average missing: %s", body)
	}
	if !strings.Contains(body, `"totalFeedback":5`) {
		t.Fatalf("total missing: %s", body)
	}
	for _, fragment := range []string{`"1":0`, `"2":0`, `"3":1`, `"4":1`, `"5":3`} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("distribution bucket %s missing: %s", fragment, body)
		}
	}
}

func TestGetFeedbackAnalytics_EmptyCourse(t *testing.T) {
	router, courseStore, _ := newTestRouter(t)
	course := seedCourse(t, courseStore, "Seminar", "SEM100")

	recorder := doRequest(t, router, http.MethodGet, "/api/feedback/analytics/"+course.ID.String(), "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, `"avgRating":0`) {
		t.Fatalf("empty course must average 0: %s", body)
	}
	for _, fragment := range []string{`"1":0`, `"2":0`, `"3":0`, `"4":0`, `"5":0`} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("distribution bucket %s missing: %s", fragment, body)
		}
	}
}
