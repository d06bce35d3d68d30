package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okandemir/coursefeedback/internal/app/models/dto"
	"github.com/okandemir/coursefeedback/internal/app/services"
	"github.com/okandemir/coursefeedback/internal/middleware"
)

// CourseController handles course-related endpoints
type CourseController struct {
	courseService    *services.CourseService
	analyticsService *services.AnalyticsService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, analyticsService *services.AnalyticsService) *CourseController {
	return &CourseController{
		courseService:    courseService,
		analyticsService: analyticsService,
	}
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a course with a unique code
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} models.Course "Course created"
// @Failure 400 {object} dto.MessageResponse "Missing fields or duplicate code"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body"})
		return
	}

	course, err := c.courseService.CreateCourse(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, course)
}

// GetCourses lists all courses with their average rating
// @Summary List courses
// @Description Retrieves all courses, each joined with the mean of its feedback ratings
// @Tags courses
// @Produce json
// @Success 200 {array} models.CourseWithRating "Courses retrieved"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListWithRatings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// GetCourseByID returns the full detail view for one course
// @Summary Get course detail
// @Description Retrieves a course with its rating analytics and feedback entries
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.CourseDetailResponse "Course detail retrieved"
// @Failure 400 {object} dto.MessageResponse "Invalid course ID"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid course ID"})
		return
	}

	detail, err := c.analyticsService.CourseDetail(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// UpdateCourse partially updates a course
// @Summary Update a course
// @Description Updates the provided fields of an existing course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} models.Course "Updated course"
// @Failure 400 {object} dto.MessageResponse "Invalid course ID or fields"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid course ID"})
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body"})
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Description Deletes a course; its feedback entries are kept as orphans
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.MessageResponse "Course deleted"
// @Failure 400 {object} dto.MessageResponse "Invalid course ID"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid course ID"})
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Course deleted successfully"})
}
