package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okandemir/coursefeedback/internal/app/models/dto"
	"github.com/okandemir/coursefeedback/internal/app/services"
	"github.com/okandemir/coursefeedback/internal/middleware"
)

// FeedbackController handles feedback-related endpoints
type FeedbackController struct {
	feedbackService  *services.FeedbackService
	analyticsService *services.AnalyticsService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService *services.FeedbackService, analyticsService *services.AnalyticsService) *FeedbackController {
	return &FeedbackController{
		feedbackService:  feedbackService,
		analyticsService: analyticsService,
	}
}

// AddFeedback handles feedback submission
// @Summary Submit feedback
// @Description Creates a feedback entry for an existing course
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.CreateFeedbackRequest true "Feedback"
// @Success 201 {object} models.Feedback "Feedback created"
// @Failure 400 {object} dto.MessageResponse "Missing fields or rating out of range"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /feedback [post]
func (c *FeedbackController) AddFeedback(ctx *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body"})
		return
	}

	feedback, err := c.feedbackService.AddFeedback(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, feedback)
}

// GetFeedbackByCourse lists all feedback for a course, newest first
// @Summary List course feedback
// @Description Retrieves all feedback entries for a course ordered by creation time descending
// @Tags feedback
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {array} models.Feedback "Feedback retrieved"
// @Failure 400 {object} dto.MessageResponse "Invalid course ID"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /feedback/{courseId} [get]
func (c *FeedbackController) GetFeedbackByCourse(ctx *gin.Context) {
	courseID, err := uuid.Parse(ctx.Param("courseId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid course ID"})
		return
	}

	feedbacks, err := c.feedbackService.ListByCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, feedbacks)
}

// GetFeedbackAnalytics returns aggregate rating statistics for a course
// @Summary Course rating analytics
// @Description Retrieves the mean rating, total feedback count and per-rating distribution for a course
// @Tags feedback
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.AnalyticsResponse "Analytics retrieved"
// @Failure 400 {object} dto.MessageResponse "Invalid course ID"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /feedback/analytics/{courseId} [get]
func (c *FeedbackController) GetFeedbackAnalytics(ctx *gin.Context) {
	courseID, err := uuid.Parse(ctx.Param("courseId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid course ID"})
		return
	}

	analytics, err := c.analyticsService.Analytics(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, analytics)
}
