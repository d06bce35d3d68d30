package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okandemir/coursefeedback/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	feedbackController *controllers.FeedbackController,
) {
	// Plain-text health probe
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	api := router.Group("/api")

	courses := api.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.GetCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	feedback := api.Group("/feedback")
	{
		feedback.POST("", feedbackController.AddFeedback)
		feedback.GET("/analytics/:courseId", feedbackController.GetFeedbackAnalytics)
		feedback.GET("/:courseId", feedbackController.GetFeedbackByCourse)
	}
}
