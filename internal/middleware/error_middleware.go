package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okandemir/coursefeedback/internal/app/models/dto"
	"github.com/okandemir/coursefeedback/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the HTTP contract. Every error
// body is a plain {message} object.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrRatingOutOfRange),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})

	// Duplicate course codes answer 400 rather than 409; the admin frontend
	// matches on that status.
	case errors.Is(err, apperrors.ErrCourseCodeExists),
		errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})

	case errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
	}
}
