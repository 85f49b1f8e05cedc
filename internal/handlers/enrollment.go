package handlers

import (
	"errors"
	"net/http"

	"quiz-enroll-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	enrollmentService *services.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService *services.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

type EnrollRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// Enroll godoc
// @Summary      Enroll a user in a quiz
// @Description  Add the quiz to the user's quiz list and bump the quiz's user count, atomically. Enrolling twice is a no-op.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        id path string true "Quiz ID"
// @Param        request body EnrollRequest true "User to enroll"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id}/enrollments [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, quiz, err := h.enrollmentService.Enroll(c.Request.Context(), req.UserID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyEnrolled):
			c.JSON(http.StatusOK, MessageResponse{Message: "Quiz already added"})
		case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrQuizNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"quiz": quiz, "user": user})
}
