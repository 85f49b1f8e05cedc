package handlers

import (
	"errors"
	"net/http"

	"quiz-enroll-backend/internal/models"
	"quiz-enroll-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type CreateQuizRequest struct {
	Name        string `json:"name" binding:"required,min=1" example:"Quiz 1"`
	Description string `json:"description" binding:"omitempty,min=1" example:"A quiz about things"`
	Active      *bool  `json:"active"`
}

// UpdateQuizRequest only knows the client-settable fields; userCount and
// createdOn in a payload are dropped during binding and never reach the store.
type UpdateQuizRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description" binding:"omitempty,min=1"`
	Active      *bool   `json:"active"`
}

// ListQuizzes godoc
// @Summary      List recent quizzes
// @Description  Get up to 10 quizzes, newest first
// @Tags         quizzes
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/v1/quizzes [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListRecent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if quizzes == nil {
		quizzes = []*models.Quiz{}
	}

	c.JSON(http.StatusOK, gin.H{"quizzes": quizzes})
}

// CreateQuiz godoc
// @Summary      Create a quiz
// @Description  Create a quiz; userCount starts at 0 and createdOn is assigned by the store
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body CreateQuizRequest true "Quiz data"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/quizzes [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	active := false
	if req.Active != nil {
		active = *req.Active
	}

	quiz, err := h.quizService.Create(c.Request.Context(), req.Name, req.Description, active)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"quiz": quiz})
}

// GetQuiz godoc
// @Summary      Get a quiz
// @Tags         quizzes
// @Produce      json
// @Param        id path string true "Quiz ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.quizService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quiz": quiz})
}

// UpdateQuiz godoc
// @Summary      Update a quiz
// @Description  Change any of name, description, active; other fields are ignored
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        id path string true "Quiz ID"
// @Param        request body UpdateQuizRequest true "Fields to change"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [patch]
func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	var req UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := h.quizService.PartialUpdate(c.Request.Context(), c.Param("id"), services.QuizUpdate{
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quiz": quiz})
}

// DeleteQuiz godoc
// @Summary      Delete a quiz
// @Description  Delete a quiz and return its last stored state
// @Tags         quizzes
// @Produce      json
// @Param        id path string true "Quiz ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	quiz, err := h.quizService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quiz": quiz})
}
