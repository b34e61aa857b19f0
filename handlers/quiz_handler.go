package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sigmaquiz/serializers"
	"sigmaquiz/services"
)

type QuizHandler struct {
	quizService         *services.QuizService
	registrationService *services.RegistrationService
}

func NewQuizHandler(quizService *services.QuizService, registrationService *services.RegistrationService) *QuizHandler {
	return &QuizHandler{
		quizService:         quizService,
		registrationService: registrationService,
	}
}

func (h *QuizHandler) ctx(c *gin.Context) serializers.Context {
	return serializers.Context{Method: c.Request.Method}
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes()
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serializers.Quizzes(quizzes, h.ctx(c)))
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req services.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	quiz, err := h.quizService.CreateQuiz(&req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, serializers.Quiz(quiz, h.ctx(c)))
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.quizService.GetQuiz(c.Param("quizId"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serializers.Quiz(quiz, h.ctx(c)))
}

func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	var req services.UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	quiz, err := h.quizService.UpdateQuiz(c.Param("quizId"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serializers.Quiz(quiz, h.ctx(c)))
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	if err := h.quizService.DeleteQuiz(c.Param("quizId")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuizHandler) ListRegistrations(c *gin.Context) {
	regs, err := h.registrationService.ListRegistrations(c.Param("quizId"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serializers.Registrations(regs, h.ctx(c)))
}

func (h *QuizHandler) RegisterSchool(c *gin.Context) {
	var req services.RegisterSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	reg, err := h.registrationService.RegisterSchool(c.Param("quizId"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, serializers.Registration(reg, h.ctx(c)))
}

func (h *QuizHandler) UnregisterSchool(c *gin.Context) {
	remaining, err := h.registrationService.UnregisterSchool(c.Param("quizId"), c.Param("schoolId"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Successful",
		"registered_school": serializers.Registrations(remaining, serializers.Context{Method: http.MethodGet}),
	})
}
