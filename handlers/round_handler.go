package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sigmaquiz/serializers"
	"sigmaquiz/services"
)

type RoundHandler struct {
	roundService *services.RoundService
}

func NewRoundHandler(roundService *services.RoundService) *RoundHandler {
	return &RoundHandler{roundService: roundService}
}

func (h *RoundHandler) ctx(c *gin.Context) serializers.Context {
	return serializers.Context{Method: c.Request.Method}
}

func (h *RoundHandler) CreateRound(c *gin.Context) {
	var req services.CreateRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	round, err := h.roundService.CreateRound(&req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, serializers.QuizRound(round, h.ctx(c)))
}

func (h *RoundHandler) GetRound(c *gin.Context) {
	round, err := h.roundService.GetRound(c.Param("roundId"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serializers.QuizRound(round, h.ctx(c)))
}

func (h *RoundHandler) UpdateRound(c *gin.Context) {
	var req services.UpdateRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	round, err := h.roundService.UpdateRound(c.Param("roundId"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serializers.QuizRound(round, h.ctx(c)))
}

func (h *RoundHandler) DeleteRound(c *gin.Context) {
	if err := h.roundService.DeleteRound(c.Param("roundId")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RoundHandler) ListRoundsForQuiz(c *gin.Context) {
	rounds, err := h.roundService.ListRoundsForQuiz(c.Param("quizId"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serializers.Rounds(rounds, h.ctx(c)))
}

func (h *RoundHandler) ListParticipations(c *gin.Context) {
	parts, err := h.roundService.ListParticipations(c.Param("roundId"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serializers.Participations(parts, h.ctx(c)))
}

func (h *RoundHandler) AddSchoolToRound(c *gin.Context) {
	var req services.AddSchoolToRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	part, err := h.roundService.AddSchoolToRound(c.Param("roundId"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, serializers.Participation(part, h.ctx(c)))
}

func (h *RoundHandler) RemoveSchoolFromRound(c *gin.Context) {
	remaining, err := h.roundService.RemoveSchoolFromRound(c.Param("roundId"), c.Param("schoolId"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":               "Successful",
		"participating_schools": serializers.Participations(remaining, serializers.Context{Method: http.MethodGet}),
	})
}
