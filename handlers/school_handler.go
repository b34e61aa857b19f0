package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sigmaquiz/serializers"
	"sigmaquiz/services"
)

type SchoolHandler struct {
	schoolService *services.SchoolService
}

func NewSchoolHandler(schoolService *services.SchoolService) *SchoolHandler {
	return &SchoolHandler{schoolService: schoolService}
}

func (h *SchoolHandler) ctx(c *gin.Context) serializers.Context {
	return serializers.Context{Method: c.Request.Method}
}

func (h *SchoolHandler) ListSchools(c *gin.Context) {
	filter := services.SchoolFilter{
		Name:    c.Query("name"),
		State:   c.Query("state"),
		Address: c.Query("address"),
	}

	schools, err := h.schoolService.ListSchools(filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serializers.Schools(schools, h.ctx(c)))
}

func (h *SchoolHandler) CreateSchool(c *gin.Context) {
	var req services.CreateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	school, err := h.schoolService.CreateSchool(&req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, serializers.School(school, h.ctx(c)))
}

func (h *SchoolHandler) GetSchool(c *gin.Context) {
	school, err := h.schoolService.GetSchool(c.Param("schoolId"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serializers.School(school, h.ctx(c)))
}

func (h *SchoolHandler) UpdateSchool(c *gin.Context) {
	var req services.CreateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	school, err := h.schoolService.UpdateSchool(c.Param("schoolId"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serializers.School(school, h.ctx(c)))
}

func (h *SchoolHandler) DeleteSchool(c *gin.Context) {
	if err := h.schoolService.DeleteSchool(c.Param("schoolId")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
