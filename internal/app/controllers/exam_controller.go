package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/services"
	"github.com/campuscore/campuscore/internal/middleware"
)

// ExamController handles exam period and scheduling endpoints
type ExamController struct {
	examService *services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService *services.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// CreatePeriod godoc
// @Summary Define an exam period
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param request body dto.CreateExamPeriodRequest true "New period"
// @Success 201 {object} dto.APIResponse{data=models.ExamPeriod}
// @Router /exam-periods [post]
func (ctrl *ExamController) CreatePeriod(c *gin.Context) {
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	var req dto.CreateExamPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	period, err := ctrl.examService.CreatePeriod(c.Request.Context(), middleware.GetIdentity(c), tenantID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(period))
}

// ListPeriods godoc
// @Summary List the tenant's exam periods
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.APIResponse{data=[]models.ExamPeriod}
// @Router /exam-periods [get]
func (ctrl *ExamController) ListPeriods(c *gin.Context) {
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	periods, err := ctrl.examService.ListPeriods(c.Request.Context(), middleware.GetIdentity(c), tenantID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(periods))
}

// DeletePeriod godoc
// @Summary Delete an exam period and its scheduled exams
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Period ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exam-periods/{id} [delete]
func (ctrl *ExamController) DeletePeriod(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	if err := ctrl.examService.DeletePeriod(c.Request.Context(), middleware.GetIdentity(c), tenantID, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "exam period deleted"})
}

// ScheduleExam godoc
// @Summary Schedule an exam inside a period
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Period ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param request body dto.CreateExamTermRequest true "Exam"
// @Success 201 {object} dto.APIResponse{data=models.ExamTerm}
// @Failure 404 {object} dto.ErrorResponse
// @Router /exam-periods/{id}/exams [post]
func (ctrl *ExamController) ScheduleExam(c *gin.Context) {
	periodID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	var req dto.CreateExamTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	term, err := ctrl.examService.ScheduleExam(c.Request.Context(), middleware.GetIdentity(c), tenantID, periodID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(term))
}

// ListExams godoc
// @Summary List the exams of a period
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Period ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.APIResponse{data=[]models.ExamTerm}
// @Failure 404 {object} dto.ErrorResponse
// @Router /exam-periods/{id}/exams [get]
func (ctrl *ExamController) ListExams(c *gin.Context) {
	periodID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	terms, err := ctrl.examService.ListExams(c.Request.Context(), middleware.GetIdentity(c), tenantID, periodID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(terms))
}

// RescheduleExam godoc
// @Summary Move a scheduled exam to a new date
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param request body dto.UpdateExamTermRequest true "New date"
// @Success 200 {object} dto.APIResponse{data=models.ExamTerm}
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id} [patch]
func (ctrl *ExamController) RescheduleExam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	var req dto.UpdateExamTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	term, err := ctrl.examService.RescheduleExam(c.Request.Context(), middleware.GetIdentity(c), tenantID, id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(term))
}

// CancelExam godoc
// @Summary Cancel a scheduled exam
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id} [delete]
func (ctrl *ExamController) CancelExam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	if err := ctrl.examService.CancelExam(c.Request.Context(), middleware.GetIdentity(c), tenantID, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "exam cancelled"})
}
