package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/services"
	"github.com/campuscore/campuscore/internal/middleware"
)

// RecordsController handles transcript endpoints
type RecordsController struct {
	recordsService *services.RecordsService
}

// NewRecordsController creates a new RecordsController
func NewRecordsController(recordsService *services.RecordsService) *RecordsController {
	return &RecordsController{recordsService: recordsService}
}

// GenerateTranscript godoc
// @Summary Generate a transcript snapshot for a student
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param request body dto.GenerateTranscriptRequest true "Transcript request"
// @Success 201 {object} dto.APIResponse{data=models.Transcript}
// @Failure 404 {object} dto.ErrorResponse "Student not enrolled here"
// @Router /transcripts [post]
func (ctrl *RecordsController) GenerateTranscript(c *gin.Context) {
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	var req dto.GenerateTranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	transcript, err := ctrl.recordsService.GenerateTranscript(c.Request.Context(), middleware.GetIdentity(c), tenantID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(transcript))
}

// GetTranscript godoc
// @Summary Retrieve one transcript
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transcript ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.APIResponse{data=models.Transcript}
// @Failure 404 {object} dto.ErrorResponse
// @Router /transcripts/{id} [get]
func (ctrl *RecordsController) GetTranscript(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	transcript, err := ctrl.recordsService.GetTranscript(c.Request.Context(), middleware.GetIdentity(c), tenantID, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(transcript))
}

// ListTranscripts godoc
// @Summary List a student's transcripts
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.APIResponse{data=[]models.Transcript}
// @Router /students/{id}/transcripts [get]
func (ctrl *RecordsController) ListTranscripts(c *gin.Context) {
	studentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	transcripts, err := ctrl.recordsService.ListTranscripts(c.Request.Context(), middleware.GetIdentity(c), tenantID, studentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(transcripts))
}
