package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/services"
	"github.com/campuscore/campuscore/internal/middleware"
)

// ProgramController handles study program endpoints
type ProgramController struct {
	programService *services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService *services.ProgramService) *ProgramController {
	return &ProgramController{programService: programService}
}

// CreateProgram godoc
// @Summary Define a study program
// @Tags programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param request body dto.CreateProgramRequest true "New program"
// @Success 201 {object} dto.APIResponse{data=models.Program}
// @Router /programs [post]
func (ctrl *ProgramController) CreateProgram(c *gin.Context) {
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	var req dto.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	program, err := ctrl.programService.CreateProgram(c.Request.Context(), middleware.GetIdentity(c), tenantID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(program))
}

// ListPrograms godoc
// @Summary List the tenant's programs
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.APIResponse{data=[]models.Program}
// @Router /programs [get]
func (ctrl *ProgramController) ListPrograms(c *gin.Context) {
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	programs, err := ctrl.programService.ListPrograms(c.Request.Context(), middleware.GetIdentity(c), tenantID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(programs))
}

// GetProgram godoc
// @Summary Retrieve one program
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.APIResponse{data=models.Program}
// @Failure 404 {object} dto.ErrorResponse
// @Router /programs/{id} [get]
func (ctrl *ProgramController) GetProgram(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	program, err := ctrl.programService.GetProgram(c.Request.Context(), middleware.GetIdentity(c), tenantID, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(program))
}

// UpdateProgram godoc
// @Summary Update a program
// @Description Curriculum changes bump the program version
// @Tags programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param request body dto.UpdateProgramRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Program}
// @Failure 404 {object} dto.ErrorResponse
// @Router /programs/{id} [patch]
func (ctrl *ProgramController) UpdateProgram(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	var req dto.UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	program, err := ctrl.programService.UpdateProgram(c.Request.Context(), middleware.GetIdentity(c), tenantID, id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(program))
}

// DeleteProgram godoc
// @Summary Delete a program
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /programs/{id} [delete]
func (ctrl *ProgramController) DeleteProgram(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	if err := ctrl.programService.DeleteProgram(c.Request.Context(), middleware.GetIdentity(c), tenantID, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "program deleted"})
}
