package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/services"
	"github.com/campuscore/campuscore/internal/middleware"
)

// TenantController handles institution management endpoints
type TenantController struct {
	tenantService *services.TenantService
}

// NewTenantController creates a new TenantController
func NewTenantController(tenantService *services.TenantService) *TenantController {
	return &TenantController{tenantService: tenantService}
}

// CreateTenant godoc
// @Summary Register a new institution
// @Tags tenants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTenantRequest true "New tenant"
// @Success 201 {object} dto.APIResponse{data=dto.TenantResponse}
// @Failure 409 {object} dto.ErrorResponse "Code already exists"
// @Router /tenants [post]
func (ctrl *TenantController) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := ctrl.tenantService.CreateTenant(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// ListTenants godoc
// @Summary List all institutions
// @Tags tenants
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.TenantResponse}
// @Router /tenants [get]
func (ctrl *TenantController) ListTenants(c *gin.Context) {
	resp, err := ctrl.tenantService.ListTenants(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// GetTenant godoc
// @Summary Retrieve one institution
// @Tags tenants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tenant ID"
// @Success 200 {object} dto.APIResponse{data=dto.TenantResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /tenants/{id} [get]
func (ctrl *TenantController) GetTenant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := ctrl.tenantService.GetTenant(c.Request.Context(), middleware.GetIdentity(c), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// UpdateTenant godoc
// @Summary Update an institution
// @Tags tenants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tenant ID"
// @Param request body dto.UpdateTenantRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.TenantResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /tenants/{id} [patch]
func (ctrl *TenantController) UpdateTenant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := ctrl.tenantService.UpdateTenant(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// DeactivateTenant godoc
// @Summary Deactivate an institution
// @Description Soft-disables the tenant; its data and code are retained
// @Tags tenants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tenant ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tenants/{id} [delete]
func (ctrl *TenantController) DeactivateTenant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.tenantService.DeactivateTenant(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "tenant deactivated"})
}
