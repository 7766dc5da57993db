package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/services"
	"github.com/campuscore/campuscore/internal/middleware"
)

// FinanceController handles tuition, payment and balance endpoints
type FinanceController struct {
	financeService *services.FinanceService
}

// NewFinanceController creates a new FinanceController
func NewFinanceController(financeService *services.FinanceService) *FinanceController {
	return &FinanceController{financeService: financeService}
}

// CreateTuition godoc
// @Summary Define a tuition fee
// @Tags finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param request body dto.CreateTuitionRequest true "New tuition"
// @Success 201 {object} dto.APIResponse{data=models.Tuition}
// @Router /tuitions [post]
func (ctrl *FinanceController) CreateTuition(c *gin.Context) {
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	var req dto.CreateTuitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	tuition, err := ctrl.financeService.CreateTuition(c.Request.Context(), middleware.GetIdentity(c), tenantID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(tuition))
}

// ListTuitions godoc
// @Summary List the tenant's tuitions
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.APIResponse{data=[]models.Tuition}
// @Router /tuitions [get]
func (ctrl *FinanceController) ListTuitions(c *gin.Context) {
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	tuitions, err := ctrl.financeService.ListTuitions(c.Request.Context(), middleware.GetIdentity(c), tenantID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(tuitions))
}

// UpdateTuition godoc
// @Summary Update a tuition fee
// @Tags finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tuition ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param request body dto.UpdateTuitionRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Tuition}
// @Failure 404 {object} dto.ErrorResponse
// @Router /tuitions/{id} [patch]
func (ctrl *FinanceController) UpdateTuition(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	var req dto.UpdateTuitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	tuition, err := ctrl.financeService.UpdateTuition(c.Request.Context(), middleware.GetIdentity(c), tenantID, id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(tuition))
}

// DeleteTuition godoc
// @Summary Delete a tuition fee
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tuition ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tuitions/{id} [delete]
func (ctrl *FinanceController) DeleteTuition(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	if err := ctrl.financeService.DeleteTuition(c.Request.Context(), middleware.GetIdentity(c), tenantID, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "tuition deleted"})
}

// RecordPayment godoc
// @Summary Record a student payment
// @Tags finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param request body dto.RecordPaymentRequest true "Payment"
// @Success 201 {object} dto.APIResponse{data=models.Payment}
// @Failure 404 {object} dto.ErrorResponse "Student not enrolled or tuition unknown"
// @Router /payments [post]
func (ctrl *FinanceController) RecordPayment(c *gin.Context) {
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	payment, err := ctrl.financeService.RecordPayment(c.Request.Context(), middleware.GetIdentity(c), tenantID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(payment))
}

// ListPayments godoc
// @Summary List a student's payments
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.APIResponse{data=[]models.Payment}
// @Router /students/{id}/payments [get]
func (ctrl *FinanceController) ListPayments(c *gin.Context) {
	studentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	payments, err := ctrl.financeService.ListPayments(c.Request.Context(), middleware.GetIdentity(c), tenantID, studentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(payments))
}

// GetBalance godoc
// @Summary Get a student's balance against a tuition
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param tuitionId path int true "Tuition ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.APIResponse{data=dto.StudentBalanceResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/balance/{tuitionId} [get]
func (ctrl *FinanceController) GetBalance(c *gin.Context) {
	studentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tuitionID, ok := parseIDParam(c, "tuitionId")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	balance, err := ctrl.financeService.GetBalance(c.Request.Context(), middleware.GetIdentity(c), tenantID, studentID, tuitionID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(balance))
}
