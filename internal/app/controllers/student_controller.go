package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/services"
	"github.com/campuscore/campuscore/internal/middleware"
)

// StudentController handles student and enrollment endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// CreateStudent godoc
// @Summary Create a student with their first enrollment
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param request body dto.CreateStudentRequest true "New student"
// @Success 201 {object} dto.APIResponse{data=dto.StudentDetailResponse}
// @Failure 409 {object} dto.ErrorResponse "Index number taken in this tenant"
// @Router /students [post]
func (ctrl *StudentController) CreateStudent(c *gin.Context) {
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := ctrl.studentService.CreateStudent(c.Request.Context(), middleware.GetIdentity(c), tenantID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// ListStudents godoc
// @Summary List the tenant's students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param status query string false "Status filter"
// @Param search query string false "Search in name and index number"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.PagedResponse
// @Router /students [get]
func (ctrl *StudentController) ListStudents(c *gin.Context) {
	var query dto.ListStudentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	items, pageInfo, err := ctrl.studentService.ListStudents(c.Request.Context(), middleware.GetIdentity(c), query)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PagedResponse{Data: items, PageInfo: *pageInfo})
}

// GetStudent godoc
// @Summary Retrieve a student with all enrollments
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentDetailResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [get]
func (ctrl *StudentController) GetStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := ctrl.studentService.GetStudent(c.Request.Context(), middleware.GetIdentity(c), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// UpdateStudent godoc
// @Summary Update a student's person record
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [patch]
func (ctrl *StudentController) UpdateStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := ctrl.studentService.UpdateStudent(c.Request.Context(), middleware.GetIdentity(c), tenantID, id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// EnrollStudent godoc
// @Summary Enroll an existing student into the tenant
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param request body dto.EnrollStudentRequest true "Enrollment"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollmentResponse}
// @Failure 409 {object} dto.ErrorResponse "Already enrolled or index taken"
// @Router /students/enroll [post]
func (ctrl *StudentController) EnrollStudent(c *gin.Context) {
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	var req dto.EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := ctrl.studentService.EnrollStudent(c.Request.Context(), middleware.GetIdentity(c), tenantID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// UpdateEnrollment godoc
// @Summary Update the student's enrollment in the tenant
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param request body dto.UpdateEnrollmentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/enrollment [patch]
func (ctrl *StudentController) UpdateEnrollment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	var req dto.UpdateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := ctrl.studentService.UpdateEnrollment(c.Request.Context(), middleware.GetIdentity(c), tenantID, id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// RemoveStudent godoc
// @Summary Withdraw a student from the tenant
// @Description Removes only this tenant's enrollment; the person and other enrollments stay
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [delete]
func (ctrl *StudentController) RemoveStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	if err := ctrl.studentService.RemoveStudent(c.Request.Context(), middleware.GetIdentity(c), tenantID, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "student withdrawn"})
}
