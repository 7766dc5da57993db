package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/services"
	"github.com/campuscore/campuscore/internal/middleware"
)

// CourseController handles course and offering endpoints
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// CreateCourse godoc
// @Summary Define a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param request body dto.CreateCourseRequest true "New course"
// @Success 201 {object} dto.APIResponse{data=models.Course}
// @Router /courses [post]
func (ctrl *CourseController) CreateCourse(c *gin.Context) {
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	course, err := ctrl.courseService.CreateCourse(c.Request.Context(), middleware.GetIdentity(c), tenantID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(course))
}

// ListCourses godoc
// @Summary List the tenant's courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /courses [get]
func (ctrl *CourseController) ListCourses(c *gin.Context) {
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	courses, err := ctrl.courseService.ListCourses(c.Request.Context(), middleware.GetIdentity(c), tenantID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetCourse godoc
// @Summary Retrieve one course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [get]
func (ctrl *CourseController) GetCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	course, err := ctrl.courseService.GetCourse(c.Request.Context(), middleware.GetIdentity(c), tenantID, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// UpdateCourse godoc
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param request body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [patch]
func (ctrl *CourseController) UpdateCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	course, err := ctrl.courseService.UpdateCourse(c.Request.Context(), middleware.GetIdentity(c), tenantID, id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// DeleteCourse godoc
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [delete]
func (ctrl *CourseController) DeleteCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	if err := ctrl.courseService.DeleteCourse(c.Request.Context(), middleware.GetIdentity(c), tenantID, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "course deleted"})
}

// CreateOffering godoc
// @Summary Schedule a course offering
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param request body dto.CreateOfferingRequest true "New offering"
// @Success 201 {object} dto.APIResponse{data=models.CourseOffering}
// @Failure 409 {object} dto.ErrorResponse "Already offered this year and term"
// @Router /offerings [post]
func (ctrl *CourseController) CreateOffering(c *gin.Context) {
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	var req dto.CreateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	offering, err := ctrl.courseService.CreateOffering(c.Request.Context(), middleware.GetIdentity(c), tenantID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(offering))
}

// ListOfferings godoc
// @Summary List course offerings
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param tenantId query int false "Tenant (platform admin only)"
// @Param year query int false "Year filter"
// @Param term query string false "Term filter (FALL or SPRING)"
// @Success 200 {object} dto.APIResponse{data=[]models.CourseOffering}
// @Router /offerings [get]
func (ctrl *CourseController) ListOfferings(c *gin.Context) {
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(dto.ErrorCodeBadRequest, "invalid year parameter"))
			return
		}
		year = parsed
	}

	offerings, err := ctrl.courseService.ListOfferings(c.Request.Context(), middleware.GetIdentity(c), tenantID, year, c.Query("term"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(offerings))
}

// DeleteOffering godoc
// @Summary Remove a course offering
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offering ID"
// @Param tenantId query int false "Tenant (platform admin only)"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /offerings/{id} [delete]
func (ctrl *CourseController) DeleteOffering(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tenantID, ok := parseTenantQuery(c)
	if !ok {
		return
	}

	if err := ctrl.courseService.DeleteOffering(c.Request.Context(), middleware.GetIdentity(c), tenantID, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "offering removed"})
}
