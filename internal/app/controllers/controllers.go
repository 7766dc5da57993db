package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/campuscore/internal/app/models/dto"
)

// parseIDParam reads a positive integer path parameter, writing a 400 and
// returning false on failure.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeBadRequest, "invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}

// parseTenantQuery reads the optional tenantId query parameter. A malformed
// value is reported as a 400.
func parseTenantQuery(c *gin.Context) (*int64, bool) {
	raw := c.Query("tenantId")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeBadRequest, "invalid tenantId parameter"))
		return nil, false
	}
	return &id, true
}
