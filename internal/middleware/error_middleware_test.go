package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"

	"github.com/campuscore/campuscore/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	c := qt.New(t)
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"suspended account", apperrors.ErrAccountSuspended, http.StatusForbidden, "FORBIDDEN"},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, "FORBIDDEN"},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrapped not found", apperrors.NewNotFoundError("exam term not found"), http.StatusNotFound, "NOT_FOUND"},
		{"duplicate index", apperrors.ErrIndexNumberExists, http.StatusConflict, "CONFLICT"},
		{"wrapped conflict", apperrors.NewConflictError("already offered"), http.StatusConflict, "CONFLICT"},
		{"ticket cooldown", apperrors.ErrCooldownActive, http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"self delete", apperrors.ErrSelfDelete, http.StatusBadRequest, "BAD_REQUEST"},
		{"missing tenant scope", apperrors.ErrTenantQueryRequired, http.StatusBadRequest, "BAD_REQUEST"},
		{"wrapped bad request", apperrors.NewBadRequestError("unknown term"), http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown error is a 500", http.ErrServerClosed, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(ctx, tt.err)

			c.Assert(w.Code, qt.Equals, tt.wantStatus)
			c.Assert(w.Body.String(), qt.Contains, tt.wantCode)
		})
	}
}

func TestInternalErrorHidesDetails(t *testing.T) {
	c := qt.New(t)
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(ctx, http.ErrBodyNotAllowed)

	c.Assert(w.Code, qt.Equals, http.StatusInternalServerError)
	c.Assert(w.Body.String(), qt.Not(qt.Contains), http.ErrBodyNotAllowed.Error())
}
