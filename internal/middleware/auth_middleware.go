package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appauth "github.com/campuscore/campuscore/internal/app/auth"
	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/services"
	"github.com/campuscore/campuscore/internal/pkg/auth"
	"github.com/campuscore/campuscore/internal/pkg/logger"
)

// Context keys set by RequireAuth.
const (
	ContextUserID   = "userID"
	ContextTenantID = "tenantID"
	ContextRole     = "role"
)

// Test identity headers, honored only when the bypass is enabled.
const (
	testUserIDHeader   = "x-test-user-id"
	testTenantIDHeader = "x-tenant-id"
	testRoleHeader     = "x-test-role"
)

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrorCodeUnauthorized, message))
}

// RequireAuth validates the bearer token and stores the caller's identity in
// the request context. When testBypass is true, x-test-* headers may supply
// the identity instead; the flag is never set in production mode.
func RequireAuth(jwtService *auth.JWTService, testBypass bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if testBypass {
			if idHeader := c.GetHeader(testUserIDHeader); idHeader != "" {
				userID, err := strconv.ParseInt(idHeader, 10, 64)
				if err != nil {
					abortUnauthorized(c, "invalid test identity")
					return
				}
				tenantID, err := strconv.ParseInt(c.GetHeader(testTenantIDHeader), 10, 64)
				if err != nil {
					abortUnauthorized(c, "invalid test identity")
					return
				}
				role := c.GetHeader(testRoleHeader)
				if !models.ValidRole(role) {
					abortUnauthorized(c, "invalid test identity")
					return
				}

				c.Set(ContextUserID, userID)
				c.Set(ContextTenantID, tenantID)
				c.Set(ContextRole, role)
				c.Next()
				return
			}
		}

		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, "missing or malformed authorization header")
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			if err == auth.ErrExpiredToken {
				abortUnauthorized(c, "token expired")
				return
			}
			logger.Debug().Err(err).Msg("Token validation failed")
			abortUnauthorized(c, "invalid token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextTenantID, claims.TenantID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequirePermission denies the request unless the caller's role is granted the
// action in the permission matrix.
func RequirePermission(action appauth.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.RoleType(c.GetString(ContextRole))
		if !appauth.Allowed(role, action) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrorCodeForbidden, "you don't have permission for this action"))
			return
		}
		c.Next()
	}
}

// RequireRoles denies the request unless the caller holds one of the roles.
func RequireRoles(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.RoleType(c.GetString(ContextRole))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden,
			dto.NewErrorResponse(dto.ErrorCodeForbidden, "you don't have permission for this action"))
	}
}

// GetIdentity reads the caller's identity stored by RequireAuth.
func GetIdentity(c *gin.Context) services.Identity {
	return services.Identity{
		UserID:   c.GetInt64(ContextUserID),
		TenantID: c.GetInt64(ContextTenantID),
		Role:     models.RoleType(c.GetString(ContextRole)),
	}
}
