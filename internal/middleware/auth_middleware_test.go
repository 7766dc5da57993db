package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"

	appauth "github.com/campuscore/campuscore/internal/app/auth"
	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/pkg/auth"
)

func newJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
}

func identityEchoRouter(jwtService *auth.JWTService, bypass bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", RequireAuth(jwtService, bypass), func(c *gin.Context) {
		identity := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{
			"userId":   identity.UserID,
			"tenantId": identity.TenantID,
			"role":     string(identity.Role),
		})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	c := qt.New(t)
	jwtService := newJWTService()

	c.Run("valid token passes", func(c *qt.C) {
		token, err := jwtService.GenerateToken(&models.User{ID: 7, TenantID: 3, Role: models.RoleProfessor})
		c.Assert(err, qt.IsNil)

		r := identityEchoRouter(jwtService, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		c.Assert(w.Code, qt.Equals, http.StatusOK)
		c.Assert(w.Body.String(), qt.Contains, `"userId":7`)
		c.Assert(w.Body.String(), qt.Contains, `"tenantId":3`)
	})

	c.Run("missing header is unauthorized", func(c *qt.C) {
		r := identityEchoRouter(jwtService, false)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)
	})

	c.Run("garbage token is unauthorized", func(c *qt.C) {
		r := identityEchoRouter(jwtService, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		r.ServeHTTP(w, req)
		c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)
	})

	c.Run("expired token is unauthorized", func(c *qt.C) {
		expiredService := auth.NewJWTService(auth.JWTConfig{
			SecretKey:   "test-secret",
			TokenExp:    -time.Minute,
			TokenIssuer: "test",
		})
		token, err := expiredService.GenerateToken(&models.User{ID: 7, TenantID: 3, Role: models.RoleProfessor})
		c.Assert(err, qt.IsNil)

		r := identityEchoRouter(jwtService, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)
		c.Assert(w.Body.String(), qt.Contains, "token expired")
	})

	c.Run("test headers work only with bypass enabled", func(c *qt.C) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("x-test-user-id", "42")
		req.Header.Set("x-tenant-id", "5")
		req.Header.Set("x-test-role", "SCHOOL_ADMIN")

		r := identityEchoRouter(jwtService, true)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		c.Assert(w.Code, qt.Equals, http.StatusOK)
		c.Assert(w.Body.String(), qt.Contains, `"userId":42`)

		r = identityEchoRouter(jwtService, false)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)
	})

	c.Run("bypass with unknown role is unauthorized", func(c *qt.C) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("x-test-user-id", "42")
		req.Header.Set("x-tenant-id", "5")
		req.Header.Set("x-test-role", "WIZARD")

		r := identityEchoRouter(jwtService, true)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)
	})
}

func TestRequirePermission(t *testing.T) {
	c := qt.New(t)
	jwtService := newJWTService()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/tenants",
		RequireAuth(jwtService, false),
		RequirePermission(appauth.ActionTenantCreate),
		func(c *gin.Context) { c.Status(http.StatusCreated) },
	)

	request := func(role models.RoleType) int {
		token, err := jwtService.GenerateToken(&models.User{ID: 1, TenantID: 1, Role: role})
		c.Assert(err, qt.IsNil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/tenants", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		return w.Code
	}

	c.Assert(request(models.RolePlatformAdmin), qt.Equals, http.StatusCreated)
	c.Assert(request(models.RoleSchoolAdmin), qt.Equals, http.StatusForbidden)
	c.Assert(request(models.RoleStudent), qt.Equals, http.StatusForbidden)
}
