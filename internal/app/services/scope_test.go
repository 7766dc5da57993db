package services

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
)

func TestResolveTenantScope(t *testing.T) {
	c := qt.New(t)

	platform := Identity{UserID: 1, TenantID: 1, Role: models.RolePlatformAdmin}
	school := Identity{UserID: 2, TenantID: 5, Role: models.RoleSchoolAdmin}

	c.Run("platform admin must name a tenant", func(c *qt.C) {
		_, err := ResolveTenantScope(platform, nil)
		c.Assert(err, qt.ErrorIs, apperrors.ErrTenantQueryRequired)
	})

	c.Run("platform admin uses the named tenant", func(c *qt.C) {
		id := int64(9)
		scope, err := ResolveTenantScope(platform, &id)
		c.Assert(err, qt.IsNil)
		c.Assert(scope, qt.Equals, int64(9))
	})

	c.Run("school admin is pinned to own tenant", func(c *qt.C) {
		scope, err := ResolveTenantScope(school, nil)
		c.Assert(err, qt.IsNil)
		c.Assert(scope, qt.Equals, int64(5))
	})

	c.Run("school admin naming own tenant is fine", func(c *qt.C) {
		id := int64(5)
		scope, err := ResolveTenantScope(school, &id)
		c.Assert(err, qt.IsNil)
		c.Assert(scope, qt.Equals, int64(5))
	})

	c.Run("school admin naming another tenant is refused", func(c *qt.C) {
		id := int64(6)
		_, err := ResolveTenantScope(school, &id)
		c.Assert(err, qt.ErrorIs, apperrors.ErrPermissionDenied)
	})
}
