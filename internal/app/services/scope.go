package services

import (
	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
)

// Identity is the acting principal, as carried by the verified token.
type Identity struct {
	UserID   int64
	TenantID int64
	Role     models.RoleType
}

// IsPlatformAdmin reports whether the identity holds the platform role.
func (i Identity) IsPlatformAdmin() bool {
	return i.Role == models.RolePlatformAdmin
}

// ResolveTenantScope determines which tenant an operation acts on. Platform
// admins must name a tenant explicitly; everyone else is pinned to their own
// tenant and may not name another.
func ResolveTenantScope(identity Identity, requested *int64) (int64, error) {
	if identity.IsPlatformAdmin() {
		if requested == nil || *requested <= 0 {
			return 0, apperrors.ErrTenantQueryRequired
		}
		return *requested, nil
	}

	if requested != nil && *requested != identity.TenantID {
		return 0, apperrors.ErrPermissionDenied
	}

	return identity.TenantID, nil
}
