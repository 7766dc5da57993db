package services

import (
	"context"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
	"github.com/campuscore/campuscore/internal/pkg/logger"
)

// TenantRepository is the tenant store surface the tenant service needs.
type TenantRepository interface {
	CreateTenant(ctx context.Context, tenant *models.Tenant) (int64, error)
	GetTenantByID(ctx context.Context, id int64) (*models.Tenant, error)
	GetTenantByCode(ctx context.Context, code string) (*models.Tenant, error)
	GetAllTenants(ctx context.Context) ([]*models.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *models.Tenant) error
	DeactivateTenant(ctx context.Context, id int64) error
}

// TenantService handles institution management.
type TenantService struct {
	tenantRepo TenantRepository
}

// NewTenantService creates a new TenantService
func NewTenantService(tenantRepo TenantRepository) *TenantService {
	return &TenantService{tenantRepo: tenantRepo}
}

// CreateTenant registers a new institution. Codes are globally unique.
func (s *TenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	tenant := &models.Tenant{
		Name:     req.Name,
		Code:     req.Code,
		IsActive: true,
	}

	if _, err := s.tenantRepo.CreateTenant(ctx, tenant); err != nil {
		return nil, err
	}

	logger.Info().Int64("tenantID", tenant.ID).Str("code", tenant.Code).Msg("Tenant created")

	resp := dto.ToTenantResponse(tenant)
	return &resp, nil
}

// GetTenant retrieves one tenant. School-scoped callers only see their own.
func (s *TenantService) GetTenant(ctx context.Context, identity Identity, id int64) (*dto.TenantResponse, error) {
	if !identity.IsPlatformAdmin() && id != identity.TenantID {
		return nil, apperrors.ErrTenantNotFound
	}

	tenant, err := s.tenantRepo.GetTenantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ToTenantResponse(tenant)
	return &resp, nil
}

// ListTenants retrieves all tenants. Platform admin only.
func (s *TenantService) ListTenants(ctx context.Context) ([]dto.TenantResponse, error) {
	tenants, err := s.tenantRepo.GetAllTenants(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TenantResponse, 0, len(tenants))
	for _, tenant := range tenants {
		responses = append(responses, dto.ToTenantResponse(tenant))
	}

	return responses, nil
}

// UpdateTenant applies a partial update. Keeping the current code is not a
// collision: only a code held by a different tenant conflicts.
func (s *TenantService) UpdateTenant(ctx context.Context, id int64, req dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	tenant, err := s.tenantRepo.GetTenantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.Code != nil && *req.Code != tenant.Code {
		existing, err := s.tenantRepo.GetTenantByCode(ctx, *req.Code)
		if err == nil && existing.ID != id {
			return nil, apperrors.ErrTenantCodeExists
		}
		tenant.Code = *req.Code
	}
	if req.IsActive != nil {
		tenant.IsActive = *req.IsActive
	}

	if err := s.tenantRepo.UpdateTenant(ctx, tenant); err != nil {
		return nil, err
	}

	resp := dto.ToTenantResponse(tenant)
	return &resp, nil
}

// DeactivateTenant soft-disables an institution. Its data is retained and the
// code stays reserved.
func (s *TenantService) DeactivateTenant(ctx context.Context, id int64) error {
	if err := s.tenantRepo.DeactivateTenant(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("tenantID", id).Msg("Tenant deactivated")
	return nil
}
