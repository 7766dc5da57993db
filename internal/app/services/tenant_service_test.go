package services

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
)

type fakeTenantRepo struct {
	tenants map[int64]*models.Tenant
	nextID  int64
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{tenants: map[int64]*models.Tenant{}}
}

func (f *fakeTenantRepo) CreateTenant(_ context.Context, tenant *models.Tenant) (int64, error) {
	for _, t := range f.tenants {
		if t.Code == tenant.Code {
			return 0, apperrors.ErrTenantCodeExists
		}
	}
	f.nextID++
	tenant.ID = f.nextID
	f.tenants[tenant.ID] = tenant
	return tenant.ID, nil
}

func (f *fakeTenantRepo) GetTenantByID(_ context.Context, id int64) (*models.Tenant, error) {
	tenant, ok := f.tenants[id]
	if !ok {
		return nil, apperrors.ErrTenantNotFound
	}
	cp := *tenant
	return &cp, nil
}

func (f *fakeTenantRepo) GetTenantByCode(_ context.Context, code string) (*models.Tenant, error) {
	for _, t := range f.tenants {
		if t.Code == code {
			cp := *t
			return &cp, nil
		}
	}
	return nil, apperrors.ErrTenantNotFound
}

func (f *fakeTenantRepo) GetAllTenants(_ context.Context) ([]*models.Tenant, error) {
	var all []*models.Tenant
	for _, t := range f.tenants {
		all = append(all, t)
	}
	return all, nil
}

func (f *fakeTenantRepo) UpdateTenant(_ context.Context, tenant *models.Tenant) error {
	if _, ok := f.tenants[tenant.ID]; !ok {
		return apperrors.ErrTenantNotFound
	}
	f.tenants[tenant.ID] = tenant
	return nil
}

func (f *fakeTenantRepo) DeactivateTenant(_ context.Context, id int64) error {
	tenant, ok := f.tenants[id]
	if !ok {
		return apperrors.ErrTenantNotFound
	}
	tenant.IsActive = false
	return nil
}

func TestTenantService(t *testing.T) {
	c := qt.New(t)

	c.Run("create and fetch", func(c *qt.C) {
		svc := NewTenantService(newFakeTenantRepo())
		created, err := svc.CreateTenant(context.Background(), dto.CreateTenantRequest{Name: "Example University", Code: "EXU"})
		c.Assert(err, qt.IsNil)
		c.Assert(created.IsActive, qt.IsTrue)

		got, err := svc.GetTenant(context.Background(), Identity{Role: models.RolePlatformAdmin}, created.ID)
		c.Assert(err, qt.IsNil)
		c.Assert(got.Code, qt.Equals, "EXU")
	})

	c.Run("duplicate code conflicts", func(c *qt.C) {
		svc := NewTenantService(newFakeTenantRepo())
		_, err := svc.CreateTenant(context.Background(), dto.CreateTenantRequest{Name: "A", Code: "EXU"})
		c.Assert(err, qt.IsNil)
		_, err = svc.CreateTenant(context.Background(), dto.CreateTenantRequest{Name: "B", Code: "EXU"})
		c.Assert(err, qt.ErrorIs, apperrors.ErrTenantCodeExists)
	})

	c.Run("school admin only sees own tenant", func(c *qt.C) {
		svc := NewTenantService(newFakeTenantRepo())
		a, err := svc.CreateTenant(context.Background(), dto.CreateTenantRequest{Name: "A", Code: "AAA"})
		c.Assert(err, qt.IsNil)
		b, err := svc.CreateTenant(context.Background(), dto.CreateTenantRequest{Name: "B", Code: "BBB"})
		c.Assert(err, qt.IsNil)

		admin := Identity{UserID: 1, TenantID: a.ID, Role: models.RoleSchoolAdmin}
		_, err = svc.GetTenant(context.Background(), admin, a.ID)
		c.Assert(err, qt.IsNil)
		_, err = svc.GetTenant(context.Background(), admin, b.ID)
		c.Assert(err, qt.ErrorIs, apperrors.ErrTenantNotFound)
	})

	c.Run("keeping the current code on update is not a collision", func(c *qt.C) {
		repo := newFakeTenantRepo()
		svc := NewTenantService(repo)
		created, err := svc.CreateTenant(context.Background(), dto.CreateTenantRequest{Name: "A", Code: "AAA"})
		c.Assert(err, qt.IsNil)

		code := "AAA"
		name := "A renamed"
		updated, err := svc.UpdateTenant(context.Background(), created.ID, dto.UpdateTenantRequest{Name: &name, Code: &code})
		c.Assert(err, qt.IsNil)
		c.Assert(updated.Name, qt.Equals, "A renamed")
		c.Assert(updated.Code, qt.Equals, "AAA")
	})

	c.Run("taking another tenant's code conflicts", func(c *qt.C) {
		svc := NewTenantService(newFakeTenantRepo())
		a, err := svc.CreateTenant(context.Background(), dto.CreateTenantRequest{Name: "A", Code: "AAA"})
		c.Assert(err, qt.IsNil)
		_, err = svc.CreateTenant(context.Background(), dto.CreateTenantRequest{Name: "B", Code: "BBB"})
		c.Assert(err, qt.IsNil)

		code := "BBB"
		_, err = svc.UpdateTenant(context.Background(), a.ID, dto.UpdateTenantRequest{Code: &code})
		c.Assert(err, qt.ErrorIs, apperrors.ErrTenantCodeExists)
	})
}
