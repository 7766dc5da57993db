package services

import (
	"context"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/repositories"
)

// ProgramService handles study program management.
type ProgramService struct {
	programRepo *repositories.ProgramRepository
}

// NewProgramService creates a new ProgramService
func NewProgramService(programRepo *repositories.ProgramRepository) *ProgramService {
	return &ProgramService{programRepo: programRepo}
}

// CreateProgram defines a new program at version 1.
func (s *ProgramService) CreateProgram(ctx context.Context, identity Identity, tenantID *int64, req dto.CreateProgramRequest) (*models.Program, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	program := &models.Program{
		TenantID: scope,
		Name:     req.Name,
		Code:     req.Code,
		Version:  1,
		IsActive: true,
	}

	if _, err := s.programRepo.CreateProgram(ctx, program); err != nil {
		return nil, err
	}

	return program, nil
}

// GetProgram retrieves one program of the scoped tenant.
func (s *ProgramService) GetProgram(ctx context.Context, identity Identity, tenantID *int64, id int64) (*models.Program, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}
	return s.programRepo.GetProgramByID(ctx, scope, id)
}

// ListPrograms retrieves all programs of the scoped tenant.
func (s *ProgramService) ListPrograms(ctx context.Context, identity Identity, tenantID *int64) ([]*models.Program, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}
	return s.programRepo.ListPrograms(ctx, scope)
}

// UpdateProgram applies a partial update. Renaming or recoding the curriculum
// bumps the version; toggling activation does not.
func (s *ProgramService) UpdateProgram(ctx context.Context, identity Identity, tenantID *int64, id int64, req dto.UpdateProgramRequest) (*models.Program, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	program, err := s.programRepo.GetProgramByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	curriculumChanged := false
	if req.Name != nil && *req.Name != program.Name {
		program.Name = *req.Name
		curriculumChanged = true
	}
	if req.Code != nil && *req.Code != program.Code {
		program.Code = *req.Code
		curriculumChanged = true
	}
	if req.IsActive != nil {
		program.IsActive = *req.IsActive
	}

	if curriculumChanged {
		program.Version++
	}

	if err := s.programRepo.UpdateProgram(ctx, program); err != nil {
		return nil, err
	}

	return program, nil
}

// DeleteProgram removes a program of the scoped tenant.
func (s *ProgramService) DeleteProgram(ctx context.Context, identity Identity, tenantID *int64, id int64) error {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return err
	}
	return s.programRepo.DeleteProgram(ctx, scope, id)
}
