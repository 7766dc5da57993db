package services

import (
	"context"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/repositories"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
	pkgauth "github.com/campuscore/campuscore/internal/pkg/auth"
	"github.com/campuscore/campuscore/internal/pkg/helpers"
	"github.com/campuscore/campuscore/internal/pkg/logger"
)

// UserRepository is the user store surface the user service needs.
type UserRepository interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserTenantIDs(ctx context.Context, userID int64) ([]int64, error)
	ListUsers(ctx context.Context, filter repositories.UserFilter) ([]*models.User, int, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error
}

// UserNotifier fans out notifications about administrative user actions.
// Failures are logged by the implementation and never fail the action itself.
type UserNotifier interface {
	NotifyUserAction(ctx context.Context, actor Identity, target *models.User, action models.NotificationAction, changedFields []string)
}

// UserService handles account administration.
type UserService struct {
	userRepo UserRepository
	notifier UserNotifier
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserRepository, notifier UserNotifier) *UserService {
	return &UserService{userRepo: userRepo, notifier: notifier}
}

// ListUsers lists accounts. Platform admins must name the tenant they are
// browsing; everyone else is pinned to their own tenant.
func (s *UserService) ListUsers(ctx context.Context, identity Identity, query dto.ListUsersQuery) ([]dto.UserResponse, *dto.PageInfo, error) {
	resolved, err := ResolveTenantScope(identity, query.TenantID)
	if err != nil {
		return nil, nil, err
	}
	tenantID := &resolved

	page, pageSize, offset := helpers.NormalizePagination(query.Page, query.PageSize)

	users, total, err := s.userRepo.ListUsers(ctx, repositories.UserFilter{
		TenantID: tenantID,
		Role:     query.Role,
		Search:   query.Search,
		Offset:   offset,
		Limit:    pageSize,
	})
	if err != nil {
		return nil, nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.ToUserResponse(user))
	}

	paged := dto.NewPagedResponse(nil, page, pageSize, total)
	return responses, &paged.PageInfo, nil
}

// GetUser retrieves one account, subject to the same visibility rules as
// listing.
func (s *UserService) GetUser(ctx context.Context, identity Identity, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !identity.IsPlatformAdmin() && user.TenantID != identity.TenantID {
		return nil, apperrors.ErrUserNotFound
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// Profile returns the caller's own account with every tenant they are
// affiliated with, primary tenant included.
func (s *UserService) Profile(ctx context.Context, identity Identity) (*dto.MeResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	tenantIDs, err := s.userRepo.GetUserTenantIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.MeResponse{
		UserResponse: dto.ToUserResponse(user),
		TenantIDs:    tenantIDs,
	}, nil
}

// canAdminister decides whether the actor may modify or delete the target.
// Platform admin accounts can only be touched by platform admins; school
// admins are confined to their own tenant.
func canAdminister(actor Identity, target *models.User) error {
	if actor.IsPlatformAdmin() {
		return nil
	}

	if target.Role == models.RolePlatformAdmin {
		return apperrors.ErrPermissionDenied
	}
	if target.TenantID != actor.TenantID {
		return apperrors.ErrPermissionDenied
	}

	return nil
}

// UpdateUser applies a partial update to an account and notifies the affected
// parties.
func (s *UserService) UpdateUser(ctx context.Context, identity Identity, userID int64, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := canAdminister(identity, user); err != nil {
		return nil, err
	}

	var changed []string

	if req.Email != nil && *req.Email != user.Email {
		user.Email = *req.Email
		changed = append(changed, "email")
	}
	if req.Password != nil {
		hashed, err := pkgauth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
		changed = append(changed, "password")
	}
	if req.FirstName != nil && *req.FirstName != user.FirstName {
		user.FirstName = *req.FirstName
		changed = append(changed, "firstName")
	}
	if req.LastName != nil && *req.LastName != user.LastName {
		user.LastName = *req.LastName
		changed = append(changed, "lastName")
	}
	if req.Role != nil && *req.Role != string(user.Role) {
		if !models.ValidRole(*req.Role) {
			return nil, apperrors.NewBadRequestError("unknown role: " + *req.Role)
		}
		// Only platform admins may grant the platform role.
		if models.RoleType(*req.Role) == models.RolePlatformAdmin && !identity.IsPlatformAdmin() {
			return nil, apperrors.ErrPermissionDenied
		}
		user.Role = models.RoleType(*req.Role)
		changed = append(changed, "role")
	}
	if req.Suspended != nil && *req.Suspended != user.Suspended {
		user.Suspended = *req.Suspended
		changed = append(changed, "suspended")
	}
	if req.TenantID != nil && *req.TenantID != user.TenantID {
		if !identity.IsPlatformAdmin() {
			return nil, apperrors.ErrPermissionDenied
		}
		user.TenantID = *req.TenantID
		changed = append(changed, "tenantId")
	}

	if len(changed) > 0 {
		if err := s.userRepo.UpdateUser(ctx, user); err != nil {
			return nil, err
		}
		s.notifier.NotifyUserAction(ctx, identity, user, models.ActionUpdated, changed)
		logger.Info().Int64("userID", user.ID).Strs("fields", changed).Msg("User updated")
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// DeleteUser removes an account. Deleting yourself is refused.
func (s *UserService) DeleteUser(ctx context.Context, identity Identity, userID int64) error {
	if userID == identity.UserID {
		return apperrors.ErrSelfDelete
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := canAdminister(identity, user); err != nil {
		return err
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	s.notifier.NotifyUserAction(ctx, identity, user, models.ActionDeleted, nil)
	logger.Info().Int64("userID", userID).Int64("actorID", identity.UserID).Msg("User deleted")

	return nil
}
