package services

import (
	"context"
	"errors"

	"github.com/campuscore/campuscore/internal/app/auth"
	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
	pkgauth "github.com/campuscore/campuscore/internal/pkg/auth"
	"github.com/campuscore/campuscore/internal/pkg/logger"
)

// AuthUserRepository is the user store surface the auth service needs.
type AuthUserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	AddUserTenant(ctx context.Context, userID, tenantID int64) error
}

// AuthTenantRepository resolves the tenant a new account is placed in.
type AuthTenantRepository interface {
	GetTenantByID(ctx context.Context, id int64) (*models.Tenant, error)
}

// TokenIssuer signs tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(user *models.User) (string, error)
}

// AuthService handles login and role-gated registration.
type AuthService struct {
	userRepo   AuthUserRepository
	tenantRepo AuthTenantRepository
	jwt        TokenIssuer
	notifier   UserNotifier
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo AuthUserRepository, tenantRepo AuthTenantRepository, jwt TokenIssuer, notifier UserNotifier) *AuthService {
	return &AuthService{userRepo: userRepo, tenantRepo: tenantRepo, jwt: jwt, notifier: notifier}
}

// Login verifies credentials and issues a token. Suspension is checked here
// and nowhere else: a token issued before suspension stays valid until expiry.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		// Same failure for unknown email and wrong password.
		return nil, apperrors.ErrInvalidCredentials
	}

	if !pkgauth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Suspended {
		return nil, apperrors.ErrAccountSuspended
	}

	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate token")
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}

// Register creates an account on behalf of the acting admin. Who may mint
// which role is decided by the permission matrix; tenant placement follows the
// usual scoping rules, except that new platform admins belong to the acting
// platform admin's tenant when none is named.
func (s *AuthService) Register(ctx context.Context, identity Identity, req dto.RegisterRequest) (*dto.LoginResponse, error) {
	if !models.ValidRole(req.Role) {
		return nil, apperrors.NewBadRequestError("unknown role: " + req.Role)
	}
	targetRole := models.RoleType(req.Role)

	if !auth.CanRegisterRole(identity.Role, targetRole) {
		return nil, apperrors.ErrPermissionDenied
	}

	var tenantID int64
	if identity.IsPlatformAdmin() && req.TenantID == nil && targetRole == models.RolePlatformAdmin {
		tenantID = identity.TenantID
	} else {
		var err error
		tenantID, err = ResolveTenantScope(identity, req.TenantID)
		if err != nil {
			return nil, err
		}
	}

	if _, err := s.tenantRepo.GetTenantByID(ctx, tenantID); err != nil {
		return nil, err
	}

	// A professor registered again under another tenant gains an affiliation
	// there instead of a duplicate account. Any other email clash is a
	// conflict.
	existing, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		if targetRole != models.RoleProfessor || existing.Role != models.RoleProfessor || existing.TenantID == tenantID {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		if err := s.userRepo.AddUserTenant(ctx, existing.ID, tenantID); err != nil {
			return nil, err
		}
		logger.Info().Int64("userID", existing.ID).Int64("tenantID", tenantID).Msg("Professor affiliated with additional tenant")
		token, err := s.jwt.GenerateToken(existing)
		if err != nil {
			return nil, err
		}
		return &dto.LoginResponse{Token: token, User: dto.ToUserResponse(existing)}, nil
	case errors.Is(err, apperrors.ErrUserNotFound):
		// Fresh account.
	default:
		return nil, err
	}

	hashed, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      targetRole,
		TenantID:  tenantID,
	}

	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("role", req.Role).Msg("User registered")

	s.notifier.NotifyUserAction(ctx, identity, user, models.ActionCreated, nil)

	// The new account gets a token right away so it is usable without a
	// separate login round-trip.
	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}
