package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/campuscore/campuscore/internal/app/models"
	appRepos "github.com/campuscore/campuscore/internal/app/repositories"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
)

const (
	defaultAdminEmail    = "admin@campuscore.app"
	defaultAdminPassword = "Admin123!"
	defaultTenantCode    = "DEMO"
)

// CreateDefaultData bootstraps a demo tenant and a platform admin account so
// a fresh deployment is usable without manual SQL.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	tenantRepo := appRepos.NewTenantRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Demo tenant --- //
	demoTenant := &appModels.Tenant{Name: "Demo University", Code: defaultTenantCode, IsActive: true}
	tenantID, err := tenantRepo.CreateTenant(ctx, demoTenant)
	if err != nil && !errors.Is(err, apperrors.ErrTenantCodeExists) {
		lgr.Error().Err(err).Msg("Error creating demo tenant")
		finalErr = errors.Join(finalErr, err)
	} else if errors.Is(err, apperrors.ErrTenantCodeExists) {
		existing, errGet := tenantRepo.GetTenantByCode(ctx, defaultTenantCode)
		if errGet != nil {
			lgr.Error().Err(errGet).Msg("Error looking up existing demo tenant")
			finalErr = errors.Join(finalErr, errGet)
		} else {
			tenantID = existing.ID
		}
	}

	if tenantID == 0 {
		lgr.Error().Msg("No tenant available for the default admin")
		return errors.Join(finalErr, errors.New("no tenant available for default admin"))
	}

	// --- Platform admin --- //
	_, err = userRepo.GetUserByEmail(ctx, defaultAdminEmail)
	switch {
	case err == nil:
		lgr.Info().Msg("Default admin already exists, skipping creation")
	case errors.Is(err, apperrors.ErrUserNotFound):
		lgr.Info().Msg("Creating default platform admin...")

		hashedPassword, hashErr := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if hashErr != nil {
			lgr.Error().Err(hashErr).Msg("Error hashing default admin password")
			return errors.Join(finalErr, hashErr)
		}

		admin := &appModels.User{
			Email:     defaultAdminEmail,
			Password:  string(hashedPassword),
			FirstName: "Platform",
			LastName:  "Administrator",
			Role:      appModels.RolePlatformAdmin,
			TenantID:  tenantID,
		}

		adminID, createErr := userRepo.CreateUser(ctx, admin)
		if createErr != nil {
			lgr.Error().Err(createErr).Msg("Error creating default admin")
			finalErr = errors.Join(finalErr, createErr)
		} else {
			lgr.Info().Int64("adminID", adminID).Msg("Default platform admin created")
		}
	default:
		lgr.Error().Err(err).Msg("Error checking for default admin")
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data check finished.")
	return finalErr
}
