package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campuscore/campuscore/docs" // generated swagger docs
	appControllers "github.com/campuscore/campuscore/internal/app/controllers"
	appMigrations "github.com/campuscore/campuscore/internal/app/migrations"
	appRepos "github.com/campuscore/campuscore/internal/app/repositories"
	appRoutes "github.com/campuscore/campuscore/internal/app/routes"
	appServices "github.com/campuscore/campuscore/internal/app/services"
	"github.com/campuscore/campuscore/internal/config"
	"github.com/campuscore/campuscore/internal/db"
	appMiddleware "github.com/campuscore/campuscore/internal/middleware"
	pkgAuth "github.com/campuscore/campuscore/internal/pkg/auth"
	"github.com/campuscore/campuscore/internal/pkg/helpers"
	"github.com/campuscore/campuscore/internal/pkg/logger"
	"github.com/campuscore/campuscore/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos *appRepos.Repositories

	JWTService *pkgAuth.JWTService

	AuthService         *appServices.AuthService
	TenantService       *appServices.TenantService
	UserService         *appServices.UserService
	StudentService      *appServices.StudentService
	ProgramService      *appServices.ProgramService
	CourseService       *appServices.CourseService
	ExamService         *appServices.ExamService
	FinanceService      *appServices.FinanceService
	RecordsService      *appServices.RecordsService
	TicketService       *appServices.TicketService
	NotificationService *appServices.NotificationService

	AuthController         *appControllers.AuthController
	TenantController       *appControllers.TenantController
	UserController         *appControllers.UserController
	StudentController      *appControllers.StudentController
	ProgramController      *appControllers.ProgramController
	CourseController       *appControllers.CourseController
	ExamController         *appControllers.ExamController
	FinanceController      *appControllers.FinanceController
	RecordsController      *appControllers.RecordsController
	TicketController       *appControllers.TicketController
	NotificationController *appControllers.NotificationController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	dbPool, err := db.NewPgxPool(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding trouble should not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 168*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.NotificationService = appServices.NewNotificationService(
		deps.Repos.Notification,
		deps.Repos.User,
		deps.Repos.Tenant,
	)

	deps.AuthService = appServices.NewAuthService(deps.Repos.User, deps.Repos.Tenant, deps.JWTService, deps.NotificationService)
	deps.TenantService = appServices.NewTenantService(deps.Repos.Tenant)
	deps.UserService = appServices.NewUserService(deps.Repos.User, deps.NotificationService)
	deps.StudentService = appServices.NewStudentService(deps.Repos.Student)
	deps.ProgramService = appServices.NewProgramService(deps.Repos.Program)
	deps.CourseService = appServices.NewCourseService(deps.Repos.Course, deps.Repos.Program)
	deps.ExamService = appServices.NewExamService(deps.Repos.Exam, deps.Repos.Course)
	deps.FinanceService = appServices.NewFinanceService(deps.Repos.Finance, deps.Repos.Student)
	deps.RecordsService = appServices.NewRecordsService(deps.Repos.Transcript, deps.Repos.Student)
	deps.TicketService = appServices.NewTicketService(deps.Repos.Ticket)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.TenantController = appControllers.NewTenantController(deps.TenantService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.ProgramController = appControllers.NewProgramController(deps.ProgramService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.ExamController = appControllers.NewExamController(deps.ExamService)
	deps.FinanceController = appControllers.NewFinanceController(deps.FinanceService)
	deps.RecordsController = appControllers.NewRecordsController(deps.RecordsService)
	deps.TicketController = appControllers.NewTicketController(deps.TicketService)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(appMiddleware.Metrics())

	// Swagger and Prometheus endpoints live outside the API version group
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	testBypass := cfg.AllowTestAuthBypass()
	if testBypass {
		lgr.Warn().Msg("Test auth bypass is enabled, do not use in production")
	}

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.TenantController,
		deps.UserController,
		deps.StudentController,
		deps.ProgramController,
		deps.CourseController,
		deps.ExamController,
		deps.FinanceController,
		deps.RecordsController,
		deps.TicketController,
		deps.NotificationController,
		deps.JWTService,
		testBypass,
	)

	return router
}
