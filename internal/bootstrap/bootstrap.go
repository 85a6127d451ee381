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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/temidayo/servecorps/docs" // Import generated swagger docs
	appControllers "github.com/temidayo/servecorps/internal/app/controllers"
	appMigrations "github.com/temidayo/servecorps/internal/app/migrations"
	appRepos "github.com/temidayo/servecorps/internal/app/repositories"
	appRoutes "github.com/temidayo/servecorps/internal/app/routes"
	appServices "github.com/temidayo/servecorps/internal/app/services"
	"github.com/temidayo/servecorps/internal/config"
	"github.com/temidayo/servecorps/internal/db"
	appMiddleware "github.com/temidayo/servecorps/internal/middleware"
	pkgAuth "github.com/temidayo/servecorps/internal/pkg/auth"
	"github.com/temidayo/servecorps/internal/pkg/helpers"
	"github.com/temidayo/servecorps/internal/pkg/logger"
	"github.com/temidayo/servecorps/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            *appServices.AuthService
	RosterService          *appServices.RosterService
	GraduateService        *appServices.GraduateService
	StaffRequestService    *appServices.StaffRequestService
	ReferenceService       *appServices.ReferenceService
	AuthController         *appControllers.AuthController
	RosterController       *appControllers.RosterController
	GraduateController     *appControllers.GraduateController
	StaffRequestController *appControllers.StaffRequestController
	ReferenceController    *appControllers.ReferenceController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
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
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

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

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding problems should not stop the service
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.JWTService,
		lgr,
	)
	deps.RosterService = appServices.NewRosterService(
		deps.Repos.RosterRepository,
		deps.Repos.ZoneRepository,
		lgr,
	)
	deps.GraduateService = appServices.NewGraduateService(
		deps.Repos.GraduateRepository,
		deps.Repos.RosterRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.StaffRequestRepository,
		lgr,
	)
	deps.StaffRequestService = appServices.NewStaffRequestService(
		deps.Repos.StaffRequestRepository,
		deps.Repos.DepartmentRepository,
		lgr,
	)
	deps.ReferenceService = appServices.NewReferenceService(
		deps.Repos.ZoneRepository,
		deps.Repos.DepartmentRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.RosterController = appControllers.NewRosterController(deps.RosterService, deps.GraduateService)
	deps.GraduateController = appControllers.NewGraduateController(deps.GraduateService)
	deps.StaffRequestController = appControllers.NewStaffRequestController(deps.StaffRequestService)
	deps.ReferenceController = appControllers.NewReferenceController(deps.ReferenceService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.RosterController,
		deps.GraduateController,
		deps.StaffRequestController,
		deps.ReferenceController,
		deps.AuthMiddleware,
	)

	return router
}
