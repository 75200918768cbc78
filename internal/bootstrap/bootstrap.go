package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/lucasb/schoolhub/internal/app/controllers"
	appMigrations "github.com/lucasb/schoolhub/internal/app/migrations"
	appRepos "github.com/lucasb/schoolhub/internal/app/repositories"
	appRoutes "github.com/lucasb/schoolhub/internal/app/routes"
	appServices "github.com/lucasb/schoolhub/internal/app/services"
	"github.com/lucasb/schoolhub/internal/config"
	"github.com/lucasb/schoolhub/internal/db"
	appMiddleware "github.com/lucasb/schoolhub/internal/middleware"
	"github.com/lucasb/schoolhub/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService    appServices.StudentService
	CourseService     appServices.CourseService
	SubjectService    appServices.SubjectService
	AvatarService     appServices.AvatarService
	StudentController *appControllers.StudentController
	CourseController  *appControllers.CourseController
	SubjectController *appControllers.SubjectController
	AvatarController  *appControllers.AvatarController
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
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
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.StudentRepository,
	)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.SubjectRepository,
		deps.Repos.AvatarRepository,
	)
	deps.SubjectService = appServices.NewSubjectService(
		deps.Repos.SubjectRepository,
		deps.Repos.CourseRepository,
	)
	deps.AvatarService = appServices.NewAvatarService(
		deps.Repos.AvatarRepository,
		deps.Repos.StudentRepository,
	)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.AvatarController = appControllers.NewAvatarController(deps.AvatarService)

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
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.CourseController,
		deps.SubjectController,
		deps.AvatarController,
	)

	return router
}
