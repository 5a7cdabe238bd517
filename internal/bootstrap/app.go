package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hris-admin-go/internal/config"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	appHTTP "github.com/cmlabs-hris/hris-admin-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/storage"
	attendanceService "github.com/cmlabs-hris/hris-admin-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/hris-admin-go/internal/service/auth"
	employeeService "github.com/cmlabs-hris/hris-admin-go/internal/service/employee"
	"github.com/go-chi/chi/v5"
)

// App is the fully wired application shared by the API server and the CLI.
type App struct {
	Config *config.Config
	Stores *Stores

	JWT     jwt.Service
	Storage *storage.LocalStorage

	Attendance attendance.AttendanceService
	Employees  employee.EmployeeService
	Auth       auth.AuthService

	Snapshots *cron.SnapshotJobs
}

// LogLevel parses the configured level name, falling back to info.
func LogLevel(cfg *config.Config) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// SetupLogger installs the process wide JSON logger.
func SetupLogger(cfg *config.Config) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: LogLevel(cfg),
	})).With(slog.String("env", cfg.App.Env))
	slog.SetDefault(logger)
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	stores, err := OpenStores(ctx, cfg)
	if err != nil {
		return nil, err
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		_ = stores.Close()
		return nil, fmt.Errorf("failed to initialize local storage: %w", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(stores.Attendance)
	employeeSvc := employeeService.NewEmployeeService(stores.Employees, stores.Identity)
	authSvc := serviceAuth.NewAuthService(stores.Identity, JWTService, stores.Employees)

	return &App{
		Config:     cfg,
		Stores:     stores,
		JWT:        JWTService,
		Storage:    fileStorage,
		Attendance: attendanceSvc,
		Employees:  employeeSvc,
		Auth:       authSvc,
		Snapshots:  cron.NewSnapshotJobs(attendanceSvc, fileStorage, cfg.Snapshot.Hour),
	}, nil
}

func (a *App) Router() *chi.Mux {
	return appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Env:            a.Config.App.Env,
			AllowedOrigins: a.Config.App.CORSOrigins,
			LogLevel:       LogLevel(a.Config),
		},
		a.JWT,
		appHTTP.NewAuthHandler(a.Auth),
		appHTTP.NewAttendanceHandler(a.Attendance),
		appHTTP.NewEmployeeHandler(a.Employees),
		appHTTP.NewMasterHandler(),
		appHTTP.NewFileHandler(a.Storage),
	)
}

// Scheduler returns a scheduler with the background jobs registered.
func (a *App) Scheduler() *cron.Scheduler {
	scheduler := cron.NewScheduler()
	if a.Config.Snapshot.Enabled {
		a.Snapshots.RegisterJobs(scheduler)
	}
	cron.RegisterTokenPurge(scheduler, a.JWT)
	return scheduler
}

func (a *App) Close() error {
	return a.Stores.Close()
}
