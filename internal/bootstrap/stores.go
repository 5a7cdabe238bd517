package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-admin-go/internal/config"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/identity"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/firebase"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository/firestore"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository/postgresql"
)

// Stores bundles the repositories and identity provider of one store driver.
type Stores struct {
	Driver     string
	Attendance attendance.AttendanceRepository
	Employees  employee.EmployeeRepository
	Identity   identity.Service

	migrate func(ctx context.Context) error
	close   func() error
}

// OpenStores connects to the backing store selected by cfg.Store.Driver.
func OpenStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		slog.Info("connected to postgres", "host", cfg.Database.Host, "database", cfg.Database.Name)

		return &Stores{
			Driver:     config.DriverPostgres,
			Attendance: postgresql.NewAttendanceRepository(db),
			Employees:  postgresql.NewEmployeeRepository(db),
			Identity:   postgresql.NewAccountStore(db),
			migrate: func(ctx context.Context) error {
				return postgresql.Migrate(ctx, db)
			},
			close: func() error {
				db.Close()
				return nil
			},
		}, nil

	case config.DriverFirestore:
		clients, err := firebase.NewClients(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize firebase: %w", err)
		}
		slog.Info("connected to firestore", "project_id", cfg.Firebase.ProjectID)

		return &Stores{
			Driver:     config.DriverFirestore,
			Attendance: firestore.NewAttendanceRepository(clients.Firestore, cfg.Location()),
			Employees:  firestore.NewEmployeeRepository(clients.Firestore),
			Identity:   firebase.NewIdentityService(clients.Auth),
			close:      clients.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store driver: %q", cfg.Store.Driver)
	}
}

// Migrate creates the relational schema. Firestore collections need none.
func (s *Stores) Migrate(ctx context.Context) error {
	if s.migrate == nil {
		slog.Info("store driver has no schema to migrate", "driver", s.Driver)
		return nil
	}
	return s.migrate(ctx)
}

func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
