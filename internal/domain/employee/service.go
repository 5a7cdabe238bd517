package employee

import (
	"context"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/export"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// GetEmployee retrieves a single employee by document ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee creates the sign-in account and then the employee record
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee replaces the editable fields of an employee
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the record and then its sign-in account
	DeleteEmployee(ctx context.Context, id string) error

	// ListEmployees lists employees with filters, ten per page
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// ExportEmployees serializes the whole filtered list
	ExportEmployees(ctx context.Context, req ExportEmployeesRequest) (export.File, error)
}
