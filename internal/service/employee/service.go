package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/identity"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/export"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/utils"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	identity     identity.Service
	now          func() time.Time
}

// NewEmployeeService pairs employee records with their login accounts.
func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	identityService identity.Service,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		identity:     identityService,
		now:          time.Now,
	}
}

func fieldsOf(emp employee.Employee) employee.EmployeeFields {
	return employee.EmployeeFields{
		IDNumber:                 emp.IDNumber,
		FirstName:                emp.FirstName,
		LastName:                 emp.LastName,
		Gender:                   emp.Gender,
		DateOfBirth:              emp.DateOfBirth,
		BloodGroup:               emp.BloodGroup,
		MaritalStatus:            emp.MaritalStatus,
		FatherOrHusbandName:      emp.FatherOrHusbandName,
		EmployeeID:               emp.EmployeeID,
		Department:               emp.Department,
		Position:                 emp.Position,
		Branch:                   emp.Branch,
		DateOfJoining:            emp.DateOfJoining,
		Shift:                    emp.Shift,
		ShiftTime:                emp.ShiftTime,
		EmploymentStatus:         emp.EmploymentStatus,
		EnrollmentNumber:         emp.EnrollmentNumber,
		Qualifications:           emp.Qualifications,
		PreviousExperience:       emp.PreviousExperience,
		CurrentCompanyExperience: emp.CurrentCompanyExperience,
		CasualLeave:              emp.CasualLeave,
		Email:                    emp.Email,
		Phone:                    emp.Phone,
		EmergencyContact:         emp.EmergencyContact,
		Address:                  emp.Address,
		AadharNumber:             emp.AadharNumber,
		PANNumber:                emp.PANNumber,
		UANPFNumber:              emp.UANPFNumber,
		ESINumber:                emp.ESINumber,
		AccountNumber:            emp.AccountNumber,
		IFSCCode:                 emp.IFSCCode,
		SalaryGross:              emp.SalaryGross,
		SalaryNet:                emp.SalaryNet,
		ReferredBy:               emp.ReferredBy,
		Reference1:               emp.Reference1,
		Reference2:               emp.Reference2,
		Role:                     string(emp.Role),
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func (s *EmployeeServiceImpl) toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             emp.ID,
		UID:            emp.UID,
		EmployeeFields: fieldsOf(emp),
		FullName:       emp.FullName(),
		Experience:     Experience(emp.DateOfJoining, s.now()),
		CreatedAt:      formatTimestamp(emp.CreatedAt),
		UpdatedAt:      formatTimestamp(emp.UpdatedAt),
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return s.toResponse(emp), nil
}

// employeeIDTaken reports whether another record already uses the employee id.
func (s *EmployeeServiceImpl) employeeIDTaken(ctx context.Context, employeeID, exceptID string) (bool, error) {
	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return false, err
	}
	for _, e := range all {
		if e.ID != exceptID && strings.EqualFold(e.EmployeeID, employeeID) {
			return true, nil
		}
	}
	return false, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	taken, err := s.employeeIDTaken(ctx, req.EmployeeID, "")
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee id existence: %w", err)
	}
	if taken {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}

	var newEmployee employee.Employee
	req.EmployeeFields.Apply(&newEmployee)

	uid, err := s.identity.CreateAccount(ctx, identity.NewAccount{
		Email:    req.Email,
		Password: req.Password,
		Role:     newEmployee.Role,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create account: %w", err)
	}

	now := s.now().UTC()
	newEmployee.UID = uid
	newEmployee.CreatedAt = now
	newEmployee.UpdatedAt = now

	created, err := s.employeeRepo.Insert(ctx, newEmployee)
	if err != nil {
		// Roll back the account so the email can be registered again
		if delErr := s.identity.DeleteAccount(ctx, uid); delErr != nil {
			slog.Error("failed to remove orphaned account", "uid", uid, "error", delErr)
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("employee created", "id", created.ID, "employee_id", created.EmployeeID)
	return s.toResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if !strings.EqualFold(existing.EmployeeID, req.EmployeeID) {
		taken, err := s.employeeIDTaken(ctx, req.EmployeeID, existing.ID)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee id existence: %w", err)
		}
		if taken {
			return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
		}
	}

	req.EmployeeFields.Apply(&existing)
	existing.UpdatedAt = s.now().UTC()

	if err := s.employeeRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.toResponse(existing), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.employeeRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if existing.UID != "" {
		if err := s.identity.DeleteAccount(ctx, existing.UID); err != nil && !errors.Is(err, identity.ErrAccountNotFound) {
			return fmt.Errorf("employee deleted but failed to delete account: %w", err)
		}
	}

	slog.Info("employee deleted", "id", id, "employee_id", existing.EmployeeID)
	return nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	filtered := Filter(all, filter)
	page := utils.Paginate(len(filtered), filter.Page, employee.EmployeePageSize)

	responses := make([]employee.EmployeeResponse, 0, page.End-page.Start)
	for _, emp := range filtered[page.Start:page.End] {
		responses = append(responses, s.toResponse(emp))
	}

	return employee.ListEmployeeResponse{
		TotalCount: page.TotalCount,
		Page:       page.Number,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
		Showing:    page.Showing(),
		Pages:      page.Window(),
		Employees:  responses,
	}, nil
}

// ExportEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ExportEmployees(ctx context.Context, req employee.ExportEmployeesRequest) (export.File, error) {
	if err := req.Validate(); err != nil {
		return export.File{}, err
	}

	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return export.File{}, fmt.Errorf("failed to list employees: %w", err)
	}

	filtered := Filter(all, req.EmployeeFilter)
	if len(filtered) == 0 {
		return export.File{}, employee.ErrNoDataToExport
	}

	today := s.now()
	file, err := export.Render(ExportTable(filtered, today), req.Format, ExportBaseName(today))
	if err != nil {
		return export.File{}, fmt.Errorf("failed to render employee export: %w", err)
	}
	return file, nil
}
