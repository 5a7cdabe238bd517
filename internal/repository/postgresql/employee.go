package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `
	id, uid, id_number, first_name, last_name, gender, date_of_birth, blood_group, marital_status,
	father_or_husband_name, employee_id, department, position, branch, date_of_joining, shift, shift_time,
	employment_status, enrollment_number, qualifications, previous_experience, current_company_experience,
	casual_leave, email, phone, emergency_contact, address, aadhar_number, pan_number, uan_pf_number,
	esi_number, account_number, ifsc_code, salary_gross, salary_net, referred_by, reference1, reference2,
	role, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.UID, &emp.IDNumber, &emp.FirstName, &emp.LastName, &emp.Gender, &emp.DateOfBirth,
		&emp.BloodGroup, &emp.MaritalStatus, &emp.FatherOrHusbandName, &emp.EmployeeID, &emp.Department,
		&emp.Position, &emp.Branch, &emp.DateOfJoining, &emp.Shift, &emp.ShiftTime, &emp.EmploymentStatus,
		&emp.EnrollmentNumber, &emp.Qualifications, &emp.PreviousExperience, &emp.CurrentCompanyExperience,
		&emp.CasualLeave, &emp.Email, &emp.Phone, &emp.EmergencyContact, &emp.Address, &emp.AadharNumber,
		&emp.PANNumber, &emp.UANPFNumber, &emp.ESINumber, &emp.AccountNumber, &emp.IFSCCode,
		&emp.SalaryGross, &emp.SalaryNet, &emp.ReferredBy, &emp.Reference1, &emp.Reference2,
		&emp.Role, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func employeeArgs(emp employee.Employee) []any {
	return []any{
		emp.ID, emp.UID, emp.IDNumber, emp.FirstName, emp.LastName, emp.Gender, emp.DateOfBirth,
		emp.BloodGroup, emp.MaritalStatus, emp.FatherOrHusbandName, emp.EmployeeID, emp.Department,
		emp.Position, emp.Branch, emp.DateOfJoining, emp.Shift, emp.ShiftTime, emp.EmploymentStatus,
		emp.EnrollmentNumber, emp.Qualifications, emp.PreviousExperience, emp.CurrentCompanyExperience,
		emp.CasualLeave, emp.Email, emp.Phone, emp.EmergencyContact, emp.Address, emp.AadharNumber,
		emp.PANNumber, emp.UANPFNumber, emp.ESINumber, emp.AccountNumber, emp.IFSCCode,
		emp.SalaryGross, emp.SalaryNet, emp.ReferredBy, emp.Reference1, emp.Reference2,
		string(emp.Role), emp.CreatedAt, emp.UpdatedAt,
	}
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY employee_id, id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}
	return emp, nil
}

// GetByUID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByUID(ctx context.Context, uid string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE uid = $1 LIMIT 1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with uid %s: %w", uid, err)
	}
	return emp, nil
}

// Insert implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Insert(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	if newEmployee.ID == "" {
		newEmployee.ID = uuid.Must(uuid.NewV7()).String()
	}

	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39, $40, $41
		)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query, employeeArgs(newEmployee)...))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees SET
			uid = $2, id_number = $3, first_name = $4, last_name = $5, gender = $6, date_of_birth = $7,
			blood_group = $8, marital_status = $9, father_or_husband_name = $10, employee_id = $11,
			department = $12, position = $13, branch = $14, date_of_joining = $15, shift = $16,
			shift_time = $17, employment_status = $18, enrollment_number = $19, qualifications = $20,
			previous_experience = $21, current_company_experience = $22, casual_leave = $23, email = $24,
			phone = $25, emergency_contact = $26, address = $27, aadhar_number = $28, pan_number = $29,
			uan_pf_number = $30, esi_number = $31, account_number = $32, ifsc_code = $33,
			salary_gross = $34, salary_net = $35, referred_by = $36, reference1 = $37, reference2 = $38,
			role = $39, created_at = $40, updated_at = $41
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, employeeArgs(emp)...)
	if err != nil {
		return fmt.Errorf("failed to update employee with id %s: %w", emp.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// DeleteByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) DeleteByID(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
