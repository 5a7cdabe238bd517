package employee

import (
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/export"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// EmployeePageSize is the fixed number of employees per list page.
const EmployeePageSize = 10

// ========================================
// CREATE / UPDATE DTOs
// ========================================

// EmployeeFields holds every editable employee attribute.
type EmployeeFields struct {
	IDNumber            string `json:"id_number"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	Gender              string `json:"gender"`
	DateOfBirth         string `json:"date_of_birth"`
	BloodGroup          string `json:"blood_group"`
	MaritalStatus       string `json:"marital_status"`
	FatherOrHusbandName string `json:"father_or_husband_name"`

	EmployeeID               string `json:"employee_id"`
	Department               string `json:"department"`
	Position                 string `json:"position"`
	Branch                   string `json:"branch"`
	DateOfJoining            string `json:"date_of_joining"`
	Shift                    string `json:"shift"`
	ShiftTime                string `json:"shift_time"`
	EmploymentStatus         string `json:"employment_status"`
	EnrollmentNumber         string `json:"enrollment_number"`
	Qualifications           string `json:"qualifications"`
	PreviousExperience       string `json:"previous_experience"`
	CurrentCompanyExperience string `json:"current_company_experience"`
	CasualLeave              int    `json:"casual_leave"`

	Email            string `json:"email"`
	Phone            string `json:"phone"`
	EmergencyContact string `json:"emergency_contact"`
	Address          string `json:"address"`

	AadharNumber  string          `json:"aadhar_number"`
	PANNumber     string          `json:"pan_number"`
	UANPFNumber   string          `json:"uan_pf_number"`
	ESINumber     string          `json:"esi_number"`
	AccountNumber string          `json:"account_number"`
	IFSCCode      string          `json:"ifsc_code"`
	SalaryGross   decimal.Decimal `json:"salary_gross"`
	SalaryNet     decimal.Decimal `json:"salary_net"`

	ReferredBy string `json:"referred_by"`
	Reference1 string `json:"reference1"`
	Reference2 string `json:"reference2"`

	Role string `json:"role"`
}

func (f *EmployeeFields) validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	f.EmployeeID = strings.TrimSpace(f.EmployeeID)
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.EmploymentStatus = strings.ToLower(strings.TrimSpace(f.EmploymentStatus))

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(f.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	} else if len(f.FirstName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(f.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(f.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if f.Phone != "" && !validator.IsValidPhoneNumber(f.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a 10 digit mobile number",
		})
	}

	if f.DateOfBirth != "" {
		if _, valid := validator.IsValidDate(f.DateOfBirth); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}

	if f.DateOfJoining != "" {
		if _, valid := validator.IsValidDate(f.DateOfJoining); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_joining",
				Message: "date_of_joining must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EmploymentStatus != "" {
		validStatuses := []string{
			string(EmploymentStatusActive),
			string(EmploymentStatusProbation),
			string(EmploymentStatusInactive),
			string(EmploymentStatusTerminated),
		}
		if !validator.IsInSlice(f.EmploymentStatus, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "employment_status",
				Message: "employment_status must be one of: active, probation, inactive, terminated",
			})
		}
	}

	if f.CasualLeave < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "casual_leave",
			Message: "casual_leave must not be negative",
		})
	}

	if f.AadharNumber != "" && !validator.IsValidAadhaar(f.AadharNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "aadhar_number",
			Message: "aadhar_number must be 12 digits",
		})
	}
	if f.PANNumber != "" && !validator.IsValidPAN(f.PANNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "pan_number",
			Message: "pan_number must look like ABCDE1234F",
		})
	}
	if f.IFSCCode != "" && !validator.IsValidIFSC(f.IFSCCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "ifsc_code",
			Message: "ifsc_code must look like SBIN0001234",
		})
	}

	if f.SalaryGross.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_gross",
			Message: "salary_gross must not be negative",
		})
	}
	if f.SalaryNet.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_net",
			Message: "salary_net must not be negative",
		})
	}

	if f.Role == "" {
		f.Role = string(user.RoleUser)
	}
	if !user.Role(f.Role).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: user, admin, hr, manager",
		})
	}

	return errs
}

// Apply copies the fields onto an employee record.
func (f EmployeeFields) Apply(e *Employee) {
	e.IDNumber = f.IDNumber
	e.FirstName = f.FirstName
	e.LastName = f.LastName
	e.Gender = f.Gender
	e.DateOfBirth = f.DateOfBirth
	e.BloodGroup = f.BloodGroup
	e.MaritalStatus = f.MaritalStatus
	e.FatherOrHusbandName = f.FatherOrHusbandName
	e.EmployeeID = f.EmployeeID
	e.Department = f.Department
	e.Position = f.Position
	e.Branch = f.Branch
	e.DateOfJoining = f.DateOfJoining
	e.Shift = f.Shift
	e.ShiftTime = f.ShiftTime
	e.EmploymentStatus = f.EmploymentStatus
	e.EnrollmentNumber = f.EnrollmentNumber
	e.Qualifications = f.Qualifications
	e.PreviousExperience = f.PreviousExperience
	e.CurrentCompanyExperience = f.CurrentCompanyExperience
	e.CasualLeave = f.CasualLeave
	e.Email = f.Email
	e.Phone = f.Phone
	e.EmergencyContact = f.EmergencyContact
	e.Address = f.Address
	e.AadharNumber = f.AadharNumber
	e.PANNumber = strings.ToUpper(f.PANNumber)
	e.UANPFNumber = f.UANPFNumber
	e.ESINumber = f.ESINumber
	e.AccountNumber = f.AccountNumber
	e.IFSCCode = strings.ToUpper(f.IFSCCode)
	e.SalaryGross = f.SalaryGross
	e.SalaryNet = f.SalaryNet
	e.ReferredBy = f.ReferredBy
	e.Reference1 = f.Reference1
	e.Reference2 = f.Reference2
	e.Role = user.Role(f.Role)
}

type CreateEmployeeRequest struct {
	EmployeeFields
	Password string `json:"password"`
}

func (r *CreateEmployeeRequest) Validate() error {
	errs := r.EmployeeFields.validate()

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID string `json:"-"`
	EmployeeFields
}

func (r *UpdateEmployeeRequest) Validate() error {
	errs := r.EmployeeFields.validate()

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// LIST / EXPORT DTOs
// ========================================

type EmployeeFilter struct {
	Search     string `json:"search,omitempty"`
	Department string `json:"department,omitempty"`
	Branch     string `json:"branch,omitempty"`
	Status     string `json:"status,omitempty"`
	Page       int    `json:"page"`
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExportEmployeesRequest struct {
	EmployeeFilter
	Format export.Format `json:"format"`
}

func (r *ExportEmployeesRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Format == "" {
		r.Format = export.FormatCSV
	}
	if !r.Format.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be one of: xlsx, csv",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSE DTOs
// ========================================

type EmployeeResponse struct {
	ID  string `json:"id"`
	UID string `json:"uid,omitempty"`
	EmployeeFields
	FullName   string `json:"full_name"`
	Experience string `json:"experience"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type ListEmployeeResponse struct {
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Showing    string             `json:"showing"`
	Pages      []int              `json:"pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
