package employee

import (
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID  string // document id
	UID string // identity account id, empty for records created before sign-in existed

	// Personal
	IDNumber            string
	FirstName           string
	LastName            string
	Gender              string
	DateOfBirth         string
	BloodGroup          string
	MaritalStatus       string
	FatherOrHusbandName string

	// Employment
	EmployeeID               string
	Department               string
	Position                 string
	Branch                   string
	DateOfJoining            string
	Shift                    string
	ShiftTime                string
	EmploymentStatus         string
	EnrollmentNumber         string
	Qualifications           string
	PreviousExperience       string
	CurrentCompanyExperience string
	CasualLeave              int

	// Contact
	Email            string
	Phone            string
	EmergencyContact string
	Address          string

	// Financial
	AadharNumber  string
	PANNumber     string
	UANPFNumber   string
	ESINumber     string
	AccountNumber string
	IFSCCode      string
	SalaryGross   decimal.Decimal
	SalaryNet     decimal.Decimal

	// References
	ReferredBy string
	Reference1 string
	Reference2 string

	Role      user.Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins first and last name.
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusProbation  EmploymentStatus = "probation"
	EmploymentStatusInactive   EmploymentStatus = "inactive"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)
