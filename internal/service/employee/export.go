package employee

import (
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/export"
	"github.com/shopspring/decimal"
)

const exportSheet = "Employees"

var exportHeaders = []string{
	// Personal
	"Employee ID", "First Name", "Last Name", "Gender", "Date of Birth",
	"Blood Group", "Marital Status", "Father/Husband Name",
	// Employment
	"Department", "Branch", "Date of Joining", "Experience", "Shift", "Shift Time",
	"Position", "Employment Status", "Previous Experience (years)",
	"Current Company Experience (years)", "Enrollment Number", "Casual Leave", "Qualifications",
	// Contact
	"Email", "Phone", "Emergency Contact", "Address",
	// Financial
	"Aadhar Number", "ESI Number", "PAN Number", "Account Number", "IFSC Code",
	"Gross Salary", "Salary (Net)",
	// References
	"Reference 1", "Reference 2",
}

// ExportTable lays out employees as export rows. Missing text renders N/A,
// missing counts render 0 and salaries carry the rupee sign.
func ExportTable(employees []employee.Employee, today time.Time) export.Table {
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{
			orNA(e.EmployeeID),
			orNA(e.FirstName),
			orNA(e.LastName),
			orNA(e.Gender),
			orNA(e.DateOfBirth),
			orNA(e.BloodGroup),
			orNA(e.MaritalStatus),
			orNA(e.FatherOrHusbandName),
			orNA(e.Department),
			orNA(e.Branch),
			orNA(e.DateOfJoining),
			Experience(e.DateOfJoining, today),
			orNA(e.Shift),
			orNA(e.ShiftTime),
			orNA(e.Position),
			capitalize(orNA(e.EmploymentStatus)),
			orZero(e.PreviousExperience),
			orZero(e.CurrentCompanyExperience),
			orNA(e.EnrollmentNumber),
			strconv.Itoa(e.CasualLeave),
			orNA(e.Qualifications),
			orNA(e.Email),
			orNA(e.Phone),
			orNA(e.EmergencyContact),
			orNA(e.Address),
			orNA(e.AadharNumber),
			orNA(e.ESINumber),
			orNA(e.PANNumber),
			orNA(e.AccountNumber),
			orNA(e.IFSCCode),
			rupees(e.SalaryGross),
			rupees(e.SalaryNet),
			orNA(e.Reference1),
			orNA(e.Reference2),
		})
	}
	return export.Table{SheetName: exportSheet, Headers: exportHeaders, Rows: rows}
}

// ExportBaseName is the download name without extension.
func ExportBaseName(today time.Time) string {
	return "employees_" + today.Format("2006-01-02")
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return notAvailable
	}
	return v
}

func orZero(v string) string {
	if strings.TrimSpace(v) == "" {
		return "0"
	}
	return v
}

func capitalize(v string) string {
	if v == "" {
		return v
	}
	return strings.ToUpper(v[:1]) + v[1:]
}

func rupees(d decimal.Decimal) string {
	if d.IsZero() {
		return "₹0"
	}
	return "₹" + d.String()
}
