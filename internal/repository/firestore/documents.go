package firestore

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

const (
	attendanceCollection = "attendance"
	employeeCollection   = "employees"
)

type trackerDoc struct {
	ClockIn  string `firestore:"clockIn,omitempty"`
	ClockOut string `firestore:"clockOut,omitempty"`
}

// attendanceDoc mirrors documents written by the attendance devices. The date
// field holds either a string or a timestamp depending on the writer.
type attendanceDoc struct {
	EmployeeID      string       `firestore:"employeeId"`
	FirstName       string       `firestore:"firstName"`
	Date            any          `firestore:"date"`
	Shift           string       `firestore:"shift,omitempty"`
	Tracker         []trackerDoc `firestore:"tracker"`
	Remarks         string       `firestore:"remarks,omitempty"`
	RemarksEditedAt string       `firestore:"remarksEditedAt,omitempty"`
}

func (d attendanceDoc) toRecord(id string, loc *time.Location) attendance.RawRecord {
	rec := attendance.RawRecord{
		ID:              id,
		EmployeeID:      d.EmployeeID,
		FirstName:       d.FirstName,
		Date:            asDate(d.Date, loc),
		Shift:           d.Shift,
		Remarks:         d.Remarks,
		RemarksEditedAt: d.RemarksEditedAt,
	}
	for _, t := range d.Tracker {
		rec.Tracker = append(rec.Tracker, attendance.TrackerEntry{ClockIn: t.ClockIn, ClockOut: t.ClockOut})
	}
	return rec
}

func attendanceDocOf(rec attendance.RawRecord) attendanceDoc {
	doc := attendanceDoc{
		EmployeeID: rec.EmployeeID,
		FirstName:  rec.FirstName,
		Date:       rec.Date,
		Shift:      rec.Shift,
		Tracker:    []trackerDoc{},
		Remarks:    rec.Remarks,

		RemarksEditedAt: rec.RemarksEditedAt,
	}
	for _, t := range rec.Tracker {
		doc.Tracker = append(doc.Tracker, trackerDoc{ClockIn: t.ClockIn, ClockOut: t.ClockOut})
	}
	return doc
}

// employeeDoc mirrors the employees collection. Older documents carry
// grossSalary and a references array instead of the flat fields.
type employeeDoc struct {
	UID                      string   `firestore:"uid,omitempty"`
	IDNumber                 string   `firestore:"idNumber"`
	FirstName                string   `firestore:"firstName"`
	LastName                 string   `firestore:"lastName"`
	Gender                   string   `firestore:"gender"`
	DateOfBirth              string   `firestore:"dateOfBirth"`
	BloodGroup               string   `firestore:"bloodGroup"`
	MaritalStatus            string   `firestore:"maritalStatus"`
	FatherOrHusbandName      string   `firestore:"fatherOrHusbandName"`
	EmployeeID               string   `firestore:"employeeid"`
	Department               string   `firestore:"department"`
	Position                 string   `firestore:"position"`
	Branch                   string   `firestore:"branch"`
	DateOfJoining            string   `firestore:"dateOfJoining"`
	Shift                    string   `firestore:"shift"`
	ShiftTime                string   `firestore:"shiftTime"`
	EmploymentStatus         string   `firestore:"employmentStatus"`
	EnrollmentNumber         string   `firestore:"enrollmentNumber"`
	Qualifications           string   `firestore:"qualifications"`
	PreviousExperience       any      `firestore:"previousExperience"`
	CurrentCompanyExperience any      `firestore:"currentCompanyExperience"`
	CasualLeave              any      `firestore:"casualLeave"`
	Email                    string   `firestore:"email"`
	Phone                    string   `firestore:"phone"`
	EmergencyContact         string   `firestore:"emergencyContact"`
	Address                  string   `firestore:"address"`
	AadharNumber             string   `firestore:"aadharNumber"`
	PANNumber                string   `firestore:"panNumber"`
	UANPFNumber              string   `firestore:"uanPfNumber"`
	ESINumber                string   `firestore:"esiNumber"`
	AccountNumber            string   `firestore:"accountNumber"`
	IFSCCode                 string   `firestore:"ifscCode"`
	SalaryGross              any      `firestore:"salaryGross"`
	SalaryNet                any      `firestore:"salaryNet"`
	GrossSalary              any      `firestore:"grossSalary,omitempty"`
	ReferredBy               string   `firestore:"referredBy"`
	Reference1               string   `firestore:"reference1"`
	Reference2               string   `firestore:"reference2"`
	References               []string `firestore:"references,omitempty"`
	Role                     string   `firestore:"role"`
	CreatedAt                string   `firestore:"createdAt"`
	UpdatedAt                string   `firestore:"updatedAt"`
}

func (d employeeDoc) toEmployee(id string) employee.Employee {
	emp := employee.Employee{
		ID:                       id,
		UID:                      d.UID,
		IDNumber:                 d.IDNumber,
		FirstName:                d.FirstName,
		LastName:                 d.LastName,
		Gender:                   d.Gender,
		DateOfBirth:              d.DateOfBirth,
		BloodGroup:               d.BloodGroup,
		MaritalStatus:            d.MaritalStatus,
		FatherOrHusbandName:      d.FatherOrHusbandName,
		EmployeeID:               d.EmployeeID,
		Department:               d.Department,
		Position:                 d.Position,
		Branch:                   d.Branch,
		DateOfJoining:            d.DateOfJoining,
		Shift:                    d.Shift,
		ShiftTime:                d.ShiftTime,
		EmploymentStatus:         d.EmploymentStatus,
		EnrollmentNumber:         d.EnrollmentNumber,
		Qualifications:           d.Qualifications,
		PreviousExperience:       asString(d.PreviousExperience),
		CurrentCompanyExperience: asString(d.CurrentCompanyExperience),
		CasualLeave:              int(asDecimal(d.CasualLeave).IntPart()),
		Email:                    d.Email,
		Phone:                    d.Phone,
		EmergencyContact:         d.EmergencyContact,
		Address:                  d.Address,
		AadharNumber:             d.AadharNumber,
		PANNumber:                d.PANNumber,
		UANPFNumber:              d.UANPFNumber,
		ESINumber:                d.ESINumber,
		AccountNumber:            d.AccountNumber,
		IFSCCode:                 d.IFSCCode,
		SalaryGross:              asDecimal(d.SalaryGross),
		SalaryNet:                asDecimal(d.SalaryNet),
		ReferredBy:               d.ReferredBy,
		Reference1:               d.Reference1,
		Reference2:               d.Reference2,
		Role:                     user.Role(d.Role),
		CreatedAt:                asTime(d.CreatedAt),
		UpdatedAt:                asTime(d.UpdatedAt),
	}

	if emp.SalaryGross.IsZero() && d.GrossSalary != nil {
		emp.SalaryGross = asDecimal(d.GrossSalary)
	}
	if emp.Reference1 == "" && len(d.References) > 0 {
		emp.Reference1 = d.References[0]
	}
	if emp.Reference2 == "" && len(d.References) > 1 {
		emp.Reference2 = d.References[1]
	}
	if emp.Role == "" {
		emp.Role = user.RoleUser
	}

	return emp
}

func employeeDocOf(emp employee.Employee) employeeDoc {
	return employeeDoc{
		UID:                      emp.UID,
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
		CasualLeave:              int64(emp.CasualLeave),
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
		SalaryGross:              emp.SalaryGross.InexactFloat64(),
		SalaryNet:                emp.SalaryNet.InexactFloat64(),
		ReferredBy:               emp.ReferredBy,
		Reference1:               emp.Reference1,
		Reference2:               emp.Reference2,
		Role:                     string(emp.Role),
		CreatedAt:                formatTime(emp.CreatedAt),
		UpdatedAt:                formatTime(emp.UpdatedAt),
	}
}

// asString flattens the loosely typed values older documents carry.
func asString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// asDate keeps string dates as written. Timestamps become the local calendar
// day in loc, matching the local-naive dates the report groups by.
func asDate(v any, loc *time.Location) string {
	if t, ok := v.(time.Time); ok {
		return t.In(loc).Format(time.DateOnly)
	}
	return asString(v)
}

func asDecimal(v any) decimal.Decimal {
	switch val := v.(type) {
	case int64:
		return decimal.NewFromInt(val)
	case float64:
		return decimal.NewFromFloat(val)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(val))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

func asTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
