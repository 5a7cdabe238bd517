package fixtures

import "github.com/cmlabs-hris/hris-admin-go/internal/domain/user"

// Option is one dropdown entry. Key is what gets stored on the employee record.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Options is the full set of dropdown data used by the employee forms.
type Options struct {
	Departments         []Option            `json:"departments"`
	DepartmentPositions map[string][]Option `json:"department_positions"`
	Branches            []Option            `json:"branches"`
	Shifts              []Option            `json:"shifts"`
	Genders             []Option            `json:"genders"`
	MaritalStatuses     []Option            `json:"marital_statuses"`
	EmploymentStatuses  []Option            `json:"employment_statuses"`
	BloodGroups         []Option            `json:"blood_groups"`
	Roles               []Option            `json:"roles"`
}

// ==========================================
// EMPLOYMENT
// ==========================================

var departments = []Option{
	{Key: "Management", Label: "Management"},
	{Key: "Project_Management", Label: "Project Management"},
	{Key: "HR_and_Admin", Label: "HR/Admin"},
	{Key: "IT_and_Systems", Label: "IT & Systems"},
	{Key: "Vendor_Management", Label: "Vendor Manager"},
	{Key: "Quality_Management", Label: "Quality Management"},
	{Key: "Finance", Label: "Finance"},
}

var departmentPositions = map[string][]Option{
	"Management": {
		{Key: "COO", Label: "Chief Operating Officer"},
	},
	"Project_Management": {
		{Key: "General_Manager", Label: "General Manager"},
		{Key: "Project_management", Label: "Project Manager"},
		{Key: "Asst_Project_management", Label: "Assistant PM"},
		{Key: "Final_Checker", Label: "Project Leader"},
		{Key: "Production", Label: "Data Entry"},
		{Key: "Quality", Label: "Quality Control"},
		{Key: "Quality_PR", Label: "Proof Reader"},
		{Key: "Random_Quality", Label: "Random QA"},
	},
	"HR_and_Admin": {
		{Key: "HR", Label: "HR Manager"},
		{Key: "AHR", Label: "HR Executive"},
		{Key: "AD", Label: "Admin Assistant"},
		{Key: "Basic_training", Label: "Trainer"},
	},
	"IT_and_Systems": {
		{Key: "Manager", Label: "IT Manager"},
		{Key: "Asst_Manager", Label: "IT Assistant Manager"},
		{Key: "System_Admin", Label: "System Admin"},
		{Key: "Software_team", Label: "Software Engineer"},
		{Key: "Support", Label: "IT Support"},
	},
	"Quality_Management": {
		{Key: "Quality_Manager", Label: "Quality Manager"},
		{Key: "Analyst", Label: "Quality Analyst"},
	},
	"Finance": {
		{Key: "Finance_management", Label: "Finance Manager"},
		{Key: "Account", Label: "Accountant"},
		{Key: "Billing", Label: "Billing Executive"},
	},
	"Vendor_Management": {
		{Key: "Vendor_management", Label: "Vendor Manager"},
		{Key: "Asst_Vendor", Label: "Vendor Assistant"},
	},
}

var branches = []Option{
	{Key: "TDM", Label: "Tindivanam"},
	{Key: "Chennai", Label: "Chennai"},
	{Key: "Kanchipuram", Label: "Kanchipuram"},
	{Key: "Madurai", Label: "Madurai"},
}

var shifts = []Option{
	{Key: "morning", Label: "Morning (9AM-6PM)"},
	{Key: "evening", Label: "Evening (2PM-11PM)"},
	{Key: "night", Label: "Night (10PM-7AM)"},
}

var employmentStatuses = []Option{
	{Key: "active", Label: "Active"},
	{Key: "probation", Label: "Probation"},
	{Key: "inactive", Label: "Inactive"},
	{Key: "terminated", Label: "Terminated"},
}

// ==========================================
// PERSONAL
// ==========================================

var genders = []Option{
	{Key: "male", Label: "Male"},
	{Key: "female", Label: "Female"},
	{Key: "other", Label: "Other"},
}

var maritalStatuses = []Option{
	{Key: "single", Label: "Single"},
	{Key: "married", Label: "Married"},
	{Key: "divorced", Label: "Divorced"},
	{Key: "widowed", Label: "Widowed"},
}

var bloodGroups = []Option{
	{Key: "A+", Label: "A+"},
	{Key: "A-", Label: "A-"},
	{Key: "B+", Label: "B+"},
	{Key: "B-", Label: "B-"},
	{Key: "AB+", Label: "AB+"},
	{Key: "AB-", Label: "AB-"},
	{Key: "O+", Label: "O+"},
	{Key: "O-", Label: "O-"},
}

var roleLabels = map[user.Role]string{
	user.RoleUser:    "User",
	user.RoleAdmin:   "Admin",
	user.RoleHR:      "HR",
	user.RoleManager: "Manager",
}

// GetOptions returns a fresh copy of every dropdown list.
func GetOptions() Options {
	positions := make(map[string][]Option, len(departmentPositions))
	for dept, list := range departmentPositions {
		positions[dept] = append([]Option(nil), list...)
	}

	roles := make([]Option, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, Option{Key: string(r), Label: roleLabels[r]})
	}

	return Options{
		Departments:         append([]Option(nil), departments...),
		DepartmentPositions: positions,
		Branches:            append([]Option(nil), branches...),
		Shifts:              append([]Option(nil), shifts...),
		Genders:             append([]Option(nil), genders...),
		MaritalStatuses:     append([]Option(nil), maritalStatuses...),
		EmploymentStatuses:  append([]Option(nil), employmentStatuses...),
		BloodGroups:         append([]Option(nil), bloodGroups...),
		Roles:               roles,
	}
}

// PositionsFor lists the positions offered for a department key.
func PositionsFor(department string) []Option {
	return append([]Option(nil), departmentPositions[department]...)
}
