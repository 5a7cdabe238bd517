package employee

import (
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
)

// Filter applies the list screen criteria. Search matches employee id, first
// or last name as a case-insensitive substring; department and branch match
// exactly; status matches the lower-cased filter value.
func Filter(employees []employee.Employee, f employee.EmployeeFilter) []employee.Employee {
	search := strings.ToLower(f.Search)
	status := strings.ToLower(f.Status)

	out := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		if search != "" &&
			!strings.Contains(strings.ToLower(e.EmployeeID), search) &&
			!strings.Contains(strings.ToLower(e.FirstName), search) &&
			!strings.Contains(strings.ToLower(e.LastName), search) {
			continue
		}
		if f.Department != "" && e.Department != f.Department {
			continue
		}
		if f.Branch != "" && e.Branch != f.Branch {
			continue
		}
		if status != "" && e.EmploymentStatus != status {
			continue
		}
		out = append(out, e)
	}
	return out
}
