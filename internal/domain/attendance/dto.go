package attendance

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/export"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
)

// ReportPageSize is the fixed number of summaries per report page.
const ReportPageSize = 10

// ========================================
// REPORT DTOs
// ========================================

// ReportFilter is the view state of the report screen: selected date, search
// text and current page.
type ReportFilter struct {
	Date   string `json:"date,omitempty"`   // YYYY-MM-DD
	Search string `json:"search,omitempty"` // employee id or first name
	Page   int    `json:"page"`
}

func (f *ReportFilter) Validate() error {
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

	f.Date = strings.TrimSpace(f.Date)
	if f.Date != "" {
		if _, valid := validator.IsValidDate(f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SummaryResponse struct {
	Date            string  `json:"date"`
	EmployeeID      string  `json:"employee_id"`
	FirstName       string  `json:"first_name"`
	Shift           string  `json:"shift"`
	Status          string  `json:"status"`
	FirstClockIn    *string `json:"first_clock_in"`
	LastClockOut    *string `json:"last_clock_out"`
	TotalHours      string  `json:"total_hours"`
	TotalDuration   string  `json:"total_duration"`
	Present         string  `json:"present"`
	Remarks         string  `json:"remarks"`
	RemarksEditedAt *string `json:"remarks_edited_at"`
	PunchCount      int     `json:"punch_count"`
}

type ReportResponse struct {
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Showing    string            `json:"showing"`
	Pages      []int             `json:"pages"`
	Message    string            `json:"message,omitempty"`
	Records    []SummaryResponse `json:"records"`
}

// ========================================
// EXPORT DTOs
// ========================================

type ExportRequest struct {
	Date   string        `json:"date,omitempty"`
	Search string        `json:"search,omitempty"`
	Format export.Format `json:"format"`
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Date = strings.TrimSpace(r.Date)
	if r.Date != "" {
		if _, valid := validator.IsValidDate(r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Format == "" {
		r.Format = export.FormatXLSX
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
// REMARKS DTOs
// ========================================

type UpdateRemarksRequest struct {
	EmployeeID string `json:"employee_id"`
	FirstName  string `json:"first_name"`
	Date       string `json:"date"` // YYYY-MM-DD
	Remarks    string `json:"remarks"`
}

func (r *UpdateRemarksRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(strings.TrimSpace(r.Date)); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(r.Remarks) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "remarks",
			Message: "remarks must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// IMPORT DTOs
// ========================================

type ImportRecord struct {
	EmployeeID string         `json:"employeeId"`
	FirstName  string         `json:"firstName"`
	Date       string         `json:"date"`
	Shift      string         `json:"shift"`
	Tracker    []TrackerEntry `json:"tracker"`
}

type ImportRequest struct {
	Records []ImportRecord `json:"records"`
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "records",
			Message: "at least one record is required",
		})
	}

	for i, rec := range r.Records {
		if validator.IsEmpty(rec.Date) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("records[%d].date", i),
				Message: "date is required",
			})
		}
		if validator.IsEmpty(rec.EmployeeID) && validator.IsEmpty(rec.FirstName) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("records[%d].employeeId", i),
				Message: "employeeId or firstName is required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ImportResponse struct {
	Imported int `json:"imported"`
}
