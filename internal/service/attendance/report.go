package attendance

import (
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/export"
)

const exportSheet = "Attendance"

var exportHeaders = []string{
	"Date",
	"EmployeeID",
	"Name",
	"Shift",
	"Status",
	"ClockIn",
	"ClockOut",
	"TotalActiveHours",
	"TotalDuration",
	"Attendance",
	"Remarks",
	"RemarksEditedAt",
}

// Filter keeps summaries on the selected date whose employee id or first
// name contains the search text, case-insensitively. Empty criteria match
// everything.
func Filter(summaries []attendance.Summary, date, search string) []attendance.Summary {
	search = strings.ToLower(search)
	out := make([]attendance.Summary, 0, len(summaries))
	for _, s := range summaries {
		if date != "" && s.Date != date {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(s.EmployeeID), search) &&
			!strings.Contains(strings.ToLower(s.FirstName), search) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// ExportTable lays out the filtered set as spreadsheet rows, one per summary.
func ExportTable(summaries []attendance.Summary) export.Table {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Date,
			s.EmployeeID,
			s.FirstName,
			s.Shift,
			string(s.Status),
			orPlaceholder(s.FirstClockIn),
			orPlaceholder(s.LastClockOut),
			s.TotalHours,
			s.TotalDuration,
			string(s.Present),
			s.Remarks,
			s.RemarksEditedAt,
		})
	}
	return export.Table{SheetName: exportSheet, Headers: exportHeaders, Rows: rows}
}

// ExportBaseName is the download name without extension.
func ExportBaseName(date string) string {
	if date == "" {
		date = "All"
	}
	return "Attendance_" + date
}

func orPlaceholder(v string) string {
	if v == "" {
		return attendance.PlaceholderDuration
	}
	return v
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func toResponse(s attendance.Summary) attendance.SummaryResponse {
	return attendance.SummaryResponse{
		Date:            s.Date,
		EmployeeID:      s.EmployeeID,
		FirstName:       s.FirstName,
		Shift:           s.Shift,
		Status:          string(s.Status),
		FirstClockIn:    optional(s.FirstClockIn),
		LastClockOut:    optional(s.LastClockOut),
		TotalHours:      s.TotalHours,
		TotalDuration:   s.TotalDuration,
		Present:         string(s.Present),
		Remarks:         s.Remarks,
		RemarksEditedAt: optional(s.RemarksEditedAt),
		PunchCount:      len(s.Tracker),
	}
}
