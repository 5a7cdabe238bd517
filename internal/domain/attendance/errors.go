package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNoDataToExport     = errors.New("no data found for selected filters")
	ErrInvalidFormat      = errors.New("export format must be xlsx or csv")
	ErrStoreUnavailable   = errors.New("attendance store unavailable")
)
