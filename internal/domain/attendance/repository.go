package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is the document store holding raw attendance records.
type AttendanceRepository interface {
	// ListAll returns every raw attendance record in the store
	ListAll(ctx context.Context) ([]RawRecord, error)

	// UpdateRemarks overwrites remarks and the edit timestamp on the given raw records
	UpdateRemarks(ctx context.Context, ids []string, remarks string, editedAt time.Time) error

	// Insert appends raw records as delivered by a punch device sync
	Insert(ctx context.Context, records []RawRecord) (int, error)
}
