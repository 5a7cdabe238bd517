package attendance

import (
	"context"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/export"
)

// AttendanceService defines the daily attendance report operations
type AttendanceService interface {
	// Report aggregates raw punches and returns one filtered page of summaries
	Report(ctx context.Context, filter ReportFilter) (ReportResponse, error)

	// Export serializes the whole filtered set to a spreadsheet or CSV file
	Export(ctx context.Context, req ExportRequest) (export.File, error)

	// UpdateRemarks stores new remarks for one person-day and returns its summary
	UpdateRemarks(ctx context.Context, req UpdateRemarksRequest) (SummaryResponse, error)

	// Import stores raw punch records delivered by a device sync
	Import(ctx context.Context, req ImportRequest) (ImportResponse, error)
}
