package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/export"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/utils"
)

const storeUnavailableMessage = "attendance data is temporarily unavailable, please retry shortly"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	now func() time.Time
}

// NewAttendanceService builds the report service over a raw record store.
func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		now:                  time.Now,
	}
}

// Report implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Report(ctx context.Context, filter attendance.ReportFilter) (attendance.ReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ReportResponse{}, err
	}

	raw, err := s.AttendanceRepository.ListAll(ctx)
	if err != nil {
		// A failed fetch degrades to an empty report instead of an error
		slog.Error("failed to fetch attendance records", "error", err)
		return attendance.ReportResponse{
			Page:    filter.Page,
			Limit:   attendance.ReportPageSize,
			Showing: "0 of 0",
			Pages:   []int{},
			Message: storeUnavailableMessage,
			Records: []attendance.SummaryResponse{},
		}, nil
	}

	filtered := Filter(Aggregate(raw), filter.Date, filter.Search)
	page := utils.Paginate(len(filtered), filter.Page, attendance.ReportPageSize)

	records := make([]attendance.SummaryResponse, 0, page.End-page.Start)
	for _, summary := range filtered[page.Start:page.End] {
		records = append(records, toResponse(summary))
	}

	return attendance.ReportResponse{
		TotalCount: page.TotalCount,
		Page:       page.Number,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
		Showing:    page.Showing(),
		Pages:      page.Window(),
		Records:    records,
	}, nil
}

// Export implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Export(ctx context.Context, req attendance.ExportRequest) (export.File, error) {
	if err := req.Validate(); err != nil {
		return export.File{}, err
	}

	raw, err := s.AttendanceRepository.ListAll(ctx)
	if err != nil {
		slog.Error("failed to fetch attendance records for export", "error", err)
		return export.File{}, fmt.Errorf("%w: %v", attendance.ErrStoreUnavailable, err)
	}

	filtered := Filter(Aggregate(raw), req.Date, req.Search)
	if len(filtered) == 0 {
		return export.File{}, attendance.ErrNoDataToExport
	}

	file, err := export.Render(ExportTable(filtered), req.Format, ExportBaseName(req.Date))
	if err != nil {
		return export.File{}, fmt.Errorf("failed to render attendance export: %w", err)
	}
	return file, nil
}

// UpdateRemarks implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateRemarks(ctx context.Context, req attendance.UpdateRemarksRequest) (attendance.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SummaryResponse{}, err
	}

	raw, err := s.AttendanceRepository.ListAll(ctx)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("%w: %v", attendance.ErrStoreUnavailable, err)
	}

	key := KeyOf(req.EmployeeID, req.FirstName, req.Date)
	var target *attendance.GroupedRecord
	for _, g := range Group(raw) {
		if g.Key == key {
			target = g
			break
		}
	}
	if target == nil || len(target.SourceIDs) == 0 {
		return attendance.SummaryResponse{}, attendance.ErrAttendanceNotFound
	}

	now := s.now().UTC().Truncate(time.Second)
	if err := s.AttendanceRepository.UpdateRemarks(ctx, target.SourceIDs, req.Remarks, now); err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to update remarks: %w", err)
	}

	summary := Summarize(target)
	ApplyRemarks(&summary, req.Remarks, now)

	slog.Info("attendance remarks updated",
		"employee_id", summary.EmployeeID,
		"date", summary.Date,
		"records", len(target.SourceIDs),
	)

	return toResponse(summary), nil
}

// Import implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Import(ctx context.Context, req attendance.ImportRequest) (attendance.ImportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ImportResponse{}, err
	}

	records := make([]attendance.RawRecord, 0, len(req.Records))
	for _, r := range req.Records {
		records = append(records, attendance.RawRecord{
			EmployeeID: r.EmployeeID,
			FirstName:  r.FirstName,
			Date:       r.Date,
			Shift:      r.Shift,
			Tracker:    r.Tracker,
		})
	}

	n, err := s.AttendanceRepository.Insert(ctx, records)
	if err != nil {
		return attendance.ImportResponse{}, fmt.Errorf("failed to import attendance records: %w", err)
	}

	slog.Info("attendance records imported", "count", n)
	return attendance.ImportResponse{Imported: n}, nil
}
