package cron

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/export"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/storage"
)

// SnapshotDir is the storage prefix for daily attendance report files.
const SnapshotDir = "reports/attendance"

// SnapshotJobs writes the previous day's attendance report to file storage
// once a day.
type SnapshotJobs struct {
	attendanceService attendance.AttendanceService
	store             storage.FileStorage
	hour              int
	now               func() time.Time
}

// NewSnapshotJobs stores snapshots in store during the given hour of the day.
func NewSnapshotJobs(attendanceService attendance.AttendanceService, store storage.FileStorage, hour int) *SnapshotJobs {
	return &SnapshotJobs{
		attendanceService: attendanceService,
		store:             store,
		hour:              hour,
		now:               time.Now,
	}
}

func (j *SnapshotJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("daily_attendance_snapshot", time.Hour, j.DailySnapshot)
}

// DailySnapshot only does work during the configured hour.
func (j *SnapshotJobs) DailySnapshot(ctx context.Context) error {
	now := j.now()
	if now.Hour() != j.hour {
		return nil
	}

	_, err := j.Snapshot(ctx, now.AddDate(0, 0, -1).Format("2006-01-02"))
	return err
}

// Snapshot exports the report for date into storage and returns the stored
// key. It returns an empty key when the snapshot already exists or the day
// has no attendance.
func (j *SnapshotJobs) Snapshot(ctx context.Context, date string) (string, error) {
	key := path.Join(SnapshotDir, "Attendance_"+date+".xlsx")

	exists, err := j.store.Exists(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to check snapshot %s: %w", key, err)
	}
	if exists {
		slog.Debug("attendance snapshot already exists", "key", key)
		return "", nil
	}

	file, err := j.attendanceService.Export(ctx, attendance.ExportRequest{Date: date, Format: export.FormatXLSX})
	if err != nil {
		if errors.Is(err, attendance.ErrNoDataToExport) {
			slog.Info("no attendance to snapshot", "date", date)
			return "", nil
		}
		return "", fmt.Errorf("failed to export attendance for %s: %w", date, err)
	}

	stored, err := j.store.Upload(ctx, bytes.NewReader(file.Data), key)
	if err != nil {
		return "", fmt.Errorf("failed to store snapshot %s: %w", key, err)
	}

	slog.Info("attendance snapshot stored", "date", date, "url", j.store.URL(stored), "bytes", len(file.Data))
	return stored, nil
}
