package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// ListAll implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListAll(ctx context.Context) ([]attendance.RawRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, first_name, date, shift, tracker, remarks, remarks_edited_at
		FROM attendance_records
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	records := []attendance.RawRecord{}
	for rows.Next() {
		var rec attendance.RawRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.FirstName, &rec.Date, &rec.Shift,
			&rec.Tracker, &rec.Remarks, &rec.RemarksEditedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// UpdateRemarks implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpdateRemarks(ctx context.Context, ids []string, remarks string, editedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET remarks = $1, remarks_edited_at = $2
		WHERE id = ANY($3)
	`

	tag, err := q.Exec(ctx, query, remarks, editedAt.UTC().Format(time.RFC3339), ids)
	if err != nil {
		return fmt.Errorf("failed to update remarks: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// Insert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Insert(ctx context.Context, records []attendance.RawRecord) (int, error) {
	query := `
		INSERT INTO attendance_records (id, employee_id, first_name, date, shift, tracker, remarks, remarks_edited_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	err := WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, rec := range records {
			id := rec.ID
			if id == "" {
				id = uuid.Must(uuid.NewV7()).String()
			}
			tracker := rec.Tracker
			if tracker == nil {
				tracker = []attendance.TrackerEntry{}
			}
			if _, err := tx.Exec(ctx, query,
				id, rec.EmployeeID, rec.FirstName, rec.Date, rec.Shift,
				tracker, rec.Remarks, rec.RemarksEditedAt,
			); err != nil {
				return fmt.Errorf("failed to insert attendance record: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
