package firestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type attendanceRepositoryImpl struct {
	client *fs.Client
	loc    *time.Location
}

// NewAttendanceRepository reads attendance documents. Timestamp dates are
// reduced to the calendar day they fall on in loc.
func NewAttendanceRepository(client *fs.Client, loc *time.Location) attendance.AttendanceRepository {
	if loc == nil {
		loc = time.Local
	}
	return &attendanceRepositoryImpl{client: client, loc: loc}
}

// ListAll implements attendance.AttendanceRepository. Documents come back in
// document id order.
func (r *attendanceRepositoryImpl) ListAll(ctx context.Context) ([]attendance.RawRecord, error) {
	iter := r.client.Collection(attendanceCollection).Documents(ctx)
	defer iter.Stop()

	records := []attendance.RawRecord{}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read attendance documents: %w", err)
		}

		var d attendanceDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to decode attendance document %s: %w", doc.Ref.ID, err)
		}
		records = append(records, d.toRecord(doc.Ref.ID, r.loc))
	}

	return records, nil
}

// UpdateRemarks implements attendance.AttendanceRepository. All documents are
// updated in one transaction so a group never ends up half edited.
func (r *attendanceRepositoryImpl) UpdateRemarks(ctx context.Context, ids []string, remarks string, editedAt time.Time) error {
	col := r.client.Collection(attendanceCollection)
	updates := []fs.Update{
		{Path: "remarks", Value: remarks},
		{Path: "remarksEditedAt", Value: editedAt.UTC().Format(time.RFC3339)},
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		for _, id := range ids {
			if err := tx.Update(col.Doc(id), updates); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update remarks: %w", err)
	}
	return nil
}

// Insert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Insert(ctx context.Context, records []attendance.RawRecord) (int, error) {
	col := r.client.Collection(attendanceCollection)
	bw := r.client.BulkWriter(ctx)

	jobs := make([]*fs.BulkWriterJob, 0, len(records))
	for _, rec := range records {
		ref := col.NewDoc()
		if rec.ID != "" {
			ref = col.Doc(rec.ID)
		}
		job, err := bw.Create(ref, attendanceDocOf(rec))
		if err != nil {
			bw.End()
			return 0, fmt.Errorf("failed to queue attendance document: %w", err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	written := 0
	var errs []error
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			errs = append(errs, err)
			continue
		}
		written++
	}
	if len(errs) > 0 {
		return written, fmt.Errorf("failed to write %d attendance documents: %w", len(errs), errors.Join(errs...))
	}

	return written, nil
}
