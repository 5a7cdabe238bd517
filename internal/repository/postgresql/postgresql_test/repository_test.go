package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/identity"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== ATTENDANCE REPOSITORY TESTS =====

func TestAttendanceRepository_InsertAndList(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)

	n, err := repo.Insert(ctx, []attendance.RawRecord{
		{EmployeeID: "E1", FirstName: "Alice", Date: "2024-01-10", Shift: "general",
			Tracker: []attendance.TrackerEntry{{ClockIn: "09:00", ClockOut: "13:00"}}},
		{EmployeeID: "E1", FirstName: "Alice", Date: "2024-01-10"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.NotEmpty(t, records[0].ID)
	assert.Equal(t, []attendance.TrackerEntry{{ClockIn: "09:00", ClockOut: "13:00"}}, records[0].Tracker)
	assert.Empty(t, records[1].Tracker)
}

func TestAttendanceRepository_UpdateRemarks(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)

	_, err := repo.Insert(ctx, []attendance.RawRecord{
		{ID: "r1", EmployeeID: "E1", Date: "2024-01-10"},
		{ID: "r2", EmployeeID: "E1", Date: "2024-01-10"},
		{ID: "r3", EmployeeID: "E2", Date: "2024-01-10"},
	})
	require.NoError(t, err)

	editedAt := time.Date(2024, 1, 11, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateRemarks(ctx, []string{"r1", "r2"}, "late bus", editedAt))

	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	for _, rec := range records {
		if rec.ID == "r3" {
			assert.Empty(t, rec.Remarks)
			continue
		}
		assert.Equal(t, "late bus", rec.Remarks)
		assert.Equal(t, "2024-01-11T08:00:00Z", rec.RemarksEditedAt)
	}

	err = repo.UpdateRemarks(ctx, []string{"missing"}, "x", editedAt)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

// ===== EMPLOYEE REPOSITORY TESTS =====

func TestEmployeeRepository_CRUD(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	now := time.Now().UTC().Truncate(time.Second)
	created, err := repo.Insert(ctx, employee.Employee{
		UID:         "uid-1",
		EmployeeID:  "EMP002",
		FirstName:   "Ravi",
		Email:       "ravi@example.com",
		SalaryGross: decimal.RequireFromString("25000.50"),
		Role:        user.RoleHR,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.SalaryGross.Equal(decimal.RequireFromString("25000.50")))

	_, err = repo.Insert(ctx, employee.Employee{EmployeeID: "EMP001", FirstName: "Anu", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "EMP001", all[0].EmployeeID)

	byUID, err := repo.GetByUID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUID.ID)
	assert.Equal(t, user.RoleHR, byUID.Role)

	created.Department = "Finance"
	require.NoError(t, repo.Update(ctx, created))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Finance", got.Department)

	require.NoError(t, repo.DeleteByID(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.ErrorIs(t, repo.DeleteByID(ctx, created.ID), employee.ErrEmployeeNotFound)
}

// ===== ACCOUNT STORE TESTS =====

func TestAccountStore(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	store := postgresql.NewAccountStore(db)

	uid, err := store.CreateAccount(ctx, identity.NewAccount{Email: "admin@example.com", Password: "secret1", Role: user.RoleAdmin})
	require.NoError(t, err)

	_, err = store.CreateAccount(ctx, identity.NewAccount{Email: "ADMIN@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, identity.ErrEmailExists)

	_, err = store.CreateAccount(ctx, identity.NewAccount{Email: "short@example.com", Password: "abc"})
	assert.ErrorIs(t, err, identity.ErrWeakPassword)

	account, err := store.Authenticate(ctx, identity.Credentials{Email: "admin@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, uid, account.UID)
	assert.Equal(t, user.RoleAdmin, account.Role)

	_, err = store.Authenticate(ctx, identity.Credentials{Email: "admin@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)

	_, err = store.Authenticate(ctx, identity.Credentials{IDToken: "token"})
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)

	require.NoError(t, store.DeleteAccount(ctx, uid))
	assert.ErrorIs(t, store.DeleteAccount(ctx, uid), identity.ErrAccountNotFound)
}

// ===== TRANSACTION TESTS =====

func TestWithTransaction_RollsBackRepositoryWrites(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	boom := errors.New("boom")
	err := postgresql.WithTransaction(ctx, db, func(txCtx context.Context, tx pgx.Tx) error {
		if _, err := repo.Insert(txCtx, employee.Employee{EmployeeID: "EMP900", FirstName: "Temp", Role: user.RoleUser}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
