package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS attendance_records (
		id                TEXT PRIMARY KEY,
		employee_id       TEXT NOT NULL DEFAULT '',
		first_name        TEXT NOT NULL DEFAULT '',
		date              TEXT NOT NULL,
		shift             TEXT NOT NULL DEFAULT '',
		tracker           JSONB NOT NULL DEFAULT '[]',
		remarks           TEXT NOT NULL DEFAULT '',
		remarks_edited_at TEXT NOT NULL DEFAULT '',
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_records_date ON attendance_records (date)`,

	`CREATE TABLE IF NOT EXISTS employees (
		id                         TEXT PRIMARY KEY,
		uid                        TEXT NOT NULL DEFAULT '',
		id_number                  TEXT NOT NULL DEFAULT '',
		first_name                 TEXT NOT NULL,
		last_name                  TEXT NOT NULL DEFAULT '',
		gender                     TEXT NOT NULL DEFAULT '',
		date_of_birth              TEXT NOT NULL DEFAULT '',
		blood_group                TEXT NOT NULL DEFAULT '',
		marital_status             TEXT NOT NULL DEFAULT '',
		father_or_husband_name     TEXT NOT NULL DEFAULT '',
		employee_id                TEXT NOT NULL,
		department                 TEXT NOT NULL DEFAULT '',
		position                   TEXT NOT NULL DEFAULT '',
		branch                     TEXT NOT NULL DEFAULT '',
		date_of_joining            TEXT NOT NULL DEFAULT '',
		shift                      TEXT NOT NULL DEFAULT '',
		shift_time                 TEXT NOT NULL DEFAULT '',
		employment_status          TEXT NOT NULL DEFAULT '',
		enrollment_number          TEXT NOT NULL DEFAULT '',
		qualifications             TEXT NOT NULL DEFAULT '',
		previous_experience        TEXT NOT NULL DEFAULT '',
		current_company_experience TEXT NOT NULL DEFAULT '',
		casual_leave               INTEGER NOT NULL DEFAULT 0,
		email                      TEXT NOT NULL DEFAULT '',
		phone                      TEXT NOT NULL DEFAULT '',
		emergency_contact          TEXT NOT NULL DEFAULT '',
		address                    TEXT NOT NULL DEFAULT '',
		aadhar_number              TEXT NOT NULL DEFAULT '',
		pan_number                 TEXT NOT NULL DEFAULT '',
		uan_pf_number              TEXT NOT NULL DEFAULT '',
		esi_number                 TEXT NOT NULL DEFAULT '',
		account_number             TEXT NOT NULL DEFAULT '',
		ifsc_code                  TEXT NOT NULL DEFAULT '',
		salary_gross               NUMERIC(14,2) NOT NULL DEFAULT 0,
		salary_net                 NUMERIC(14,2) NOT NULL DEFAULT 0,
		referred_by                TEXT NOT NULL DEFAULT '',
		reference1                 TEXT NOT NULL DEFAULT '',
		reference2                 TEXT NOT NULL DEFAULT '',
		role                       TEXT NOT NULL DEFAULT 'user',
		created_at                 TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at                 TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_employees_employee_id ON employees (employee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_employees_uid ON employees (uid)`,

	`CREATE TABLE IF NOT EXISTS accounts (
		uid           TEXT PRIMARY KEY,
		email         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_email ON accounts (LOWER(email))`,
}

// Tables lists every table owned by the schema, in creation order.
var Tables = []string{"attendance_records", "employees", "accounts"}

// Migrate creates any missing tables and indexes. It is safe to run repeatedly.
func Migrate(ctx context.Context, db *database.DB) error {
	return WithTransaction(ctx, db, func(ctx context.Context, tx pgx.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}
		}
		return nil
	})
}
