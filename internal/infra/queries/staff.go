package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type StaffRow struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	Department   string
	AccessLevel  int32
	LastLogin    *time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const staffColumns = `id, email, password_hash, role, department, access_level, last_login, is_active, created_at, updated_at`

func scanStaff(row interface{ Scan(...any) error }) (StaffRow, error) {
	var r StaffRow
	err := row.Scan(
		&r.ID, &r.Email, &r.PasswordHash, &r.Role, &r.Department, &r.AccessLevel,
		&r.LastLogin, &r.IsActive, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

type InsertStaffParams struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	Department   string
	AccessLevel  int32
}

func (q *Queries) InsertStaff(ctx context.Context, db DBTX, arg InsertStaffParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, `
		INSERT INTO staff (id, email, password_hash, role, department, access_level)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		arg.ID, arg.Email, arg.PasswordHash, arg.Role, arg.Department, arg.AccessLevel,
	).Scan(&id)
	return id, err
}

func (q *Queries) GetStaffByEmail(ctx context.Context, db DBTX, email string) (StaffRow, error) {
	row := db.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE email = $1 AND is_active`, email)
	return scanStaff(row)
}

func (q *Queries) GetStaffByID(ctx context.Context, db DBTX, id uuid.UUID) (StaffRow, error) {
	row := db.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, id)
	return scanStaff(row)
}

func (q *Queries) TouchStaffLastLogin(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, `UPDATE staff SET last_login = now(), updated_at = now() WHERE id = $1`, id)
	return err
}
