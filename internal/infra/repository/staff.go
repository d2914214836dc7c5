package repository

import (
	"context"

	"stayhub/internal/infra/queries"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type staffQueries interface {
	GetStaffByEmail(ctx context.Context, db queries.DBTX, email string) (queries.StaffRow, error)
	GetStaffByID(ctx context.Context, db queries.DBTX, id uuid.UUID) (queries.StaffRow, error)
	TouchStaffLastLogin(ctx context.Context, db queries.DBTX, id uuid.UUID) error
}

type StaffRepository struct {
	q  staffQueries
	db queries.DBTX
}

func NewStaffRepository(q *queries.Queries, db queries.DBTX) *StaffRepository {
	return &StaffRepository{q: q, db: db}
}

func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (*commands.StaffSnapshot, error) {
	row, err := r.q.GetStaffByEmail(ctx, r.db, email)
	if err != nil {
		return nil, classify("staff not found", err)
	}
	return staffRowToSnapshot(row), nil
}

func (r *StaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.StaffSnapshot, error) {
	row, err := r.q.GetStaffByID(ctx, r.db, id)
	if err != nil {
		return nil, classify("staff not found", err)
	}
	return staffRowToSnapshot(row), nil
}

func (r *StaffRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	if err := r.q.TouchStaffLastLogin(ctx, r.db, id); err != nil {
		return classify("failed to record last login", err)
	}
	return nil
}

func staffRowToSnapshot(row queries.StaffRow) *commands.StaffSnapshot {
	return &commands.StaffSnapshot{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         row.Role,
		Department:   row.Department,
		AccessLevel:  row.AccessLevel,
		LastLogin:    row.LastLogin,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
