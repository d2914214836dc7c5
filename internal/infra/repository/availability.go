package repository

import (
	"context"
	"time"

	"stayhub/internal/domain/availability"
	"stayhub/internal/infra/queries"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type availabilityQueries interface {
	GetAvailability(ctx context.Context, db queries.DBTX, key queries.AvailabilityKey) (queries.AvailabilityRow, error)
	UpsertAvailability(ctx context.Context, db queries.DBTX, arg queries.UpsertAvailabilityParams) (queries.AvailabilityRow, error)
	EnsureAvailability(ctx context.Context, db queries.DBTX, key queries.AvailabilityKey, total int32) error
	DecrementAvailability(ctx context.Context, db queries.DBTX, key queries.AvailabilityKey) (queries.AvailabilityRow, error)
	IncrementAvailability(ctx context.Context, db queries.DBTX, key queries.AvailabilityKey) (queries.AvailabilityRow, error)
	BlockAvailability(ctx context.Context, db queries.DBTX, key queries.AvailabilityKey, total int32) (queries.AvailabilityRow, error)
}

type AvailabilityRepository struct {
	q  availabilityQueries
	db queries.DBTX
}

func NewAvailabilityRepository(q *queries.Queries, db queries.DBTX) *AvailabilityRepository {
	return &AvailabilityRepository{q: q, db: db}
}

func (r *AvailabilityRepository) Find(ctx context.Context, serviceType string, serviceID uuid.UUID, date time.Time) (*commands.AvailabilitySnapshot, error) {
	row, err := r.q.GetAvailability(ctx, r.db, queries.AvailabilityKey{
		ServiceType: serviceType, ServiceID: serviceID, Date: date,
	})
	if err != nil {
		return nil, classify("availability record not found", err)
	}
	return availabilityRowToSnapshot(row), nil
}

func (r *AvailabilityRepository) Upsert(ctx context.Context, rec *availability.Record) (*commands.AvailabilitySnapshot, error) {
	row, err := r.q.UpsertAvailability(ctx, r.db, queries.UpsertAvailabilityParams{
		ServiceType: rec.ServiceType().String(),
		ServiceID:   rec.ServiceID(),
		Date:        rec.Date(),
		Total:       rec.Total(),
		Available:   rec.Available(),
	})
	if err != nil {
		return nil, classify("failed to upsert availability", err)
	}
	return availabilityRowToSnapshot(row), nil
}

func (r *AvailabilityRepository) Ensure(ctx context.Context, tx queries.DBTX, serviceType string, serviceID uuid.UUID, date time.Time, total int32) error {
	err := r.q.EnsureAvailability(ctx, tx, queries.AvailabilityKey{
		ServiceType: serviceType, ServiceID: serviceID, Date: date,
	}, total)
	if err != nil {
		return classify("failed to ensure availability", err)
	}
	return nil
}

func (r *AvailabilityRepository) Decrement(ctx context.Context, tx queries.DBTX, serviceType string, serviceID uuid.UUID, date time.Time) (*commands.AvailabilitySnapshot, error) {
	row, err := r.q.DecrementAvailability(ctx, tx, queries.AvailabilityKey{
		ServiceType: serviceType, ServiceID: serviceID, Date: date,
	})
	if err != nil {
		return nil, classify("failed to decrement availability", err)
	}
	return availabilityRowToSnapshot(row), nil
}

func (r *AvailabilityRepository) Increment(ctx context.Context, tx queries.DBTX, serviceType string, serviceID uuid.UUID, date time.Time) (*commands.AvailabilitySnapshot, error) {
	row, err := r.q.IncrementAvailability(ctx, tx, queries.AvailabilityKey{
		ServiceType: serviceType, ServiceID: serviceID, Date: date,
	})
	if err != nil {
		return nil, classify("failed to increment availability", err)
	}
	return availabilityRowToSnapshot(row), nil
}

func (r *AvailabilityRepository) Block(ctx context.Context, serviceType string, serviceID uuid.UUID, date time.Time, total int32) (*commands.AvailabilitySnapshot, error) {
	row, err := r.q.BlockAvailability(ctx, r.db, queries.AvailabilityKey{
		ServiceType: serviceType, ServiceID: serviceID, Date: date,
	}, total)
	if err != nil {
		return nil, classify("failed to block availability", err)
	}
	return availabilityRowToSnapshot(row), nil
}

func availabilityRowToSnapshot(row queries.AvailabilityRow) *commands.AvailabilitySnapshot {
	return &commands.AvailabilitySnapshot{
		ServiceType: row.ServiceType,
		ServiceID:   row.ServiceID,
		Date:        row.Date,
		Total:       row.Total,
		Available:   row.Available,
		UpdatedAt:   row.UpdatedAt,
	}
}
