package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ServiceRow struct {
	ID             uuid.UUID
	ServiceType    string
	Name           string
	Capacity       int32
	BasePriceCents int64
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

const serviceColumns = `id, service_type, name, capacity, base_price_cents, is_active, created_at, updated_at`

func scanService(row interface{ Scan(...any) error }) (ServiceRow, error) {
	var r ServiceRow
	err := row.Scan(&r.ID, &r.ServiceType, &r.Name, &r.Capacity, &r.BasePriceCents, &r.IsActive, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

type InsertServiceParams struct {
	ID             uuid.UUID
	ServiceType    string
	Name           string
	Capacity       int32
	BasePriceCents int64
}

func (q *Queries) InsertService(ctx context.Context, db DBTX, arg InsertServiceParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, `
		INSERT INTO services (id, service_type, name, capacity, base_price_cents)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		arg.ID, arg.ServiceType, arg.Name, arg.Capacity, arg.BasePriceCents,
	).Scan(&id)
	return id, err
}

func (q *Queries) GetServiceByID(ctx context.Context, db DBTX, id uuid.UUID) (ServiceRow, error) {
	row := db.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	return scanService(row)
}

func (q *Queries) ListServices(ctx context.Context, db DBTX, serviceType *string) ([]ServiceRow, error) {
	rows, err := db.Query(ctx, `
		SELECT `+serviceColumns+`
		FROM services
		WHERE is_active AND ($1::text IS NULL OR service_type = $1)
		ORDER BY service_type, name`,
		serviceType,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ServiceRow
	for rows.Next() {
		r, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

type UpdateServiceParams struct {
	ID             uuid.UUID
	Name           string
	Capacity       int32
	BasePriceCents int64
	IsActive       bool
}

func (q *Queries) UpdateService(ctx context.Context, db DBTX, arg UpdateServiceParams) (ServiceRow, error) {
	row := db.QueryRow(ctx, `
		UPDATE services
		SET name = $2, capacity = $3, base_price_cents = $4, is_active = $5, updated_at = now()
		WHERE id = $1
		RETURNING `+serviceColumns,
		arg.ID, arg.Name, arg.Capacity, arg.BasePriceCents, arg.IsActive,
	)
	return scanService(row)
}
