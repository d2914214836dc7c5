package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AvailabilityRow struct {
	ServiceType string
	ServiceID   uuid.UUID
	Date        time.Time
	Total       int32
	Available   int32
	UpdatedAt   time.Time
}

const availabilityColumns = `service_type, service_id, date, total, available, updated_at`

func scanAvailability(row interface{ Scan(...any) error }) (AvailabilityRow, error) {
	var r AvailabilityRow
	err := row.Scan(&r.ServiceType, &r.ServiceID, &r.Date, &r.Total, &r.Available, &r.UpdatedAt)
	return r, err
}

type AvailabilityKey struct {
	ServiceType string
	ServiceID   uuid.UUID
	Date        time.Time
}

func (q *Queries) GetAvailability(ctx context.Context, db DBTX, key AvailabilityKey) (AvailabilityRow, error) {
	row := db.QueryRow(ctx, `
		SELECT `+availabilityColumns+`
		FROM availability
		WHERE service_type = $1 AND service_id = $2 AND date = $3`,
		key.ServiceType, key.ServiceID, key.Date,
	)
	return scanAvailability(row)
}

func (q *Queries) ListAvailabilityByRange(ctx context.Context, db DBTX, serviceType string, serviceID uuid.UUID, from, to time.Time) ([]AvailabilityRow, error) {
	rows, err := db.Query(ctx, `
		SELECT `+availabilityColumns+`
		FROM availability
		WHERE service_type = $1 AND service_id = $2 AND date BETWEEN $3 AND $4
		ORDER BY date`,
		serviceType, serviceID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []AvailabilityRow
	for rows.Next() {
		r, err := scanAvailability(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

type UpsertAvailabilityParams struct {
	ServiceType string
	ServiceID   uuid.UUID
	Date        time.Time
	Total       int32
	Available   int32
}

// UpsertAvailability creates the record on first scheduling of a date; on
// conflict only the counter is rewritten, the stored total is kept. The table
// CHECK constraint backstops the 0 <= available <= total invariant against
// racing writers.
func (q *Queries) UpsertAvailability(ctx context.Context, db DBTX, arg UpsertAvailabilityParams) (AvailabilityRow, error) {
	row := db.QueryRow(ctx, `
		INSERT INTO availability (service_type, service_id, date, total, available)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (service_type, service_id, date) DO UPDATE
		SET available = EXCLUDED.available, updated_at = now()
		RETURNING `+availabilityColumns,
		arg.ServiceType, arg.ServiceID, arg.Date, arg.Total, arg.Available,
	)
	return scanAvailability(row)
}

// EnsureAvailability seeds the record for a date on first scheduling, leaving
// an existing record untouched.
func (q *Queries) EnsureAvailability(ctx context.Context, db DBTX, key AvailabilityKey, total int32) error {
	_, err := db.Exec(ctx, `
		INSERT INTO availability (service_type, service_id, date, total, available)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (service_type, service_id, date) DO NOTHING`,
		key.ServiceType, key.ServiceID, key.Date, total,
	)
	return err
}

// DecrementAvailability consumes one unit only while capacity remains.
// pgx.ErrNoRows means the record is missing or already exhausted.
func (q *Queries) DecrementAvailability(ctx context.Context, db DBTX, key AvailabilityKey) (AvailabilityRow, error) {
	row := db.QueryRow(ctx, `
		UPDATE availability
		SET available = available - 1, updated_at = now()
		WHERE service_type = $1 AND service_id = $2 AND date = $3 AND available > 0
		RETURNING `+availabilityColumns,
		key.ServiceType, key.ServiceID, key.Date,
	)
	return scanAvailability(row)
}

// IncrementAvailability returns one unit, saturating at total.
func (q *Queries) IncrementAvailability(ctx context.Context, db DBTX, key AvailabilityKey) (AvailabilityRow, error) {
	row := db.QueryRow(ctx, `
		UPDATE availability
		SET available = LEAST(available + 1, total), updated_at = now()
		WHERE service_type = $1 AND service_id = $2 AND date = $3
		RETURNING `+availabilityColumns,
		key.ServiceType, key.ServiceID, key.Date,
	)
	return scanAvailability(row)
}

// BlockAvailability zeroes the counter unconditionally, creating the record
// at zero when the date was never scheduled.
func (q *Queries) BlockAvailability(ctx context.Context, db DBTX, key AvailabilityKey, total int32) (AvailabilityRow, error) {
	row := db.QueryRow(ctx, `
		INSERT INTO availability (service_type, service_id, date, total, available)
		VALUES ($1, $2, $3, $4, 0)
		ON CONFLICT (service_type, service_id, date) DO UPDATE
		SET available = 0, updated_at = now()
		RETURNING `+availabilityColumns,
		key.ServiceType, key.ServiceID, key.Date, total,
	)
	return scanAvailability(row)
}
