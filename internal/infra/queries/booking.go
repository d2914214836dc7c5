package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type BookingRow struct {
	ID            uuid.UUID
	ServiceType   string
	ServiceID     uuid.UUID
	ServiceName   string
	GuestID       uuid.UUID
	Date          time.Time
	SubtotalCents int64
	DiscountCents int64
	PromoCodeID   *uuid.UUID
	PromoCode     *string
	Status        string
	Note          *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const bookingSelect = `
	SELECT b.id, b.service_type, b.service_id, s.name, b.guest_id, b.date,
	       b.subtotal_cents, b.discount_cents, b.promo_code_id, p.code,
	       b.status, b.note, b.created_at, b.updated_at
	FROM bookings b
	JOIN services s ON s.id = b.service_id
	LEFT JOIN promo_codes p ON p.id = b.promo_code_id`

func scanBooking(row interface{ Scan(...any) error }) (BookingRow, error) {
	var r BookingRow
	err := row.Scan(
		&r.ID, &r.ServiceType, &r.ServiceID, &r.ServiceName, &r.GuestID, &r.Date,
		&r.SubtotalCents, &r.DiscountCents, &r.PromoCodeID, &r.PromoCode,
		&r.Status, &r.Note, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

type InsertBookingParams struct {
	ID            uuid.UUID
	ServiceType   string
	ServiceID     uuid.UUID
	GuestID       uuid.UUID
	Date          time.Time
	SubtotalCents int64
	DiscountCents int64
	PromoCodeID   *uuid.UUID
	Status        string
	Note          *string
}

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, `
		INSERT INTO bookings (
			id, service_type, service_id, guest_id, date,
			subtotal_cents, discount_cents, promo_code_id, status, note
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		arg.ID, arg.ServiceType, arg.ServiceID, arg.GuestID, arg.Date,
		arg.SubtotalCents, arg.DiscountCents, arg.PromoCodeID, arg.Status, arg.Note,
	).Scan(&id)
	return id, err
}

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingRow, error) {
	row := db.QueryRow(ctx, bookingSelect+` WHERE b.id = $1`, id)
	return scanBooking(row)
}

func (q *Queries) ListBookingsByGuest(ctx context.Context, db DBTX, guestID uuid.UUID, limit, offset int32) ([]BookingRow, error) {
	rows, err := db.Query(ctx, bookingSelect+`
		WHERE b.guest_id = $1
		ORDER BY b.created_at DESC, b.id
		LIMIT $2 OFFSET $3`,
		guestID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []BookingRow
	for rows.Next() {
		r, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// CancelBooking flips a confirmed booking to canceled; pgx.ErrNoRows means the
// booking is missing or was already canceled.
func (q *Queries) CancelBooking(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	var canceled uuid.UUID
	err := db.QueryRow(ctx, `
		UPDATE bookings
		SET status = 'canceled', updated_at = now()
		WHERE id = $1 AND status = 'confirmed'
		RETURNING id`,
		id,
	).Scan(&canceled)
	return canceled, err
}
