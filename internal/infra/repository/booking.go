package repository

import (
	"context"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra/queries"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type bookingQueries interface {
	InsertBooking(ctx context.Context, db queries.DBTX, arg queries.InsertBookingParams) (uuid.UUID, error)
	GetBookingByID(ctx context.Context, db queries.DBTX, id uuid.UUID) (queries.BookingRow, error)
	CancelBooking(ctx context.Context, db queries.DBTX, id uuid.UUID) (uuid.UUID, error)
}

type BookingRepository struct {
	q  bookingQueries
	db queries.DBTX
}

func NewBookingRepository(q *queries.Queries, db queries.DBTX) *BookingRepository {
	return &BookingRepository{q: q, db: db}
}

func (r *BookingRepository) Create(ctx context.Context, tx queries.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var note *string
	if !b.Note().IsEmpty() {
		s := b.Note().String()
		note = &s
	}

	id, err := r.q.InsertBooking(ctx, tx, queries.InsertBookingParams{
		ID:            b.ID(),
		ServiceType:   b.ServiceType().String(),
		ServiceID:     b.ServiceID(),
		GuestID:       b.GuestID(),
		Date:          b.Date(),
		SubtotalCents: b.SubtotalCents(),
		DiscountCents: b.DiscountCents(),
		PromoCodeID:   b.PromoCodeID(),
		Status:        b.Status().String(),
		Note:          note,
	})
	if err != nil {
		return uuid.Nil, classify("failed to insert booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.BookingSnapshot, error) {
	row, err := r.q.GetBookingByID(ctx, r.db, id)
	if err != nil {
		return nil, classify("booking not found", err)
	}
	return &commands.BookingSnapshot{
		ID:            row.ID,
		ServiceType:   row.ServiceType,
		ServiceID:     row.ServiceID,
		GuestID:       row.GuestID,
		Date:          row.Date,
		SubtotalCents: row.SubtotalCents,
		DiscountCents: row.DiscountCents,
		PromoCodeID:   row.PromoCodeID,
		Status:        row.Status,
		Note:          row.Note,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, tx queries.DBTX, id uuid.UUID) error {
	if _, err := r.q.CancelBooking(ctx, tx, id); err != nil {
		return classify("failed to cancel booking", err)
	}
	return nil
}
