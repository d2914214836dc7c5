package readstore

import (
	"context"
	"errors"

	"stayhub/internal/infra"
	"stayhub/internal/infra/queries"
	usecasequeries "stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
	q    *queries.Queries
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool, q: queries.New()}
}

func (s *BookingReadStore) GetByID(ctx context.Context, id uuid.UUID) (*usecasequeries.BookingView, error) {
	row, err := s.q.GetBookingByID(ctx, s.pool, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}

	return &usecasequeries.BookingView{
		ID:            row.ID,
		ServiceType:   row.ServiceType,
		ServiceID:     row.ServiceID,
		ServiceName:   row.ServiceName,
		GuestID:       row.GuestID,
		Date:          row.Date,
		SubtotalCents: row.SubtotalCents,
		DiscountCents: row.DiscountCents,
		TotalCents:    row.SubtotalCents - row.DiscountCents,
		PromoCodeID:   row.PromoCodeID,
		PromoCode:     row.PromoCode,
		Status:        row.Status,
		Note:          row.Note,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

func (s *BookingReadStore) ListByGuest(ctx context.Context, guestID uuid.UUID, limit, offset int32) ([]usecasequeries.BookingListItem, error) {
	rows, err := s.q.ListBookingsByGuest(ctx, s.pool, guestID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	items := make([]usecasequeries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, usecasequeries.BookingListItem{
			ID:          row.ID,
			ServiceType: row.ServiceType,
			ServiceName: row.ServiceName,
			Date:        row.Date,
			TotalCents:  row.SubtotalCents - row.DiscountCents,
			Status:      row.Status,
			CreatedAt:   row.CreatedAt,
		})
	}
	return items, nil
}
