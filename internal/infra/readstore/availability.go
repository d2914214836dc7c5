package readstore

import (
	"context"
	"time"

	"stayhub/internal/infra"
	"stayhub/internal/infra/queries"
	usecasequeries "stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AvailabilityReadStore struct {
	pool *pgxpool.Pool
	q    *queries.Queries
}

func NewAvailabilityReadStore(pool *pgxpool.Pool) *AvailabilityReadStore {
	return &AvailabilityReadStore{pool: pool, q: queries.New()}
}

func (s *AvailabilityReadStore) ListByRange(ctx context.Context, serviceType string, serviceID uuid.UUID, from, to time.Time) ([]usecasequeries.AvailabilityView, error) {
	rows, err := s.q.ListAvailabilityByRange(ctx, s.pool, serviceType, serviceID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability", err)
	}

	views := make([]usecasequeries.AvailabilityView, 0, len(rows))
	for _, row := range rows {
		views = append(views, usecasequeries.AvailabilityView{
			ServiceType: row.ServiceType,
			ServiceID:   row.ServiceID,
			Date:        row.Date,
			Total:       row.Total,
			Available:   row.Available,
			Bookings:    row.Total - row.Available,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return views, nil
}
