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

type CatalogReadStore struct {
	pool *pgxpool.Pool
	q    *queries.Queries
}

func NewCatalogReadStore(pool *pgxpool.Pool) *CatalogReadStore {
	return &CatalogReadStore{pool: pool, q: queries.New()}
}

func (s *CatalogReadStore) GetByID(ctx context.Context, id uuid.UUID) (*usecasequeries.ServiceView, error) {
	row, err := s.q.GetServiceByID(ctx, s.pool, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service", err)
	}
	view := serviceRowToView(row)
	return &view, nil
}

func (s *CatalogReadStore) List(ctx context.Context, serviceType *string) ([]usecasequeries.ServiceView, error) {
	rows, err := s.q.ListServices(ctx, s.pool, serviceType)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}

	views := make([]usecasequeries.ServiceView, 0, len(rows))
	for _, row := range rows {
		views = append(views, serviceRowToView(row))
	}
	return views, nil
}

func serviceRowToView(row queries.ServiceRow) usecasequeries.ServiceView {
	return usecasequeries.ServiceView{
		ID:             row.ID,
		ServiceType:    row.ServiceType,
		Name:           row.Name,
		Capacity:       row.Capacity,
		BasePriceCents: row.BasePriceCents,
		IsActive:       row.IsActive,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
