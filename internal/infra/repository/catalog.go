package repository

import (
	"context"

	"stayhub/internal/domain/catalog"
	"stayhub/internal/infra/queries"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type catalogQueries interface {
	InsertService(ctx context.Context, db queries.DBTX, arg queries.InsertServiceParams) (uuid.UUID, error)
	UpdateService(ctx context.Context, db queries.DBTX, arg queries.UpdateServiceParams) (queries.ServiceRow, error)
	GetServiceByID(ctx context.Context, db queries.DBTX, id uuid.UUID) (queries.ServiceRow, error)
}

type CatalogRepository struct {
	q  catalogQueries
	db queries.DBTX
}

func NewCatalogRepository(q *queries.Queries, db queries.DBTX) *CatalogRepository {
	return &CatalogRepository{q: q, db: db}
}

func (r *CatalogRepository) Create(ctx context.Context, svc *catalog.Service) (uuid.UUID, error) {
	id, err := r.q.InsertService(ctx, r.db, queries.InsertServiceParams{
		ID:             svc.ID(),
		ServiceType:    svc.ServiceType().String(),
		Name:           svc.Name(),
		Capacity:       svc.Capacity(),
		BasePriceCents: svc.BasePriceCents(),
	})
	if err != nil {
		return uuid.Nil, classify("failed to insert service", err)
	}
	return id, nil
}

func (r *CatalogRepository) Update(ctx context.Context, svc *catalog.Service) (*commands.ServiceSnapshot, error) {
	row, err := r.q.UpdateService(ctx, r.db, queries.UpdateServiceParams{
		ID:             svc.ID(),
		Name:           svc.Name(),
		Capacity:       svc.Capacity(),
		BasePriceCents: svc.BasePriceCents(),
		IsActive:       svc.IsActive(),
	})
	if err != nil {
		return nil, classify("failed to update service", err)
	}
	return serviceRowToSnapshot(row), nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ServiceSnapshot, error) {
	row, err := r.q.GetServiceByID(ctx, r.db, id)
	if err != nil {
		return nil, classify("service not found", err)
	}
	return serviceRowToSnapshot(row), nil
}

func serviceRowToSnapshot(row queries.ServiceRow) *commands.ServiceSnapshot {
	return &commands.ServiceSnapshot{
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

func serviceTypeStrings(types []catalog.ServiceType) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, t.String())
	}
	return out
}
