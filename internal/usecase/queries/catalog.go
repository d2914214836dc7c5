package queries

import (
	"context"

	"stayhub/internal/domain/catalog"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	List(ctx context.Context, serviceType *string) ([]ServiceView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.store.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *catalogQueriesImpl) List(ctx context.Context, serviceType *string) ([]ServiceView, error) {
	if serviceType != nil {
		if _, err := catalog.NewServiceType(*serviceType); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	views, err := q.store.List(ctx, serviceType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
