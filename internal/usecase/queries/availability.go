package queries

import (
	"context"

	"stayhub/internal/domain/availability"
	"stayhub/internal/domain/catalog"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	GetByMonth(ctx context.Context, serviceType string, serviceID uuid.UUID, month string) ([]AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

// GetByMonth returns the ledger rows stored within the month. Dates never
// scheduled have no row and are simply absent from the result; absence means
// no constraint, not zero availability.
func (q *availabilityQueriesImpl) GetByMonth(ctx context.Context, serviceType string, serviceID uuid.UUID, month string) ([]AvailabilityView, error) {
	if _, err := catalog.NewServiceType(serviceType); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	m, err := availability.NewMonth(month)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	span := m.Range()
	views, err := q.store.ListByRange(ctx, serviceType, serviceID, span.Start(), span.End())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
