package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read store ports. Implementations return infra.RepositoryError with a kind;
// the query services translate kinds into the shared sentinels.

type PromoCodeReadStore interface {
	GetByCode(ctx context.Context, code string) (*PromoCodeView, error)
	List(ctx context.Context) ([]PromoCodeView, error)
}

type AvailabilityReadStore interface {
	ListByRange(ctx context.Context, serviceType string, serviceID uuid.UUID, from, to time.Time) ([]AvailabilityView, error)
}

type BookingReadStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID, limit, offset int32) ([]BookingListItem, error)
}

type CatalogReadStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	List(ctx context.Context, serviceType *string) ([]ServiceView, error)
}
