package booking

import (
	"time"

	"stayhub/internal/domain/availability"
	"stayhub/internal/domain/catalog"
	"stayhub/internal/domain/promocode"
	"stayhub/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// CreateBooking prices a booking against the catalog entry and, when a promo
// code is supplied, validates it for the service and applies the discount.
// Capacity is not checked here; the usecase layer consumes the availability
// unit with an atomic conditional decrement before persisting.
func (f *Factory) CreateBooking(
	service *catalog.Service,
	guestID uuid.UUID,
	date time.Time,
	promo *promocode.PromoCode,
	note Note,
) (*Booking, error) {
	now := f.Clock.Now()
	date = availability.DateOnly(date)
	if date.Before(availability.DateOnly(now)) {
		return nil, ErrPastDate
	}

	subtotal := service.BasePriceCents()

	var discount int64
	var promoID *uuid.UUID
	if promo != nil {
		if res := promo.ValidateForService(now, service.ServiceType()); !res.Valid {
			return nil, &PromoRejectedError{Reason: res.Reason}
		}
		discount = promo.CalculateDiscount(subtotal)
		id := promo.ID()
		promoID = &id
	}

	return NewBooking(
		service.ServiceType(),
		service.ID(),
		guestID,
		date,
		subtotal,
		discount,
		promoID,
		note,
	)
}
