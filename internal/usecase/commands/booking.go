package commands

import (
	"context"
	"time"

	"stayhub/internal/domain/availability"
	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/promocode"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateBookingParams struct {
	ServiceID uuid.UUID
	GuestID   uuid.UUID
	Date      time.Time
	PromoCode *string
	Note      string
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	pool        *pgxpool.Pool
	factory     *booking.Factory
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	promoRepo   PromoCodeRepository
	availRepo   AvailabilityRepository
}

func NewBookingCommands(
	pool *pgxpool.Pool,
	factory *booking.Factory,
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	promoRepo PromoCodeRepository,
	availRepo AvailabilityRepository,
) BookingCommands {
	return &bookingCommandsImpl{
		pool:        pool,
		factory:     factory,
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		promoRepo:   promoRepo,
		availRepo:   availRepo,
	}
}

// Create prices and persists a booking. The capacity unit and the promo usage
// slot are both consumed by atomic conditional updates inside one transaction,
// so two guests racing for the last unit or the last redemption cannot both
// win.
func (c *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	svcSnap, err := c.catalogRepo.FindByID(ctx, params.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !svcSnap.IsActive {
		return nil, errs.ErrServiceNotFound
	}
	service, err := svcSnap.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var promo *promocode.PromoCode
	var promoCodeStr *string
	if params.PromoCode != nil && *params.PromoCode != "" {
		code, err := promocode.NewCode(*params.PromoCode)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrPromoCodeNotFound)
		}
		promoSnap, err := c.promoRepo.FindByCode(ctx, code.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrPromoCodeNotFound
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		promo, err = promoSnap.ToDomain()
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		s := promoSnap.Code
		promoCodeStr = &s
	}

	entity, err := c.factory.CreateBooking(service, params.GuestID, params.Date, promo, booking.NewNote(params.Note))
	if err != nil {
		return nil, err
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	date := entity.Date()
	if err := c.availRepo.Ensure(ctx, tx, svcSnap.ServiceType, params.ServiceID, date, service.Capacity()); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if _, err := c.availRepo.Decrement(ctx, tx, svcSnap.ServiceType, params.ServiceID, date); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNoCapacity
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if promo != nil {
		if _, err := c.promoRepo.Redeem(ctx, tx, promo.ID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// The conditional redeem lost a race: another booking took the
				// last slot between validation and here.
				return nil, &booking.PromoRejectedError{Reason: promocode.ReasonLimitReached}
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	if _, err := c.bookingRepo.Create(ctx, tx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return bookingToView(entity, svcSnap.Name, promoCodeStr), nil
}

// Cancel flips the booking to canceled and releases its capacity unit.
// Promo usage is deliberately not refunded on cancellation.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	snap, err := c.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrBookingNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := snap.ToDomain()
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := entity.Cancel(); err != nil {
		return errs.Mark(err, errs.ErrBookingCanceled)
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := c.bookingRepo.Cancel(ctx, tx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrBookingCanceled
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Saturating release: a block may have zeroed the counter while this
	// booking was live, and a record cleanup may have removed the row.
	if _, err := c.availRepo.Increment(ctx, tx, snap.ServiceType, snap.ServiceID, availability.DateOnly(snap.Date)); err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func bookingToView(b *booking.Booking, serviceName string, promoCode *string) *queries.BookingView {
	var note *string
	if !b.Note().IsEmpty() {
		s := b.Note().String()
		note = &s
	}
	return &queries.BookingView{
		ID:            b.ID(),
		ServiceType:   b.ServiceType().String(),
		ServiceID:     b.ServiceID(),
		ServiceName:   serviceName,
		GuestID:       b.GuestID(),
		Date:          b.Date(),
		SubtotalCents: b.SubtotalCents(),
		DiscountCents: b.DiscountCents(),
		TotalCents:    b.TotalCents(),
		PromoCodeID:   b.PromoCodeID(),
		PromoCode:     promoCode,
		Status:        b.Status().String(),
		Note:          note,
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}
