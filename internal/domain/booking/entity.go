package booking

import (
	"errors"
	"fmt"
	"time"

	"stayhub/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrPastDate        = errors.New("booking date cannot be in the past")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrAlreadyCanceled = errors.New("booking is already canceled")
)

// PromoRejectedError carries the engine's reason string so the handler can
// show it to the guest verbatim.
type PromoRejectedError struct {
	Reason string
}

func (e *PromoRejectedError) Error() string {
	return fmt.Sprintf("promo code rejected: %s", e.Reason)
}

type Booking struct {
	id            uuid.UUID
	serviceType   catalog.ServiceType
	serviceID     uuid.UUID
	guestID       uuid.UUID
	date          time.Time
	subtotalCents int64
	discountCents int64
	promoCodeID   *uuid.UUID
	status        Status
	note          Note
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(
	serviceType catalog.ServiceType,
	serviceID, guestID uuid.UUID,
	date time.Time,
	subtotalCents, discountCents int64,
	promoCodeID *uuid.UUID,
	note Note,
) (*Booking, error) {
	if subtotalCents < 0 || discountCents < 0 || discountCents > subtotalCents {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:            uuid.New(),
		serviceType:   serviceType,
		serviceID:     serviceID,
		guestID:       guestID,
		date:          date,
		subtotalCents: subtotalCents,
		discountCents: discountCents,
		promoCodeID:   promoCodeID,
		status:        StatusConfirmed,
		note:          note,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	serviceType catalog.ServiceType,
	serviceID, guestID uuid.UUID,
	date time.Time,
	subtotalCents, discountCents int64,
	promoCodeID *uuid.UUID,
	status Status,
	note Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		serviceType:   serviceType,
		serviceID:     serviceID,
		guestID:       guestID,
		date:          date,
		subtotalCents: subtotalCents,
		discountCents: discountCents,
		promoCodeID:   promoCodeID,
		status:        status,
		note:          note,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) Cancel() error {
	if b.status == StatusCanceled {
		return ErrAlreadyCanceled
	}
	b.status = StatusCanceled
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) TotalCents() int64 {
	return b.subtotalCents - b.discountCents
}

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) ServiceType() catalog.ServiceType { return b.serviceType }
func (b *Booking) ServiceID() uuid.UUID             { return b.serviceID }
func (b *Booking) GuestID() uuid.UUID               { return b.guestID }
func (b *Booking) Date() time.Time                  { return b.date }
func (b *Booking) SubtotalCents() int64             { return b.subtotalCents }
func (b *Booking) DiscountCents() int64             { return b.discountCents }
func (b *Booking) PromoCodeID() *uuid.UUID          { return b.promoCodeID }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) Note() Note                       { return b.note }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: value}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
