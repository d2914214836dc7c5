//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/availability"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	ServiceType   string
	ServiceID     uuid.UUID
	ServiceName   string
	GuestID       uuid.UUID
	Date          time.Time
	SubtotalCents int64
	DiscountCents int64
	PromoCodeID   *uuid.UUID
	PromoCode     *string
	Status        string
	Note          *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:            uuid.New(),
		ServiceType:   "room",
		ServiceID:     uuid.New(),
		ServiceName:   "Deluxe Room",
		GuestID:       uuid.New(),
		Date:          availability.DateOnly(now.AddDate(0, 0, 1)),
		SubtotalCents: 50000,
		Status:        "confirmed",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) BuildSnapshot() *commands.BookingSnapshot {
	return &commands.BookingSnapshot{
		ID:            b.ID,
		ServiceType:   b.ServiceType,
		ServiceID:     b.ServiceID,
		GuestID:       b.GuestID,
		Date:          b.Date,
		SubtotalCents: b.SubtotalCents,
		DiscountCents: b.DiscountCents,
		PromoCodeID:   b.PromoCodeID,
		Status:        b.Status,
		Note:          b.Note,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            b.ID,
		ServiceType:   b.ServiceType,
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		GuestID:       b.GuestID,
		Date:          b.Date,
		SubtotalCents: b.SubtotalCents,
		DiscountCents: b.DiscountCents,
		TotalCents:    b.SubtotalCents - b.DiscountCents,
		PromoCodeID:   b.PromoCodeID,
		PromoCode:     b.PromoCode,
		Status:        b.Status,
		Note:          b.Note,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() queries.BookingListItem {
	return queries.BookingListItem{
		ID:          b.ID,
		ServiceType: b.ServiceType,
		ServiceName: b.ServiceName,
		Date:        b.Date,
		TotalCents:  b.SubtotalCents - b.DiscountCents,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ServiceID: b.ServiceID,
		GuestID:   b.GuestID,
		Date:      b.Date.Format("2006-01-02"),
		PromoCode: b.PromoCode,
		Note:      b.Note,
	}
}

func (b *BookingBuilder) WithServiceID(id uuid.UUID) *BookingBuilder {
	b.ServiceID = id
	return b
}

func (b *BookingBuilder) WithGuestID(id uuid.UUID) *BookingBuilder {
	b.GuestID = id
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.Date = availability.DateOnly(date)
	return b
}

func (b *BookingBuilder) WithPromoCode(code string, promoCodeID uuid.UUID, discountCents int64) *BookingBuilder {
	b.PromoCode = &code
	b.PromoCodeID = &promoCodeID
	b.DiscountCents = discountCents
	return b
}

func (b *BookingBuilder) WithNote(note string) *BookingBuilder {
	b.Note = &note
	return b
}

func (b *BookingBuilder) AsCanceled() *BookingBuilder {
	b.Status = "canceled"
	return b
}
