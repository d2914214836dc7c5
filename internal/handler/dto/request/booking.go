package request

import (
	"strings"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	GuestID   uuid.UUID `json:"guest_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	PromoCode *string   `json:"promo_code,omitempty"`
	Note      *string   `json:"note,omitempty"`
}

func (r CreateBookingRequest) GetPromoCode() *string {
	if r.PromoCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PromoCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateBookingRequest) GetNote() string {
	if r.Note == nil {
		return ""
	}
	return strings.TrimSpace(*r.Note)
}
