package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	ServiceType   string     `json:"serviceType"`
	ServiceID     uuid.UUID  `json:"serviceId"`
	ServiceName   string     `json:"serviceName"`
	GuestID       uuid.UUID  `json:"guestId"`
	Date          string     `json:"date"`
	SubtotalCents int64      `json:"subtotalCents"`
	DiscountCents int64      `json:"discountCents"`
	TotalCents    int64      `json:"totalCents"`
	PromoCodeID   *uuid.UUID `json:"promoCodeId,omitempty"`
	PromoCode     *string    `json:"promoCode,omitempty"`
	Status        string     `json:"status"`
	Note          *string    `json:"note,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type BookingListResponse struct {
	ID          uuid.UUID `json:"id"`
	ServiceType string    `json:"serviceType"`
	ServiceName string    `json:"serviceName"`
	Date        string    `json:"date"`
	TotalCents  int64     `json:"totalCents"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:            rm.ID,
		ServiceType:   rm.ServiceType,
		ServiceID:     rm.ServiceID,
		ServiceName:   rm.ServiceName,
		GuestID:       rm.GuestID,
		Date:          rm.Date.Format(dateLayout),
		SubtotalCents: rm.SubtotalCents,
		DiscountCents: rm.DiscountCents,
		TotalCents:    rm.TotalCents,
		PromoCodeID:   rm.PromoCodeID,
		PromoCode:     rm.PromoCode,
		Status:        rm.Status,
		Note:          rm.Note,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:          rm.ID,
		ServiceType: rm.ServiceType,
		ServiceName: rm.ServiceName,
		Date:        rm.Date.Format(dateLayout),
		TotalCents:  rm.TotalCents,
		Status:      rm.Status,
		CreatedAt:   rm.CreatedAt,
	}
}
