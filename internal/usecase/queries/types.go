package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type PromoCodeView struct {
	ID                  uuid.UUID  `json:"id"`
	Code                string     `json:"code"`
	DiscountType        string     `json:"discount_type"`
	DiscountValue       float64    `json:"discount_value"`
	ValidFrom           time.Time  `json:"valid_from"`
	ValidUntil          time.Time  `json:"valid_until"`
	ValidFromTime       string     `json:"valid_from_time"`
	ValidToTime         string     `json:"valid_to_time"`
	UsageLimit          *int32     `json:"usage_limit,omitempty"`
	UsedCount           int32      `json:"used_count"`
	Status              string     `json:"status"`
	ApplicableServices  []string   `json:"applicable_services"`
	MaxDiscountCapCents *int64     `json:"max_discount_cap_cents,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type AvailabilityView struct {
	ServiceType string    `json:"service_type"`
	ServiceID   uuid.UUID `json:"service_id"`
	Date        time.Time `json:"date"`
	Total       int32     `json:"total"`
	Available   int32     `json:"available"`
	Bookings    int32     `json:"bookings"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ServiceView struct {
	ID             uuid.UUID `json:"id"`
	ServiceType    string    `json:"service_type"`
	Name           string    `json:"name"`
	Capacity       int32     `json:"capacity"`
	BasePriceCents int64     `json:"base_price_cents"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type BookingView struct {
	ID            uuid.UUID  `json:"id"`
	ServiceType   string     `json:"service_type"`
	ServiceID     uuid.UUID  `json:"service_id"`
	ServiceName   string     `json:"service_name"`
	GuestID       uuid.UUID  `json:"guest_id"`
	Date          time.Time  `json:"date"`
	SubtotalCents int64      `json:"subtotal_cents"`
	DiscountCents int64      `json:"discount_cents"`
	TotalCents    int64      `json:"total_cents"`
	PromoCodeID   *uuid.UUID `json:"promo_code_id,omitempty"`
	PromoCode     *string    `json:"promo_code,omitempty"`
	Status        string     `json:"status"`
	Note          *string    `json:"note,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	ServiceType string    `json:"service_type"`
	ServiceName string    `json:"service_name"`
	Date        time.Time `json:"date"`
	TotalCents  int64     `json:"total_cents"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuthorizedStaffView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Department  string    `json:"department"`
	AccessLevel int32     `json:"access_level"`
	IsActive    bool      `json:"is_active"`
}
