package request

import (
	"time"

	"stayhub/internal/usecase/commands"
)

type CreatePromoCodeRequest struct {
	Code                string    `json:"code" binding:"required"`
	DiscountType        string    `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue       float64   `json:"discount_value" binding:"min=0"`
	ValidFrom           time.Time `json:"valid_from" binding:"required"`
	ValidUntil          time.Time `json:"valid_until" binding:"required"`
	ValidFromTime       string    `json:"valid_from_time,omitempty"`
	ValidToTime         string    `json:"valid_to_time,omitempty"`
	UsageLimit          *int32    `json:"usage_limit,omitempty"`
	Status              string    `json:"status,omitempty"`
	ApplicableServices  []string  `json:"applicable_services,omitempty"`
	MaxDiscountCapCents *int64    `json:"max_discount_cap_cents,omitempty"`
}

func (r CreatePromoCodeRequest) ToParams() commands.CreatePromoCodeParams {
	return commands.CreatePromoCodeParams{
		Code:                r.Code,
		DiscountType:        r.DiscountType,
		DiscountValue:       r.DiscountValue,
		ValidFrom:           r.ValidFrom,
		ValidUntil:          r.ValidUntil,
		ValidFromTime:       r.ValidFromTime,
		ValidToTime:         r.ValidToTime,
		UsageLimit:          r.UsageLimit,
		Status:              r.Status,
		ApplicableServices:  r.ApplicableServices,
		MaxDiscountCapCents: r.MaxDiscountCapCents,
	}
}

type UpdatePromoCodeRequest struct {
	DiscountType        string    `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue       float64   `json:"discount_value" binding:"min=0"`
	ValidFrom           time.Time `json:"valid_from" binding:"required"`
	ValidUntil          time.Time `json:"valid_until" binding:"required"`
	ValidFromTime       string    `json:"valid_from_time,omitempty"`
	ValidToTime         string    `json:"valid_to_time,omitempty"`
	UsageLimit          *int32    `json:"usage_limit,omitempty"`
	Status              string    `json:"status,omitempty"`
	ApplicableServices  []string  `json:"applicable_services,omitempty"`
	MaxDiscountCapCents *int64    `json:"max_discount_cap_cents,omitempty"`
}

func (r UpdatePromoCodeRequest) ToParams() commands.UpdatePromoCodeParams {
	return commands.UpdatePromoCodeParams{
		DiscountType:        r.DiscountType,
		DiscountValue:       r.DiscountValue,
		ValidFrom:           r.ValidFrom,
		ValidUntil:          r.ValidUntil,
		ValidFromTime:       r.ValidFromTime,
		ValidToTime:         r.ValidToTime,
		UsageLimit:          r.UsageLimit,
		Status:              r.Status,
		ApplicableServices:  r.ApplicableServices,
		MaxDiscountCapCents: r.MaxDiscountCapCents,
	}
}

type CorrectUsageRequest struct {
	UsedCount *int32 `json:"used_count" binding:"required"`
}

type PreviewPromoCodeRequest struct {
	Code        string  `json:"code" binding:"required"`
	ServiceType *string `json:"service_type,omitempty"`
	AmountCents int64   `json:"amount_cents" binding:"min=0"`
}
