package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type PromoCodeResponse struct {
	ID                  uuid.UUID `json:"id"`
	Code                string    `json:"code"`
	DiscountType        string    `json:"discountType"`
	DiscountValue       float64   `json:"discountValue"`
	ValidFrom           time.Time `json:"validFrom"`
	ValidUntil          time.Time `json:"validUntil"`
	ValidFromTime       string    `json:"validFromTime"`
	ValidToTime         string    `json:"validToTime"`
	UsageLimit          *int32    `json:"usageLimit,omitempty"`
	UsedCount           int32     `json:"usedCount"`
	Status              string    `json:"status"`
	ApplicableServices  []string  `json:"applicableServices"`
	MaxDiscountCapCents *int64    `json:"maxDiscountCapCents,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type PreviewResponse struct {
	Valid         bool   `json:"valid"`
	Reason        string `json:"reason,omitempty"`
	DiscountCents *int64 `json:"discountCents,omitempty"`
	FinalCents    *int64 `json:"finalCents,omitempty"`
}

func FromPromoCodeView(rm *queries.PromoCodeView) *PromoCodeResponse {
	return &PromoCodeResponse{
		ID:                  rm.ID,
		Code:                rm.Code,
		DiscountType:        rm.DiscountType,
		DiscountValue:       rm.DiscountValue,
		ValidFrom:           rm.ValidFrom,
		ValidUntil:          rm.ValidUntil,
		ValidFromTime:       rm.ValidFromTime,
		ValidToTime:         rm.ValidToTime,
		UsageLimit:          rm.UsageLimit,
		UsedCount:           rm.UsedCount,
		Status:              rm.Status,
		ApplicableServices:  rm.ApplicableServices,
		MaxDiscountCapCents: rm.MaxDiscountCapCents,
		CreatedAt:           rm.CreatedAt,
		UpdatedAt:           rm.UpdatedAt,
	}
}

func FromPreviewResult(rm *queries.PreviewResult) *PreviewResponse {
	return &PreviewResponse{
		Valid:         rm.Valid,
		Reason:        rm.Reason,
		DiscountCents: rm.DiscountCents,
		FinalCents:    rm.FinalCents,
	}
}
