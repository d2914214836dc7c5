//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/catalog"
	"stayhub/internal/domain/promocode"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type PromoCodeBuilder struct {
	ID                  uuid.UUID
	Code                string
	DiscountType        string
	DiscountValue       float64
	ValidFrom           time.Time
	ValidUntil          time.Time
	ValidFromTime       string
	ValidToTime         string
	UsageLimit          *int32
	UsedCount           int32
	Status              string
	ApplicableServices  []string
	MaxDiscountCapCents *int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func NewPromoCodeBuilder() *PromoCodeBuilder {
	now := time.Now()
	return &PromoCodeBuilder{
		ID:                 uuid.New(),
		Code:               "SUMMER10",
		DiscountType:       "percentage",
		DiscountValue:      10,
		ValidFrom:          now.AddDate(0, 0, -7),
		ValidUntil:         now.AddDate(0, 0, 7),
		ValidFromTime:      "00:00",
		ValidToTime:        "23:59",
		Status:             "active",
		ApplicableServices: []string{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Build methods
func (b *PromoCodeBuilder) BuildDomain() (*promocode.PromoCode, error) {
	code, err := promocode.NewCode(b.Code)
	if err != nil {
		return nil, err
	}
	applicable := make([]catalog.ServiceType, 0, len(b.ApplicableServices))
	for _, t := range b.ApplicableServices {
		applicable = append(applicable, catalog.ServiceType(t))
	}
	return promocode.NewPromoCode(
		code,
		promocode.DiscountType(b.DiscountType),
		b.DiscountValue,
		b.ValidFrom,
		b.ValidUntil,
		promocode.TimeOfDay(b.ValidFromTime),
		promocode.TimeOfDay(b.ValidToTime),
		b.UsageLimit,
		promocode.Status(b.Status),
		applicable,
		b.MaxDiscountCapCents,
	)
}

func (b *PromoCodeBuilder) BuildSnapshot() *commands.PromoCodeSnapshot {
	return &commands.PromoCodeSnapshot{
		ID:                  b.ID,
		Code:                b.Code,
		DiscountType:        b.DiscountType,
		DiscountValue:       b.DiscountValue,
		ValidFrom:           b.ValidFrom,
		ValidUntil:          b.ValidUntil,
		ValidFromTime:       b.ValidFromTime,
		ValidToTime:         b.ValidToTime,
		UsageLimit:          b.UsageLimit,
		UsedCount:           b.UsedCount,
		Status:              b.Status,
		ApplicableServices:  b.ApplicableServices,
		MaxDiscountCapCents: b.MaxDiscountCapCents,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func (b *PromoCodeBuilder) BuildView() *queries.PromoCodeView {
	return &queries.PromoCodeView{
		ID:                  b.ID,
		Code:                b.Code,
		DiscountType:        b.DiscountType,
		DiscountValue:       b.DiscountValue,
		ValidFrom:           b.ValidFrom,
		ValidUntil:          b.ValidUntil,
		ValidFromTime:       b.ValidFromTime,
		ValidToTime:         b.ValidToTime,
		UsageLimit:          b.UsageLimit,
		UsedCount:           b.UsedCount,
		Status:              b.Status,
		ApplicableServices:  b.ApplicableServices,
		MaxDiscountCapCents: b.MaxDiscountCapCents,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func (b *PromoCodeBuilder) BuildCreateRequestDTO() reqdto.CreatePromoCodeRequest {
	return reqdto.CreatePromoCodeRequest{
		Code:                b.Code,
		DiscountType:        b.DiscountType,
		DiscountValue:       b.DiscountValue,
		ValidFrom:           b.ValidFrom,
		ValidUntil:          b.ValidUntil,
		ValidFromTime:       b.ValidFromTime,
		ValidToTime:         b.ValidToTime,
		UsageLimit:          b.UsageLimit,
		Status:              b.Status,
		ApplicableServices:  b.ApplicableServices,
		MaxDiscountCapCents: b.MaxDiscountCapCents,
	}
}

func (b *PromoCodeBuilder) BuildUpdateRequestDTO() reqdto.UpdatePromoCodeRequest {
	return reqdto.UpdatePromoCodeRequest{
		DiscountType:        b.DiscountType,
		DiscountValue:       b.DiscountValue,
		ValidFrom:           b.ValidFrom,
		ValidUntil:          b.ValidUntil,
		ValidFromTime:       b.ValidFromTime,
		ValidToTime:         b.ValidToTime,
		UsageLimit:          b.UsageLimit,
		Status:              b.Status,
		ApplicableServices:  b.ApplicableServices,
		MaxDiscountCapCents: b.MaxDiscountCapCents,
	}
}

// Fluent builder methods
func (b *PromoCodeBuilder) WithCode(code string) *PromoCodeBuilder {
	b.Code = code
	return b
}

func (b *PromoCodeBuilder) WithDiscount(discountType string, value float64) *PromoCodeBuilder {
	b.DiscountType = discountType
	b.DiscountValue = value
	return b
}

func (b *PromoCodeBuilder) WithDateWindow(from, until time.Time) *PromoCodeBuilder {
	b.ValidFrom = from
	b.ValidUntil = until
	return b
}

func (b *PromoCodeBuilder) WithTimeWindow(from, to string) *PromoCodeBuilder {
	b.ValidFromTime = from
	b.ValidToTime = to
	return b
}

func (b *PromoCodeBuilder) WithUsageLimit(limit int32) *PromoCodeBuilder {
	b.UsageLimit = &limit
	return b
}

func (b *PromoCodeBuilder) WithUsedCount(count int32) *PromoCodeBuilder {
	b.UsedCount = count
	return b
}

func (b *PromoCodeBuilder) WithStatus(status string) *PromoCodeBuilder {
	b.Status = status
	return b
}

func (b *PromoCodeBuilder) WithApplicableServices(types ...string) *PromoCodeBuilder {
	b.ApplicableServices = types
	return b
}

func (b *PromoCodeBuilder) WithMaxDiscountCap(cents int64) *PromoCodeBuilder {
	b.MaxDiscountCapCents = &cents
	return b
}

func (b *PromoCodeBuilder) AsFixed(cents int64) *PromoCodeBuilder {
	b.Code = "FLAT50"
	b.DiscountType = "fixed"
	b.DiscountValue = float64(cents)
	return b
}
