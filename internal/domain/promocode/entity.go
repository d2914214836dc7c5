package promocode

import (
	"time"

	"stayhub/internal/domain/catalog"

	"github.com/google/uuid"
)

// Validation reasons are part of the API contract: callers display them
// verbatim to the end user.
const (
	ReasonNotActive     = "not active"
	ReasonOutsideDates  = "expired or not yet valid"
	ReasonOutsideHours  = "not valid at this time"
	ReasonLimitReached  = "usage limit reached"
	ReasonWrongService  = "not applicable to this service"
)

type ValidationResult struct {
	Valid  bool
	Reason string
}

func valid() ValidationResult {
	return ValidationResult{Valid: true}
}

func invalid(reason string) ValidationResult {
	return ValidationResult{Valid: false, Reason: reason}
}

type PromoCode struct {
	id             uuid.UUID
	code           Code
	discountType   DiscountType
	discountValue  float64
	validFrom      time.Time
	validUntil     time.Time
	validFromTime  TimeOfDay
	validToTime    TimeOfDay
	usageLimit     *int32
	usedCount      int32
	status         Status
	applicable     []catalog.ServiceType
	maxDiscountCap *int64
	createdAt      time.Time
	updatedAt      time.Time
}

// NewPromoCode enforces the record invariants up front so that validation and
// discount calculation never have to re-check them.
func NewPromoCode(
	code Code,
	discountType DiscountType,
	discountValue float64,
	validFrom, validUntil time.Time,
	validFromTime, validToTime TimeOfDay,
	usageLimit *int32,
	status Status,
	applicable []catalog.ServiceType,
	maxDiscountCapCents *int64,
) (*PromoCode, error) {
	if !discountType.IsValid() {
		return nil, ErrInvalidDiscountType
	}
	if discountValue < 0 {
		return nil, ErrInvalidDiscountValue
	}
	if discountType == DiscountPercentage && discountValue > 100 {
		return nil, ErrInvalidDiscountPercent
	}
	if maxDiscountCapCents != nil && discountType != DiscountPercentage {
		return nil, ErrCapWithoutPercentage
	}

	validFrom = DateOnly(validFrom)
	validUntil = DateOnly(validUntil)
	if validFrom.After(validUntil) {
		return nil, ErrInvalidDateWindow
	}
	if validFromTime.After(validToTime) {
		return nil, ErrInvalidTimeWindow
	}
	if usageLimit != nil && *usageLimit < 0 {
		return nil, ErrInvalidUsage
	}

	return &PromoCode{
		id:             uuid.New(),
		code:           code,
		discountType:   discountType,
		discountValue:  discountValue,
		validFrom:      validFrom,
		validUntil:     validUntil,
		validFromTime:  validFromTime,
		validToTime:    validToTime,
		usageLimit:     usageLimit,
		status:         status,
		applicable:     applicable,
		maxDiscountCap: maxDiscountCapCents,
	}, nil
}

func ReconstructPromoCode(
	id uuid.UUID,
	code Code,
	discountType DiscountType,
	discountValue float64,
	validFrom, validUntil time.Time,
	validFromTime, validToTime TimeOfDay,
	usageLimit *int32,
	usedCount int32,
	status Status,
	applicable []catalog.ServiceType,
	maxDiscountCapCents *int64,
	createdAt, updatedAt time.Time,
) *PromoCode {
	return &PromoCode{
		id:             id,
		code:           code,
		discountType:   discountType,
		discountValue:  discountValue,
		validFrom:      DateOnly(validFrom),
		validUntil:     DateOnly(validUntil),
		validFromTime:  validFromTime,
		validToTime:    validToTime,
		usageLimit:     usageLimit,
		usedCount:      usedCount,
		status:         status,
		applicable:     applicable,
		maxDiscountCap: maxDiscountCapCents,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// DateOnly reduces t to its calendar day at UTC midnight. Stored window
// bounds come back from DATE columns as UTC midnights, so rebuilding the
// fields in UTC keeps the comparison a pure calendar-day one regardless of
// the process timezone.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Validate runs the usability checks in fixed order and short-circuits on the
// first failure; callers wanting a full diagnostic list must re-validate after
// fixing each issue. It never returns an error.
func (p *PromoCode) Validate(now time.Time) ValidationResult {
	if p.status != StatusActive {
		return invalid(ReasonNotActive)
	}

	day := DateOnly(now)
	if day.Before(p.validFrom) || day.After(p.validUntil) {
		return invalid(ReasonOutsideDates)
	}

	tod := TimeOfDay(now.Format("15:04"))
	if tod.Before(p.validFromTime) || tod.After(p.validToTime) {
		return invalid(ReasonOutsideHours)
	}

	if p.usageLimit != nil && p.usedCount >= *p.usageLimit {
		return invalid(ReasonLimitReached)
	}

	return valid()
}

// ValidateForService adds the service-scope check after the four ordered
// usability checks. The booking workflow uses this variant; the preview
// endpoint without a service context uses Validate.
func (p *PromoCode) ValidateForService(now time.Time, serviceType catalog.ServiceType) ValidationResult {
	if res := p.Validate(now); !res.Valid {
		return res
	}
	if !p.AppliesTo(serviceType) {
		return invalid(ReasonWrongService)
	}
	return valid()
}

// AppliesTo reports whether the code covers the given service type. An empty
// applicable set means the code is unrestricted.
func (p *PromoCode) AppliesTo(serviceType catalog.ServiceType) bool {
	if len(p.applicable) == 0 {
		return true
	}
	for _, t := range p.applicable {
		if t == serviceType {
			return true
		}
	}
	return false
}

// CalculateDiscount returns the discount in cents for the given subtotal.
// The result is never negative and never exceeds the subtotal; a percentage
// discount is additionally clamped to the max cap when one is set.
// originalAmountCents must be non-negative.
func (p *PromoCode) CalculateDiscount(originalAmountCents int64) int64 {
	var discount int64

	switch p.discountType {
	case DiscountPercentage:
		discount = int64(float64(originalAmountCents) * p.discountValue / 100.0)
		if p.maxDiscountCap != nil && discount > *p.maxDiscountCap {
			discount = *p.maxDiscountCap
		}
	case DiscountFixed:
		discount = int64(p.discountValue)
	}

	if discount > originalAmountCents {
		discount = originalAmountCents
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

func (p *PromoCode) ID() uuid.UUID                           { return p.id }
func (p *PromoCode) Code() Code                              { return p.code }
func (p *PromoCode) DiscountType() DiscountType              { return p.discountType }
func (p *PromoCode) DiscountValue() float64                  { return p.discountValue }
func (p *PromoCode) ValidFrom() time.Time                    { return p.validFrom }
func (p *PromoCode) ValidUntil() time.Time                   { return p.validUntil }
func (p *PromoCode) ValidFromTime() TimeOfDay                { return p.validFromTime }
func (p *PromoCode) ValidToTime() TimeOfDay                  { return p.validToTime }
func (p *PromoCode) UsageLimit() *int32                      { return p.usageLimit }
func (p *PromoCode) UsedCount() int32                        { return p.usedCount }
func (p *PromoCode) Status() Status                          { return p.status }
func (p *PromoCode) ApplicableServices() []catalog.ServiceType { return p.applicable }
func (p *PromoCode) MaxDiscountCap() *int64                  { return p.maxDiscountCap }
func (p *PromoCode) CreatedAt() time.Time                    { return p.createdAt }
func (p *PromoCode) UpdatedAt() time.Time                    { return p.updatedAt }
