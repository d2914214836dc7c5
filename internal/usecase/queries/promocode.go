package queries

import (
	"context"

	"stayhub/internal/domain/catalog"
	"stayhub/internal/domain/promocode"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
)

// PreviewResult is a side-effect-free quote. Nothing is redeemed; the usage
// counter moves only when a booking actually consumes the code.
type PreviewResult struct {
	Valid         bool   `json:"valid"`
	Reason        string `json:"reason,omitempty"`
	DiscountCents *int64 `json:"discount_cents,omitempty"`
	FinalCents    *int64 `json:"final_cents,omitempty"`
}

type PromoCodeQueries interface {
	Get(ctx context.Context, code string) (*PromoCodeView, error)
	List(ctx context.Context) ([]PromoCodeView, error)
	Preview(ctx context.Context, code string, serviceType *string, amountCents int64) (*PreviewResult, error)
}

type promoCodeQueriesImpl struct {
	store PromoCodeReadStore
	clock clock.Clock
}

func NewPromoCodeQueries(store PromoCodeReadStore, clk clock.Clock) PromoCodeQueries {
	return &promoCodeQueriesImpl{store: store, clock: clk}
}

func (q *promoCodeQueriesImpl) Get(ctx context.Context, code string) (*PromoCodeView, error) {
	normalized, err := promocode.NewCode(code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPromoCodeNotFound)
	}

	view, err := q.store.GetByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPromoCodeNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *promoCodeQueriesImpl) List(ctx context.Context) ([]PromoCodeView, error) {
	views, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

// Preview evaluates the code at the current instant and quotes the discount
// for the given amount. With a service type the scope check runs as well,
// matching what a booking for that service would decide.
func (q *promoCodeQueriesImpl) Preview(ctx context.Context, code string, serviceType *string, amountCents int64) (*PreviewResult, error) {
	if amountCents < 0 {
		return nil, errs.Mark(promocode.ErrInvalidDiscountValue, errs.ErrDomainValidation)
	}

	view, err := q.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	entity, err := viewToDomain(view)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	now := q.clock.Now()
	var result promocode.ValidationResult
	if serviceType != nil {
		st, err := catalog.NewServiceType(*serviceType)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		result = entity.ValidateForService(now, st)
	} else {
		result = entity.Validate(now)
	}

	if !result.Valid {
		return &PreviewResult{Valid: false, Reason: result.Reason}, nil
	}

	discount := entity.CalculateDiscount(amountCents)
	final := amountCents - discount
	return &PreviewResult{Valid: true, DiscountCents: &discount, FinalCents: &final}, nil
}

func viewToDomain(v *PromoCodeView) (*promocode.PromoCode, error) {
	code, err := promocode.NewCode(v.Code)
	if err != nil {
		return nil, err
	}
	applicable := make([]catalog.ServiceType, 0, len(v.ApplicableServices))
	for _, t := range v.ApplicableServices {
		st, err := catalog.NewServiceType(t)
		if err != nil {
			return nil, err
		}
		applicable = append(applicable, st)
	}
	return promocode.ReconstructPromoCode(
		v.ID,
		code,
		promocode.DiscountType(v.DiscountType),
		v.DiscountValue,
		v.ValidFrom,
		v.ValidUntil,
		promocode.TimeOfDay(v.ValidFromTime),
		promocode.TimeOfDay(v.ValidToTime),
		v.UsageLimit,
		v.UsedCount,
		promocode.Status(v.Status),
		applicable,
		v.MaxDiscountCapCents,
		v.CreatedAt,
		v.UpdatedAt,
	), nil
}
