package commands

import (
	"context"
	"time"

	"stayhub/internal/domain/catalog"
	"stayhub/internal/domain/promocode"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreatePromoCodeParams struct {
	Code                string
	DiscountType        string
	DiscountValue       float64
	ValidFrom           time.Time
	ValidUntil          time.Time
	ValidFromTime       string
	ValidToTime         string
	UsageLimit          *int32
	Status              string
	ApplicableServices  []string
	MaxDiscountCapCents *int64
}

type UpdatePromoCodeParams struct {
	DiscountType        string
	DiscountValue       float64
	ValidFrom           time.Time
	ValidUntil          time.Time
	ValidFromTime       string
	ValidToTime         string
	UsageLimit          *int32
	Status              string
	ApplicableServices  []string
	MaxDiscountCapCents *int64
}

type PromoCodeCommands interface {
	Create(ctx context.Context, params CreatePromoCodeParams) (*queries.PromoCodeView, error)
	Update(ctx context.Context, code string, params UpdatePromoCodeParams) (*queries.PromoCodeView, error)
	Correct(ctx context.Context, code string, usedCount int32) (*queries.PromoCodeView, error)
}

type promoCodeCommandsImpl struct {
	promoRepo PromoCodeRepository
}

func NewPromoCodeCommands(promoRepo PromoCodeRepository) PromoCodeCommands {
	return &promoCodeCommandsImpl{promoRepo: promoRepo}
}

func (c *promoCodeCommandsImpl) Create(ctx context.Context, params CreatePromoCodeParams) (*queries.PromoCodeView, error) {
	entity, err := buildPromoCode(params)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if _, err := c.promoRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDuplicatePromoCode
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	snap, err := c.promoRepo.FindByCode(ctx, entity.Code().String())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snapshotToPromoCodeView(snap)
}

func (c *promoCodeCommandsImpl) Update(ctx context.Context, code string, params UpdatePromoCodeParams) (*queries.PromoCodeView, error) {
	existing, err := c.findByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	entity, err := buildPromoCode(CreatePromoCodeParams{
		Code:                existing.Code,
		DiscountType:        params.DiscountType,
		DiscountValue:       params.DiscountValue,
		ValidFrom:           params.ValidFrom,
		ValidUntil:          params.ValidUntil,
		ValidFromTime:       params.ValidFromTime,
		ValidToTime:         params.ValidToTime,
		UsageLimit:          params.UsageLimit,
		Status:              params.Status,
		ApplicableServices:  params.ApplicableServices,
		MaxDiscountCapCents: params.MaxDiscountCapCents,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	updated := withIdentity(entity, existing.ID, existing.UsedCount)

	snap, err := c.promoRepo.Update(ctx, updated)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPromoCodeNotFound
		}
		if infra.IsKind(err, infra.KindCheckViolated) {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snapshotToPromoCodeView(snap)
}

// Correct is the explicit administrative override of the usage counter, the
// only path by which used_count may decrease.
func (c *promoCodeCommandsImpl) Correct(ctx context.Context, code string, usedCount int32) (*queries.PromoCodeView, error) {
	if usedCount < 0 {
		return nil, errs.Mark(promocode.ErrInvalidUsage, errs.ErrDomainValidation)
	}

	existing, err := c.findByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing.UsageLimit != nil && usedCount > *existing.UsageLimit {
		return nil, errs.Mark(promocode.ErrInvalidUsage, errs.ErrDomainValidation)
	}

	snap, err := c.promoRepo.SetUsedCount(ctx, existing.ID, usedCount)
	if err != nil {
		if infra.IsKind(err, infra.KindCheckViolated) {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snapshotToPromoCodeView(snap)
}

func (c *promoCodeCommandsImpl) findByCode(ctx context.Context, code string) (*PromoCodeSnapshot, error) {
	normalized, err := promocode.NewCode(code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPromoCodeNotFound)
	}

	snap, err := c.promoRepo.FindByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPromoCodeNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func buildPromoCode(params CreatePromoCodeParams) (*promocode.PromoCode, error) {
	code, err := promocode.NewCode(params.Code)
	if err != nil {
		return nil, err
	}

	fromTime, err := promocode.NewTimeOfDay(orDefault(params.ValidFromTime, "00:00"))
	if err != nil {
		return nil, err
	}
	toTime, err := promocode.NewTimeOfDay(orDefault(params.ValidToTime, "23:59"))
	if err != nil {
		return nil, err
	}

	status := promocode.Status(orDefault(params.Status, string(promocode.StatusActive)))
	if !status.IsValid() {
		return nil, errs.New("invalid promo code status")
	}

	applicable := make([]catalog.ServiceType, 0, len(params.ApplicableServices))
	for _, t := range params.ApplicableServices {
		serviceType, err := catalog.NewServiceType(t)
		if err != nil {
			return nil, err
		}
		applicable = append(applicable, serviceType)
	}

	return promocode.NewPromoCode(
		code,
		promocode.DiscountType(params.DiscountType),
		params.DiscountValue,
		params.ValidFrom,
		params.ValidUntil,
		fromTime,
		toTime,
		params.UsageLimit,
		status,
		applicable,
		params.MaxDiscountCapCents,
	)
}

// withIdentity rebinds a freshly validated entity to a stored row's identity
// and usage counter, which admin edits must never reset.
func withIdentity(entity *promocode.PromoCode, id uuid.UUID, usedCount int32) *promocode.PromoCode {
	return promocode.ReconstructPromoCode(
		id,
		entity.Code(),
		entity.DiscountType(),
		entity.DiscountValue(),
		entity.ValidFrom(),
		entity.ValidUntil(),
		entity.ValidFromTime(),
		entity.ValidToTime(),
		entity.UsageLimit(),
		usedCount,
		entity.Status(),
		entity.ApplicableServices(),
		entity.MaxDiscountCap(),
		time.Time{},
		time.Time{},
	)
}

func snapshotToPromoCodeView(snap *PromoCodeSnapshot) (*queries.PromoCodeView, error) {
	var view queries.PromoCodeView
	if err := copier.Copy(&view, snap); err != nil {
		return nil, errs.Wrap(err, "failed to convert promo code snapshot")
	}
	return &view, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
