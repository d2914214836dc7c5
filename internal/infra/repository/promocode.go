package repository

import (
	"context"

	"stayhub/internal/domain/promocode"
	"stayhub/internal/infra/queries"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type promoCodeQueries interface {
	InsertPromoCode(ctx context.Context, db queries.DBTX, arg queries.InsertPromoCodeParams) (uuid.UUID, error)
	UpdatePromoCode(ctx context.Context, db queries.DBTX, arg queries.UpdatePromoCodeParams) (queries.PromoCodeRow, error)
	GetPromoCodeByCode(ctx context.Context, db queries.DBTX, code string) (queries.PromoCodeRow, error)
	GetPromoCodeByID(ctx context.Context, db queries.DBTX, id uuid.UUID) (queries.PromoCodeRow, error)
	RedeemPromoCode(ctx context.Context, db queries.DBTX, id uuid.UUID) (int32, error)
	SetPromoCodeUsedCount(ctx context.Context, db queries.DBTX, id uuid.UUID, usedCount int32) (queries.PromoCodeRow, error)
}

type PromoCodeRepository struct {
	q  promoCodeQueries
	db queries.DBTX
}

func NewPromoCodeRepository(q *queries.Queries, db queries.DBTX) *PromoCodeRepository {
	return &PromoCodeRepository{q: q, db: db}
}

func (r *PromoCodeRepository) Create(ctx context.Context, pc *promocode.PromoCode) (uuid.UUID, error) {
	id, err := r.q.InsertPromoCode(ctx, r.db, queries.InsertPromoCodeParams{
		ID:                  pc.ID(),
		Code:                pc.Code().String(),
		DiscountType:        pc.DiscountType().String(),
		DiscountValue:       pc.DiscountValue(),
		ValidFrom:           pc.ValidFrom(),
		ValidUntil:          pc.ValidUntil(),
		ValidFromTime:       pc.ValidFromTime().String(),
		ValidToTime:         pc.ValidToTime().String(),
		UsageLimit:          pc.UsageLimit(),
		Status:              pc.Status().String(),
		ApplicableServices:  serviceTypeStrings(pc.ApplicableServices()),
		MaxDiscountCapCents: pc.MaxDiscountCap(),
	})
	if err != nil {
		return uuid.Nil, classify("failed to insert promo code", err)
	}
	return id, nil
}

func (r *PromoCodeRepository) Update(ctx context.Context, pc *promocode.PromoCode) (*commands.PromoCodeSnapshot, error) {
	row, err := r.q.UpdatePromoCode(ctx, r.db, queries.UpdatePromoCodeParams{
		ID:                  pc.ID(),
		DiscountType:        pc.DiscountType().String(),
		DiscountValue:       pc.DiscountValue(),
		ValidFrom:           pc.ValidFrom(),
		ValidUntil:          pc.ValidUntil(),
		ValidFromTime:       pc.ValidFromTime().String(),
		ValidToTime:         pc.ValidToTime().String(),
		UsageLimit:          pc.UsageLimit(),
		Status:              pc.Status().String(),
		ApplicableServices:  serviceTypeStrings(pc.ApplicableServices()),
		MaxDiscountCapCents: pc.MaxDiscountCap(),
	})
	if err != nil {
		return nil, classify("failed to update promo code", err)
	}
	return promoCodeRowToSnapshot(row), nil
}

func (r *PromoCodeRepository) FindByCode(ctx context.Context, code string) (*commands.PromoCodeSnapshot, error) {
	row, err := r.q.GetPromoCodeByCode(ctx, r.db, code)
	if err != nil {
		return nil, classify("promo code not found", err)
	}
	return promoCodeRowToSnapshot(row), nil
}

func (r *PromoCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.PromoCodeSnapshot, error) {
	row, err := r.q.GetPromoCodeByID(ctx, r.db, id)
	if err != nil {
		return nil, classify("promo code not found", err)
	}
	return promoCodeRowToSnapshot(row), nil
}

func (r *PromoCodeRepository) Redeem(ctx context.Context, tx queries.DBTX, id uuid.UUID) (int32, error) {
	usedCount, err := r.q.RedeemPromoCode(ctx, tx, id)
	if err != nil {
		return 0, classify("failed to redeem promo code", err)
	}
	return usedCount, nil
}

func (r *PromoCodeRepository) SetUsedCount(ctx context.Context, id uuid.UUID, usedCount int32) (*commands.PromoCodeSnapshot, error) {
	row, err := r.q.SetPromoCodeUsedCount(ctx, r.db, id, usedCount)
	if err != nil {
		return nil, classify("failed to set promo code used count", err)
	}
	return promoCodeRowToSnapshot(row), nil
}

func promoCodeRowToSnapshot(row queries.PromoCodeRow) *commands.PromoCodeSnapshot {
	return &commands.PromoCodeSnapshot{
		ID:                  row.ID,
		Code:                row.Code,
		DiscountType:        row.DiscountType,
		DiscountValue:       row.DiscountValue,
		ValidFrom:           row.ValidFrom,
		ValidUntil:          row.ValidUntil,
		ValidFromTime:       row.ValidFromTime,
		ValidToTime:         row.ValidToTime,
		UsageLimit:          row.UsageLimit,
		UsedCount:           row.UsedCount,
		Status:              row.Status,
		ApplicableServices:  row.ApplicableServices,
		MaxDiscountCapCents: row.MaxDiscountCapCents,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}
