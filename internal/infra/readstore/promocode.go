// Package readstore serves the query side with view-shaped results straight
// from SQL, bypassing domain reconstruction.
package readstore

import (
	"context"
	"errors"

	"stayhub/internal/infra"
	"stayhub/internal/infra/queries"
	usecasequeries "stayhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const promoCodeListPageSize = 200

type PromoCodeReadStore struct {
	pool *pgxpool.Pool
	q    *queries.Queries
}

func NewPromoCodeReadStore(pool *pgxpool.Pool) *PromoCodeReadStore {
	return &PromoCodeReadStore{pool: pool, q: queries.New()}
}

func (s *PromoCodeReadStore) GetByCode(ctx context.Context, code string) (*usecasequeries.PromoCodeView, error) {
	row, err := s.q.GetPromoCodeByCode(ctx, s.pool, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get promo code", err)
	}
	view := promoCodeRowToView(row)
	return &view, nil
}

func (s *PromoCodeReadStore) List(ctx context.Context) ([]usecasequeries.PromoCodeView, error) {
	rows, err := s.q.ListPromoCodes(ctx, s.pool, promoCodeListPageSize, 0)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promo codes", err)
	}

	views := make([]usecasequeries.PromoCodeView, 0, len(rows))
	for _, row := range rows {
		views = append(views, promoCodeRowToView(row))
	}
	return views, nil
}

func promoCodeRowToView(row queries.PromoCodeRow) usecasequeries.PromoCodeView {
	applicable := row.ApplicableServices
	if applicable == nil {
		applicable = []string{}
	}
	return usecasequeries.PromoCodeView{
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
		ApplicableServices:  applicable,
		MaxDiscountCapCents: row.MaxDiscountCapCents,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}
