package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type PromoCodeRow struct {
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

const promoCodeColumns = `id, code, discount_type, discount_value, valid_from, valid_until,
	valid_from_time, valid_to_time, usage_limit, used_count, status,
	applicable_services, max_discount_cap_cents, created_at, updated_at`

func scanPromoCode(row interface{ Scan(...any) error }) (PromoCodeRow, error) {
	var r PromoCodeRow
	err := row.Scan(
		&r.ID, &r.Code, &r.DiscountType, &r.DiscountValue, &r.ValidFrom, &r.ValidUntil,
		&r.ValidFromTime, &r.ValidToTime, &r.UsageLimit, &r.UsedCount, &r.Status,
		&r.ApplicableServices, &r.MaxDiscountCapCents, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

type InsertPromoCodeParams struct {
	ID                  uuid.UUID
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

func (q *Queries) InsertPromoCode(ctx context.Context, db DBTX, arg InsertPromoCodeParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, `
		INSERT INTO promo_codes (
			id, code, discount_type, discount_value, valid_from, valid_until,
			valid_from_time, valid_to_time, usage_limit, status,
			applicable_services, max_discount_cap_cents
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		arg.ID, arg.Code, arg.DiscountType, arg.DiscountValue, arg.ValidFrom, arg.ValidUntil,
		arg.ValidFromTime, arg.ValidToTime, arg.UsageLimit, arg.Status,
		arg.ApplicableServices, arg.MaxDiscountCapCents,
	).Scan(&id)
	return id, err
}

func (q *Queries) GetPromoCodeByCode(ctx context.Context, db DBTX, code string) (PromoCodeRow, error) {
	row := db.QueryRow(ctx, `SELECT `+promoCodeColumns+` FROM promo_codes WHERE code = $1`, code)
	return scanPromoCode(row)
}

func (q *Queries) GetPromoCodeByID(ctx context.Context, db DBTX, id uuid.UUID) (PromoCodeRow, error) {
	row := db.QueryRow(ctx, `SELECT `+promoCodeColumns+` FROM promo_codes WHERE id = $1`, id)
	return scanPromoCode(row)
}

func (q *Queries) ListPromoCodes(ctx context.Context, db DBTX, limit, offset int32) ([]PromoCodeRow, error) {
	rows, err := db.Query(ctx, `
		SELECT `+promoCodeColumns+`
		FROM promo_codes
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []PromoCodeRow
	for rows.Next() {
		r, err := scanPromoCode(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

type UpdatePromoCodeParams struct {
	ID                  uuid.UUID
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

func (q *Queries) UpdatePromoCode(ctx context.Context, db DBTX, arg UpdatePromoCodeParams) (PromoCodeRow, error) {
	row := db.QueryRow(ctx, `
		UPDATE promo_codes SET
			discount_type = $2,
			discount_value = $3,
			valid_from = $4,
			valid_until = $5,
			valid_from_time = $6,
			valid_to_time = $7,
			usage_limit = $8,
			status = $9,
			applicable_services = $10,
			max_discount_cap_cents = $11,
			updated_at = now()
		WHERE id = $1
		RETURNING `+promoCodeColumns,
		arg.ID, arg.DiscountType, arg.DiscountValue, arg.ValidFrom, arg.ValidUntil,
		arg.ValidFromTime, arg.ValidToTime, arg.UsageLimit, arg.Status,
		arg.ApplicableServices, arg.MaxDiscountCapCents,
	)
	return scanPromoCode(row)
}

// RedeemPromoCode is the atomic compare-and-increment: the row only updates
// while the code is active and under its usage limit, so two concurrent
// redemptions of the last slot cannot both succeed. pgx.ErrNoRows means the
// guard condition failed.
func (q *Queries) RedeemPromoCode(ctx context.Context, db DBTX, id uuid.UUID) (int32, error) {
	var usedCount int32
	err := db.QueryRow(ctx, `
		UPDATE promo_codes
		SET used_count = used_count + 1, updated_at = now()
		WHERE id = $1
		  AND status = 'active'
		  AND (usage_limit IS NULL OR used_count < usage_limit)
		RETURNING used_count`,
		id,
	).Scan(&usedCount)
	return usedCount, err
}

// SetPromoCodeUsedCount is the explicit admin correction, the only path that
// may lower used_count.
func (q *Queries) SetPromoCodeUsedCount(ctx context.Context, db DBTX, id uuid.UUID, usedCount int32) (PromoCodeRow, error) {
	row := db.QueryRow(ctx, `
		UPDATE promo_codes
		SET used_count = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+promoCodeColumns,
		id, usedCount,
	)
	return scanPromoCode(row)
}
