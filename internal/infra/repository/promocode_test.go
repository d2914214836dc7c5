//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/infra"
	"stayhub/internal/infra/queries"
	"stayhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPromoCodeQueries struct {
	mock.Mock
}

func (m *MockPromoCodeQueries) InsertPromoCode(ctx context.Context, db queries.DBTX, arg queries.InsertPromoCodeParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockPromoCodeQueries) UpdatePromoCode(ctx context.Context, db queries.DBTX, arg queries.UpdatePromoCodeParams) (queries.PromoCodeRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(queries.PromoCodeRow), args.Error(1)
}

func (m *MockPromoCodeQueries) GetPromoCodeByCode(ctx context.Context, db queries.DBTX, code string) (queries.PromoCodeRow, error) {
	args := m.Called(ctx, db, code)
	return args.Get(0).(queries.PromoCodeRow), args.Error(1)
}

func (m *MockPromoCodeQueries) GetPromoCodeByID(ctx context.Context, db queries.DBTX, id uuid.UUID) (queries.PromoCodeRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(queries.PromoCodeRow), args.Error(1)
}

func (m *MockPromoCodeQueries) RedeemPromoCode(ctx context.Context, db queries.DBTX, id uuid.UUID) (int32, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockPromoCodeQueries) SetPromoCodeUsedCount(ctx context.Context, db queries.DBTX, id uuid.UUID, usedCount int32) (queries.PromoCodeRow, error) {
	args := m.Called(ctx, db, id, usedCount)
	return args.Get(0).(queries.PromoCodeRow), args.Error(1)
}

func promoRowFixture(code string) queries.PromoCodeRow {
	now := time.Now()
	return queries.PromoCodeRow{
		ID:                 uuid.New(),
		Code:               code,
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

func TestPromoCodeRepositoryCreate(t *testing.T) {
	pc, err := builder.NewPromoCodeBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{
			name:     "duplicate code",
			mockErr:  &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "database failure",
			mockErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockPromoCodeQueries)
			mockQueries.On("InsertPromoCode", mock.Anything, mock.Anything, mock.Anything).
				Return(pc.ID(), tt.mockErr)

			repo := &PromoCodeRepository{q: mockQueries}

			id, err := repo.Create(context.Background(), pc)
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, pc.ID(), id)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestPromoCodeRepositoryFindByCode(t *testing.T) {
	t.Run("maps row to snapshot", func(t *testing.T) {
		row := promoRowFixture("SUMMER10")
		mockQueries := new(MockPromoCodeQueries)
		mockQueries.On("GetPromoCodeByCode", mock.Anything, mock.Anything, "SUMMER10").
			Return(row, nil)

		repo := &PromoCodeRepository{q: mockQueries}

		snap, err := repo.FindByCode(context.Background(), "SUMMER10")
		require.NoError(t, err)
		assert.Equal(t, row.ID, snap.ID)
		assert.Equal(t, "SUMMER10", snap.Code)
		assert.Equal(t, "percentage", snap.DiscountType)
		mockQueries.AssertExpectations(t)
	})

	t.Run("missing code is KindNotFound", func(t *testing.T) {
		mockQueries := new(MockPromoCodeQueries)
		mockQueries.On("GetPromoCodeByCode", mock.Anything, mock.Anything, "NOPE").
			Return(queries.PromoCodeRow{}, pgx.ErrNoRows)

		repo := &PromoCodeRepository{q: mockQueries}

		_, err := repo.FindByCode(context.Background(), "NOPE")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestPromoCodeRepositoryRedeem(t *testing.T) {
	id := uuid.New()

	t.Run("returns the new used count", func(t *testing.T) {
		mockQueries := new(MockPromoCodeQueries)
		mockQueries.On("RedeemPromoCode", mock.Anything, mock.Anything, id).
			Return(int32(5), nil)

		repo := &PromoCodeRepository{q: mockQueries}

		used, err := repo.Redeem(context.Background(), nil, id)
		require.NoError(t, err)
		assert.Equal(t, int32(5), used)
	})

	t.Run("guard failure surfaces as KindNotFound", func(t *testing.T) {
		// The conditional UPDATE matches no row when the code is inactive or
		// the limit is already reached.
		mockQueries := new(MockPromoCodeQueries)
		mockQueries.On("RedeemPromoCode", mock.Anything, mock.Anything, id).
			Return(int32(0), pgx.ErrNoRows)

		repo := &PromoCodeRepository{q: mockQueries}

		_, err := repo.Redeem(context.Background(), nil, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
