//go:build unit

package repository

import (
	"context"
	"testing"

	"stayhub/internal/infra"
	"stayhub/internal/infra/queries"
	"stayhub/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAvailabilityQueries struct {
	mock.Mock
}

func (m *MockAvailabilityQueries) GetAvailability(ctx context.Context, db queries.DBTX, key queries.AvailabilityKey) (queries.AvailabilityRow, error) {
	args := m.Called(ctx, db, key)
	return args.Get(0).(queries.AvailabilityRow), args.Error(1)
}

func (m *MockAvailabilityQueries) UpsertAvailability(ctx context.Context, db queries.DBTX, arg queries.UpsertAvailabilityParams) (queries.AvailabilityRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(queries.AvailabilityRow), args.Error(1)
}

func (m *MockAvailabilityQueries) EnsureAvailability(ctx context.Context, db queries.DBTX, key queries.AvailabilityKey, total int32) error {
	args := m.Called(ctx, db, key, total)
	return args.Error(0)
}

func (m *MockAvailabilityQueries) DecrementAvailability(ctx context.Context, db queries.DBTX, key queries.AvailabilityKey) (queries.AvailabilityRow, error) {
	args := m.Called(ctx, db, key)
	return args.Get(0).(queries.AvailabilityRow), args.Error(1)
}

func (m *MockAvailabilityQueries) IncrementAvailability(ctx context.Context, db queries.DBTX, key queries.AvailabilityKey) (queries.AvailabilityRow, error) {
	args := m.Called(ctx, db, key)
	return args.Get(0).(queries.AvailabilityRow), args.Error(1)
}

func (m *MockAvailabilityQueries) BlockAvailability(ctx context.Context, db queries.DBTX, key queries.AvailabilityKey, total int32) (queries.AvailabilityRow, error) {
	args := m.Called(ctx, db, key, total)
	return args.Get(0).(queries.AvailabilityRow), args.Error(1)
}

func availabilityRowFromBuilder(b *builder.AvailabilityBuilder) queries.AvailabilityRow {
	return queries.AvailabilityRow{
		ServiceType: b.ServiceType,
		ServiceID:   b.ServiceID,
		Date:        b.Date,
		Total:       b.Total,
		Available:   b.Available,
		UpdatedAt:   b.UpdatedAt,
	}
}

func TestAvailabilityRepositoryDecrement(t *testing.T) {
	b := builder.NewAvailabilityBuilder().WithCounts(10, 6)

	t.Run("returns the decremented snapshot", func(t *testing.T) {
		mockQueries := new(MockAvailabilityQueries)
		mockQueries.On("DecrementAvailability", mock.Anything, mock.Anything, mock.Anything).
			Return(availabilityRowFromBuilder(b), nil)

		repo := &AvailabilityRepository{q: mockQueries}

		snap, err := repo.Decrement(context.Background(), nil, b.ServiceType, b.ServiceID, b.Date)
		require.NoError(t, err)
		assert.Equal(t, int32(6), snap.Available)
		mockQueries.AssertExpectations(t)
	})

	t.Run("sold out date is KindNotFound", func(t *testing.T) {
		// The conditional UPDATE matches no row when available is already 0.
		mockQueries := new(MockAvailabilityQueries)
		mockQueries.On("DecrementAvailability", mock.Anything, mock.Anything, mock.Anything).
			Return(queries.AvailabilityRow{}, pgx.ErrNoRows)

		repo := &AvailabilityRepository{q: mockQueries}

		_, err := repo.Decrement(context.Background(), nil, b.ServiceType, b.ServiceID, b.Date)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestAvailabilityRepositoryIncrement(t *testing.T) {
	b := builder.NewAvailabilityBuilder().WithCounts(10, 10)

	t.Run("unscheduled date is KindNotFound", func(t *testing.T) {
		mockQueries := new(MockAvailabilityQueries)
		mockQueries.On("IncrementAvailability", mock.Anything, mock.Anything, mock.Anything).
			Return(queries.AvailabilityRow{}, pgx.ErrNoRows)

		repo := &AvailabilityRepository{q: mockQueries}

		_, err := repo.Increment(context.Background(), nil, b.ServiceType, b.ServiceID, b.Date)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestAvailabilityRepositoryEnsure(t *testing.T) {
	b := builder.NewAvailabilityBuilder()

	t.Run("passes service capacity as the seed total", func(t *testing.T) {
		mockQueries := new(MockAvailabilityQueries)
		mockQueries.On("EnsureAvailability", mock.Anything, mock.Anything, mock.Anything, int32(10)).
			Return(nil)

		repo := &AvailabilityRepository{q: mockQueries}

		err := repo.Ensure(context.Background(), nil, b.ServiceType, b.ServiceID, b.Date, 10)
		require.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("database failure", func(t *testing.T) {
		mockQueries := new(MockAvailabilityQueries)
		mockQueries.On("EnsureAvailability", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(assert.AnError)

		repo := &AvailabilityRepository{q: mockQueries}

		err := repo.Ensure(context.Background(), nil, b.ServiceType, b.ServiceID, b.Date, 10)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
