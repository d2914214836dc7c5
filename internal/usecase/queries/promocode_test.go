//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPromoCodeReadStore struct {
	mock.Mock
}

func (m *mockPromoCodeReadStore) GetByCode(ctx context.Context, code string) (*queries.PromoCodeView, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.PromoCodeView), args.Error(1)
}

func (m *mockPromoCodeReadStore) List(ctx context.Context) ([]queries.PromoCodeView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.PromoCodeView), args.Error(1)
}

var previewNow = time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)

func previewFixture(t *testing.T) (*mockPromoCodeReadStore, queries.PromoCodeQueries) {
	t.Helper()
	store := new(mockPromoCodeReadStore)
	return store, queries.NewPromoCodeQueries(store, clock.NewMockClock(previewNow))
}

func inWindow() *builder.PromoCodeBuilder {
	return builder.NewPromoCodeBuilder().
		WithDateWindow(previewNow.AddDate(0, 0, -7), previewNow.AddDate(0, 0, 7))
}

func TestPromoCodeQueriesGet(t *testing.T) {
	t.Run("normalizes the code before the lookup", func(t *testing.T) {
		store, q := previewFixture(t)
		view := inWindow().BuildView()
		store.On("GetByCode", mock.Anything, "SUMMER10").Return(view, nil)

		got, err := q.Get(context.Background(), "  summer10 ")

		require.NoError(t, err)
		assert.Equal(t, "SUMMER10", got.Code)
		store.AssertExpectations(t)
	})

	t.Run("unknown code maps to not found", func(t *testing.T) {
		store, q := previewFixture(t)
		store.On("GetByCode", mock.Anything, "NOPE10").
			Return(nil, infra.WrapRepoErr("promo code not found", nil, infra.KindNotFound))

		_, err := q.Get(context.Background(), "NOPE10")

		assert.ErrorIs(t, err, errs.ErrPromoCodeNotFound)
	})

	t.Run("malformed code never reaches the store", func(t *testing.T) {
		store, q := previewFixture(t)

		_, err := q.Get(context.Background(), "bad code!")

		assert.ErrorIs(t, err, errs.ErrPromoCodeNotFound)
		store.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
	})

	t.Run("store failure maps to a database error", func(t *testing.T) {
		store, q := previewFixture(t)
		store.On("GetByCode", mock.Anything, "SUMMER10").
			Return(nil, infra.WrapRepoErr("select promo code", errors.New("connection reset")))

		_, err := q.Get(context.Background(), "SUMMER10")

		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}

func TestPromoCodeQueriesPreview(t *testing.T) {
	t.Run("quotes a percentage discount", func(t *testing.T) {
		store, q := previewFixture(t)
		store.On("GetByCode", mock.Anything, "SUMMER10").Return(inWindow().BuildView(), nil)

		got, err := q.Preview(context.Background(), "SUMMER10", nil, 50000)

		require.NoError(t, err)
		discount, final := int64(5000), int64(45000)
		want := &queries.PreviewResult{Valid: true, DiscountCents: &discount, FinalCents: &final}
		assert.Empty(t, cmp.Diff(want, got))
	})

	t.Run("cap limits the quoted discount", func(t *testing.T) {
		store, q := previewFixture(t)
		store.On("GetByCode", mock.Anything, "SUMMER10").
			Return(inWindow().WithMaxDiscountCap(2000).BuildView(), nil)

		got, err := q.Preview(context.Background(), "SUMMER10", nil, 50000)

		require.NoError(t, err)
		require.True(t, got.Valid)
		assert.Equal(t, int64(2000), *got.DiscountCents)
		assert.Equal(t, int64(48000), *got.FinalCents)
	})

	t.Run("exhausted code quotes the rejection reason", func(t *testing.T) {
		store, q := previewFixture(t)
		store.On("GetByCode", mock.Anything, "SUMMER10").
			Return(inWindow().WithUsageLimit(100).WithUsedCount(100).BuildView(), nil)

		got, err := q.Preview(context.Background(), "SUMMER10", nil, 50000)

		require.NoError(t, err)
		want := &queries.PreviewResult{Valid: false, Reason: "usage limit reached"}
		assert.Empty(t, cmp.Diff(want, got))
		assert.Nil(t, got.DiscountCents)
	})

	t.Run("service scope is honored when a type is given", func(t *testing.T) {
		store, q := previewFixture(t)
		store.On("GetByCode", mock.Anything, "SUMMER10").
			Return(inWindow().WithApplicableServices("spa").BuildView(), nil)

		serviceType := "room"
		got, err := q.Preview(context.Background(), "SUMMER10", &serviceType, 50000)

		require.NoError(t, err)
		require.False(t, got.Valid)
		assert.Equal(t, "not applicable to this service", got.Reason)
	})

	t.Run("scope is skipped without a type", func(t *testing.T) {
		store, q := previewFixture(t)
		store.On("GetByCode", mock.Anything, "SUMMER10").
			Return(inWindow().WithApplicableServices("spa").BuildView(), nil)

		got, err := q.Preview(context.Background(), "SUMMER10", nil, 50000)

		require.NoError(t, err)
		assert.True(t, got.Valid)
	})

	t.Run("unknown service type is a validation error", func(t *testing.T) {
		store, q := previewFixture(t)
		store.On("GetByCode", mock.Anything, "SUMMER10").Return(inWindow().BuildView(), nil)

		serviceType := "parking"
		_, err := q.Preview(context.Background(), "SUMMER10", &serviceType, 50000)

		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("negative amount is rejected before the lookup", func(t *testing.T) {
		store, q := previewFixture(t)

		_, err := q.Preview(context.Background(), "SUMMER10", nil, -1)

		assert.ErrorIs(t, err, errs.ErrDomainValidation)
		store.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
	})

	t.Run("zero amount quotes a zero discount", func(t *testing.T) {
		store, q := previewFixture(t)
		store.On("GetByCode", mock.Anything, "SUMMER10").Return(inWindow().BuildView(), nil)

		got, err := q.Preview(context.Background(), "SUMMER10", nil, 0)

		require.NoError(t, err)
		require.True(t, got.Valid)
		assert.Equal(t, int64(0), *got.DiscountCents)
		assert.Equal(t, int64(0), *got.FinalCents)
	})
}
