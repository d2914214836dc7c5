//go:build unit

package availability_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/availability"
	"stayhub/internal/domain/catalog"
	"stayhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	serviceID := uuid.New()
	date := time.Date(2026, 9, 12, 15, 30, 0, 0, time.UTC)

	t.Run("opens the date with full capacity", func(t *testing.T) {
		rec, err := availability.NewRecord(catalog.ServiceRoom, serviceID, date, 10)
		require.NoError(t, err)
		assert.Equal(t, int32(10), rec.Total())
		assert.Equal(t, int32(10), rec.Available())
		assert.Equal(t, int32(0), rec.Bookings())
	})

	t.Run("truncates the date to midnight", func(t *testing.T) {
		rec, err := availability.NewRecord(catalog.ServiceRoom, serviceID, date, 10)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), rec.Date())
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		for _, total := range []int32{0, -1} {
			_, err := availability.NewRecord(catalog.ServiceRoom, serviceID, date, total)
			assert.ErrorIs(t, err, availability.ErrInvalidTotal)
		}
	})
}

func TestSetAvailable(t *testing.T) {
	tests := []struct {
		name  string
		value int32
		errIs error
	}{
		{name: "zero is allowed", value: 0},
		{name: "total is allowed", value: 10},
		{name: "middle value", value: 4},
		{name: "negative rejected", value: -1, errIs: availability.ErrAvailableOutOfRange},
		{name: "above total rejected", value: 11, errIs: availability.ErrAvailableOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := builder.NewAvailabilityBuilder().WithCounts(10, 7).BuildDomain()
			err := rec.SetAvailable(tt.value)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, int32(7), rec.Available(), "failed set must not change the counter")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, rec.Available())
		})
	}
}

func TestReserveAndRelease(t *testing.T) {
	t.Run("reserve consumes one unit", func(t *testing.T) {
		rec := builder.NewAvailabilityBuilder().WithCounts(3, 2).BuildDomain()
		require.NoError(t, rec.Reserve())
		assert.Equal(t, int32(1), rec.Available())
		assert.Equal(t, int32(2), rec.Bookings())
	})

	t.Run("reserve on empty counter fails", func(t *testing.T) {
		rec := builder.NewAvailabilityBuilder().WithCounts(3, 0).BuildDomain()
		assert.ErrorIs(t, rec.Reserve(), availability.ErrNoCapacity)
	})

	t.Run("release returns one unit", func(t *testing.T) {
		rec := builder.NewAvailabilityBuilder().WithCounts(3, 1).BuildDomain()
		rec.Release()
		assert.Equal(t, int32(2), rec.Available())
	})

	t.Run("release saturates at total", func(t *testing.T) {
		rec := builder.NewAvailabilityBuilder().WithCounts(3, 3).BuildDomain()
		rec.Release()
		assert.Equal(t, int32(3), rec.Available())
	})
}

func TestBlock(t *testing.T) {
	rec := builder.NewAvailabilityBuilder().WithCounts(10, 6).BuildDomain()
	survivors := rec.Bookings()

	rec.Block()

	assert.True(t, rec.IsBlocked())
	assert.Equal(t, int32(0), rec.Available())
	// Blocking rewrites the counter only. Confirmed bookings keep existing
	// and drive the release saturation rule afterwards.
	assert.Equal(t, int32(4), survivors)
	assert.Equal(t, int32(10), rec.Bookings())
}

func TestDateRange(t *testing.T) {
	t.Run("days are inclusive and ascending", func(t *testing.T) {
		start := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

		r, err := availability.NewDateRange(start, end)
		require.NoError(t, err)

		days := r.Days()
		require.Len(t, days, 4)
		assert.Equal(t, start, days[0])
		assert.Equal(t, end, days[3])
	})

	t.Run("single day range", func(t *testing.T) {
		day := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
		r, err := availability.NewDateRange(day, day)
		require.NoError(t, err)
		assert.Len(t, r.Days(), 1)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, err := availability.NewDateRange(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, availability.ErrInvalidDateRange)
	})
}

func TestMonth(t *testing.T) {
	t.Run("parses YYYY-MM", func(t *testing.T) {
		m, err := availability.NewMonth("2026-02")
		require.NoError(t, err)
		assert.Equal(t, "2026-02", m.String())

		r := m.Range()
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), r.Start())
		assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), r.End())
	})

	t.Run("leap year february", func(t *testing.T) {
		m, err := availability.NewMonth("2028-02")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC), m.Range().End())
	})

	for _, bad := range []string{"", "2026", "2026-13", "02-2026", "2026/02"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := availability.NewMonth(bad)
			assert.ErrorIs(t, err, availability.ErrInvalidMonth)
		})
	}
}
