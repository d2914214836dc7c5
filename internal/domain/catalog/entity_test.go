//go:build unit

package catalog_test

import (
	"testing"

	"stayhub/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	tests := []struct {
		name        string
		serviceType catalog.ServiceType
		svcName     string
		capacity    int32
		price       int64
		errIs       error
	}{
		{name: "valid room", serviceType: catalog.ServiceRoom, svcName: "Deluxe Room", capacity: 10, price: 50000},
		{name: "free service is allowed", serviceType: catalog.ServiceSpa, svcName: "Intro Session", capacity: 1, price: 0},
		{name: "empty name", serviceType: catalog.ServiceRoom, svcName: "   ", capacity: 10, price: 50000, errIs: catalog.ErrEmptyName},
		{name: "unknown type", serviceType: "parking", svcName: "Garage", capacity: 10, price: 50000, errIs: catalog.ErrInvalidServiceType},
		{name: "zero capacity", serviceType: catalog.ServiceRoom, svcName: "Deluxe Room", capacity: 0, price: 50000, errIs: catalog.ErrInvalidCapacity},
		{name: "negative price", serviceType: catalog.ServiceRoom, svcName: "Deluxe Room", capacity: 10, price: -1, errIs: catalog.ErrNegativePrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := catalog.NewService(tt.serviceType, tt.svcName, tt.capacity, tt.price)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, svc.IsActive(), "new services start active")
		})
	}

	t.Run("name is trimmed", func(t *testing.T) {
		svc, err := catalog.NewService(catalog.ServiceRoom, "  Deluxe Room  ", 10, 50000)
		require.NoError(t, err)
		assert.Equal(t, "Deluxe Room", svc.Name())
	})
}

func TestNewServiceType(t *testing.T) {
	for _, valid := range []string{"room", "spa", "restaurant", "specialist"} {
		st, err := catalog.NewServiceType(valid)
		assert.NoError(t, err)
		assert.Equal(t, valid, st.String())
	}

	_, err := catalog.NewServiceType("gym")
	assert.ErrorIs(t, err, catalog.ErrInvalidServiceType)
}
