//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/availability"
	"stayhub/internal/domain/catalog"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityBuilder struct {
	ServiceType string
	ServiceID   uuid.UUID
	Date        time.Time
	Total       int32
	Available   int32
	UpdatedAt   time.Time
}

func NewAvailabilityBuilder() *AvailabilityBuilder {
	now := time.Now()
	return &AvailabilityBuilder{
		ServiceType: "room",
		ServiceID:   uuid.New(),
		Date:        availability.DateOnly(now.AddDate(0, 0, 1)),
		Total:       10,
		Available:   10,
		UpdatedAt:   now,
	}
}

func (b *AvailabilityBuilder) BuildDomain() *availability.Record {
	return availability.ReconstructRecord(
		catalog.ServiceType(b.ServiceType), b.ServiceID, b.Date, b.Total, b.Available, b.UpdatedAt,
	)
}

func (b *AvailabilityBuilder) BuildSnapshot() *commands.AvailabilitySnapshot {
	return &commands.AvailabilitySnapshot{
		ServiceType: b.ServiceType,
		ServiceID:   b.ServiceID,
		Date:        b.Date,
		Total:       b.Total,
		Available:   b.Available,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *AvailabilityBuilder) BuildView() *queries.AvailabilityView {
	return &queries.AvailabilityView{
		ServiceType: b.ServiceType,
		ServiceID:   b.ServiceID,
		Date:        b.Date,
		Total:       b.Total,
		Available:   b.Available,
		Bookings:    b.Total - b.Available,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *AvailabilityBuilder) WithServiceType(serviceType string) *AvailabilityBuilder {
	b.ServiceType = serviceType
	return b
}

func (b *AvailabilityBuilder) WithServiceID(id uuid.UUID) *AvailabilityBuilder {
	b.ServiceID = id
	return b
}

func (b *AvailabilityBuilder) WithDate(date time.Time) *AvailabilityBuilder {
	b.Date = availability.DateOnly(date)
	return b
}

func (b *AvailabilityBuilder) WithCounts(total, available int32) *AvailabilityBuilder {
	b.Total = total
	b.Available = available
	return b
}

func (b *AvailabilityBuilder) AsBlocked() *AvailabilityBuilder {
	b.Available = 0
	return b
}
