//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/catalog"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID             uuid.UUID
	ServiceType    string
	Name           string
	Capacity       int32
	BasePriceCents int64
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewServiceBuilder() *ServiceBuilder {
	now := time.Now()
	return &ServiceBuilder{
		ID:             uuid.New(),
		ServiceType:    "room",
		Name:           "Deluxe Room",
		Capacity:       10,
		BasePriceCents: 50000,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *ServiceBuilder) BuildDomain() (*catalog.Service, error) {
	return catalog.NewService(catalog.ServiceType(b.ServiceType), b.Name, b.Capacity, b.BasePriceCents)
}

func (b *ServiceBuilder) BuildSnapshot() *commands.ServiceSnapshot {
	return &commands.ServiceSnapshot{
		ID:             b.ID,
		ServiceType:    b.ServiceType,
		Name:           b.Name,
		Capacity:       b.Capacity,
		BasePriceCents: b.BasePriceCents,
		IsActive:       b.IsActive,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *ServiceBuilder) BuildView() *queries.ServiceView {
	return &queries.ServiceView{
		ID:             b.ID,
		ServiceType:    b.ServiceType,
		Name:           b.Name,
		Capacity:       b.Capacity,
		BasePriceCents: b.BasePriceCents,
		IsActive:       b.IsActive,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *ServiceBuilder) BuildCreateRequestDTO() reqdto.CreateServiceRequest {
	return reqdto.CreateServiceRequest{
		ServiceType:    b.ServiceType,
		Name:           b.Name,
		Capacity:       b.Capacity,
		BasePriceCents: b.BasePriceCents,
	}
}

func (b *ServiceBuilder) WithServiceType(serviceType string) *ServiceBuilder {
	b.ServiceType = serviceType
	return b
}

func (b *ServiceBuilder) WithName(name string) *ServiceBuilder {
	b.Name = name
	return b
}

func (b *ServiceBuilder) WithCapacity(capacity int32) *ServiceBuilder {
	b.Capacity = capacity
	return b
}

func (b *ServiceBuilder) WithBasePrice(cents int64) *ServiceBuilder {
	b.BasePriceCents = cents
	return b
}

func (b *ServiceBuilder) AsInactive() *ServiceBuilder {
	b.IsActive = false
	return b
}
