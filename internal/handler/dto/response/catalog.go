package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID             uuid.UUID `json:"id"`
	ServiceType    string    `json:"serviceType"`
	Name           string    `json:"name"`
	Capacity       int32     `json:"capacity"`
	BasePriceCents int64     `json:"basePriceCents"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromServiceView(rm *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:             rm.ID,
		ServiceType:    rm.ServiceType,
		Name:           rm.Name,
		Capacity:       rm.Capacity,
		BasePriceCents: rm.BasePriceCents,
		IsActive:       rm.IsActive,
		CreatedAt:      rm.CreatedAt,
		UpdatedAt:      rm.UpdatedAt,
	}
}
