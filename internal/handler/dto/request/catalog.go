package request

type CreateServiceRequest struct {
	ServiceType    string `json:"service_type" binding:"required,oneof=room spa restaurant specialist"`
	Name           string `json:"name" binding:"required"`
	Capacity       int32  `json:"capacity" binding:"required,min=1"`
	BasePriceCents int64  `json:"base_price_cents" binding:"min=0"`
}

type UpdateServiceRequest struct {
	Name           string `json:"name" binding:"required"`
	Capacity       int32  `json:"capacity" binding:"required,min=1"`
	BasePriceCents int64  `json:"base_price_cents" binding:"min=0"`
	IsActive       *bool  `json:"is_active" binding:"required"`
}
