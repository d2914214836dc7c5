package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("service name cannot be empty")
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrNegativePrice   = errors.New("base price cannot be negative")
)

// Service is one bookable instance of a hotel offering: a room category, a spa
// treatment, a restaurant sitting, or a specialist. Its capacity seeds the
// availability ledger's total for a date the first time that date is scheduled.
type Service struct {
	id          uuid.UUID
	serviceType ServiceType
	name        string
	capacity    int32
	basePrice   int64
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewService(serviceType ServiceType, name string, capacity int32, basePriceCents int64) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !serviceType.IsValid() {
		return nil, ErrInvalidServiceType
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if basePriceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Service{
		id:          uuid.New(),
		serviceType: serviceType,
		name:        name,
		capacity:    capacity,
		basePrice:   basePriceCents,
		isActive:    true,
	}, nil
}

func ReconstructService(
	id uuid.UUID,
	serviceType ServiceType,
	name string,
	capacity int32,
	basePriceCents int64,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:          id,
		serviceType: serviceType,
		name:        name,
		capacity:    capacity,
		basePrice:   basePriceCents,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Service) ID() uuid.UUID            { return s.id }
func (s *Service) ServiceType() ServiceType { return s.serviceType }
func (s *Service) Name() string             { return s.name }
func (s *Service) Capacity() int32          { return s.capacity }
func (s *Service) BasePriceCents() int64    { return s.basePrice }
func (s *Service) IsActive() bool           { return s.isActive }
func (s *Service) CreatedAt() time.Time     { return s.createdAt }
func (s *Service) UpdatedAt() time.Time     { return s.updatedAt }
