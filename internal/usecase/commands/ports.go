package commands

import (
	"context"
	"time"

	"stayhub/internal/domain/availability"
	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/catalog"
	"stayhub/internal/domain/promocode"
	"stayhub/internal/infra/queries"

	"github.com/google/uuid"
)

// Snapshots are storage-shaped read models handed to the command layer, which
// reconstructs domain entities from them before applying business rules.

type ServiceSnapshot struct {
	ID             uuid.UUID
	ServiceType    string
	Name           string
	Capacity       int32
	BasePriceCents int64
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (s *ServiceSnapshot) ToDomain() (*catalog.Service, error) {
	serviceType, err := catalog.NewServiceType(s.ServiceType)
	if err != nil {
		return nil, err
	}
	return catalog.ReconstructService(
		s.ID, serviceType, s.Name, s.Capacity, s.BasePriceCents, s.IsActive, s.CreatedAt, s.UpdatedAt,
	), nil
}

type PromoCodeSnapshot struct {
	ID                  uuid.UUID
	Code                string
	DiscountType        string
	DiscountValue       float64
	ValidFrom           time.Time
	ValidUntil          time.Time
	ValidFromTime       string
	ValidToTime         string
	UsageLimit          *int32
	UsedCount           int32
	Status              string
	ApplicableServices  []string
	MaxDiscountCapCents *int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (s *PromoCodeSnapshot) ToDomain() (*promocode.PromoCode, error) {
	code, err := promocode.NewCode(s.Code)
	if err != nil {
		return nil, err
	}

	applicable := make([]catalog.ServiceType, 0, len(s.ApplicableServices))
	for _, t := range s.ApplicableServices {
		serviceType, err := catalog.NewServiceType(t)
		if err != nil {
			return nil, err
		}
		applicable = append(applicable, serviceType)
	}

	return promocode.ReconstructPromoCode(
		s.ID,
		code,
		promocode.DiscountType(s.DiscountType),
		s.DiscountValue,
		s.ValidFrom,
		s.ValidUntil,
		promocode.TimeOfDay(s.ValidFromTime),
		promocode.TimeOfDay(s.ValidToTime),
		s.UsageLimit,
		s.UsedCount,
		promocode.Status(s.Status),
		applicable,
		s.MaxDiscountCapCents,
		s.CreatedAt,
		s.UpdatedAt,
	), nil
}

type AvailabilitySnapshot struct {
	ServiceType string
	ServiceID   uuid.UUID
	Date        time.Time
	Total       int32
	Available   int32
	UpdatedAt   time.Time
}

func (s *AvailabilitySnapshot) ToDomain() (*availability.Record, error) {
	serviceType, err := catalog.NewServiceType(s.ServiceType)
	if err != nil {
		return nil, err
	}
	return availability.ReconstructRecord(
		serviceType, s.ServiceID, s.Date, s.Total, s.Available, s.UpdatedAt,
	), nil
}

type BookingSnapshot struct {
	ID            uuid.UUID
	ServiceType   string
	ServiceID     uuid.UUID
	GuestID       uuid.UUID
	Date          time.Time
	SubtotalCents int64
	DiscountCents int64
	PromoCodeID   *uuid.UUID
	Status        string
	Note          *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (s *BookingSnapshot) ToDomain() (*booking.Booking, error) {
	serviceType, err := catalog.NewServiceType(s.ServiceType)
	if err != nil {
		return nil, err
	}
	var note booking.Note
	if s.Note != nil {
		note = booking.NewNote(*s.Note)
	}
	return booking.ReconstructBooking(
		s.ID, serviceType, s.ServiceID, s.GuestID, s.Date,
		s.SubtotalCents, s.DiscountCents, s.PromoCodeID,
		booking.Status(s.Status), note, s.CreatedAt, s.UpdatedAt,
	), nil
}

type StaffSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	Department   string
	AccessLevel  int32
	LastLogin    *time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Write-side repository ports. Methods taking a queries.DBTX participate in a
// caller-managed transaction.

type PromoCodeRepository interface {
	Create(ctx context.Context, pc *promocode.PromoCode) (uuid.UUID, error)
	Update(ctx context.Context, pc *promocode.PromoCode) (*PromoCodeSnapshot, error)
	FindByCode(ctx context.Context, code string) (*PromoCodeSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*PromoCodeSnapshot, error)
	Redeem(ctx context.Context, tx queries.DBTX, id uuid.UUID) (int32, error)
	SetUsedCount(ctx context.Context, id uuid.UUID, usedCount int32) (*PromoCodeSnapshot, error)
}

type AvailabilityRepository interface {
	Find(ctx context.Context, serviceType string, serviceID uuid.UUID, date time.Time) (*AvailabilitySnapshot, error)
	Upsert(ctx context.Context, rec *availability.Record) (*AvailabilitySnapshot, error)
	Ensure(ctx context.Context, tx queries.DBTX, serviceType string, serviceID uuid.UUID, date time.Time, total int32) error
	Decrement(ctx context.Context, tx queries.DBTX, serviceType string, serviceID uuid.UUID, date time.Time) (*AvailabilitySnapshot, error)
	Increment(ctx context.Context, tx queries.DBTX, serviceType string, serviceID uuid.UUID, date time.Time) (*AvailabilitySnapshot, error)
	Block(ctx context.Context, serviceType string, serviceID uuid.UUID, date time.Time, total int32) (*AvailabilitySnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx queries.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	Cancel(ctx context.Context, tx queries.DBTX, id uuid.UUID) error
}

type CatalogRepository interface {
	Create(ctx context.Context, svc *catalog.Service) (uuid.UUID, error)
	Update(ctx context.Context, svc *catalog.Service) (*ServiceSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
}

type StaffRepository interface {
	FindByEmail(ctx context.Context, email string) (*StaffSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*StaffSnapshot, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}
