package availability

import (
	"errors"
	"time"

	"stayhub/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrAvailableOutOfRange = errors.New("available must be between 0 and total")
	ErrInvalidTotal        = errors.New("total capacity must be positive")
	ErrNoCapacity          = errors.New("no remaining capacity")
)

// Record is the remaining-bookable-units counter for one service instance on
// one calendar date. Records exist only for dates that were scheduled at least
// once; a missing date carries no constraint and the ledger never synthesizes
// default rows for it.
type Record struct {
	serviceType catalog.ServiceType
	serviceID   uuid.UUID
	date        time.Time
	total       int32
	available   int32
	updatedAt   time.Time
}

// NewRecord opens a date for booking with the full capacity available.
func NewRecord(serviceType catalog.ServiceType, serviceID uuid.UUID, date time.Time, total int32) (*Record, error) {
	if total <= 0 {
		return nil, ErrInvalidTotal
	}
	return &Record{
		serviceType: serviceType,
		serviceID:   serviceID,
		date:        DateOnly(date),
		total:       total,
		available:   total,
	}, nil
}

func ReconstructRecord(
	serviceType catalog.ServiceType,
	serviceID uuid.UUID,
	date time.Time,
	total, available int32,
	updatedAt time.Time,
) *Record {
	return &Record{
		serviceType: serviceType,
		serviceID:   serviceID,
		date:        DateOnly(date),
		total:       total,
		available:   available,
		updatedAt:   updatedAt,
	}
}

func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SetAvailable rewrites the counter. The caller supplies an absolute value;
// relative adjustments go through Reserve/Release.
func (r *Record) SetAvailable(n int32) error {
	if n < 0 || n > r.total {
		return ErrAvailableOutOfRange
	}
	r.available = n
	return nil
}

// Block zeroes the counter unconditionally, regardless of confirmed bookings.
// Callers are expected to surface the surviving bookings count to the admin.
func (r *Record) Block() {
	r.available = 0
}

// Reserve consumes one unit.
func (r *Record) Reserve() error {
	if r.available <= 0 {
		return ErrNoCapacity
	}
	r.available--
	return nil
}

// Release returns one unit, saturating at total. Releases past total happen
// when a block overwrote the counter while bookings were still live.
func (r *Record) Release() {
	if r.available < r.total {
		r.available++
	}
}

func (r *Record) IsBlocked() bool {
	return r.available == 0
}

// Bookings is derived, never stored.
func (r *Record) Bookings() int32 {
	return r.total - r.available
}

func (r *Record) ServiceType() catalog.ServiceType { return r.serviceType }
func (r *Record) ServiceID() uuid.UUID             { return r.serviceID }
func (r *Record) Date() time.Time                  { return r.date }
func (r *Record) Total() int32                     { return r.total }
func (r *Record) Available() int32                 { return r.available }
func (r *Record) UpdatedAt() time.Time             { return r.updatedAt }
