package promocode

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (t DiscountType) String() string {
	return string(t)
}

func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountPercentage, DiscountFixed:
		return true
	default:
		return false
	}
}

// Status is stored administrative state, deliberately independent of the
// computed date window: an admin can park a code as inactive while its dates
// are still current, or pre-stage it as scheduled.
type Status string

const (
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusScheduled Status = "scheduled"
	StatusInactive  Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusExpired, StatusScheduled, StatusInactive:
		return true
	default:
		return false
	}
}
