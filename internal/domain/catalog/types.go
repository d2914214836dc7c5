package catalog

import "errors"

var ErrInvalidServiceType = errors.New("invalid service type")

// ServiceType is the category of a bookable offering.
type ServiceType string

const (
	ServiceRoom       ServiceType = "room"
	ServiceSpa        ServiceType = "spa"
	ServiceRestaurant ServiceType = "restaurant"
	ServiceSpecialist ServiceType = "specialist"
)

func (t ServiceType) String() string {
	return string(t)
}

func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceRoom, ServiceSpa, ServiceRestaurant, ServiceSpecialist:
		return true
	default:
		return false
	}
}

func NewServiceType(s string) (ServiceType, error) {
	t := ServiceType(s)
	if !t.IsValid() {
		return "", ErrInvalidServiceType
	}
	return t, nil
}
