package staff

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleReceptionist Role = "receptionist"
	RoleStaff        Role = "staff"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleReceptionist, RoleStaff:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

type Department string

const (
	DepartmentFrontOffice  Department = "front_office"
	DepartmentSpa          Department = "spa"
	DepartmentRestaurant   Department = "restaurant"
	DepartmentEvents       Department = "events"
	DepartmentHousekeeping Department = "housekeeping"
)

func (d Department) String() string {
	return string(d)
}

func (d Department) IsValid() bool {
	switch d {
	case DepartmentFrontOffice, DepartmentSpa, DepartmentRestaurant, DepartmentEvents, DepartmentHousekeeping:
		return true
	default:
		return false
	}
}

func NewDepartment(s string) (Department, error) {
	dept := Department(s)
	if !dept.IsValid() {
		return "", ErrInvalidDepartment
	}
	return dept, nil
}
