package staff

// Subject is the authorization view of a staff member, typically decoded from
// a token rather than loaded from storage.
type Subject struct {
	Role        Role
	Department  Department
	AccessLevel AccessLevel
}

// Requirement describes what a protected operation accepts. Empty slices mean
// "no constraint of that kind"; MinAccessLevel zero disables the fallback.
type Requirement struct {
	Roles          []Role
	Departments    []Department
	MinAccessLevel int
}

type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Authorize evaluates the guard chain in fixed precedence: admin bypass,
// then department membership, then role membership, then the numeric
// access-level fallback. The first satisfied rule grants access.
func Authorize(sub Subject, req Requirement) Decision {
	if sub.Role == RoleAdmin {
		return allow()
	}

	for _, d := range req.Departments {
		if sub.Department == d {
			return allow()
		}
	}

	for _, r := range req.Roles {
		if sub.Role == r {
			return allow()
		}
	}

	if req.MinAccessLevel > 0 && sub.AccessLevel.Int() >= req.MinAccessLevel {
		return allow()
	}

	return deny("insufficient permissions")
}
