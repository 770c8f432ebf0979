package domain

// Principal is the acting identity resolved once at the request boundary and
// passed explicitly into every service call. The zero value is the anonymous
// principal: requests without a usable access token still carry one, and the
// guard predicates decide whether anonymous access is acceptable.
type Principal struct {
	ID       string
	Username string
	Role     string
}

// Anonymous returns the principal used for unauthenticated requests.
func Anonymous() Principal {
	return Principal{}
}

// IsAnonymous reports whether the principal carries no resolved identity.
func (p Principal) IsAnonymous() bool {
	return p.ID == ""
}

// IsAdmin reports whether the principal holds the ADMIN role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
