package domain

// Guard predicates gate every mutating operation. They are pure functions of
// the principal and the record being touched, so the ownership and role rules
// are defined once here instead of being repeated inline in each service.
// A failed guard means the operation performs no write at all.

// RequireAuthenticated fails when the principal is anonymous.
func RequireAuthenticated(p Principal) error {
	if p.IsAnonymous() {
		return ErrUnauthenticated
	}
	return nil
}

// RequireOwner fails unless the principal is the creator of the record.
// Anonymous principals fail authentication first so callers get a 401
// rather than a misleading 403.
func RequireOwner(p Principal, ownerID string) error {
	if err := RequireAuthenticated(p); err != nil {
		return err
	}
	if p.ID != ownerID {
		return ErrNotOwner
	}
	return nil
}

// RequireRole fails unless the principal holds the given role. Ownership is
// irrelevant here: any admin may answer any question.
func RequireRole(p Principal, role string) error {
	if err := RequireAuthenticated(p); err != nil {
		return err
	}
	if p.Role != role {
		return ErrAdminOnly
	}
	return nil
}
