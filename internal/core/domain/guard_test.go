package domain

import "testing"

func TestRequireAuthenticated(t *testing.T) {
	if err := RequireAuthenticated(Anonymous()); err != ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if err := RequireAuthenticated(Principal{ID: "u1", Username: "alice", Role: RoleUser}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestRequireOwner(t *testing.T) {
	owner := Principal{ID: "u1", Username: "alice", Role: RoleUser}
	other := Principal{ID: "u2", Username: "bob", Role: RoleUser}

	if err := RequireOwner(owner, "u1"); err != nil {
		t.Fatalf("owner rejected: %v", err)
	}
	if err := RequireOwner(other, "u1"); err != ErrNotOwner {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	// Anonymous fails authentication before ownership.
	if err := RequireOwner(Anonymous(), "u1"); err != ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestRequireOwner_AdminIsNotOwner(t *testing.T) {
	admin := Principal{ID: "a1", Username: "root", Role: RoleAdmin}
	if err := RequireOwner(admin, "u1"); err != ErrNotOwner {
		t.Fatalf("expected ErrNotOwner for admin non-owner, got %v", err)
	}
}

func TestRequireRole(t *testing.T) {
	admin := Principal{ID: "a1", Username: "root", Role: RoleAdmin}
	user := Principal{ID: "u1", Username: "alice", Role: RoleUser}

	if err := RequireRole(admin, RoleAdmin); err != nil {
		t.Fatalf("admin rejected: %v", err)
	}
	if err := RequireRole(user, RoleAdmin); err != ErrAdminOnly {
		t.Fatalf("expected ErrAdminOnly, got %v", err)
	}
	if err := RequireRole(Anonymous(), RoleAdmin); err != ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestPrincipal_IsAnonymous(t *testing.T) {
	if !Anonymous().IsAnonymous() {
		t.Fatalf("anonymous principal should report anonymous")
	}
	if (Principal{ID: "u1"}).IsAnonymous() {
		t.Fatalf("resolved principal should not report anonymous")
	}
}
