package repos_test

import (
	"errors"
	"testing"

	"mndmotors/internal/repos"
)

// Both mismatch cases must come back as the same error so callers cannot tell
// an unknown email from a wrong password.
func TestByCredentialsMismatchIsUniform(t *testing.T) {
	db, err := repos.OpenDB("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	admins := repos.NewAdminRepo(db)

	a, err := admins.ByCredentials("admin@mndmotors.test", "adminPassword")
	if err != nil {
		t.Fatalf("seeded admin login: %v", err)
	}
	if a.ID == 0 || a.Username != "admin" {
		t.Fatalf("unexpected admin: %+v", a)
	}

	if _, err := admins.ByCredentials("admin@mndmotors.test", "wrong"); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("wrong password: want ErrNotFound, got %v", err)
	}
	if _, err := admins.ByCredentials("nobody@mndmotors.test", "adminPassword"); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("unknown email: want ErrNotFound, got %v", err)
	}
}

func TestContactInsertAssignsIDs(t *testing.T) {
	db, err := repos.OpenDB("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	contacts := repos.NewContactRepo(db)

	first, err := contacts.Insert("Asha", "asha@example.com", "Is the Swift still available?")
	if err != nil {
		t.Fatal(err)
	}
	second, err := contacts.Insert("Ravi", "ravi@example.com", "Looking for an SUV under 15L.")
	if err != nil {
		t.Fatal(err)
	}
	if first == 0 || second == 0 || first == second {
		t.Fatalf("expected distinct non-zero ids, got %d and %d", first, second)
	}
}
