package seed

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/floctet/studio-api/internal/core/domain"
	"github.com/floctet/studio-api/internal/infrastructure/store/memory"
)

func TestAdmin(t *testing.T) {
	users := memory.NewUserRepository()
	ctx := context.Background()

	if err := Admin(ctx, users, "admin123", "admin1234567890", "admin@floctet.com"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	admin, err := users.FindByUsername(ctx, "admin123")
	if err != nil {
		t.Fatalf("seeded admin not found: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %q", admin.Role)
	}
	if admin.ID == 0 {
		t.Fatalf("admin must be an ordinary record with an assigned id")
	}
	if admin.PasswordHash == "admin1234567890" {
		t.Fatalf("password stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin1234567890")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	// Second run is a no-op.
	if err := Admin(ctx, users, "admin123", "differentpassword", "admin@floctet.com"); err != nil {
		t.Fatalf("repeat seed failed: %v", err)
	}
	again, err := users.FindByUsername(ctx, "admin123")
	if err != nil {
		t.Fatalf("admin gone after repeat seed: %v", err)
	}
	if again.PasswordHash != admin.PasswordHash {
		t.Fatalf("repeat seed overwrote the existing admin")
	}
}

func TestServices(t *testing.T) {
	catalog := memory.NewServiceRepository()
	ctx := context.Background()

	if err := Services(ctx, catalog); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	services, err := catalog.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(services) != 6 {
		t.Fatalf("expected 6 seeded services, got %d", len(services))
	}

	titles := make(map[string]bool)
	for _, s := range services {
		if s.Price == "" || s.Icon == "" {
			t.Fatalf("incomplete catalog entry: %+v", s)
		}
		titles[s.Title] = true
	}
	for _, want := range []string{
		"Website Design", "Full-Stack Development", "Mobile App Development",
		"AI Development", "Bug Bounty Hunting", "API Integration",
	} {
		if !titles[want] {
			t.Fatalf("missing catalog entry %q", want)
		}
	}

	// Second run leaves the catalog untouched.
	if err := Services(ctx, catalog); err != nil {
		t.Fatalf("repeat seed failed: %v", err)
	}
	services, err = catalog.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(services) != 6 {
		t.Fatalf("repeat seed duplicated entries: %d", len(services))
	}
}
