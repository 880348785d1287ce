package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRole_Valid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleUser.Valid() {
		t.Fatalf("expected ADMIN and USER to be valid")
	}
	for _, r := range []Role{"", "admin", "root", "SUPERUSER"} {
		if r.Valid() {
			t.Fatalf("expected %q to be invalid", r)
		}
	}
}

func TestUser_Public_OmitsPasswordHash(t *testing.T) {
	u := &User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$supersecrethash",
		Role:         RoleAdmin,
		PhoneNumber:  "555-0100",
		DateOfBirth:  "1990-01-01",
		CreatedAt:    time.Now().UTC(),
	}

	pub := u.Public()
	if pub.ID != u.ID || pub.Username != u.Username || pub.Email != u.Email {
		t.Fatalf("projection lost identity fields: %+v", pub)
	}
	if pub.Role != RoleAdmin || pub.PhoneNumber != u.PhoneNumber || pub.DateOfBirth != u.DateOfBirth {
		t.Fatalf("projection lost profile fields: %+v", pub)
	}

	raw, err := json.Marshal(pub)
	if err != nil {
		t.Fatalf("marshal projection: %v", err)
	}
	if strings.Contains(string(raw), "supersecrethash") {
		t.Fatalf("projection serialized the password hash: %s", raw)
	}
	if strings.Contains(strings.ToLower(string(raw)), "password") {
		t.Fatalf("projection exposes a password field: %s", raw)
	}
}

func TestUser_JSON_NeverSerializesHash(t *testing.T) {
	u := &User{Username: "bob", PasswordHash: "$2a$10$hash"}
	raw, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}
	if strings.Contains(string(raw), "hash") {
		t.Fatalf("user marshaled its password hash: %s", raw)
	}
}

func TestCanUpdate(t *testing.T) {
	adminID, userID, otherID := uuid.New(), uuid.New(), uuid.New()
	admin := &User{ID: adminID, Role: RoleAdmin}
	user := &User{ID: userID, Role: RoleUser}

	if err := CanUpdate(admin, otherID); err != nil {
		t.Fatalf("admin should update anyone: %v", err)
	}
	if err := CanUpdate(admin, adminID); err != nil {
		t.Fatalf("admin should update self: %v", err)
	}
	if err := CanUpdate(user, userID); err != nil {
		t.Fatalf("user should update self: %v", err)
	}
	if err := CanUpdate(user, otherID); err != ErrNotProfileOwner {
		t.Fatalf("expected ErrNotProfileOwner, got %v", err)
	}
}

func TestCanDelete(t *testing.T) {
	adminID, userID, otherID := uuid.New(), uuid.New(), uuid.New()
	admin := &User{ID: adminID, Role: RoleAdmin}
	user := &User{ID: userID, Role: RoleUser}

	if err := CanDelete(admin, otherID); err != nil {
		t.Fatalf("admin should delete others: %v", err)
	}
	if err := CanDelete(admin, adminID); err != ErrSelfDelete {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}
	if err := CanDelete(user, otherID); err != ErrAdminOnly {
		t.Fatalf("expected ErrAdminOnly, got %v", err)
	}
	if err := CanDelete(user, userID); err != ErrAdminOnly {
		t.Fatalf("self-delete by a regular user is still admin-gated, got %v", err)
	}
}
