package security_test

import (
	"testing"

	"github.com/Rrens/kopiloka/internal/security"
)

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := security.HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if hash == "rahasia123" {
		t.Fatal("hash equals the plaintext password")
	}

	if !security.CheckPassword(hash, "rahasia123") {
		t.Error("expected matching password to check")
	}

	if security.CheckPassword(hash, "salah") {
		t.Error("expected wrong password to fail")
	}

	if security.CheckPassword("not-a-bcrypt-hash", "rahasia123") {
		t.Error("expected malformed hash to fail")
	}
}
