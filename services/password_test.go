package services

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	password := "correct horse battery staple 1!"

	hashed, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hashed == password {
		t.Fatal("hash must not equal the plain password")
	}
	if !strings.Contains(hashed, "$") {
		t.Fatalf("expected salt$hash encoding, got %q", hashed)
	}

	if !VerifyPassword(password, hashed) {
		t.Error("correct password rejected")
	}
	if VerifyPassword("wrong password", hashed) {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("same-password-9!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	second, err := HashPassword("same-password-9!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password should differ by salt")
	}
}

func TestVerifyPasswordMalformedStored(t *testing.T) {
	if VerifyPassword("anything", "not-a-valid-record") {
		t.Error("malformed stored value verified")
	}
	if VerifyPassword("anything", "a$b$c") {
		t.Error("record with extra separators verified")
	}
	if VerifyPassword("anything", "") {
		t.Error("empty stored value verified")
	}
}
