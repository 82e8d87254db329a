package utils

import (
	"strings"
	"testing"
)

func TestGenerateShareToken(t *testing.T) {
	token, err := GenerateShareToken()
	if err != nil {
		t.Fatalf("GenerateShareToken failed: %v", err)
	}

	// 32 random bytes encode to 43 URL-safe characters without padding.
	if len(token) != 43 {
		t.Errorf("token length = %d, want 43", len(token))
	}
	if strings.ContainsAny(token, "+/=") {
		t.Errorf("token is not URL-safe: %q", token)
	}
}

func TestGenerateShareTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateShareToken()
		if err != nil {
			t.Fatalf("GenerateShareToken failed: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token after %d draws", i)
		}
		seen[token] = true
	}
}

func TestGenerateIDUnique(t *testing.T) {
	if GenerateID() == GenerateID() {
		t.Error("two generated ids collided")
	}
}
