package usecase

import (
	"testing"
	"time"

	"notewell/model"
)

func TestShareExpired(t *testing.T) {
	now := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name  string
		share *model.SharedNote
		want  bool
	}{
		{"no expiry never expires", &model.SharedNote{}, false},
		{"future expiry", &model.SharedNote{ExpiresAt: &future}, false},
		{"past expiry", &model.SharedNote{ExpiresAt: &past}, true},
		{"exactly now is not expired", &model.SharedNote{ExpiresAt: &now}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShareExpired(tt.share, now); got != tt.want {
				t.Errorf("ShareExpired = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateExpiry(t *testing.T) {
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)

	if err := validateExpiry(nil); err != nil {
		t.Errorf("nil expiry rejected: %v", err)
	}
	if err := validateExpiry(&future); err != nil {
		t.Errorf("future expiry rejected: %v", err)
	}
	if err := validateExpiry(&past); err == nil {
		t.Error("past expiry accepted")
	}
}
