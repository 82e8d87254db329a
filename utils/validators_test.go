package utils

import "testing"

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "secret99!", true},
		{"too short", "ab1!", false},
		{"no number", "password!", false},
		{"no special", "password99", false},
		{"number and symbol", "p@ssw0rdlong", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePassword(tt.password); got != tt.want {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestValidHexColor(t *testing.T) {
	tests := []struct {
		color string
		want  bool
	}{
		{"", true},
		{"#fff", true},
		{"#FFFFFF", true},
		{"#a1b2c3", true},
		{"fff", false},
		{"#ffff", false},
		{"#gggggg", false},
		{"red", false},
	}

	for _, tt := range tests {
		if got := ValidHexColor(tt.color); got != tt.want {
			t.Errorf("ValidHexColor(%q) = %v, want %v", tt.color, got, tt.want)
		}
	}
}
