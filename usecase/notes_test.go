package usecase

import (
	"strings"
	"testing"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"simple", "milk eggs bread", 3},
		{"collapsed whitespace", "  milk   eggs\n\nbread\t", 3},
		{"single word", "hello", 1},
		{"empty", "", 0},
		{"whitespace only", "   \n\t  ", 0},
		{"unicode words", "héllo wörld", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.content); got != tt.want {
				t.Errorf("CountWords(%q) = %d, want %d", tt.content, got, tt.want)
			}
		})
	}
}

func TestCountCharacters(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"ascii", "milk eggs bread", 15},
		{"empty", "", 0},
		{"multibyte runes count once", "héllo", 5},
		{"cjk", "你好世界", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountCharacters(tt.content); got != tt.want {
				t.Errorf("CountCharacters(%q) = %d, want %d", tt.content, got, tt.want)
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	if err := validateTitle("Groceries"); err != nil {
		t.Errorf("valid title rejected: %v", err)
	}
	if err := validateTitle(""); err == nil {
		t.Error("empty title accepted")
	}
	if err := validateTitle("   "); err == nil {
		t.Error("whitespace-only title accepted")
	}
	if err := validateTitle(strings.Repeat("a", MaxTitleLength)); err != nil {
		t.Errorf("title at limit rejected: %v", err)
	}
	if err := validateTitle(strings.Repeat("a", MaxTitleLength+1)); err == nil {
		t.Error("over-limit title accepted")
	}
}

func TestValidateContent(t *testing.T) {
	if err := validateContent("some content"); err != nil {
		t.Errorf("valid content rejected: %v", err)
	}
	if err := validateContent(""); err == nil {
		t.Error("empty content accepted")
	}
	if err := validateContent(strings.Repeat("x", MaxContentLength+1)); err == nil {
		t.Error("over-limit content accepted")
	}
}

func TestDedupe(t *testing.T) {
	got := dedupe([]string{"a", "b", "a", "c", "b"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("dedupe returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dedupe[%d] = %q, want %q (order must be preserved)", i, got[i], want[i])
		}
	}

	if got := dedupe(nil); len(got) != 0 {
		t.Errorf("dedupe(nil) = %v, want empty", got)
	}
}
