package usecase

import (
	"testing"
	"time"

	"notewell/model"
)

func TestComputeNextOccurrence(t *testing.T) {
	base := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		due     time.Time
		pattern model.RecurrencePattern
		want    time.Time
		wantOK  bool
	}{
		{"none has no successor", base, model.RecurrenceNone, time.Time{}, false},
		{"daily", base, model.RecurrenceDaily,
			time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC), true},
		{"weekly", base, model.RecurrenceWeekly,
			time.Date(2026, time.March, 17, 9, 0, 0, 0, time.UTC), true},
		{"biweekly", base, model.RecurrenceBiweekly,
			time.Date(2026, time.March, 24, 9, 0, 0, 0, time.UTC), true},
		{"monthly", base, model.RecurrenceMonthly,
			time.Date(2026, time.April, 10, 9, 0, 0, 0, time.UTC), true},
		{"monthly follows calendar length",
			time.Date(2026, time.January, 31, 9, 0, 0, 0, time.UTC),
			model.RecurrenceMonthly,
			// Go normalizes Feb 31 2026 to Mar 3 2026.
			time.Date(2026, time.March, 3, 9, 0, 0, 0, time.UTC), true},
		{"yearly", base, model.RecurrenceYearly,
			time.Date(2027, time.March, 10, 9, 0, 0, 0, time.UTC), true},
		{"yearly from leap day",
			time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC),
			model.RecurrenceYearly,
			time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC), true},
		{"unknown pattern", base, model.RecurrencePattern("fortnightly"), time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComputeNextOccurrence(tt.due, tt.pattern)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("next = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeNextOccurrencePreservesTimeOfDay(t *testing.T) {
	due := time.Date(2026, time.June, 1, 14, 30, 45, 0, time.UTC)
	next, ok := ComputeNextOccurrence(due, model.RecurrenceWeekly)
	if !ok {
		t.Fatal("expected a successor")
	}
	if next.Hour() != 14 || next.Minute() != 30 || next.Second() != 45 {
		t.Errorf("time of day changed: %v", next)
	}
}
