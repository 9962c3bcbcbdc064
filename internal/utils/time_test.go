package utils

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	a, _ := ParseDate("2025-03-10")
	b, _ := ParseDate("2025-03-13")

	if d := DaysBetween(a, b); d != 3 {
		t.Fatalf("DaysBetween = %d, want 3", d)
	}
	if d := DaysBetween(a, a); d != 0 {
		t.Fatalf("same day = %d, want 0", d)
	}
	if d := DaysBetween(b, a); d != -3 {
		t.Fatalf("reversed = %d, want -3", d)
	}
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2025, 3, 10, 23, 30, 0, 0, time.Local)
	b := time.Date(2025, 3, 11, 0, 15, 0, 0, time.Local)
	if d := DaysBetween(a, b); d != 1 {
		t.Fatalf("DaysBetween = %d, want 1", d)
	}
}

func TestDaysBetweenAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// Spring forward: 2025-03-09 has only 23 wall-clock hours.
	a := time.Date(2025, 3, 9, 0, 0, 0, 0, loc)
	b := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	if d := DaysBetween(a, b); d != 1 {
		t.Fatalf("one night over spring-forward = %d, want 1", d)
	}

	// Fall back: 2025-11-02 has 25 wall-clock hours.
	a = time.Date(2025, 11, 1, 0, 0, 0, 0, loc)
	b = time.Date(2025, 11, 4, 0, 0, 0, 0, loc)
	if d := DaysBetween(a, b); d != 3 {
		t.Fatalf("three nights over fall-back = %d, want 3", d)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("13-03-2025"); err == nil {
		t.Fatalf("expected error for wrong layout")
	}
	if _, err := ParseDate(""); err == nil {
		t.Fatalf("expected error for empty string")
	}
}
