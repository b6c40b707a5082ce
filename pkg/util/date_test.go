package util

import (
	"testing"
	"time"
)

func TestIsWeekend(t *testing.T) {
	sat := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	mon := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	if !IsWeekend(sat) || !IsWeekend(sat.AddDate(0, 0, 1)) {
		t.Fatalf("expected weekend")
	}
	if IsWeekend(mon) {
		t.Fatalf("monday is not weekend")
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2026, 10, 18, 13, 45, 10, 99, time.UTC)
	got := StartOfDay(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Day() != 18 {
		t.Fatalf("unexpected %v", got)
	}
}

func TestFormatDate(t *testing.T) {
	got := FormatDate(time.Date(2026, 1, 5, 23, 59, 0, 0, time.UTC))
	if got != "2026-01-05" {
		t.Fatalf("unexpected %s", got)
	}
}
