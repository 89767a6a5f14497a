package schedule

import (
	"testing"

	"github.com/Expertman131/beauty-track-sub001/internal/models"
)

func TestTotals(t *testing.T) {
	services := []models.Service{
		{Price: 2000, DurationMin: 60},
		{Price: 2500, DurationMin: 30},
	}

	if got := TotalPrice(services); got != 4500 {
		t.Fatalf("expected total price 4500, got %d", got)
	}
	if got := TotalDuration(services); got != 90 {
		t.Fatalf("expected total duration 90, got %d", got)
	}
}

func TestTotals_EmptySelection(t *testing.T) {
	if got := TotalPrice(nil); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := TotalDuration(nil); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestEndTime(t *testing.T) {
	got, err := EndTime("19:00", 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "20:30" {
		t.Fatalf("expected 20:30, got %s", got)
	}
}

func TestEndTime_ZeroPadding(t *testing.T) {
	got, err := EndTime("09:05", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "09:06" {
		t.Fatalf("expected 09:06, got %s", got)
	}
}

func TestEndTime_WrapsPastMidnight(t *testing.T) {
	got, err := EndTime("23:30", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "00:30" {
		t.Fatalf("expected 00:30 after wrap, got %s", got)
	}
}

func TestEndTime_Invalid(t *testing.T) {
	if _, err := EndTime("25:99", 30); err == nil {
		t.Fatalf("expected error for malformed start time")
	}
}
