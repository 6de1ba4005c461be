package clock

import (
	"testing"
	"time"
)

func TestStartOfWeekIsSunday(t *testing.T) {
	// Wednesday 2025-03-12 15:04
	wed := time.Date(2025, 3, 12, 15, 4, 0, 0, time.UTC)
	got := StartOfWeek(wed)
	want := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("StartOfWeek(%v) = %v, want %v", wed, got, want)
	}
	if got.Weekday() != time.Sunday {
		t.Errorf("expected Sunday, got %v", got.Weekday())
	}
}

func TestStartOfWeekOnSunday(t *testing.T) {
	sun := time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)
	got := StartOfWeek(sun)
	want := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfWeek on a Sunday = %v, want %v", got, want)
	}
}

func TestStartOfMonth(t *testing.T) {
	ts := time.Date(2025, 12, 31, 8, 30, 0, 0, time.UTC)
	want := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	if got := StartOfMonth(ts); !got.Equal(want) {
		t.Errorf("StartOfMonth = %v, want %v", got, want)
	}
}

func TestFixedClock(t *testing.T) {
	pinned := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := Fixed(pinned)
	if !c.Now().Equal(pinned) {
		t.Errorf("Fixed clock drifted: %v", c.Now())
	}
}
