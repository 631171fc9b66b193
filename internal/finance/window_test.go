package finance

import (
	"testing"
	"time"
)

func TestWeekOfSaturdayIsItsOwnStart(t *testing.T) {
	// 2025-01-04 is a Saturday.
	sat := time.Date(2025, 1, 4, 15, 30, 12, 0, time.UTC)
	w := WeekOf(sat)

	wantStart := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	if !w.Start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", w.Start, wantStart)
	}
	if w.Start.Weekday() != time.Saturday {
		t.Fatalf("start weekday = %v, want Saturday", w.Start.Weekday())
	}
}

func TestWeekOfSpan(t *testing.T) {
	w := WeekOf(time.Date(2025, 3, 19, 8, 0, 0, 0, time.UTC))

	want := 6*24*time.Hour + 23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond
	if got := w.End.Sub(w.Start); got != want {
		t.Fatalf("end-start = %v, want %v", got, want)
	}
	if w.End.Weekday() != time.Friday {
		t.Fatalf("end weekday = %v, want Friday", w.End.Weekday())
	}
}

func TestWeekOfIdempotentAcrossTheWeek(t *testing.T) {
	// Every day of the week 2025-01-04 .. 2025-01-10 must resolve to the
	// identical window.
	base := WeekOf(time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC))
	for d := 0; d < 7; d++ {
		ref := time.Date(2025, 1, 4, 11, 45, 0, 0, time.UTC).AddDate(0, 0, d)
		w := WeekOf(ref)
		if !w.Start.Equal(base.Start) || !w.End.Equal(base.End) {
			t.Fatalf("day +%d resolved to %v..%v, want %v..%v", d, w.Start, w.End, base.Start, base.End)
		}
	}
}

func TestWeekOfSundayGoesBackOneDay(t *testing.T) {
	// Sunday belongs to the week that started the day before.
	sun := time.Date(2025, 1, 5, 3, 0, 0, 0, time.UTC)
	w := WeekOf(sun)
	if want := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC); !w.Start.Equal(want) {
		t.Fatalf("start = %v, want %v", w.Start, want)
	}
}

func TestWindowEndMillisecondExact(t *testing.T) {
	w := WeekOf(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
	if w.End.Nanosecond() != int(999*time.Millisecond) {
		t.Fatalf("end nanoseconds = %d, want %d", w.End.Nanosecond(), int(999*time.Millisecond))
	}
	if h, m, s := w.End.Clock(); h != 23 || m != 59 || s != 59 {
		t.Fatalf("end clock = %02d:%02d:%02d, want 23:59:59", h, m, s)
	}
}

func TestWindowContainsIsInclusive(t *testing.T) {
	w := WeekOf(time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC))
	if !w.Contains(w.Start) {
		t.Fatalf("window must contain its own start")
	}
	if !w.Contains(w.End) {
		t.Fatalf("window must contain its own end")
	}
	if w.Contains(w.End.Add(time.Millisecond)) {
		t.Fatalf("window must not contain end+1ms")
	}
}

func TestParseWindowRejectsGarbage(t *testing.T) {
	if _, err := ParseWindow("nonsense", "2025-01-10"); !IsInvalidWindow(err) {
		t.Fatalf("expected InvalidWindowError, got %v", err)
	}
	if _, err := ParseWindow("2025-01-10", "2025-01-01"); !IsInvalidWindow(err) {
		t.Fatalf("expected InvalidWindowError for inverted range, got %v", err)
	}
}

func TestParseWindowCeilsEndOfDay(t *testing.T) {
	w, err := ParseWindow("2025-01-01", "2025-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2025, 1, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC); !w.End.Equal(want) {
		t.Fatalf("end = %v, want %v", w.End, want)
	}
}
