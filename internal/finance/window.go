package finance

import (
	"strings"
	"time"
)

// Window is an inclusive reporting range: Start is always 00:00:00.000 and
// End 23:59:59.999, both UTC. Downstream date filtering relies on the
// millisecond precision to behave inclusive-inclusive.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// WeekOf resolves the business week containing ref: starts on Saturday and
// ends the following Friday. Time-of-day on ref is ignored.
func WeekOf(ref time.Time) Window {
	ref = ref.UTC()

	day := int(ref.Weekday()) // 0=domingo .. 6=sábado
	diff := 0
	if day != 6 {
		diff = day + 1
	}

	start := floorDay(ref.AddDate(0, 0, -diff))
	end := ceilDay(start.AddDate(0, 0, 6))

	return Window{Start: start, End: end}
}

// NewWindow builds a window from two already-parsed dates. The start is
// floored to the beginning of the day, the end ceiled to end-of-day.
func NewWindow(from, to time.Time) Window {
	return Window{Start: floorDay(from.UTC()), End: ceilDay(to.UTC())}
}

// ParseWindow parses the raw date pair coming from the HTTP boundary.
// Non-parseable input yields InvalidWindowError and is propagated as-is.
func ParseWindow(from, to string) (Window, error) {
	start, err := ParseDate(from)
	if err != nil {
		return Window{}, InvalidWindowError{Field: "from", Err: err}
	}
	end, err := ParseDate(to)
	if err != nil {
		return Window{}, InvalidWindowError{Field: "to", Err: err}
	}
	if end.Before(start) {
		return Window{}, InvalidWindowError{Field: "to", Err: errEndBeforeStart}
	}
	return NewWindow(start, end), nil
}

// ParseDate accepts YYYY-MM-DD or RFC3339, always interpreted in UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("2006-01-02", s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// Contains reports whether t falls inside the window, both ends inclusive.
func (w Window) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(w.Start) && !t.After(w.End)
}

func floorDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ceilDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
}
