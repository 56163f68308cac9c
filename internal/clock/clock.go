package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the calendar-day format used throughout the ledger
	DateLayout = "2006-01-02"
	// TimeLayout is the 24-hour wall-clock format for time-in/time-out fields
	TimeLayout = "15:04"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Minutes returns the whole minutes between two "HH:MM" wall-clock values on
// the same calendar day. A timeOut strictly earlier than timeIn (compared by
// hour then minute) is treated as falling on the next day, so overnight
// shifts still yield a non-negative duration. Equal values yield 0.
//
// Malformed inputs are a caller contract violation; they are validated before
// they reach the ledger and produce 0 here.
func Minutes(timeIn, timeOut string) int {
	inH, inM, ok := parseHM(timeIn)
	if !ok {
		return 0
	}
	outH, outM, ok := parseHM(timeOut)
	if !ok {
		return 0
	}

	in := inH*60 + inM
	out := outH*60 + outM
	if outH < inH || (outH == inH && outM < inM) {
		out += 24 * 60
	}
	return out - in
}

func parseHM(s string) (int, int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// IsTimeOfDay reports whether s is a valid 24-hour "HH:MM" value.
func IsTimeOfDay(s string) bool {
	_, _, ok := parseHM(s)
	return ok
}

// IsDate reports whether s is a valid "YYYY-MM-DD" calendar date.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Now returns the current wall-clock time as "HH:MM".
func Now() string {
	return timeNow().Format(TimeLayout)
}

// Today returns the current calendar date as "YYYY-MM-DD".
func Today() string {
	return timeNow().Format(DateLayout)
}

// FormatDuration formats minutes as "7h 30m".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// Format12Hour converts an "HH:MM" value to a 12-hour display string like
// "11:37 PM". Invalid input is returned unchanged.
func Format12Hour(timeOfDay string) string {
	h, m, ok := parseHM(timeOfDay)
	if !ok {
		return timeOfDay
	}
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, m, period)
}

// FormatDate formats a "YYYY-MM-DD" value for display, like
// "Sun, Mar 9, 2025". Invalid input is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 2, 2006")
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := t.AddDate(0, 0, -(wd - 1))
	monday = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
	return monday, monday.AddDate(0, 0, 6)
}

// MonthRange returns the first and last day of the month containing t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first, first.AddDate(0, 1, -1)
}

// YearRange returns the first and last day of the year containing t.
func YearRange(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	return first, time.Date(t.Year(), 12, 31, 0, 0, 0, 0, t.Location())
}

// WithinRange reports whether a "YYYY-MM-DD" date falls inside the closed
// interval [from, to], compared by calendar day.
func WithinRange(date string, from, to time.Time) bool {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	fromDay := from.Format(DateLayout)
	toDay := to.Format(DateLayout)
	day := t.Format(DateLayout)
	return day >= fromDay && day <= toDay
}

// MonthName returns the English month name for a 1-based month number.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}
