package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
	minutesDay  = 24 * 60
)

var ErrInvalidClock = errors.New("time of day must be HH:MM (24h, zero padded)")

// ParseClock converts a zero-padded 24h "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidClock
	}
	h, ok1 := twoDigits(s[0:2])
	m, ok2 := twoDigits(s[3:5])
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return 0, ErrInvalidClock
	}
	return h*60 + m, nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// EndTime returns start plus the sum of durations, in minutes. The result
// must stay within the same day.
func EndTime(start string, durations ...int) (string, error) {
	m, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	for _, d := range durations {
		m += d
	}
	if m >= minutesDay {
		return "", fmt.Errorf("appointment ends after midnight (%s + %d min)", start, m)
	}
	return FormatClock(m), nil
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Weekday returns the lower-case weekday label ("monday"...) of an ISO date.
func Weekday(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return strings.ToLower(t.Weekday().String()), nil
}

// MonthRange takes "YYYY-MM" and returns the first and last ISO day of that
// month, both inclusive.
func MonthRange(month string) (string, string, error) {
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return "", "", errors.New("invalid month format, expected YYYY-MM")
	}
	first := t.UTC()
	last := first.AddDate(0, 1, -1)
	return FormatDate(first), FormatDate(last), nil
}

func twoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
