package schedule

import "testing"

func TestParseClock(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"09:05": 545,
		"11:30": 690,
		"23:59": 1439,
	}
	for in, want := range cases {
		got, err := ParseClock(in)
		if err != nil {
			t.Fatalf("ParseClock(%q) failed: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseClock(%q) = %d, want %d", in, got, want)
		}
	}

	for _, bad := range []string{"", "9:00", "24:00", "12:60", "12-00", "ab:cd", "12:000"} {
		if _, err := ParseClock(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestEndTime(t *testing.T) {
	end, err := EndTime("10:00", 45, 45)
	if err != nil {
		t.Fatalf("EndTime failed: %v", err)
	}
	if end != "11:30" {
		t.Fatalf("expected 11:30, got %s", end)
	}

	if _, err := EndTime("23:30", 60); err == nil {
		t.Fatalf("expected error for an appointment running past midnight")
	}
}

func TestWeekdayAndMonthRange(t *testing.T) {
	day, err := Weekday("2025-06-01")
	if err != nil {
		t.Fatalf("Weekday failed: %v", err)
	}
	if day != "sunday" {
		t.Fatalf("expected sunday, got %s", day)
	}

	first, last, err := MonthRange("2024-02")
	if err != nil {
		t.Fatalf("MonthRange failed: %v", err)
	}
	if first != "2024-02-01" || last != "2024-02-29" {
		t.Fatalf("unexpected range %s..%s", first, last)
	}

	if _, _, err := MonthRange("2024/02"); err == nil {
		t.Fatalf("expected error for malformed month")
	}
}
