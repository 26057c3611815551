package schedule

import "salondesk/cmd/internal/domain/entity"

// FreeSlots returns the slots of length duration, stepped every step
// minutes, that fit inside the working day and do not overlap any busy
// interval. A closed day yields nothing.
func FreeSlots(day entity.WorkingDay, busy []Interval, duration, step int) []Interval {
	if !day.IsOpen || duration <= 0 || step <= 0 {
		return nil
	}
	open, err := ParseClock(day.Start)
	if err != nil {
		return nil
	}
	closeAt, err := ParseClock(day.End)
	if err != nil || closeAt <= open {
		return nil
	}

	var slots []Interval
	for t := open; t+duration <= closeAt; t += step {
		if !overlapsAny(t, t+duration, busy) {
			slots = append(slots, Interval{Start: t, End: t + duration})
		}
	}
	return slots
}

func overlapsAny(start, end int, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}
