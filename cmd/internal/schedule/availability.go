package schedule

import "salondesk/cmd/internal/domain/entity"

// Lookup returns the appointments booked for a staff member on a date.
// Implementations may index by staff and day; the checker never scans the
// full appointment list itself.
type Lookup interface {
	AppointmentsOn(staffID int, date string) []entity.Appointment
}

type Interval struct {
	Start int // minutes since midnight
	End   int
}

// Overlaps is the half-open test: [aStart,aEnd) and [bStart,bEnd) overlap
// iff aStart < bEnd && aEnd > bStart. Touching intervals do not overlap.
// An empty interval overlaps nothing, even one lying strictly inside the
// other range, so a zero-length candidate is always available.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	if aStart >= aEnd || bStart >= bEnd {
		return false
	}
	return aStart < bEnd && aEnd > bStart
}

// Conflicts returns the non-cancelled appointments of staffID on date whose
// interval overlaps [start,end). excludeID skips one appointment, which is
// how an edit avoids conflicting with itself; pass 0 to exclude nothing.
func Conflicts(lookup Lookup, staffID int, date, start, end string, excludeID int) ([]entity.Appointment, error) {
	s, err := ParseClock(start)
	if err != nil {
		return nil, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return nil, err
	}

	var clashes []entity.Appointment
	for _, apt := range lookup.AppointmentsOn(staffID, date) {
		if apt.StaffID != staffID || apt.Date != date || !apt.Blocks() || apt.ID == excludeID {
			continue
		}
		as, err1 := ParseClock(apt.StartTime)
		ae, err2 := ParseClock(apt.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		if Overlaps(s, e, as, ae) {
			clashes = append(clashes, apt)
		}
	}
	return clashes, nil
}

// IsAvailable reports whether [start,end) is free for staffID on date.
func IsAvailable(lookup Lookup, staffID int, date, start, end string, excludeID int) (bool, error) {
	clashes, err := Conflicts(lookup, staffID, date, start, end, excludeID)
	if err != nil {
		return false, err
	}
	return len(clashes) == 0, nil
}

// Busy converts appointments into the intervals they occupy, skipping
// cancelled ones.
func Busy(appts []entity.Appointment) []Interval {
	var out []Interval
	for _, a := range appts {
		if !a.Blocks() {
			continue
		}
		s, err1 := ParseClock(a.StartTime)
		e, err2 := ParseClock(a.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, Interval{Start: s, End: e})
	}
	return out
}
