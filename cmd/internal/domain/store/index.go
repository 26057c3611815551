package store

import "salondesk/cmd/internal/domain/entity"

type slotKey struct {
	staffID int
	date    string
}

// slotIndex maps a staff member's day to the ids of the appointments booked
// on it, cancelled ones included.
type slotIndex map[slotKey][]int

func (x slotIndex) add(a entity.Appointment) {
	k := slotKey{a.StaffID, a.Date}
	x[k] = append(x[k], a.ID)
}

func (x slotIndex) remove(a entity.Appointment) {
	k := slotKey{a.StaffID, a.Date}
	ids := x[k]
	for i, id := range ids {
		if id == a.ID {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(x, k)
		return
	}
	x[k] = ids
}

func (x slotIndex) ids(staffID int, date string) []int {
	return x[slotKey{staffID, date}]
}

// lockedLookup serves schedule.Lookup from inside a critical section that
// already holds the store lock.
type lockedLookup struct {
	s *Store
}

func (l lockedLookup) AppointmentsOn(staffID int, date string) []entity.Appointment {
	return l.s.appointmentsOn(staffID, date)
}
