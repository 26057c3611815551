package store

import (
	"context"
	"sort"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/schedule"
)

type AppointmentPatch struct {
	CustomerID *int
	StaffID    *int
	ServiceIDs []int // nil leaves the list unchanged
	Date       *string
	StartTime  *string
	EndTime    *string
	TotalPrice *int
	Status     *entity.AppointmentStatus
	Notes      *string
}

type AppointmentFilter struct {
	From       string // inclusive YYYY-MM-DD, empty = unbounded
	To         string // inclusive YYYY-MM-DD, empty = unbounded
	StaffID    int
	CustomerID int
	Status     entity.AppointmentStatus
}

func (f AppointmentFilter) match(a *entity.Appointment) bool {
	if f.From != "" && a.Date < f.From {
		return false
	}
	if f.To != "" && a.Date > f.To {
		return false
	}
	if f.StaffID != 0 && a.StaffID != f.StaffID {
		return false
	}
	if f.CustomerID != 0 && a.CustomerID != f.CustomerID {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	return true
}

// AppointmentsOn implements schedule.Lookup.
func (s *Store) AppointmentsOn(staffID int, date string) []entity.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appointmentsOn(staffID, date)
}

func (s *Store) appointmentsOn(staffID int, date string) []entity.Appointment {
	ids := s.slots.ids(staffID, date)
	out := make([]entity.Appointment, 0, len(ids))
	for _, id := range ids {
		if i, ok := s.apptPos[id]; ok {
			out = append(out, s.appointments[i].Clone())
		}
	}
	return out
}

// IsAvailable reports whether staffID is free on date for [start,end),
// ignoring excludeID.
func (s *Store) IsAvailable(staffID int, date, start, end string, excludeID int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return schedule.IsAvailable(lockedLookup{s}, staffID, date, start, end, excludeID)
}

// Conflicts returns the appointments that would clash with [start,end).
func (s *Store) Conflicts(staffID int, date, start, end string, excludeID int) ([]entity.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return schedule.Conflicts(lockedLookup{s}, staffID, date, start, end, excludeID)
}

// CreateAppointment books a in one step: availability check, id
// assignment, append and the customer's totalSpent increment. On a clash it
// returns a *ConflictError and nothing changes. A customer id that does not
// resolve is tolerated; the appointment is stored and no spend is recorded.
func (s *Store) CreateAppointment(ctx context.Context, a entity.Appointment) (entity.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clashes, err := schedule.Conflicts(lockedLookup{s}, a.StaffID, a.Date, a.StartTime, a.EndTime, 0)
	if err != nil {
		return entity.Appointment{}, err
	}
	if len(clashes) > 0 {
		return entity.Appointment{}, &ConflictError{Conflicts: clashes}
	}

	a = a.Clone()
	a.ID = s.nextID(seqAppointments)
	s.appointments = append(s.appointments, a)
	s.apptPos[a.ID] = len(s.appointments) - 1
	s.slots.add(a)
	if i := indexOf(s.customers, customerID, a.CustomerID); i >= 0 {
		s.customers[i].TotalSpent += a.TotalPrice
	}

	s.commit(ctx)
	return a.Clone(), nil
}

// UpdateAppointment merges patch into appointment id. Whenever the merged
// appointment still blocks its slot and its staff, date or times changed, or
// it comes back from cancelled, the availability check runs against every
// other appointment first.
func (s *Store) UpdateAppointment(ctx context.Context, id int, patch AppointmentPatch) (entity.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.apptPos[id]
	if !ok {
		return entity.Appointment{}, ErrNotFound
	}
	prev := s.appointments[i]
	next := applyAppointmentPatch(prev.Clone(), patch)

	moved := next.StaffID != prev.StaffID || next.Date != prev.Date ||
		next.StartTime != prev.StartTime || next.EndTime != prev.EndTime
	if next.Blocks() && (moved || !prev.Blocks()) {
		clashes, err := schedule.Conflicts(lockedLookup{s}, next.StaffID, next.Date, next.StartTime, next.EndTime, id)
		if err != nil {
			return entity.Appointment{}, err
		}
		if len(clashes) > 0 {
			return entity.Appointment{}, &ConflictError{Conflicts: clashes}
		}
	}

	s.slots.remove(prev)
	s.appointments[i] = next
	s.slots.add(next)

	s.commit(ctx)
	return next.Clone(), nil
}

// DeleteAppointment removes appointment id. The customer's totalSpent keeps
// the amount added at creation.
func (s *Store) DeleteAppointment(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.apptPos[id]
	if !ok {
		return ErrNotFound
	}
	s.slots.remove(s.appointments[i])
	s.appointments = removeAt(s.appointments, i)
	s.reindexPositions()

	s.commit(ctx)
	return nil
}

func (s *Store) Appointment(id int) (entity.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.apptPos[id]; ok {
		return s.appointments[i].Clone(), true
	}
	return entity.Appointment{}, false
}

// Appointments returns the appointments matching f ordered by date, start
// time and id.
func (s *Store) Appointments(f AppointmentFilter) []entity.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Appointment, 0, len(s.appointments))
	for i := range s.appointments {
		if f.match(&s.appointments[i]) {
			out = append(out, s.appointments[i].Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func applyAppointmentPatch(a entity.Appointment, p AppointmentPatch) entity.Appointment {
	if p.CustomerID != nil {
		a.CustomerID = *p.CustomerID
	}
	if p.StaffID != nil {
		a.StaffID = *p.StaffID
	}
	if p.ServiceIDs != nil {
		a.ServiceIDs = append([]int(nil), p.ServiceIDs...)
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.StartTime != nil {
		a.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		a.EndTime = *p.EndTime
	}
	if p.TotalPrice != nil {
		a.TotalPrice = *p.TotalPrice
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Notes != nil {
		n := *p.Notes
		a.Notes = &n
	}
	return a
}
