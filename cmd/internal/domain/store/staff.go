package store

import (
	"context"

	"salondesk/cmd/internal/domain/entity"
)

type StaffPatch struct {
	Name         *string
	Phone        *string
	Email        *string
	Title        *string
	WorkingHours []entity.WorkingDay // nil leaves the schedule unchanged
}

func staffID(v entity.Staff) int { return v.ID }

func (s *Store) AddStaff(ctx context.Context, v entity.Staff) entity.Staff {
	s.mu.Lock()
	defer s.mu.Unlock()
	v = v.Clone()
	v.ID = s.nextID(seqStaff)
	s.staff = append(s.staff, v)
	s.commit(ctx)
	return v.Clone()
}

func (s *Store) UpdateStaff(ctx context.Context, id int, p StaffPatch) (entity.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.staff, staffID, id)
	if i < 0 {
		return entity.Staff{}, ErrNotFound
	}
	v := &s.staff[i]
	setString(&v.Name, p.Name)
	setString(&v.Phone, p.Phone)
	setString(&v.Email, p.Email)
	setString(&v.Title, p.Title)
	if p.WorkingHours != nil {
		v.WorkingHours = append([]entity.WorkingDay(nil), p.WorkingHours...)
	}
	s.commit(ctx)
	return v.Clone(), nil
}

// UpdateWorkingHours replaces the entries of the given days, leaving the
// other days of the week as they are.
func (s *Store) UpdateWorkingHours(ctx context.Context, id int, days []entity.WorkingDay) (entity.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.staff, staffID, id)
	if i < 0 {
		return entity.Staff{}, ErrNotFound
	}
	v := &s.staff[i]
	for _, d := range days {
		replaced := false
		for j := range v.WorkingHours {
			if v.WorkingHours[j].Day == d.Day {
				v.WorkingHours[j] = d
				replaced = true
				break
			}
		}
		if !replaced {
			v.WorkingHours = append(v.WorkingHours, d)
		}
	}
	s.commit(ctx)
	return v.Clone(), nil
}

// DeleteStaff removes the staff member only. Their appointments and leaves
// keep the now dangling staff id.
func (s *Store) DeleteStaff(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.staff, staffID, id)
	if i < 0 {
		return ErrNotFound
	}
	s.staff = removeAt(s.staff, i)
	s.commit(ctx)
	return nil
}

func (s *Store) Staff(id int) (entity.Staff, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.staff, staffID, id); i >= 0 {
		return s.staff[i].Clone(), true
	}
	return entity.Staff{}, false
}

func (s *Store) AllStaff() []entity.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Staff, len(s.staff))
	for i, v := range s.staff {
		out[i] = v.Clone()
	}
	return out
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setOptional(dst **string, src *string) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
