package store

import (
	"context"

	"salondesk/cmd/internal/domain/entity"
)

type LeavePatch struct {
	StaffID     *int
	StartDate   *string
	EndDate     *string
	Type        *entity.LeaveType
	Description *string
}

func leaveID(v entity.StaffLeave) int { return v.ID }

// AddLeave stores a leave as given. Date ordering is checked by callers and
// leaves are never checked against booked appointments.
func (s *Store) AddLeave(ctx context.Context, v entity.StaffLeave) entity.StaffLeave {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.nextID(seqLeaves)
	s.leaves = append(s.leaves, v)
	s.commit(ctx)
	return v
}

func (s *Store) UpdateLeave(ctx context.Context, id int, p LeavePatch) (entity.StaffLeave, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.leaves, leaveID, id)
	if i < 0 {
		return entity.StaffLeave{}, ErrNotFound
	}
	v := &s.leaves[i]
	setInt(&v.StaffID, p.StaffID)
	setString(&v.StartDate, p.StartDate)
	setString(&v.EndDate, p.EndDate)
	if p.Type != nil {
		v.Type = *p.Type
	}
	setOptional(&v.Description, p.Description)
	s.commit(ctx)
	return *v, nil
}

func (s *Store) DeleteLeave(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.leaves, leaveID, id)
	if i < 0 {
		return ErrNotFound
	}
	s.leaves = removeAt(s.leaves, i)
	s.commit(ctx)
	return nil
}

func (s *Store) Leave(id int) (entity.StaffLeave, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.leaves, leaveID, id); i >= 0 {
		return s.leaves[i], true
	}
	return entity.StaffLeave{}, false
}

// Leaves returns every leave of staffID, or all leaves when staffID is 0.
func (s *Store) Leaves(staffID int) []entity.StaffLeave {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.StaffLeave, 0, len(s.leaves))
	for _, l := range s.leaves {
		if staffID == 0 || l.StaffID == staffID {
			out = append(out, l)
		}
	}
	return out
}
