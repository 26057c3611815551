package store

import (
	"context"

	"salondesk/cmd/internal/domain/entity"
)

type PackagePatch struct {
	CustomerID        *int
	PackageName       *string
	StartDate         *string
	TotalSessions     *int
	CompletedSessions *int
	ScheduledSessions *int
	CancelledSessions *int
	TotalPrice        *int
	PaidAmount        *int
}

func packageID(v entity.SessionPackage) int { return v.ID }

func (s *Store) AddPackage(ctx context.Context, v entity.SessionPackage) entity.SessionPackage {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.nextID(seqPackages)
	s.packages = append(s.packages, v)
	s.commit(ctx)
	return v
}

func (s *Store) UpdatePackage(ctx context.Context, id int, p PackagePatch) (entity.SessionPackage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.packages, packageID, id)
	if i < 0 {
		return entity.SessionPackage{}, ErrNotFound
	}
	v := &s.packages[i]
	setInt(&v.CustomerID, p.CustomerID)
	setString(&v.PackageName, p.PackageName)
	setString(&v.StartDate, p.StartDate)
	setInt(&v.TotalSessions, p.TotalSessions)
	setInt(&v.CompletedSessions, p.CompletedSessions)
	setInt(&v.ScheduledSessions, p.ScheduledSessions)
	setInt(&v.CancelledSessions, p.CancelledSessions)
	setInt(&v.TotalPrice, p.TotalPrice)
	setInt(&v.PaidAmount, p.PaidAmount)
	s.commit(ctx)
	return *v, nil
}

func (s *Store) DeletePackage(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.packages, packageID, id)
	if i < 0 {
		return ErrNotFound
	}
	s.packages = removeAt(s.packages, i)
	s.commit(ctx)
	return nil
}

func (s *Store) Package(id int) (entity.SessionPackage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.packages, packageID, id); i >= 0 {
		return s.packages[i], true
	}
	return entity.SessionPackage{}, false
}

// Packages returns the packages of customerID, or all of them for 0.
func (s *Store) Packages(customerID int) []entity.SessionPackage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.SessionPackage, 0, len(s.packages))
	for _, p := range s.packages {
		if customerID == 0 || p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out
}
