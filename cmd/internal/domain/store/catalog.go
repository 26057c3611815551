package store

import (
	"context"

	"salondesk/cmd/internal/domain/entity"
)

type ServicePatch struct {
	Name     *string
	Category *string
	Duration *int
	Price    *int
	Color    *string
}

func serviceID(v entity.Service) int { return v.ID }

func (s *Store) AddService(ctx context.Context, v entity.Service) entity.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.nextID(seqServices)
	s.services = append(s.services, v)
	s.commit(ctx)
	return v
}

func (s *Store) UpdateService(ctx context.Context, id int, p ServicePatch) (entity.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.services, serviceID, id)
	if i < 0 {
		return entity.Service{}, ErrNotFound
	}
	v := &s.services[i]
	setString(&v.Name, p.Name)
	setString(&v.Category, p.Category)
	setInt(&v.Duration, p.Duration)
	setInt(&v.Price, p.Price)
	setString(&v.Color, p.Color)
	s.commit(ctx)
	return *v, nil
}

// DeleteService does not touch appointments that reference the service;
// their serviceIds dangle from here on. Stored totalPrice values stay as
// they were at booking time.
func (s *Store) DeleteService(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.services, serviceID, id)
	if i < 0 {
		return ErrNotFound
	}
	s.services = removeAt(s.services, i)
	s.commit(ctx)
	return nil
}

func (s *Store) Service(id int) (entity.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.services, serviceID, id); i >= 0 {
		return s.services[i], true
	}
	return entity.Service{}, false
}

func (s *Store) Services() []entity.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Service{}, s.services...)
}
