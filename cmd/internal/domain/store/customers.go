package store

import (
	"context"

	"salondesk/cmd/internal/domain/entity"
)

// CustomerPatch has no TotalSpent: that aggregate only moves through
// CreateAppointment.
type CustomerPatch struct {
	Name  *string
	Phone *string
	Email *string
	Notes *string
}

func customerID(v entity.Customer) int { return v.ID }

func (s *Store) AddCustomer(ctx context.Context, v entity.Customer) entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	v = v.Clone()
	v.ID = s.nextID(seqCustomers)
	if v.TotalSpent < 0 {
		v.TotalSpent = 0
	}
	s.customers = append(s.customers, v)
	s.commit(ctx)
	return v.Clone()
}

func (s *Store) UpdateCustomer(ctx context.Context, id int, p CustomerPatch) (entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.customers, customerID, id)
	if i < 0 {
		return entity.Customer{}, ErrNotFound
	}
	v := &s.customers[i]
	setString(&v.Name, p.Name)
	setString(&v.Phone, p.Phone)
	setString(&v.Email, p.Email)
	setOptional(&v.Notes, p.Notes)
	s.commit(ctx)
	return v.Clone(), nil
}

// DeleteCustomer leaves the customer's appointments and packages in place
// with a dangling customerId.
func (s *Store) DeleteCustomer(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.customers, customerID, id)
	if i < 0 {
		return ErrNotFound
	}
	s.customers = removeAt(s.customers, i)
	s.commit(ctx)
	return nil
}

func (s *Store) Customer(id int) (entity.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.customers, customerID, id); i >= 0 {
		return s.customers[i].Clone(), true
	}
	return entity.Customer{}, false
}

func (s *Store) Customers() []entity.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Customer, len(s.customers))
	for i, v := range s.customers {
		out[i] = v.Clone()
	}
	return out
}
