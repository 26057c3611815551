package store

import (
	"context"

	"salondesk/cmd/internal/domain/entity"
)

// Empty reports whether the store holds no staff, services or customers.
func (s *Store) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.staff) == 0 && len(s.services) == 0 && len(s.customers) == 0
}

// Seed fills an empty store with a small demo salon. It does nothing when
// the store already has data and reports whether it seeded.
func (s *Store) Seed(ctx context.Context) bool {
	if !s.Empty() {
		return false
	}

	for _, st := range []entity.Staff{
		{Name: "Ayse Demir", Phone: "+90 532 000 0001", Email: "ayse@salon.test", Title: "Senior Stylist"},
		{Name: "Mehmet Kaya", Phone: "+90 532 000 0002", Email: "mehmet@salon.test", Title: "Colorist"},
		{Name: "Zeynep Arslan", Phone: "+90 532 000 0003", Email: "zeynep@salon.test", Title: "Aesthetician"},
	} {
		st.WorkingHours = entity.DefaultWorkingHours()
		s.AddStaff(ctx, st)
	}

	for _, sv := range []entity.Service{
		{Name: "Haircut", Category: "hair", Duration: 45, Price: 400, Color: "#4f46e5"},
		{Name: "Blow Dry", Category: "hair", Duration: 30, Price: 250, Color: "#0ea5e9"},
		{Name: "Hair Coloring", Category: "hair", Duration: 120, Price: 1500, Color: "#db2777"},
		{Name: "Manicure", Category: "nails", Duration: 40, Price: 350, Color: "#f59e0b"},
		{Name: "Facial Care", Category: "skin", Duration: 60, Price: 900, Color: "#10b981"},
		{Name: "Laser Session", Category: "laser", Duration: 30, Price: 1200, Color: "#ef4444"},
	} {
		s.AddService(ctx, sv)
	}

	for _, c := range []entity.Customer{
		{Name: "Elif Yilmaz", Phone: "+90 555 100 0001", Email: "elif@example.com"},
		{Name: "Can Ozturk", Phone: "+90 555 100 0002", Email: "can@example.com"},
		{Name: "Selin Cetin", Phone: "+90 555 100 0003", Email: "selin@example.com"},
	} {
		s.AddCustomer(ctx, c)
	}
	return true
}
