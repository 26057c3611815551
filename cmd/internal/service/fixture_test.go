package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/domain/store"
	"salondesk/cmd/internal/events"
	"salondesk/cmd/internal/utils/apierror"
	"salondesk/cmd/internal/utils/validators"
)

type fixture struct {
	store    *store.Store
	events   *events.Recorder
	validate *validator.Validate

	ayse, mehmet entity.Staff
	cut, color   entity.Service
	elif         entity.Customer
}

// newFixture builds an in-memory salon: two staff on default hours, a 30
// minute cut for 100 and a 90 minute color for 400, one customer.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	s, err := store.Open(ctx, store.NewMemoryPersister(nil))
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	f := &fixture{store: s, events: &events.Recorder{}, validate: validators.New()}
	f.ayse = s.AddStaff(ctx, entity.Staff{Name: "Ayse", WorkingHours: entity.DefaultWorkingHours()})
	f.mehmet = s.AddStaff(ctx, entity.Staff{Name: "Mehmet", WorkingHours: entity.DefaultWorkingHours()})
	f.cut = s.AddService(ctx, entity.Service{Name: "Cut", Category: "Hair", Duration: 30, Price: 100})
	f.color = s.AddService(ctx, entity.Service{Name: "Color", Category: "Hair", Duration: 90, Price: 400})
	f.elif = s.AddCustomer(ctx, entity.Customer{Name: "Elif", Phone: "555 0101", Email: "elif@mail.test"})
	return f
}

func (f *fixture) appointments() *DefaultAppointmentService {
	return NewAppointmentService(f.store, f.events, f.validate)
}

func expectCode(t *testing.T, apierr apierror.ErrorResponse, code int) {
	t.Helper()
	if apierr == nil {
		t.Fatalf("expected error with code %d, got none", code)
	}
	if apierr.Code() != code {
		t.Fatalf("expected code %d, got %d (%v)", code, apierr.Code(), apierr)
	}
}

func expectError(t *testing.T, apierr apierror.ErrorResponse, want apierror.ErrorResponse) {
	t.Helper()
	if !errors.Is(apierr, want) {
		t.Fatalf("expected %v, got %v", want, apierr)
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

var storeFilterAll = store.AppointmentFilter{}
