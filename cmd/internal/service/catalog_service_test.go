package service

import (
	"context"
	"net/http"
	"testing"

	"salondesk/cmd/internal/utils/apierror"
)

func TestCatalog(t *testing.T) {
	f := newFixture(t)
	svc := NewCatalogService(f.store, f.validate)
	ctx := context.Background()

	nails, apierr := svc.CreateService(ctx, &ServiceRequest{Name: "Manicure", Category: "Nails", Duration: 45, Price: 250, Color: "#ff88aa"})
	if apierr != nil {
		t.Fatalf("CreateService failed: %v", apierr)
	}

	_, apierr = svc.CreateService(ctx, &ServiceRequest{Name: "Bad", Category: "Nails", Duration: 0})
	expectCode(t, apierr, http.StatusBadRequest)
	_, apierr = svc.CreateService(ctx, &ServiceRequest{Name: "Bad", Category: "Nails", Duration: 10, Color: "pink"})
	expectCode(t, apierr, http.StatusBadRequest)

	if got := svc.GetCategories(); len(got) != 2 || got[0] != "Hair" || got[1] != "Nails" {
		t.Fatalf("unexpected categories %v", got)
	}
	if got := svc.GetServices("Nails"); len(got) != 1 || got[0].ID != nails.ID {
		t.Fatalf("unexpected category filter %v", got)
	}

	updated, apierr := svc.UpdateService(ctx, f.cut.ID, &UpdateServiceRequest{Price: intPtr(150)})
	if apierr != nil || updated.Price != 150 || updated.Duration != 30 {
		t.Fatalf("unexpected update %+v (%v)", updated, apierr)
	}
	_, apierr = svc.UpdateService(ctx, 404, &UpdateServiceRequest{Price: intPtr(1)})
	expectError(t, apierr, apierror.NotFoundError)

	if apierr := svc.DeleteService(ctx, nails.ID); apierr != nil {
		t.Fatalf("DeleteService failed: %v", apierr)
	}
	expectError(t, svc.DeleteService(ctx, nails.ID), apierror.NotFoundError)
}

func TestCatalogPriceChangeKeepsBookedPrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	appts := f.appointments()

	a, _ := appts.CreateAppointment(ctx, &AppointmentRequest{
		CustomerID: f.elif.ID, StaffID: f.ayse.ID, ServiceIDs: []int{f.cut.ID},
		Date: "2025-06-02", StartTime: "10:00",
	})
	_, _ = NewCatalogService(f.store, f.validate).UpdateService(ctx, f.cut.ID, &UpdateServiceRequest{Price: intPtr(999), Duration: intPtr(120)})

	got, _ := appts.GetAppointment(a.ID)
	if got.TotalPrice != 100 || got.EndTime != "10:30" {
		t.Fatalf("booked appointment must keep its price and end, got %+v", got.Appointment)
	}
}
