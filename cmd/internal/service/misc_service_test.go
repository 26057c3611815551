package service

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/utils/apierror"
)

func TestPackages(t *testing.T) {
	f := newFixture(t)
	svc := NewPackageService(f.store, f.validate)
	ctx := context.Background()

	pkg, apierr := svc.CreatePackage(ctx, &PackageRequest{
		CustomerID: f.elif.ID, PackageName: "Laser 6x", StartDate: "2025-01-01",
		TotalSessions: 6, CompletedSessions: 2, ScheduledSessions: 1, CancelledSessions: 3,
		TotalPrice: 3000, PaidAmount: 1000,
	})
	if apierr != nil {
		t.Fatalf("CreatePackage failed: %v", apierr)
	}
	if pkg.RemainingSessions != 3 || pkg.BalanceDue != 2000 || pkg.CustomerName != "Elif" {
		t.Fatalf("unexpected derived figures %+v", pkg)
	}

	_, apierr = svc.UpdatePackage(ctx, pkg.ID, &UpdatePackageRequest{CompletedSessions: intPtr(6)})
	expectError(t, apierr, apierror.InvalidSessionsError)

	updated, apierr := svc.UpdatePackage(ctx, pkg.ID, &UpdatePackageRequest{PaidAmount: intPtr(3000)})
	if apierr != nil || updated.BalanceDue != 0 {
		t.Fatalf("unexpected update %+v (%v)", updated, apierr)
	}

	if got := svc.GetPackages(f.elif.ID); len(got) != 1 {
		t.Fatalf("expected one package, got %d", len(got))
	}
	if got := svc.GetPackages(404); len(got) != 0 {
		t.Fatalf("expected no packages, got %d", len(got))
	}

	if apierr := svc.DeletePackage(ctx, pkg.ID); apierr != nil {
		t.Fatalf("DeletePackage failed: %v", apierr)
	}
	_, apierr = svc.UpdatePackage(ctx, pkg.ID, &UpdatePackageRequest{PaidAmount: intPtr(1)})
	expectError(t, apierr, apierror.NotFoundError)
}

func TestNotes(t *testing.T) {
	f := newFixture(t)
	svc := NewNoteService(f.store, f.validate)
	ctx := context.Background()

	first, apierr := svc.CreateNote(ctx, &NoteRequest{Title: "Order dye", Date: "2025-02-01", Time: "09:00", HasReminder: true, Creator: "Ayse"})
	if apierr != nil {
		t.Fatalf("CreateNote failed: %v", apierr)
	}
	if first.Status != entity.NoteUnread {
		t.Fatalf("new notes start unread, got %s", first.Status)
	}
	_, _ = svc.CreateNote(ctx, &NoteRequest{Title: "Call landlord"})

	_, apierr = svc.CreateNote(ctx, &NoteRequest{Title: "x", Time: "9am"})
	expectCode(t, apierr, http.StatusBadRequest)

	if _, apierr := svc.MarkRead(ctx, first.ID); apierr != nil {
		t.Fatalf("MarkRead failed: %v", apierr)
	}
	list, _ := svc.GetNotes("")
	if len(list.Notes) != 2 || list.Unread != 1 {
		t.Fatalf("unexpected notes %+v", list)
	}
	list, _ = svc.GetNotes(entity.NoteRead)
	if len(list.Notes) != 1 || list.Notes[0].ID != first.ID {
		t.Fatalf("unexpected read filter %+v", list)
	}
	_, apierr = svc.GetNotes("archived")
	expectCode(t, apierr, http.StatusBadRequest)

	_, apierr = svc.MarkRead(ctx, 404)
	expectError(t, apierr, apierror.NotFoundError)

	edited, apierr := svc.UpdateNote(ctx, first.ID, &UpdateNoteRequest{HasReminder: boolPtr(false)})
	if apierr != nil || edited.HasReminder || edited.Title != "Order dye" {
		t.Fatalf("unexpected edit %+v (%v)", edited, apierr)
	}
	if apierr := svc.DeleteNote(ctx, first.ID); apierr != nil {
		t.Fatalf("DeleteNote failed: %v", apierr)
	}
}

func TestReports(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	appts := f.appointments()
	svc := NewReportService(f.store, f.validate)

	a, _ := appts.CreateAppointment(ctx, &AppointmentRequest{
		CustomerID: f.elif.ID, StaffID: f.ayse.ID, ServiceIDs: []int{f.color.ID},
		Date: "2025-04-02", StartTime: "10:00",
	})
	_, _ = appts.CreateAppointment(ctx, &AppointmentRequest{
		CustomerID: f.elif.ID, StaffID: f.mehmet.ID, ServiceIDs: []int{f.cut.ID},
		Date: "2025-04-03", StartTime: "10:00",
	})
	_, _ = appts.SetStatus(ctx, a.ID, &StatusRequest{Status: entity.StatusCancelled})

	sum, apierr := svc.GetSummary(&ReportQuery{From: "2025-04-01", To: "2025-04-30"})
	if apierr != nil {
		t.Fatalf("GetSummary failed: %v", apierr)
	}
	if sum.Revenue != 100 || sum.Counts.Cancelled != 1 || sum.Counts.Total != 2 {
		t.Fatalf("unexpected summary %+v", sum)
	}

	_, apierr = svc.GetSummary(&ReportQuery{From: "2025-04-30", To: "2025-04-01"})
	expectError(t, apierr, apierror.InvalidDateRangeError)
	_, apierr = svc.GetSummary(&ReportQuery{From: "2025-04-01"})
	expectCode(t, apierr, http.StatusBadRequest)

	spend := svc.GetSpend()
	if len(spend) != 1 || spend[0].Recorded != 500 || spend[0].Computed != 100 || spend[0].Difference != 400 {
		t.Fatalf("unexpected spend reconciliation %+v", spend)
	}

	blob, apierr := svc.Export(&ReportQuery{From: "2025-04-01", To: "2025-04-30"})
	if apierr != nil {
		t.Fatalf("Export failed: %v", apierr)
	}
	if !bytes.HasPrefix(blob, []byte("PK")) {
		t.Fatalf("expected a zip-based xlsx payload")
	}
}

func TestPreferences(t *testing.T) {
	f := newFixture(t)
	svc := NewPreferenceService(f.store, f.validate)

	if svc.GetPreferences().SidebarExpanded {
		t.Fatalf("sidebar starts collapsed")
	}
	prefs, apierr := svc.SetPreferences(context.Background(), &PreferencesRequest{SidebarExpanded: boolPtr(true)})
	if apierr != nil || !prefs.SidebarExpanded {
		t.Fatalf("unexpected preferences %+v (%v)", prefs, apierr)
	}
	if !svc.GetPreferences().SidebarExpanded {
		t.Fatalf("preference not stored")
	}

	_, apierr = svc.SetPreferences(context.Background(), &PreferencesRequest{})
	expectCode(t, apierr, http.StatusBadRequest)
}
