package service

import (
	"context"
	"net/http"
	"testing"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/utils/apierror"
)

func TestCreateStaff_MergesWorkingHours(t *testing.T) {
	f := newFixture(t)
	svc := NewStaffService(f.store, f.validate)

	staff, apierr := svc.CreateStaff(context.Background(), &StaffRequest{
		Name:  "  Zeynep ",
		Email: "zeynep@salon.test",
		WorkingHours: []WorkingDayRequest{
			{Day: "sunday", IsOpen: true, Start: "10:00", End: "14:00"},
		},
	})
	if apierr != nil {
		t.Fatalf("CreateStaff failed: %v", apierr)
	}
	if staff.Name != "Zeynep" {
		t.Fatalf("expected trimmed name, got %q", staff.Name)
	}
	if len(staff.WorkingHours) != 7 {
		t.Fatalf("expected a full week, got %d days", len(staff.WorkingHours))
	}
	sunday, _ := staff.Day("sunday")
	monday, _ := staff.Day("monday")
	if !sunday.IsOpen || sunday.End != "14:00" || monday.Start != "09:00" {
		t.Fatalf("unexpected schedule %+v", staff.WorkingHours)
	}
}

func TestCreateStaff_RejectsBadHours(t *testing.T) {
	f := newFixture(t)
	svc := NewStaffService(f.store, f.validate)
	ctx := context.Background()

	_, apierr := svc.CreateStaff(ctx, &StaffRequest{Name: "X", WorkingHours: []WorkingDayRequest{
		{Day: "monday", IsOpen: true, Start: "18:00", End: "09:00"},
	}})
	expectError(t, apierr, apierror.InvalidTimeRangeError)

	_, apierr = svc.CreateStaff(ctx, &StaffRequest{Name: "X", WorkingHours: []WorkingDayRequest{
		{Day: "monday", Start: "09:00", End: "18:00"},
		{Day: "monday", Start: "09:00", End: "18:00"},
	}})
	expectCode(t, apierr, http.StatusBadRequest)

	_, apierr = svc.CreateStaff(ctx, &StaffRequest{Name: "X", WorkingHours: []WorkingDayRequest{
		{Day: "funday", Start: "09:00", End: "18:00"},
	}})
	expectCode(t, apierr, http.StatusBadRequest)

	_, apierr = svc.CreateStaff(ctx, &StaffRequest{Name: ""})
	expectCode(t, apierr, http.StatusBadRequest)
}

func TestUpdateWorkingHours(t *testing.T) {
	f := newFixture(t)
	svc := NewStaffService(f.store, f.validate)

	staff, apierr := svc.UpdateWorkingHours(context.Background(), f.ayse.ID, &WorkingHoursRequest{
		WorkingHours: []WorkingDayRequest{{Day: "saturday", IsOpen: false, Start: "09:00", End: "13:00"}},
	})
	if apierr != nil {
		t.Fatalf("UpdateWorkingHours failed: %v", apierr)
	}
	saturday, _ := staff.Day("saturday")
	if saturday.IsOpen {
		t.Fatalf("saturday should be closed now")
	}

	_, apierr = svc.UpdateWorkingHours(context.Background(), 404, &WorkingHoursRequest{
		WorkingHours: []WorkingDayRequest{{Day: "saturday", Start: "09:00", End: "13:00"}},
	})
	expectError(t, apierr, apierror.NotFoundError)
}

func TestStaffUpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	svc := NewStaffService(f.store, f.validate)
	ctx := context.Background()

	staff, apierr := svc.UpdateStaff(ctx, f.ayse.ID, &UpdateStaffRequest{Title: strPtr("Senior Stylist")})
	if apierr != nil || staff.Title != "Senior Stylist" || staff.Name != "Ayse" {
		t.Fatalf("unexpected update result %+v (%v)", staff, apierr)
	}

	if apierr := svc.DeleteStaff(ctx, f.ayse.ID); apierr != nil {
		t.Fatalf("DeleteStaff failed: %v", apierr)
	}
	expectError(t, svc.DeleteStaff(ctx, f.ayse.ID), apierror.NotFoundError)
	_, apierr = svc.GetStaffMember(f.ayse.ID)
	expectError(t, apierr, apierror.NotFoundError)
	if n := len(svc.GetStaff()); n != 1 {
		t.Fatalf("expected one staff member left, got %d", n)
	}
}

func TestLeaves(t *testing.T) {
	f := newFixture(t)
	svc := NewStaffService(f.store, f.validate)
	ctx := context.Background()

	_, apierr := svc.CreateLeave(ctx, &LeaveRequest{StaffID: f.ayse.ID, StartDate: "2025-07-10", EndDate: "2025-07-01", Type: entity.LeaveAnnual})
	expectError(t, apierr, apierror.InvalidDateRangeError)

	_, apierr = svc.CreateLeave(ctx, &LeaveRequest{StaffID: f.ayse.ID, StartDate: "2025-07-01", EndDate: "2025-07-10", Type: "holiday"})
	expectCode(t, apierr, http.StatusBadRequest)

	leave, apierr := svc.CreateLeave(ctx, &LeaveRequest{StaffID: f.ayse.ID, StartDate: "2025-07-01", EndDate: "2025-07-10", Type: entity.LeaveAnnual})
	if apierr != nil {
		t.Fatalf("CreateLeave failed: %v", apierr)
	}
	if leave.Days != 10 || leave.StaffName != "Ayse" {
		t.Fatalf("unexpected leave response %+v", leave)
	}

	_, apierr = svc.UpdateLeave(ctx, leave.ID, &UpdateLeaveRequest{StartDate: strPtr("2025-07-11")})
	expectError(t, apierr, apierror.InvalidDateRangeError)

	updated, apierr := svc.UpdateLeave(ctx, leave.ID, &UpdateLeaveRequest{EndDate: strPtr("2025-07-03"), Type: ptrLeave(entity.LeaveSick)})
	if apierr != nil || updated.Days != 3 || updated.Type != entity.LeaveSick {
		t.Fatalf("unexpected update %+v (%v)", updated, apierr)
	}

	status, _ := svc.OnLeave(f.ayse.ID, "2025-07-02")
	if !status.OnLeave {
		t.Fatalf("expected Ayse to be on leave on 2025-07-02")
	}
	status, _ = svc.OnLeave(f.ayse.ID, "2025-07-04")
	if status.OnLeave {
		t.Fatalf("leave ended on 2025-07-03")
	}

	covering, _ := svc.GetLeaves(&LeaveQuery{Date: "2025-07-02"})
	if len(covering) != 1 {
		t.Fatalf("expected one covering leave, got %d", len(covering))
	}

	if apierr := svc.DeleteLeave(ctx, leave.ID); apierr != nil {
		t.Fatalf("DeleteLeave failed: %v", apierr)
	}
	expectError(t, svc.DeleteLeave(ctx, leave.ID), apierror.NotFoundError)
}

func ptrLeave(v entity.LeaveType) *entity.LeaveType { return &v }
