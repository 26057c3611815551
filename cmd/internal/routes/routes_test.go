package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/domain/store"
	"salondesk/cmd/internal/events"
	"salondesk/cmd/internal/service"
	"salondesk/cmd/internal/utils/validators"
)

type harness struct {
	e     *echo.Echo
	store *store.Store
	appts *DefaultAppointmentRoute
	staff *DefaultStaffRoute
	notes *DefaultNoteRoute
	rep   *DefaultReportRoute

	stylist entity.Staff
	cut     entity.Service
	client  entity.Customer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := context.Background()
	s, err := store.Open(ctx, store.NewMemoryPersister(nil))
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	validate := validators.New()
	h := &harness{
		e:     echo.New(),
		store: s,
		appts: NewAppointmentDefault(service.NewAppointmentService(s, &events.Recorder{}, validate)),
		staff: NewStaffDefault(service.NewStaffService(s, validate)),
		notes: NewNoteDefault(service.NewNoteService(s, validate)),
		rep:   NewReportDefault(service.NewReportService(s, validate)),
	}
	h.stylist = s.AddStaff(ctx, entity.Staff{Name: "Ayse", WorkingHours: entity.DefaultWorkingHours()})
	h.cut = s.AddService(ctx, entity.Service{Name: "Cut", Category: "Hair", Duration: 30, Price: 100})
	h.client = s.AddCustomer(ctx, entity.Customer{Name: "Elif"})
	return h
}

func (h *harness) call(handler echo.HandlerFunc, method, target, body string, params ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := h.e.NewContext(req, rec)
	if len(params) > 0 {
		c.SetParamNames("id")
		c.SetParamValues(params...)
	}
	_ = handler(c)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
	}
}

func TestCreateAppointmentRoute(t *testing.T) {
	h := newHarness(t)
	body := `{"customerId":1,"staffId":1,"serviceIds":[1],"date":"2025-06-02","startTime":"10:00"}`

	rec := h.call(h.appts.CreateAppointment, http.MethodPost, "/api/appointments", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var appt service.AppointmentResponse
	decode(t, rec, &appt)
	if appt.EndTime != "10:30" || appt.StaffName != "Ayse" {
		t.Fatalf("unexpected appointment %+v", appt)
	}

	rec = h.call(h.appts.CreateAppointment, http.MethodPost, "/api/appointments",
		`{"customerId":1,"staffId":1,"serviceIds":[1],"date":"2025-06-02","startTime":"10:15"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	var conflict struct {
		Code           int   `json:"code"`
		ConflictingIDs []int `json:"conflictingIds"`
	}
	decode(t, rec, &conflict)
	if conflict.Code != http.StatusConflict || len(conflict.ConflictingIDs) != 1 || conflict.ConflictingIDs[0] != appt.ID {
		t.Fatalf("unexpected conflict body %+v", conflict)
	}

	rec = h.call(h.appts.CreateAppointment, http.MethodPost, "/api/appointments", `{"customerId":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestAppointmentIDParsing(t *testing.T) {
	h := newHarness(t)

	rec := h.call(h.appts.GetAppointment, http.MethodGet, "/api/appointments/abc", "", "abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	rec = h.call(h.appts.GetAppointment, http.MethodGet, "/api/appointments/99", "", "99")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	rec = h.call(h.appts.DeleteAppointment, http.MethodDelete, "/api/appointments/99", "", "99")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAppointmentLifecycleRoutes(t *testing.T) {
	h := newHarness(t)
	rec := h.call(h.appts.CreateAppointment, http.MethodPost, "/api/appointments",
		`{"customerId":1,"staffId":1,"serviceIds":[1],"date":"2025-06-02","startTime":"10:00"}`)
	var appt service.AppointmentResponse
	decode(t, rec, &appt)

	rec = h.call(h.appts.MoveAppointment, http.MethodPost, "/api/appointments/1/move",
		`{"date":"2025-06-03","startTime":"14:00"}`, "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("move failed: %d %s", rec.Code, rec.Body.String())
	}
	decode(t, rec, &appt)
	if appt.Date != "2025-06-03" || appt.EndTime != "14:30" {
		t.Fatalf("unexpected moved appointment %+v", appt.Appointment)
	}

	rec = h.call(h.appts.SetStatus, http.MethodPut, "/api/appointments/1/status", `{"status":"done"}`, "1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", rec.Code)
	}
	rec = h.call(h.appts.SetStatus, http.MethodPut, "/api/appointments/1/status", `{"status":"cancelled"}`, "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status change failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = h.call(h.appts.GetAppointments, http.MethodGet, "/api/appointments?status=cancelled", "")
	var list struct {
		Appointments []service.AppointmentResponse `json:"appointments"`
	}
	decode(t, rec, &list)
	if len(list.Appointments) != 1 {
		t.Fatalf("expected one cancelled appointment, got %d", len(list.Appointments))
	}

	rec = h.call(h.appts.DeleteAppointment, http.MethodDelete, "/api/appointments/1", "", "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d", rec.Code)
	}
}

func TestAvailabilityRoute(t *testing.T) {
	h := newHarness(t)
	h.call(h.appts.CreateAppointment, http.MethodPost, "/api/appointments",
		`{"customerId":1,"staffId":1,"serviceIds":[1],"date":"2025-06-02","startTime":"10:00"}`)

	rec := h.call(h.appts.CheckAvailability, http.MethodGet,
		"/api/availability?staffId=1&date=2025-06-02&startTime=10:15&endTime=10:45", "")
	var resp service.AvailabilityResponse
	decode(t, rec, &resp)
	if rec.Code != http.StatusOK || resp.Available || len(resp.ConflictingIDs) != 1 {
		t.Fatalf("expected a conflict, got %d %+v", rec.Code, resp)
	}

	rec = h.call(h.appts.CheckAvailability, http.MethodGet,
		"/api/availability?staffId=1&date=2025-06-02&startTime=10:30&endTime=11:00", "")
	decode(t, rec, &resp)
	if !resp.Available {
		t.Fatalf("touching intervals must be available, got %+v", resp)
	}

	rec = h.call(h.appts.CheckAvailability, http.MethodGet,
		"/api/availability?staffId=1&date=2025-06-02&startTime=25:00&endTime=26:00", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad clock, got %d", rec.Code)
	}
}

func TestCalendarAndSlotRoutes(t *testing.T) {
	h := newHarness(t)
	h.call(h.appts.CreateAppointment, http.MethodPost, "/api/appointments",
		`{"customerId":1,"staffId":1,"serviceIds":[1],"date":"2025-06-02","startTime":"10:00"}`)

	rec := h.call(h.appts.GetCalendar, http.MethodGet, "/api/calendar", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without month, got %d", rec.Code)
	}
	rec = h.call(h.appts.GetCalendar, http.MethodGet, "/api/calendar?month=2025-06", "")
	var cal service.CalendarResponse
	decode(t, rec, &cal)
	if len(cal.ScheduledDays) != 1 || cal.ScheduledDays[0].BookedMinutes != 30 {
		t.Fatalf("unexpected calendar %+v", cal)
	}
	rec = h.call(h.appts.GetCalendar, http.MethodGet, "/api/calendar?month=June", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad month, got %d", rec.Code)
	}

	rec = h.call(h.appts.GetFreeSlots, http.MethodGet, "/api/staff/1/slots?date=2025-06-02", "", "1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without duration, got %d", rec.Code)
	}
	rec = h.call(h.appts.GetFreeSlots, http.MethodGet, "/api/staff/1/slots?date=2025-06-02&duration=x", "", "1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric duration, got %d", rec.Code)
	}
	rec = h.call(h.appts.GetFreeSlots, http.MethodGet, "/api/staff/1/slots?date=2025-06-02&duration=420", "", "1")
	var slots service.SlotsResponse
	decode(t, rec, &slots)
	if len(slots.Slots) != 3 || slots.Slots[0].Start != "10:30" || slots.Slots[2].End != "18:00" {
		t.Fatalf("unexpected slots %+v", slots)
	}
}

func TestLeaveRoutes(t *testing.T) {
	h := newHarness(t)

	rec := h.call(h.staff.CreateLeave, http.MethodPost, "/api/leaves",
		`{"staffId":1,"startDate":"2025-07-01","endDate":"2025-07-03","type":"annual"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("CreateLeave failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = h.call(h.staff.GetLeaveStatus, http.MethodGet, "/api/staff/1/leave-status?date=2025-07-02", "", "1")
	var status service.LeaveStatusResponse
	decode(t, rec, &status)
	if !status.OnLeave {
		t.Fatalf("expected staff on leave, got %+v", status)
	}

	rec = h.call(h.staff.GetLeaveStatus, http.MethodGet, "/api/staff/1/leave-status", "", "1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without date, got %d", rec.Code)
	}

	rec = h.call(h.staff.GetLeaves, http.MethodGet, "/api/leaves?staffId=1", "")
	var list struct {
		Leaves []service.LeaveResponse `json:"leaves"`
	}
	decode(t, rec, &list)
	if len(list.Leaves) != 1 || list.Leaves[0].Days != 3 {
		t.Fatalf("unexpected leaves %+v", list)
	}
}

func TestNoteRoutes(t *testing.T) {
	h := newHarness(t)
	rec := h.call(h.notes.CreateNote, http.MethodPost, "/api/notes", `{"title":"Order towels"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("CreateNote failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = h.call(h.notes.MarkRead, http.MethodPost, "/api/notes/1/read", "", "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("MarkRead failed: %d", rec.Code)
	}
	rec = h.call(h.notes.GetNotes, http.MethodGet, "/api/notes", "")
	var notes service.NotesResponse
	decode(t, rec, &notes)
	if len(notes.Notes) != 1 || notes.Unread != 0 {
		t.Fatalf("unexpected notes %+v", notes)
	}
}

func TestReportExportRoute(t *testing.T) {
	h := newHarness(t)

	rec := h.call(h.rep.Export, http.MethodGet, "/api/reports/export?from=2025-06-01&to=2025-06-30", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("export failed: %d %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get(echo.HeaderContentType); got != xlsxMIME {
		t.Fatalf("unexpected content type %q", got)
	}
	if !strings.Contains(rec.Header().Get(echo.HeaderContentDisposition), "salondesk-2025-06-01-2025-06-30.xlsx") {
		t.Fatalf("unexpected disposition %q", rec.Header().Get(echo.HeaderContentDisposition))
	}

	rec = h.call(h.rep.GetSummary, http.MethodGet, "/api/reports/summary?from=2025-06-30&to=2025-06-01", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted range, got %d", rec.Code)
	}
}

type probe struct{ err error }

func (p probe) PersistError() error { return p.err }

func TestHealthRoute(t *testing.T) {
	h := newHarness(t)

	rec := h.call(NewHealthDefault(h.store).Health, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = h.call(NewHealthDefault(probe{errors.New("disk full")}).Health, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusServiceUnavailable || !strings.Contains(rec.Body.String(), "disk full") {
		t.Fatalf("expected 503 with the persist error, got %d %s", rec.Code, rec.Body.String())
	}
}
