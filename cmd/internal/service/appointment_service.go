package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/domain/store"
	"salondesk/cmd/internal/events"
	"salondesk/cmd/internal/schedule"
	"salondesk/cmd/internal/utils"
	"salondesk/cmd/internal/utils/apierror"
)

// slotStep is the spacing between suggested start times.
const slotStep = 15

type AppointmentStore interface {
	CreateAppointment(ctx context.Context, a entity.Appointment) (entity.Appointment, error)
	UpdateAppointment(ctx context.Context, id int, patch store.AppointmentPatch) (entity.Appointment, error)
	DeleteAppointment(ctx context.Context, id int) error
	Appointment(id int) (entity.Appointment, bool)
	Appointments(filter store.AppointmentFilter) []entity.Appointment
	AppointmentsOn(staffID int, date string) []entity.Appointment
	Conflicts(staffID int, date, start, end string, excludeID int) ([]entity.Appointment, error)
	Customer(id int) (entity.Customer, bool)
	Staff(id int) (entity.Staff, bool)
	Service(id int) (entity.Service, bool)
	Leaves(staffID int) []entity.StaffLeave
}

type AppointmentRequest struct {
	CustomerID int                      `json:"customerId" validate:"required,min=1"`
	StaffID    int                      `json:"staffId" validate:"required,min=1"`
	ServiceIDs []int                    `json:"serviceIds" validate:"required,min=1,dive,min=1"`
	Date       string                   `json:"date" validate:"required,isodate"`
	StartTime  string                   `json:"startTime" validate:"required,clock"`
	EndTime    string                   `json:"endTime" validate:"omitempty,clock"`
	TotalPrice *int                     `json:"totalPrice" validate:"omitempty,min=0"`
	Status     entity.AppointmentStatus `json:"status" validate:"omitempty,oneof=confirmed pending completed cancelled"`
	Notes      *string                  `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateAppointmentRequest struct {
	CustomerID *int                      `json:"customerId" validate:"omitempty,min=1"`
	StaffID    *int                      `json:"staffId" validate:"omitempty,min=1"`
	ServiceIDs []int                     `json:"serviceIds" validate:"omitempty,min=1,dive,min=1"`
	Date       *string                   `json:"date" validate:"omitempty,isodate"`
	StartTime  *string                   `json:"startTime" validate:"omitempty,clock"`
	EndTime    *string                   `json:"endTime" validate:"omitempty,clock"`
	TotalPrice *int                      `json:"totalPrice" validate:"omitempty,min=0"`
	Status     *entity.AppointmentStatus `json:"status" validate:"omitempty,oneof=confirmed pending completed cancelled"`
	Notes      *string                   `json:"notes" validate:"omitempty,max=1000"`
}

// MoveAppointmentRequest reschedules an appointment keeping its length, as
// a drag on the calendar does.
type MoveAppointmentRequest struct {
	StaffID   *int   `json:"staffId" validate:"omitempty,min=1"`
	Date      string `json:"date" validate:"required,isodate"`
	StartTime string `json:"startTime" validate:"required,clock"`
}

type StatusRequest struct {
	Status entity.AppointmentStatus `json:"status" validate:"required,oneof=confirmed pending completed cancelled"`
}

type AppointmentQuery struct {
	From       string                   `query:"from" json:"from" validate:"omitempty,isodate"`
	To         string                   `query:"to" json:"to" validate:"omitempty,isodate"`
	StaffID    int                      `query:"staffId" json:"staffId" validate:"min=0"`
	CustomerID int                      `query:"customerId" json:"customerId" validate:"min=0"`
	Status     entity.AppointmentStatus `query:"status" json:"status" validate:"omitempty,oneof=confirmed pending completed cancelled"`
}

type AvailabilityRequest struct {
	StaffID   int    `query:"staffId" json:"staffId" validate:"required,min=1"`
	Date      string `query:"date" json:"date" validate:"required,isodate"`
	StartTime string `query:"startTime" json:"startTime" validate:"required,clock"`
	EndTime   string `query:"endTime" json:"endTime" validate:"required,clock"`
	ExcludeID int    `query:"excludeId" json:"excludeId" validate:"min=0"`
}

// AppointmentResponse carries the display names of the referenced records.
// A reference that no longer resolves renders as an empty name.
type AppointmentResponse struct {
	entity.Appointment
	CustomerName string   `json:"customerName"`
	StaffName    string   `json:"staffName"`
	ServiceNames []string `json:"serviceNames"`
}

type AvailabilityResponse struct {
	Available      bool  `json:"available"`
	ConflictingIDs []int `json:"conflictingIds"`
	OnLeave        bool  `json:"onLeave"`
}

type ScheduledDay struct {
	Date          string                 `json:"date"`
	BookedMinutes int                    `json:"bookedMinutes"`
	Appointments  []*AppointmentResponse `json:"appointments"`
}

type CalendarResponse struct {
	Month         string          `json:"month"`
	From          string          `json:"from"`
	To            string          `json:"to"`
	ScheduledDays []*ScheduledDay `json:"scheduledDays"`
}

type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type SlotsResponse struct {
	StaffID  int    `json:"staffId"`
	Date     string `json:"date"`
	Duration int    `json:"duration"`
	IsOpen   bool   `json:"isOpen"`
	OnLeave  bool   `json:"onLeave"`
	Slots    []Slot `json:"slots"`
}

type DefaultAppointmentService struct {
	Store    AppointmentStore
	Events   events.Publisher
	Validate *validator.Validate
}

func NewAppointmentService(s AppointmentStore, publisher events.Publisher, validate *validator.Validate) *DefaultAppointmentService {
	return &DefaultAppointmentService{Store: s, Events: publisher, Validate: validate}
}

func (a *DefaultAppointmentService) GetAppointments(q *AppointmentQuery) ([]*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(q)
	if valerr := a.Validate.Struct(q); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	if apierr := checkDateRange(q.From, q.To); apierr != nil {
		return nil, apierr
	}

	appts := a.Store.Appointments(store.AppointmentFilter{
		From:       q.From,
		To:         q.To,
		StaffID:    q.StaffID,
		CustomerID: q.CustomerID,
		Status:     q.Status,
	})
	return a.toResponses(appts), nil
}

func (a *DefaultAppointmentService) GetAppointment(id int) (*AppointmentResponse, apierror.ErrorResponse) {
	appt, ok := a.Store.Appointment(id)
	if !ok {
		return nil, apierror.NotFoundError
	}
	return a.toResponse(appt), nil
}

// CreateAppointment books a new appointment. An omitted endTime is derived
// from the services' durations and an omitted totalPrice from their current
// catalog prices.
func (a *DefaultAppointmentService) CreateAppointment(ctx context.Context, req *AppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	endTime := req.EndTime
	var totalPrice int
	if req.TotalPrice != nil {
		totalPrice = *req.TotalPrice
	}
	if endTime == "" || req.TotalPrice == nil {
		services, apierr := a.resolveServices(req.ServiceIDs)
		if apierr != nil {
			return nil, apierr
		}
		if endTime == "" {
			end, err := schedule.EndTime(req.StartTime, durations(services)...)
			if err != nil {
				return nil, apierror.PastMidnightError
			}
			endTime = end
		}
		if req.TotalPrice == nil {
			totalPrice = prices(services)
		}
	}
	if apierr := checkTimeRange(req.StartTime, endTime); apierr != nil {
		return nil, apierr
	}

	status := req.Status
	if status == "" {
		status = entity.StatusPending
	}

	appt, err := a.Store.CreateAppointment(ctx, entity.Appointment{
		CustomerID: req.CustomerID,
		StaffID:    req.StaffID,
		ServiceIDs: req.ServiceIDs,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    endTime,
		TotalPrice: totalPrice,
		Status:     status,
		Notes:      req.Notes,
	})
	if err != nil {
		return nil, storeError(err, "create appointment")
	}

	publish(ctx, a.Events, events.AppointmentCreated, appt)
	return a.toResponse(appt), nil
}

// UpdateAppointment applies a partial edit. Moving the start without an end
// keeps the appointment's length; changing the services without an end
// recomputes it. The store re-checks availability for any move.
func (a *DefaultAppointmentService) UpdateAppointment(ctx context.Context, id int, req *UpdateAppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	current, ok := a.Store.Appointment(id)
	if !ok {
		return nil, apierror.NotFoundError
	}

	patch := store.AppointmentPatch{
		CustomerID: req.CustomerID,
		StaffID:    req.StaffID,
		ServiceIDs: req.ServiceIDs,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		TotalPrice: req.TotalPrice,
		Status:     req.Status,
		Notes:      req.Notes,
	}

	start := current.StartTime
	if req.StartTime != nil {
		start = *req.StartTime
	}

	if req.ServiceIDs != nil && (req.EndTime == nil || req.TotalPrice == nil) {
		services, apierr := a.resolveServices(req.ServiceIDs)
		if apierr != nil {
			return nil, apierr
		}
		if req.EndTime == nil {
			end, err := schedule.EndTime(start, durations(services)...)
			if err != nil {
				return nil, apierror.PastMidnightError
			}
			patch.EndTime = &end
		}
		if req.TotalPrice == nil {
			price := prices(services)
			patch.TotalPrice = &price
		}
	} else if req.StartTime != nil && req.EndTime == nil {
		end, apierr := shiftEnd(current, start)
		if apierr != nil {
			return nil, apierr
		}
		patch.EndTime = &end
	}

	end := current.EndTime
	if patch.EndTime != nil {
		end = *patch.EndTime
	}
	if apierr := checkTimeRange(start, end); apierr != nil {
		return nil, apierr
	}

	appt, err := a.Store.UpdateAppointment(ctx, id, patch)
	if err != nil {
		return nil, storeError(err, "update appointment")
	}

	publish(ctx, a.Events, events.AppointmentUpdated, appt)
	return a.toResponse(appt), nil
}

func (a *DefaultAppointmentService) MoveAppointment(ctx context.Context, id int, req *MoveAppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	current, ok := a.Store.Appointment(id)
	if !ok {
		return nil, apierror.NotFoundError
	}
	end, apierr := shiftEnd(current, req.StartTime)
	if apierr != nil {
		return nil, apierr
	}

	appt, err := a.Store.UpdateAppointment(ctx, id, store.AppointmentPatch{
		StaffID:   req.StaffID,
		Date:      &req.Date,
		StartTime: &req.StartTime,
		EndTime:   &end,
	})
	if err != nil {
		return nil, storeError(err, "move appointment")
	}

	publish(ctx, a.Events, events.AppointmentUpdated, appt)
	return a.toResponse(appt), nil
}

// SetStatus moves an appointment to any status; transitions are not
// restricted. Reviving a cancelled appointment still has to find its slot
// free.
func (a *DefaultAppointmentService) SetStatus(ctx context.Context, id int, req *StatusRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	appt, err := a.Store.UpdateAppointment(ctx, id, store.AppointmentPatch{Status: &req.Status})
	if err != nil {
		return nil, storeError(err, "set appointment status")
	}

	publish(ctx, a.Events, events.AppointmentUpdated, appt)
	return a.toResponse(appt), nil
}

func (a *DefaultAppointmentService) DeleteAppointment(ctx context.Context, id int) apierror.ErrorResponse {
	appt, ok := a.Store.Appointment(id)
	if !ok {
		return apierror.NotFoundError
	}
	if err := a.Store.DeleteAppointment(ctx, id); err != nil {
		return storeError(err, "delete appointment")
	}

	publish(ctx, a.Events, events.AppointmentDeleted, appt)
	return nil
}

// CheckAvailability runs the checker without booking anything. A zero-length
// range is reported available.
func (a *DefaultAppointmentService) CheckAvailability(req *AvailabilityRequest) (*AvailabilityResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	if req.StartTime > req.EndTime {
		return nil, apierror.InvalidTimeRangeError
	}

	clashes, err := a.Store.Conflicts(req.StaffID, req.Date, req.StartTime, req.EndTime, req.ExcludeID)
	if err != nil {
		return nil, storeError(err, "check availability")
	}

	ids := make([]int, len(clashes))
	for i, c := range clashes {
		ids[i] = c.ID
	}
	return &AvailabilityResponse{
		Available:      len(clashes) == 0,
		ConflictingIDs: ids,
		OnLeave:        onLeave(a.Store.Leaves(req.StaffID), req.Date),
	}, nil
}

// GetCalendar groups a month's appointments by day. staffID 0 covers every
// staff member.
func (a *DefaultAppointmentService) GetCalendar(month string, staffID int) (*CalendarResponse, apierror.ErrorResponse) {
	if valerr := a.Validate.Var(month, "required,isomonth"); valerr != nil {
		return nil, apierror.NewSimple(400, "Could not understand month format")
	}
	from, to, err := schedule.MonthRange(month)
	if err != nil {
		return nil, apierror.NewSimple(400, "Could not understand month format")
	}

	appts := a.Store.Appointments(store.AppointmentFilter{From: from, To: to, StaffID: staffID})

	calendar := &CalendarResponse{Month: month, From: from, To: to, ScheduledDays: []*ScheduledDay{}}
	var day *ScheduledDay
	for _, appt := range appts {
		if day == nil || day.Date != appt.Date {
			day = &ScheduledDay{Date: appt.Date}
			calendar.ScheduledDays = append(calendar.ScheduledDays, day)
		}
		day.Appointments = append(day.Appointments, a.toResponse(appt))
		if appt.Blocks() {
			day.BookedMinutes += length(appt)
		}
	}
	return calendar, nil
}

// GetFreeSlots suggests start times on date where an appointment of the
// given length fits the staff member's working hours. Days covered by a
// leave get no suggestions.
func (a *DefaultAppointmentService) GetFreeSlots(staffID int, date string, duration int) (*SlotsResponse, apierror.ErrorResponse) {
	if duration <= 0 {
		return nil, apierror.NewInvalidParamError("duration", "duration must be a positive number of minutes")
	}
	weekday, err := schedule.Weekday(date)
	if err != nil {
		return nil, apierror.NewInvalidParamError("date", "date must be YYYY-MM-DD")
	}

	staff, ok := a.Store.Staff(staffID)
	if !ok {
		return nil, apierror.NotFoundError
	}

	resp := &SlotsResponse{StaffID: staffID, Date: date, Duration: duration, Slots: []Slot{}}
	workingDay, ok := staff.Day(weekday)
	resp.IsOpen = ok && workingDay.IsOpen
	if onLeave(a.Store.Leaves(staffID), date) {
		resp.OnLeave = true
		return resp, nil
	}

	busy := schedule.Busy(a.Store.AppointmentsOn(staffID, date))
	for _, s := range schedule.FreeSlots(workingDay, busy, duration, slotStep) {
		resp.Slots = append(resp.Slots, Slot{Start: schedule.FormatClock(s.Start), End: schedule.FormatClock(s.End)})
	}
	return resp, nil
}

func (a *DefaultAppointmentService) resolveServices(ids []int) ([]entity.Service, apierror.ErrorResponse) {
	services := make([]entity.Service, 0, len(ids))
	for _, id := range ids {
		svc, ok := a.Store.Service(id)
		if !ok {
			return nil, apierror.UnknownServiceError
		}
		services = append(services, svc)
	}
	return services, nil
}

func (a *DefaultAppointmentService) toResponses(appts []entity.Appointment) []*AppointmentResponse {
	out := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		out[i] = a.toResponse(appt)
	}
	return out
}

func (a *DefaultAppointmentService) toResponse(appt entity.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{Appointment: appt, ServiceNames: make([]string, len(appt.ServiceIDs))}
	if c, ok := a.Store.Customer(appt.CustomerID); ok {
		resp.CustomerName = c.Name
	}
	if s, ok := a.Store.Staff(appt.StaffID); ok {
		resp.StaffName = s.Name
	}
	for i, id := range appt.ServiceIDs {
		if svc, ok := a.Store.Service(id); ok {
			resp.ServiceNames[i] = svc.Name
		}
	}
	return resp
}

// shiftEnd keeps appt's length when it starts at newStart instead.
func shiftEnd(appt entity.Appointment, newStart string) (string, apierror.ErrorResponse) {
	end, err := schedule.EndTime(newStart, length(appt))
	if err != nil {
		return "", apierror.PastMidnightError
	}
	return end, nil
}

func length(appt entity.Appointment) int {
	s, err1 := schedule.ParseClock(appt.StartTime)
	e, err2 := schedule.ParseClock(appt.EndTime)
	if err1 != nil || err2 != nil || e < s {
		return 0
	}
	return e - s
}

func durations(services []entity.Service) []int {
	out := make([]int, len(services))
	for i, s := range services {
		out[i] = s.Duration
	}
	return out
}

func prices(services []entity.Service) int {
	total := 0
	for _, s := range services {
		total += s.Price
	}
	return total
}
