package routes

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"salondesk/cmd/internal/service"
	"salondesk/cmd/internal/utils/apierror"
)

type AppointmentService interface {
	GetAppointments(q *service.AppointmentQuery) ([]*service.AppointmentResponse, apierror.ErrorResponse)
	GetAppointment(id int) (*service.AppointmentResponse, apierror.ErrorResponse)
	CreateAppointment(ctx context.Context, req *service.AppointmentRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
	UpdateAppointment(ctx context.Context, id int, req *service.UpdateAppointmentRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
	MoveAppointment(ctx context.Context, id int, req *service.MoveAppointmentRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
	SetStatus(ctx context.Context, id int, req *service.StatusRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
	DeleteAppointment(ctx context.Context, id int) apierror.ErrorResponse
	CheckAvailability(req *service.AvailabilityRequest) (*service.AvailabilityResponse, apierror.ErrorResponse)
	GetCalendar(month string, staffID int) (*service.CalendarResponse, apierror.ErrorResponse)
	GetFreeSlots(staffID int, date string, duration int) (*service.SlotsResponse, apierror.ErrorResponse)
}

type DefaultAppointmentRoute struct {
	AppointmentService AppointmentService
}

func NewAppointmentDefault(apptService AppointmentService) *DefaultAppointmentRoute {
	return &DefaultAppointmentRoute{AppointmentService: apptService}
}

func (a *DefaultAppointmentRoute) GetAppointments(c echo.Context) error {
	var q service.AppointmentQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appts, apierr := a.AppointmentService.GetAppointments(&q)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"appointments": appts}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) GetAppointment(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	appt, apierr := a.AppointmentService.GetAppointment(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appt)
}

func (a *DefaultAppointmentRoute) CreateAppointment(c echo.Context) error {
	var req service.AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.CreateAppointment(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, appt)
}

func (a *DefaultAppointmentRoute) UpdateAppointment(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	var req service.UpdateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.UpdateAppointment(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appt)
}

// MoveAppointment backs the calendar's drag and drop.
func (a *DefaultAppointmentRoute) MoveAppointment(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	var req service.MoveAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.MoveAppointment(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appt)
}

func (a *DefaultAppointmentRoute) SetStatus(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	var req service.StatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.SetStatus(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appt)
}

func (a *DefaultAppointmentRoute) DeleteAppointment(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	serr := a.AppointmentService.DeleteAppointment(c.Request().Context(), id)
	if serr != nil {
		return c.JSON(serr.Code(), serr)
	}
	return c.NoContent(http.StatusOK)
}

func (a *DefaultAppointmentRoute) CheckAvailability(c echo.Context) error {
	var req service.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AppointmentService.CheckAvailability(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAppointmentRoute) GetCalendar(c echo.Context) error {
	month := c.QueryParam("month") // "2025-08"
	if month == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("month"))
	}
	staffID, apierr := intQuery(c, "staffId")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	calendar, apierr := a.AppointmentService.GetCalendar(month, staffID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, calendar)
}

func (a *DefaultAppointmentRoute) GetFreeSlots(c echo.Context) error {
	staffID, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	date := c.QueryParam("date")
	if date == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("date"))
	}
	duration, apierr := intQuery(c, "duration")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	if duration == 0 {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("duration"))
	}

	slots, apierr := a.AppointmentService.GetFreeSlots(staffID, date, duration)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, slots)
}
