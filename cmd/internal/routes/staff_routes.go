package routes

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/service"
	"salondesk/cmd/internal/utils/apierror"
)

type StaffService interface {
	GetStaff() []entity.Staff
	GetStaffMember(id int) (*entity.Staff, apierror.ErrorResponse)
	CreateStaff(ctx context.Context, req *service.StaffRequest) (*entity.Staff, apierror.ErrorResponse)
	UpdateStaff(ctx context.Context, id int, req *service.UpdateStaffRequest) (*entity.Staff, apierror.ErrorResponse)
	UpdateWorkingHours(ctx context.Context, id int, req *service.WorkingHoursRequest) (*entity.Staff, apierror.ErrorResponse)
	DeleteStaff(ctx context.Context, id int) apierror.ErrorResponse
	GetLeaves(q *service.LeaveQuery) ([]*service.LeaveResponse, apierror.ErrorResponse)
	CreateLeave(ctx context.Context, req *service.LeaveRequest) (*service.LeaveResponse, apierror.ErrorResponse)
	UpdateLeave(ctx context.Context, id int, req *service.UpdateLeaveRequest) (*service.LeaveResponse, apierror.ErrorResponse)
	DeleteLeave(ctx context.Context, id int) apierror.ErrorResponse
	OnLeave(staffID int, date string) (*service.LeaveStatusResponse, apierror.ErrorResponse)
}

type DefaultStaffRoute struct {
	StaffService StaffService
}

func NewStaffDefault(staffService StaffService) *DefaultStaffRoute {
	return &DefaultStaffRoute{StaffService: staffService}
}

func (s *DefaultStaffRoute) GetStaff(c echo.Context) error {
	resp := echo.Map{"staff": s.StaffService.GetStaff()}
	return c.JSON(http.StatusOK, &resp)
}

func (s *DefaultStaffRoute) GetStaffMember(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	staff, apierr := s.StaffService.GetStaffMember(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, staff)
}

func (s *DefaultStaffRoute) CreateStaff(c echo.Context) error {
	var req service.StaffRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	staff, apierr := s.StaffService.CreateStaff(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, staff)
}

func (s *DefaultStaffRoute) UpdateStaff(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	var req service.UpdateStaffRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	staff, apierr := s.StaffService.UpdateStaff(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, staff)
}

func (s *DefaultStaffRoute) UpdateWorkingHours(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	var req service.WorkingHoursRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	staff, apierr := s.StaffService.UpdateWorkingHours(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, staff)
}

func (s *DefaultStaffRoute) DeleteStaff(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := s.StaffService.DeleteStaff(c.Request().Context(), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (s *DefaultStaffRoute) GetLeaveStatus(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	date := c.QueryParam("date")
	if date == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("date"))
	}

	status, apierr := s.StaffService.OnLeave(id, date)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, status)
}

func (s *DefaultStaffRoute) GetLeaves(c echo.Context) error {
	var q service.LeaveQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	leaves, apierr := s.StaffService.GetLeaves(&q)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"leaves": leaves}
	return c.JSON(http.StatusOK, &resp)
}

func (s *DefaultStaffRoute) CreateLeave(c echo.Context) error {
	var req service.LeaveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	leave, apierr := s.StaffService.CreateLeave(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, leave)
}

func (s *DefaultStaffRoute) UpdateLeave(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	var req service.UpdateLeaveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	leave, apierr := s.StaffService.UpdateLeave(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, leave)
}

func (s *DefaultStaffRoute) DeleteLeave(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := s.StaffService.DeleteLeave(c.Request().Context(), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
