package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/domain/store"
	"salondesk/cmd/internal/schedule"
	"salondesk/cmd/internal/utils"
	"salondesk/cmd/internal/utils/apierror"
)

type StaffStore interface {
	AddStaff(ctx context.Context, v entity.Staff) entity.Staff
	UpdateStaff(ctx context.Context, id int, p store.StaffPatch) (entity.Staff, error)
	UpdateWorkingHours(ctx context.Context, id int, days []entity.WorkingDay) (entity.Staff, error)
	DeleteStaff(ctx context.Context, id int) error
	Staff(id int) (entity.Staff, bool)
	AllStaff() []entity.Staff

	AddLeave(ctx context.Context, v entity.StaffLeave) entity.StaffLeave
	UpdateLeave(ctx context.Context, id int, p store.LeavePatch) (entity.StaffLeave, error)
	DeleteLeave(ctx context.Context, id int) error
	Leave(id int) (entity.StaffLeave, bool)
	Leaves(staffID int) []entity.StaffLeave
}

type WorkingDayRequest struct {
	Day    string `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	IsOpen bool   `json:"isOpen"`
	Start  string `json:"start" validate:"required,clock"`
	End    string `json:"end" validate:"required,clock"`
}

type StaffRequest struct {
	Name         string              `json:"name" validate:"required,max=120"`
	Phone        string              `json:"phone" validate:"max=40"`
	Email        string              `json:"email" validate:"omitempty,email"`
	Title        string              `json:"title" validate:"max=80"`
	WorkingHours []WorkingDayRequest `json:"workingHours" validate:"omitempty,max=7,dive"`
}

type UpdateStaffRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=120"`
	Phone *string `json:"phone" validate:"omitempty,max=40"`
	Email *string `json:"email" validate:"omitempty,email"`
	Title *string `json:"title" validate:"omitempty,max=80"`
}

type WorkingHoursRequest struct {
	WorkingHours []WorkingDayRequest `json:"workingHours" validate:"required,min=1,max=7,dive"`
}

type LeaveRequest struct {
	StaffID     int              `json:"staffId" validate:"required,min=1"`
	StartDate   string           `json:"startDate" validate:"required,isodate"`
	EndDate     string           `json:"endDate" validate:"required,isodate"`
	Type        entity.LeaveType `json:"type" validate:"required,oneof=annual sick personal other"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
}

type UpdateLeaveRequest struct {
	StaffID     *int              `json:"staffId" validate:"omitempty,min=1"`
	StartDate   *string           `json:"startDate" validate:"omitempty,isodate"`
	EndDate     *string           `json:"endDate" validate:"omitempty,isodate"`
	Type        *entity.LeaveType `json:"type" validate:"omitempty,oneof=annual sick personal other"`
	Description *string           `json:"description" validate:"omitempty,max=500"`
}

type LeaveQuery struct {
	StaffID int    `query:"staffId" json:"staffId" validate:"min=0"`
	Date    string `query:"date" json:"date" validate:"omitempty,isodate"`
}

type LeaveResponse struct {
	entity.StaffLeave
	StaffName string `json:"staffName"`
	Days      int    `json:"days"`
}

type LeaveStatusResponse struct {
	StaffID int    `json:"staffId"`
	Date    string `json:"date"`
	OnLeave bool   `json:"onLeave"`
}

type DefaultStaffService struct {
	Store    StaffStore
	Validate *validator.Validate
}

func NewStaffService(s StaffStore, validate *validator.Validate) *DefaultStaffService {
	return &DefaultStaffService{Store: s, Validate: validate}
}

func (s *DefaultStaffService) GetStaff() []entity.Staff {
	return s.Store.AllStaff()
}

func (s *DefaultStaffService) GetStaffMember(id int) (*entity.Staff, apierror.ErrorResponse) {
	staff, ok := s.Store.Staff(id)
	if !ok {
		return nil, apierror.NotFoundError
	}
	return &staff, nil
}

// CreateStaff adds a staff member. Days missing from workingHours keep the
// default schedule.
func (s *DefaultStaffService) CreateStaff(ctx context.Context, req *StaffRequest) (*entity.Staff, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	days, apierr := toWorkingDays(req.WorkingHours)
	if apierr != nil {
		return nil, apierr
	}

	hours := entity.DefaultWorkingHours()
	for _, d := range days {
		for i := range hours {
			if hours[i].Day == d.Day {
				hours[i] = d
			}
		}
	}

	staff := s.Store.AddStaff(ctx, entity.Staff{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Title:        req.Title,
		WorkingHours: hours,
	})
	return &staff, nil
}

func (s *DefaultStaffService) UpdateStaff(ctx context.Context, id int, req *UpdateStaffRequest) (*entity.Staff, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	staff, err := s.Store.UpdateStaff(ctx, id, store.StaffPatch{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Title: req.Title,
	})
	if err != nil {
		return nil, storeError(err, "update staff")
	}
	return &staff, nil
}

// UpdateWorkingHours replaces the listed days and leaves the others as they
// are. Existing appointments outside the new hours are kept.
func (s *DefaultStaffService) UpdateWorkingHours(ctx context.Context, id int, req *WorkingHoursRequest) (*entity.Staff, apierror.ErrorResponse) {
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	days, apierr := toWorkingDays(req.WorkingHours)
	if apierr != nil {
		return nil, apierr
	}
	staff, err := s.Store.UpdateWorkingHours(ctx, id, days)
	if err != nil {
		return nil, storeError(err, "update working hours")
	}
	return &staff, nil
}

// DeleteStaff removes the staff member only; their appointments and leaves
// keep pointing at the old id.
func (s *DefaultStaffService) DeleteStaff(ctx context.Context, id int) apierror.ErrorResponse {
	if err := s.Store.DeleteStaff(ctx, id); err != nil {
		return storeError(err, "delete staff")
	}
	return nil
}

func (s *DefaultStaffService) GetLeaves(q *LeaveQuery) ([]*LeaveResponse, apierror.ErrorResponse) {
	utils.Sanitize(q)
	if valerr := s.Validate.Struct(q); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	leaves := s.Store.Leaves(q.StaffID)
	out := make([]*LeaveResponse, 0, len(leaves))
	for i := range leaves {
		if q.Date != "" && !leaves[i].Covers(q.Date) {
			continue
		}
		out = append(out, s.toLeaveResponse(leaves[i]))
	}
	return out, nil
}

func (s *DefaultStaffService) CreateLeave(ctx context.Context, req *LeaveRequest) (*LeaveResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	if apierr := checkDateRange(req.StartDate, req.EndDate); apierr != nil {
		return nil, apierr
	}

	leave := s.Store.AddLeave(ctx, entity.StaffLeave{
		StaffID:     req.StaffID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Type:        req.Type,
		Description: req.Description,
	})
	return s.toLeaveResponse(leave), nil
}

func (s *DefaultStaffService) UpdateLeave(ctx context.Context, id int, req *UpdateLeaveRequest) (*LeaveResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	current, ok := s.Store.Leave(id)
	if !ok {
		return nil, apierror.NotFoundError
	}
	start, end := current.StartDate, current.EndDate
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	if apierr := checkDateRange(start, end); apierr != nil {
		return nil, apierr
	}

	leave, err := s.Store.UpdateLeave(ctx, id, store.LeavePatch{
		StaffID:     req.StaffID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Type:        req.Type,
		Description: req.Description,
	})
	if err != nil {
		return nil, storeError(err, "update leave")
	}
	return s.toLeaveResponse(leave), nil
}

func (s *DefaultStaffService) DeleteLeave(ctx context.Context, id int) apierror.ErrorResponse {
	if err := s.Store.DeleteLeave(ctx, id); err != nil {
		return storeError(err, "delete leave")
	}
	return nil
}

// OnLeave reports whether any leave of staffID covers date.
func (s *DefaultStaffService) OnLeave(staffID int, date string) (*LeaveStatusResponse, apierror.ErrorResponse) {
	if _, err := schedule.ParseDate(date); err != nil {
		return nil, apierror.NewInvalidParamError("date", "date must be YYYY-MM-DD")
	}
	return &LeaveStatusResponse{
		StaffID: staffID,
		Date:    date,
		OnLeave: onLeave(s.Store.Leaves(staffID), date),
	}, nil
}

func (s *DefaultStaffService) toLeaveResponse(l entity.StaffLeave) *LeaveResponse {
	resp := &LeaveResponse{StaffLeave: l}
	if staff, ok := s.Store.Staff(l.StaffID); ok {
		resp.StaffName = staff.Name
	}
	start, err1 := schedule.ParseDate(l.StartDate)
	end, err2 := schedule.ParseDate(l.EndDate)
	if err1 == nil && err2 == nil && !end.Before(start) {
		resp.Days = int(end.Sub(start).Hours()/24) + 1
	}
	return resp
}

func toWorkingDays(reqs []WorkingDayRequest) ([]entity.WorkingDay, apierror.ErrorResponse) {
	seen := map[string]bool{}
	days := make([]entity.WorkingDay, 0, len(reqs))
	for _, r := range reqs {
		if seen[r.Day] {
			return nil, apierror.NewInvalidParamError("workingHours", "day "+r.Day+" is listed twice")
		}
		seen[r.Day] = true
		if r.IsOpen {
			if apierr := checkTimeRange(r.Start, r.End); apierr != nil {
				return nil, apierr
			}
		}
		days = append(days, entity.WorkingDay{Day: r.Day, IsOpen: r.IsOpen, Start: r.Start, End: r.End})
	}
	return days, nil
}
