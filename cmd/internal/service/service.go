package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/gommon/log"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/domain/store"
	"salondesk/cmd/internal/events"
	"salondesk/cmd/internal/schedule"
	"salondesk/cmd/internal/utils/apierror"
)

const publishTimeout = 3 * time.Second

// storeError translates a store failure into the response a route writes.
// Anything unexpected is logged and hidden behind a 500.
func storeError(err error, action string) apierror.ErrorResponse {
	var conflict *store.ConflictError
	switch {
	case errors.As(err, &conflict):
		ids := make([]int, len(conflict.Conflicts))
		for i, c := range conflict.Conflicts {
			ids[i] = c.ID
		}
		return apierror.NewSchedulingConflict(ids)
	case errors.Is(err, store.ErrNotFound):
		return apierror.NotFoundError
	case errors.Is(err, schedule.ErrInvalidClock):
		return apierror.NewSimple(http.StatusBadRequest, err.Error())
	}
	log.Errorf("failed to %s: %v", action, err)
	return apierror.InternalServerError
}

// publish sends an appointment event without failing the request. The
// mutation has already been committed when this runs.
func publish(ctx context.Context, p events.Publisher, eventType string, appt entity.Appointment) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := p.Publish(ctx, events.NewAppointmentEvent(eventType, appt)); err != nil {
		log.Warnf("failed to publish %s for appointment %d: %v", eventType, appt.ID, err)
	}
}

func checkTimeRange(start, end string) apierror.ErrorResponse {
	s, err := schedule.ParseClock(start)
	if err != nil {
		return apierror.NewInvalidParamError("startTime", err.Error())
	}
	e, err := schedule.ParseClock(end)
	if err != nil {
		return apierror.NewInvalidParamError("endTime", err.Error())
	}
	if s >= e {
		return apierror.InvalidTimeRangeError
	}
	return nil
}

func checkDateRange(from, to string) apierror.ErrorResponse {
	if from != "" && to != "" && from > to {
		return apierror.InvalidDateRangeError
	}
	return nil
}

func onLeave(leaves []entity.StaffLeave, date string) bool {
	for i := range leaves {
		if leaves[i].Covers(date) {
			return true
		}
	}
	return false
}
