package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is what services hand back to routes. It is written as the
// JSON body with Code() as the HTTP status.
type ErrorResponse interface {
	error
	Code() int
}

type SimpleError struct {
	Status  int    `json:"code"`
	Message string `json:"message"`
}

func (e *SimpleError) Code() int     { return e.Status }
func (e *SimpleError) Error() string { return e.Message }

func NewSimple(code int, message string) *SimpleError {
	return &SimpleError{Status: code, Message: message}
}

var (
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")
	NotFoundError       = NewSimple(http.StatusNotFound, "Resource not found")
	MalformedBodyError  = NewSimple(http.StatusBadRequest, "Malformed request body")

	InvalidTimeRangeError = NewSimple(http.StatusBadRequest, "startTime must be before endTime")
	InvalidDateRangeError = NewSimple(http.StatusBadRequest, "startDate must not be after endDate")
	PastMidnightError     = NewSimple(http.StatusBadRequest, "Appointment must end on the day it starts")
	UnknownServiceError   = NewSimple(http.StatusBadRequest, "Unknown service id")
	InvalidSessionsError  = NewSimple(http.StatusBadRequest, "Session counts exceed totalSessions")
)

type ParamError struct {
	Status  int    `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param"`
}

func (e *ParamError) Code() int     { return e.Status }
func (e *ParamError) Error() string { return e.Message }

func NewMissingParamError(param string) *ParamError {
	return &ParamError{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Missing required parameter %q", param),
		Param:   param,
	}
}

func NewInvalidParamTypeError(param, expected string) *ParamError {
	return &ParamError{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Parameter %q must be of type %s", param, expected),
		Param:   param,
	}
}

func NewInvalidParamError(param, message string) *ParamError {
	return &ParamError{Status: http.StatusBadRequest, Message: message, Param: param}
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

type ValidationError struct {
	Status  int          `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields"`
}

func (e *ValidationError) Code() int     { return e.Status }
func (e *ValidationError) Error() string { return e.Message }

// FromValidationError converts the error returned by validator.Struct into
// a 400 listing every failed field.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}
	fields := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		fields[i] = FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()}
	}
	return &ValidationError{
		Status:  http.StatusBadRequest,
		Message: "Request validation failed",
		Fields:  fields,
	}
}

// ConflictError is the 409 returned when a booking overlaps existing
// appointments of the same staff member.
type ConflictError struct {
	Status         int    `json:"code"`
	Message        string `json:"message"`
	ConflictingIDs []int  `json:"conflictingIds"`
}

func (e *ConflictError) Code() int     { return e.Status }
func (e *ConflictError) Error() string { return e.Message }

func NewSchedulingConflict(ids []int) *ConflictError {
	return &ConflictError{
		Status:         http.StatusConflict,
		Message:        "The staff member already has an appointment in this time range",
		ConflictingIDs: ids,
	}
}
