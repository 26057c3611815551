package service

import (
	"bytes"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/domain/store"
	"salondesk/cmd/internal/reports"
	"salondesk/cmd/internal/utils"
	"salondesk/cmd/internal/utils/apierror"
)

type ReportStore interface {
	Appointments(filter store.AppointmentFilter) []entity.Appointment
	Services() []entity.Service
	AllStaff() []entity.Staff
	Customers() []entity.Customer
}

type ReportQuery struct {
	From string `query:"from" json:"from" validate:"required,isodate"`
	To   string `query:"to" json:"to" validate:"required,isodate"`
}

type DefaultReportService struct {
	Store    ReportStore
	Validate *validator.Validate
}

func NewReportService(s ReportStore, validate *validator.Validate) *DefaultReportService {
	return &DefaultReportService{Store: s, Validate: validate}
}

func (r *DefaultReportService) GetSummary(q *ReportQuery) (*reports.Summary, apierror.ErrorResponse) {
	utils.Sanitize(q)
	if valerr := r.Validate.Struct(q); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	if apierr := checkDateRange(q.From, q.To); apierr != nil {
		return nil, apierr
	}

	appts := r.Store.Appointments(store.AppointmentFilter{From: q.From, To: q.To})
	sum := reports.Summarize(q.From, q.To, appts, r.Store.Services(), r.Store.AllStaff())
	return &sum, nil
}

// GetSpend compares each customer's recorded totalSpent with what their
// current appointments add up to.
func (r *DefaultReportService) GetSpend() []reports.SpendLine {
	return reports.Reconcile(r.Store.Customers(), r.Store.Appointments(store.AppointmentFilter{}))
}

// Export renders the summary for q and the spend reconciliation as XLSX.
func (r *DefaultReportService) Export(q *ReportQuery) ([]byte, apierror.ErrorResponse) {
	sum, apierr := r.GetSummary(q)
	if apierr != nil {
		return nil, apierr
	}

	var buf bytes.Buffer
	if err := reports.WriteXLSX(&buf, *sum, r.GetSpend()); err != nil {
		log.Errorf("failed to render report %s..%s: %v", q.From, q.To, err)
		return nil, apierror.InternalServerError
	}
	return buf.Bytes(), nil
}
