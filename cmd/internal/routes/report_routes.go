package routes

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/reports"
	"salondesk/cmd/internal/service"
	"salondesk/cmd/internal/utils/apierror"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportService interface {
	GetSummary(q *service.ReportQuery) (*reports.Summary, apierror.ErrorResponse)
	GetSpend() []reports.SpendLine
	Export(q *service.ReportQuery) ([]byte, apierror.ErrorResponse)
}

type PreferenceService interface {
	GetPreferences() entity.Preferences
	SetPreferences(ctx context.Context, req *service.PreferencesRequest) (*entity.Preferences, apierror.ErrorResponse)
}

type DefaultReportRoute struct {
	ReportService ReportService
}

func NewReportDefault(reportService ReportService) *DefaultReportRoute {
	return &DefaultReportRoute{ReportService: reportService}
}

func (r *DefaultReportRoute) GetSummary(c echo.Context) error {
	var q service.ReportQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	sum, apierr := r.ReportService.GetSummary(&q)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, sum)
}

func (r *DefaultReportRoute) GetSpend(c echo.Context) error {
	resp := echo.Map{"customers": r.ReportService.GetSpend()}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultReportRoute) Export(c echo.Context) error {
	var q service.ReportQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	blob, apierr := r.ReportService.Export(&q)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", "salondesk-"+q.From+"-"+q.To+".xlsx"))
	return c.Blob(http.StatusOK, xlsxMIME, blob)
}

type DefaultPreferenceRoute struct {
	PreferenceService PreferenceService
}

func NewPreferenceDefault(preferenceService PreferenceService) *DefaultPreferenceRoute {
	return &DefaultPreferenceRoute{PreferenceService: preferenceService}
}

func (r *DefaultPreferenceRoute) GetPreferences(c echo.Context) error {
	return c.JSON(http.StatusOK, r.PreferenceService.GetPreferences())
}

func (r *DefaultPreferenceRoute) SetPreferences(c echo.Context) error {
	var req service.PreferencesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	prefs, apierr := r.PreferenceService.SetPreferences(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, prefs)
}
