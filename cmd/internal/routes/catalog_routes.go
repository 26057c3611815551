package routes

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/service"
	"salondesk/cmd/internal/utils/apierror"
)

type CatalogService interface {
	GetServices(category string) []entity.Service
	GetCategories() []string
	CreateService(ctx context.Context, req *service.ServiceRequest) (*entity.Service, apierror.ErrorResponse)
	UpdateService(ctx context.Context, id int, req *service.UpdateServiceRequest) (*entity.Service, apierror.ErrorResponse)
	DeleteService(ctx context.Context, id int) apierror.ErrorResponse
}

type DefaultCatalogRoute struct {
	CatalogService CatalogService
}

func NewCatalogDefault(catalogService CatalogService) *DefaultCatalogRoute {
	return &DefaultCatalogRoute{CatalogService: catalogService}
}

func (r *DefaultCatalogRoute) GetServices(c echo.Context) error {
	resp := echo.Map{"services": r.CatalogService.GetServices(c.QueryParam("category"))}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultCatalogRoute) GetCategories(c echo.Context) error {
	categories := r.CatalogService.GetCategories()
	if categories == nil {
		categories = []string{}
	}
	resp := echo.Map{"categories": categories}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultCatalogRoute) CreateService(c echo.Context) error {
	var req service.ServiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	svc, apierr := r.CatalogService.CreateService(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, svc)
}

func (r *DefaultCatalogRoute) UpdateService(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	var req service.UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	svc, apierr := r.CatalogService.UpdateService(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, svc)
}

func (r *DefaultCatalogRoute) DeleteService(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := r.CatalogService.DeleteService(c.Request().Context(), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
