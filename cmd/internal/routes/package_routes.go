package routes

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"salondesk/cmd/internal/service"
	"salondesk/cmd/internal/utils/apierror"
)

type PackageService interface {
	GetPackages(customerID int) []*service.PackageResponse
	CreatePackage(ctx context.Context, req *service.PackageRequest) (*service.PackageResponse, apierror.ErrorResponse)
	UpdatePackage(ctx context.Context, id int, req *service.UpdatePackageRequest) (*service.PackageResponse, apierror.ErrorResponse)
	DeletePackage(ctx context.Context, id int) apierror.ErrorResponse
}

type DefaultPackageRoute struct {
	PackageService PackageService
}

func NewPackageDefault(packageService PackageService) *DefaultPackageRoute {
	return &DefaultPackageRoute{PackageService: packageService}
}

func (r *DefaultPackageRoute) GetPackages(c echo.Context) error {
	customerID, apierr := intQuery(c, "customerId")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"packages": r.PackageService.GetPackages(customerID)}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultPackageRoute) CreatePackage(c echo.Context) error {
	var req service.PackageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	pkg, apierr := r.PackageService.CreatePackage(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, pkg)
}

func (r *DefaultPackageRoute) UpdatePackage(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	var req service.UpdatePackageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	pkg, apierr := r.PackageService.UpdatePackage(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, pkg)
}

func (r *DefaultPackageRoute) DeletePackage(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := r.PackageService.DeletePackage(c.Request().Context(), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
