package routes

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/service"
	"salondesk/cmd/internal/utils/apierror"
)

type CustomerService interface {
	GetCustomers(q *service.CustomerQuery) (*service.CustomerListResponse, apierror.ErrorResponse)
	GetCustomer(id int) (*entity.Customer, apierror.ErrorResponse)
	CreateCustomer(ctx context.Context, req *service.CustomerRequest) (*entity.Customer, apierror.ErrorResponse)
	UpdateCustomer(ctx context.Context, id int, req *service.UpdateCustomerRequest) (*entity.Customer, apierror.ErrorResponse)
	DeleteCustomer(ctx context.Context, id int) apierror.ErrorResponse
	GetHistory(id int) (*service.CustomerHistoryResponse, apierror.ErrorResponse)
}

type DefaultCustomerRoute struct {
	CustomerService CustomerService
}

func NewCustomerDefault(customerService CustomerService) *DefaultCustomerRoute {
	return &DefaultCustomerRoute{CustomerService: customerService}
}

func (r *DefaultCustomerRoute) GetCustomers(c echo.Context) error {
	var q service.CustomerQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	list, apierr := r.CustomerService.GetCustomers(&q)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, list)
}

func (r *DefaultCustomerRoute) GetCustomer(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	cust, apierr := r.CustomerService.GetCustomer(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, cust)
}

func (r *DefaultCustomerRoute) GetHistory(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	history, apierr := r.CustomerService.GetHistory(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, history)
}

func (r *DefaultCustomerRoute) CreateCustomer(c echo.Context) error {
	var req service.CustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	cust, apierr := r.CustomerService.CreateCustomer(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, cust)
}

func (r *DefaultCustomerRoute) UpdateCustomer(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	var req service.UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	cust, apierr := r.CustomerService.UpdateCustomer(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, cust)
}

func (r *DefaultCustomerRoute) DeleteCustomer(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := r.CustomerService.DeleteCustomer(c.Request().Context(), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
