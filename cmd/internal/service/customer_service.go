package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/domain/store"
	"salondesk/cmd/internal/utils"
	"salondesk/cmd/internal/utils/apierror"
)

type CustomerStore interface {
	AddCustomer(ctx context.Context, v entity.Customer) entity.Customer
	UpdateCustomer(ctx context.Context, id int, p store.CustomerPatch) (entity.Customer, error)
	DeleteCustomer(ctx context.Context, id int) error
	Customer(id int) (entity.Customer, bool)
	Customers() []entity.Customer
	Appointments(filter store.AppointmentFilter) []entity.Appointment
}

type CustomerRequest struct {
	Name       string  `json:"name" validate:"required,max=120"`
	Phone      string  `json:"phone" validate:"max=40"`
	Email      string  `json:"email" validate:"omitempty,email"`
	TotalSpent int     `json:"totalSpent" validate:"min=0"`
	Notes      *string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=120"`
	Phone *string `json:"phone" validate:"omitempty,max=40"`
	Email *string `json:"email" validate:"omitempty,email"`
	Notes *string `json:"notes" validate:"omitempty,max=1000"`
}

type CustomerQuery struct {
	Q    string `query:"q" json:"q" validate:"max=120"`
	Page int    `query:"page" json:"page" validate:"min=0"`
	Size int    `query:"size" json:"size" validate:"min=0,max=200"`
}

type CustomerListResponse struct {
	Customers []entity.Customer `json:"customers"`
	Page      utils.Page        `json:"page"`
}

type CustomerHistoryResponse struct {
	Customer     entity.Customer      `json:"customer"`
	Appointments []entity.Appointment `json:"appointments"`
	Visits       int                  `json:"visits"`
}

type DefaultCustomerService struct {
	Store    CustomerStore
	Validate *validator.Validate
}

func NewCustomerService(s CustomerStore, validate *validator.Validate) *DefaultCustomerService {
	return &DefaultCustomerService{Store: s, Validate: validate}
}

// GetCustomers searches name, phone and email and returns one page.
func (c *DefaultCustomerService) GetCustomers(q *CustomerQuery) (*CustomerListResponse, apierror.ErrorResponse) {
	utils.Sanitize(q)
	if valerr := c.Validate.Struct(q); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	var matches []entity.Customer
	for _, cust := range c.Store.Customers() {
		if utils.ContainsFold(q.Q, cust.Name, cust.Phone, cust.Email) {
			matches = append(matches, cust)
		}
	}
	page, info := utils.Paginate(matches, q.Page, q.Size)
	if page == nil {
		page = []entity.Customer{}
	}
	return &CustomerListResponse{Customers: page, Page: info}, nil
}

func (c *DefaultCustomerService) GetCustomer(id int) (*entity.Customer, apierror.ErrorResponse) {
	cust, ok := c.Store.Customer(id)
	if !ok {
		return nil, apierror.NotFoundError
	}
	return &cust, nil
}

func (c *DefaultCustomerService) CreateCustomer(ctx context.Context, req *CustomerRequest) (*entity.Customer, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := c.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	cust := c.Store.AddCustomer(ctx, entity.Customer{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		TotalSpent: req.TotalSpent,
		Notes:      req.Notes,
	})
	return &cust, nil
}

func (c *DefaultCustomerService) UpdateCustomer(ctx context.Context, id int, req *UpdateCustomerRequest) (*entity.Customer, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := c.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	cust, err := c.Store.UpdateCustomer(ctx, id, store.CustomerPatch{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		return nil, storeError(err, "update customer")
	}
	return &cust, nil
}

func (c *DefaultCustomerService) DeleteCustomer(ctx context.Context, id int) apierror.ErrorResponse {
	if err := c.Store.DeleteCustomer(ctx, id); err != nil {
		return storeError(err, "delete customer")
	}
	return nil
}

// GetHistory returns a customer's appointments, newest last. Visits counts
// the completed ones.
func (c *DefaultCustomerService) GetHistory(id int) (*CustomerHistoryResponse, apierror.ErrorResponse) {
	cust, ok := c.Store.Customer(id)
	if !ok {
		return nil, apierror.NotFoundError
	}
	appts := c.Store.Appointments(store.AppointmentFilter{CustomerID: id})
	resp := &CustomerHistoryResponse{Customer: cust, Appointments: appts}
	for _, a := range appts {
		if a.Status == entity.StatusCompleted {
			resp.Visits++
		}
	}
	return resp, nil
}
