package service

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/domain/store"
	"salondesk/cmd/internal/utils"
	"salondesk/cmd/internal/utils/apierror"
)

type CatalogStore interface {
	AddService(ctx context.Context, v entity.Service) entity.Service
	UpdateService(ctx context.Context, id int, p store.ServicePatch) (entity.Service, error)
	DeleteService(ctx context.Context, id int) error
	Services() []entity.Service
}

type ServiceRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Category string `json:"category" validate:"required,max=60"`
	Duration int    `json:"duration" validate:"required,min=1,max=1440"`
	Price    int    `json:"price" validate:"min=0"`
	Color    string `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateServiceRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=120"`
	Category *string `json:"category" validate:"omitempty,min=1,max=60"`
	Duration *int    `json:"duration" validate:"omitempty,min=1,max=1440"`
	Price    *int    `json:"price" validate:"omitempty,min=0"`
	Color    *string `json:"color" validate:"omitempty,hexcolor"`
}

type DefaultCatalogService struct {
	Store    CatalogStore
	Validate *validator.Validate
}

func NewCatalogService(s CatalogStore, validate *validator.Validate) *DefaultCatalogService {
	return &DefaultCatalogService{Store: s, Validate: validate}
}

// GetServices lists the catalog, optionally narrowed to one category.
func (c *DefaultCatalogService) GetServices(category string) []entity.Service {
	all := c.Store.Services()
	if category == "" {
		return all
	}
	out := make([]entity.Service, 0, len(all))
	for _, s := range all {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

func (c *DefaultCatalogService) GetCategories() []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range c.Store.Services() {
		if s.Category != "" && !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	sort.Strings(out)
	return out
}

func (c *DefaultCatalogService) CreateService(ctx context.Context, req *ServiceRequest) (*entity.Service, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := c.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	svc := c.Store.AddService(ctx, entity.Service{
		Name:     req.Name,
		Category: req.Category,
		Duration: req.Duration,
		Price:    req.Price,
		Color:    req.Color,
	})
	return &svc, nil
}

// UpdateService edits a catalog entry. Booked appointments keep the price
// and end time they were created with.
func (c *DefaultCatalogService) UpdateService(ctx context.Context, id int, req *UpdateServiceRequest) (*entity.Service, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := c.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	svc, err := c.Store.UpdateService(ctx, id, store.ServicePatch{
		Name:     req.Name,
		Category: req.Category,
		Duration: req.Duration,
		Price:    req.Price,
		Color:    req.Color,
	})
	if err != nil {
		return nil, storeError(err, "update service")
	}
	return &svc, nil
}

func (c *DefaultCatalogService) DeleteService(ctx context.Context, id int) apierror.ErrorResponse {
	if err := c.Store.DeleteService(ctx, id); err != nil {
		return storeError(err, "delete service")
	}
	return nil
}
