package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/domain/store"
	"salondesk/cmd/internal/utils"
	"salondesk/cmd/internal/utils/apierror"
)

type PackageStore interface {
	AddPackage(ctx context.Context, v entity.SessionPackage) entity.SessionPackage
	UpdatePackage(ctx context.Context, id int, p store.PackagePatch) (entity.SessionPackage, error)
	DeletePackage(ctx context.Context, id int) error
	Package(id int) (entity.SessionPackage, bool)
	Packages(customerID int) []entity.SessionPackage
	Customer(id int) (entity.Customer, bool)
}

type PackageRequest struct {
	CustomerID        int    `json:"customerId" validate:"required,min=1"`
	PackageName       string `json:"packageName" validate:"required,max=120"`
	StartDate         string `json:"startDate" validate:"required,isodate"`
	TotalSessions     int    `json:"totalSessions" validate:"required,min=1"`
	CompletedSessions int    `json:"completedSessions" validate:"min=0"`
	ScheduledSessions int    `json:"scheduledSessions" validate:"min=0"`
	CancelledSessions int    `json:"cancelledSessions" validate:"min=0"`
	TotalPrice        int    `json:"totalPrice" validate:"min=0"`
	PaidAmount        int    `json:"paidAmount" validate:"min=0"`
}

type UpdatePackageRequest struct {
	CustomerID        *int    `json:"customerId" validate:"omitempty,min=1"`
	PackageName       *string `json:"packageName" validate:"omitempty,min=1,max=120"`
	StartDate         *string `json:"startDate" validate:"omitempty,isodate"`
	TotalSessions     *int    `json:"totalSessions" validate:"omitempty,min=1"`
	CompletedSessions *int    `json:"completedSessions" validate:"omitempty,min=0"`
	ScheduledSessions *int    `json:"scheduledSessions" validate:"omitempty,min=0"`
	CancelledSessions *int    `json:"cancelledSessions" validate:"omitempty,min=0"`
	TotalPrice        *int    `json:"totalPrice" validate:"omitempty,min=0"`
	PaidAmount        *int    `json:"paidAmount" validate:"omitempty,min=0"`
}

// PackageResponse adds figures derived from the stored counters. They are
// computed on every read and never stored.
type PackageResponse struct {
	entity.SessionPackage
	CustomerName      string `json:"customerName"`
	RemainingSessions int    `json:"remainingSessions"`
	BalanceDue        int    `json:"balanceDue"`
}

type DefaultPackageService struct {
	Store    PackageStore
	Validate *validator.Validate
}

func NewPackageService(s PackageStore, validate *validator.Validate) *DefaultPackageService {
	return &DefaultPackageService{Store: s, Validate: validate}
}

// GetPackages lists packages; customerID 0 lists all of them.
func (p *DefaultPackageService) GetPackages(customerID int) []*PackageResponse {
	pkgs := p.Store.Packages(customerID)
	out := make([]*PackageResponse, len(pkgs))
	for i, pkg := range pkgs {
		out[i] = p.toResponse(pkg)
	}
	return out
}

func (p *DefaultPackageService) CreatePackage(ctx context.Context, req *PackageRequest) (*PackageResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := p.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	pkg := entity.SessionPackage{
		CustomerID:        req.CustomerID,
		PackageName:       req.PackageName,
		StartDate:         req.StartDate,
		TotalSessions:     req.TotalSessions,
		CompletedSessions: req.CompletedSessions,
		ScheduledSessions: req.ScheduledSessions,
		CancelledSessions: req.CancelledSessions,
		TotalPrice:        req.TotalPrice,
		PaidAmount:        req.PaidAmount,
	}
	if apierr := checkSessions(pkg); apierr != nil {
		return nil, apierr
	}
	return p.toResponse(p.Store.AddPackage(ctx, pkg)), nil
}

func (p *DefaultPackageService) UpdatePackage(ctx context.Context, id int, req *UpdatePackageRequest) (*PackageResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := p.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	current, ok := p.Store.Package(id)
	if !ok {
		return nil, apierror.NotFoundError
	}
	merged := current
	setIntFrom(&merged.TotalSessions, req.TotalSessions)
	setIntFrom(&merged.CompletedSessions, req.CompletedSessions)
	setIntFrom(&merged.ScheduledSessions, req.ScheduledSessions)
	if apierr := checkSessions(merged); apierr != nil {
		return nil, apierr
	}

	pkg, err := p.Store.UpdatePackage(ctx, id, store.PackagePatch{
		CustomerID:        req.CustomerID,
		PackageName:       req.PackageName,
		StartDate:         req.StartDate,
		TotalSessions:     req.TotalSessions,
		CompletedSessions: req.CompletedSessions,
		ScheduledSessions: req.ScheduledSessions,
		CancelledSessions: req.CancelledSessions,
		TotalPrice:        req.TotalPrice,
		PaidAmount:        req.PaidAmount,
	})
	if err != nil {
		return nil, storeError(err, "update package")
	}
	return p.toResponse(pkg), nil
}

func (p *DefaultPackageService) DeletePackage(ctx context.Context, id int) apierror.ErrorResponse {
	if err := p.Store.DeletePackage(ctx, id); err != nil {
		return storeError(err, "delete package")
	}
	return nil
}

func (p *DefaultPackageService) toResponse(pkg entity.SessionPackage) *PackageResponse {
	resp := &PackageResponse{
		SessionPackage:    pkg,
		RemainingSessions: pkg.TotalSessions - pkg.CompletedSessions - pkg.ScheduledSessions,
		BalanceDue:        pkg.TotalPrice - pkg.PaidAmount,
	}
	if resp.RemainingSessions < 0 {
		resp.RemainingSessions = 0
	}
	if c, ok := p.Store.Customer(pkg.CustomerID); ok {
		resp.CustomerName = c.Name
	}
	return resp
}

// checkSessions rejects packages that have used more sessions than they
// sold. Cancelled sessions do not use one up.
func checkSessions(pkg entity.SessionPackage) apierror.ErrorResponse {
	if pkg.CompletedSessions+pkg.ScheduledSessions > pkg.TotalSessions {
		return apierror.InvalidSessionsError
	}
	return nil
}

func setIntFrom(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
