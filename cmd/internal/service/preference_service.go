package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/utils/apierror"
)

type PreferenceStore interface {
	Preferences() entity.Preferences
	SetPreferences(ctx context.Context, p entity.Preferences) entity.Preferences
}

type PreferencesRequest struct {
	SidebarExpanded *bool `json:"sidebarExpanded" validate:"required"`
}

type DefaultPreferenceService struct {
	Store    PreferenceStore
	Validate *validator.Validate
}

func NewPreferenceService(s PreferenceStore, validate *validator.Validate) *DefaultPreferenceService {
	return &DefaultPreferenceService{Store: s, Validate: validate}
}

func (p *DefaultPreferenceService) GetPreferences() entity.Preferences {
	return p.Store.Preferences()
}

func (p *DefaultPreferenceService) SetPreferences(ctx context.Context, req *PreferencesRequest) (*entity.Preferences, apierror.ErrorResponse) {
	if valerr := p.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	prefs := p.Store.SetPreferences(ctx, entity.Preferences{SidebarExpanded: *req.SidebarExpanded})
	return &prefs, nil
}
