package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/domain/store"
	"salondesk/cmd/internal/utils"
	"salondesk/cmd/internal/utils/apierror"
)

type NoteStore interface {
	AddNote(ctx context.Context, v entity.Note) entity.Note
	UpdateNote(ctx context.Context, id int, p store.NotePatch) (entity.Note, error)
	DeleteNote(ctx context.Context, id int) error
	Notes() []entity.Note
}

type NoteRequest struct {
	Title       string            `json:"title" validate:"required,max=200"`
	Subject     string            `json:"subject" validate:"max=200"`
	Content     string            `json:"content" validate:"max=5000"`
	Date        string            `json:"date" validate:"omitempty,isodate"`
	Time        string            `json:"time" validate:"omitempty,clock"`
	HasReminder bool              `json:"hasReminder"`
	Status      entity.NoteStatus `json:"status" validate:"omitempty,oneof=read unread"`
	Creator     string            `json:"creator" validate:"max=120"`
}

type UpdateNoteRequest struct {
	Title       *string            `json:"title" validate:"omitempty,min=1,max=200"`
	Subject     *string            `json:"subject" validate:"omitempty,max=200"`
	Content     *string            `json:"content" validate:"omitempty,max=5000"`
	Date        *string            `json:"date" validate:"omitempty,isodate"`
	Time        *string            `json:"time" validate:"omitempty,clock"`
	HasReminder *bool              `json:"hasReminder"`
	Status      *entity.NoteStatus `json:"status" validate:"omitempty,oneof=read unread"`
	Creator     *string            `json:"creator" validate:"omitempty,max=120"`
}

type NotesResponse struct {
	Notes  []entity.Note `json:"notes"`
	Unread int           `json:"unread"`
}

type DefaultNoteService struct {
	Store    NoteStore
	Validate *validator.Validate
}

func NewNoteService(s NoteStore, validate *validator.Validate) *DefaultNoteService {
	return &DefaultNoteService{Store: s, Validate: validate}
}

// GetNotes lists notes, optionally only those with the given status. Unread
// always counts every unread note.
func (n *DefaultNoteService) GetNotes(status entity.NoteStatus) (*NotesResponse, apierror.ErrorResponse) {
	if status != "" && status != entity.NoteRead && status != entity.NoteUnread {
		return nil, apierror.NewInvalidParamError("status", "status must be read or unread")
	}
	resp := &NotesResponse{Notes: []entity.Note{}}
	for _, note := range n.Store.Notes() {
		if note.Status == entity.NoteUnread {
			resp.Unread++
		}
		if status == "" || note.Status == status {
			resp.Notes = append(resp.Notes, note)
		}
	}
	return resp, nil
}

func (n *DefaultNoteService) CreateNote(ctx context.Context, req *NoteRequest) (*entity.Note, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	note := n.Store.AddNote(ctx, entity.Note{
		Title:       req.Title,
		Subject:     req.Subject,
		Content:     req.Content,
		Date:        req.Date,
		Time:        req.Time,
		HasReminder: req.HasReminder,
		Status:      req.Status,
		Creator:     req.Creator,
	})
	return &note, nil
}

func (n *DefaultNoteService) UpdateNote(ctx context.Context, id int, req *UpdateNoteRequest) (*entity.Note, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	note, err := n.Store.UpdateNote(ctx, id, store.NotePatch{
		Title:       req.Title,
		Subject:     req.Subject,
		Content:     req.Content,
		Date:        req.Date,
		Time:        req.Time,
		HasReminder: req.HasReminder,
		Status:      req.Status,
		Creator:     req.Creator,
	})
	if err != nil {
		return nil, storeError(err, "update note")
	}
	return &note, nil
}

func (n *DefaultNoteService) MarkRead(ctx context.Context, id int) (*entity.Note, apierror.ErrorResponse) {
	read := entity.NoteRead
	note, err := n.Store.UpdateNote(ctx, id, store.NotePatch{Status: &read})
	if err != nil {
		return nil, storeError(err, "mark note read")
	}
	return &note, nil
}

func (n *DefaultNoteService) DeleteNote(ctx context.Context, id int) apierror.ErrorResponse {
	if err := n.Store.DeleteNote(ctx, id); err != nil {
		return storeError(err, "delete note")
	}
	return nil
}
