package routes

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/service"
	"salondesk/cmd/internal/utils/apierror"
)

type NoteService interface {
	GetNotes(status entity.NoteStatus) (*service.NotesResponse, apierror.ErrorResponse)
	CreateNote(ctx context.Context, req *service.NoteRequest) (*entity.Note, apierror.ErrorResponse)
	UpdateNote(ctx context.Context, id int, req *service.UpdateNoteRequest) (*entity.Note, apierror.ErrorResponse)
	MarkRead(ctx context.Context, id int) (*entity.Note, apierror.ErrorResponse)
	DeleteNote(ctx context.Context, id int) apierror.ErrorResponse
}

type DefaultNoteRoute struct {
	NoteService NoteService
}

func NewNoteDefault(noteService NoteService) *DefaultNoteRoute {
	return &DefaultNoteRoute{NoteService: noteService}
}

func (r *DefaultNoteRoute) GetNotes(c echo.Context) error {
	notes, apierr := r.NoteService.GetNotes(entity.NoteStatus(c.QueryParam("status")))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, notes)
}

func (r *DefaultNoteRoute) CreateNote(c echo.Context) error {
	var req service.NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := r.NoteService.CreateNote(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, note)
}

func (r *DefaultNoteRoute) UpdateNote(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	var req service.UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := r.NoteService.UpdateNote(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

func (r *DefaultNoteRoute) MarkRead(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	note, apierr := r.NoteService.MarkRead(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

func (r *DefaultNoteRoute) DeleteNote(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := r.NoteService.DeleteNote(c.Request().Context(), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
