package store

import (
	"context"

	"salondesk/cmd/internal/domain/entity"
)

type NotePatch struct {
	Title       *string
	Subject     *string
	Content     *string
	Date        *string
	Time        *string
	HasReminder *bool
	Status      *entity.NoteStatus
	Creator     *string
}

func noteID(v entity.Note) int { return v.ID }

func (s *Store) AddNote(ctx context.Context, v entity.Note) entity.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.nextID(seqNotes)
	if v.Status == "" {
		v.Status = entity.NoteUnread
	}
	s.notes = append(s.notes, v)
	s.commit(ctx)
	return v
}

func (s *Store) UpdateNote(ctx context.Context, id int, p NotePatch) (entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.notes, noteID, id)
	if i < 0 {
		return entity.Note{}, ErrNotFound
	}
	v := &s.notes[i]
	setString(&v.Title, p.Title)
	setString(&v.Subject, p.Subject)
	setString(&v.Content, p.Content)
	setString(&v.Date, p.Date)
	setString(&v.Time, p.Time)
	if p.HasReminder != nil {
		v.HasReminder = *p.HasReminder
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
	setString(&v.Creator, p.Creator)
	s.commit(ctx)
	return *v, nil
}

func (s *Store) DeleteNote(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.notes, noteID, id)
	if i < 0 {
		return ErrNotFound
	}
	s.notes = removeAt(s.notes, i)
	s.commit(ctx)
	return nil
}

func (s *Store) Note(id int) (entity.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.notes, noteID, id); i >= 0 {
		return s.notes[i], true
	}
	return entity.Note{}, false
}

func (s *Store) Notes() []entity.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Note{}, s.notes...)
}
