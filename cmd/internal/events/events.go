// Package events publishes appointment lifecycle events to a broker so
// reminder or analytics consumers can follow the calendar.
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"salondesk/cmd/internal/domain/entity"
)

const (
	AppointmentCreated = "appointment.created"
	AppointmentUpdated = "appointment.updated"
	AppointmentDeleted = "appointment.deleted"
)

type Event struct {
	ID          string             `json:"id"`
	Type        string             `json:"type"`
	OccurredAt  time.Time          `json:"occurredAt"`
	Appointment entity.Appointment `json:"appointment"`
}

func NewAppointmentEvent(eventType string, a entity.Appointment) Event {
	return Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		OccurredAt:  time.Now().UTC(),
		Appointment: a.Clone(),
	}
}

// Key partitions events by appointment so one appointment's history stays
// ordered.
func (e Event) Key() []byte {
	return []byte(strconv.Itoa(e.Appointment.ID))
}

func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}
