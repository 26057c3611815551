package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/labstack/gommon/log"

	"salondesk/cmd/internal/domain/entity"
)

const (
	seqStaff        = "staff"
	seqServices     = "services"
	seqCustomers    = "customers"
	seqAppointments = "appointments"
	seqLeaves       = "leaves"
	seqPackages     = "sessionPackages"
	seqNotes        = "notes"
)

const saveTimeout = 5 * time.Second

// Store owns every salon collection. All mutations are serialized by one
// write lock; an appointment's availability check, its append and the
// customer spend increment happen inside the same critical section. Reads
// return copies.
type Store struct {
	mu        sync.RWMutex
	persister Persister

	staff        []entity.Staff
	services     []entity.Service
	customers    []entity.Customer
	appointments []entity.Appointment
	leaves       []entity.StaffLeave
	packages     []entity.SessionPackage
	notes        []entity.Note
	prefs        entity.Preferences

	seq     map[string]int
	slots   slotIndex
	apptPos map[int]int // appointment id -> position in appointments

	persistErr error
}

// Open builds a store from whatever the persister holds. A missing blob
// yields an empty store.
func Open(ctx context.Context, p Persister) (*Store, error) {
	s := &Store{persister: p, seq: map[string]int{}, slots: slotIndex{}, apptPos: map[int]int{}}
	if p == nil {
		return s, nil
	}

	blob, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if len(blob) == 0 {
		return s, nil
	}

	var snap entity.Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	s.restore(snap)
	return s, nil
}

func (s *Store) restore(snap entity.Snapshot) {
	s.staff = snap.Staff
	s.services = snap.Services
	s.customers = snap.Customers
	s.appointments = snap.Appointments
	s.leaves = snap.Leaves
	s.packages = snap.SessionPackages
	s.notes = snap.Notes
	s.prefs = snap.Preferences

	s.seedSequence(seqStaff, snap.Sequences, maxID(s.staff, func(v entity.Staff) int { return v.ID }))
	s.seedSequence(seqServices, snap.Sequences, maxID(s.services, func(v entity.Service) int { return v.ID }))
	s.seedSequence(seqCustomers, snap.Sequences, maxID(s.customers, func(v entity.Customer) int { return v.ID }))
	s.seedSequence(seqAppointments, snap.Sequences, maxID(s.appointments, func(v entity.Appointment) int { return v.ID }))
	s.seedSequence(seqLeaves, snap.Sequences, maxID(s.leaves, func(v entity.StaffLeave) int { return v.ID }))
	s.seedSequence(seqPackages, snap.Sequences, maxID(s.packages, func(v entity.SessionPackage) int { return v.ID }))
	s.seedSequence(seqNotes, snap.Sequences, maxID(s.notes, func(v entity.Note) int { return v.ID }))

	s.slots = slotIndex{}
	for _, a := range s.appointments {
		s.slots.add(a)
	}
	s.reindexPositions()
}

func (s *Store) reindexPositions() {
	s.apptPos = make(map[int]int, len(s.appointments))
	for i, a := range s.appointments {
		s.apptPos[a.ID] = i
	}
}

func (s *Store) seedSequence(name string, persisted map[string]int, highest int) {
	next := highest + 1
	if p := persisted[name]; p > next {
		next = p
	}
	s.seq[name] = next
}

// nextID hands out ids from a per-collection counter that only moves
// forward, so a deleted record's id is never reused.
func (s *Store) nextID(name string) int {
	id := s.seq[name]
	if id < 1 {
		id = 1
	}
	s.seq[name] = id + 1
	return id
}

// Snapshot returns a copy of the whole store in its persisted shape.
func (s *Store) Snapshot() entity.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Store) snapshot() entity.Snapshot {
	snap := entity.Snapshot{
		Staff:           make([]entity.Staff, len(s.staff)),
		Services:        append([]entity.Service{}, s.services...),
		Customers:       make([]entity.Customer, len(s.customers)),
		Appointments:    make([]entity.Appointment, len(s.appointments)),
		Leaves:          append([]entity.StaffLeave{}, s.leaves...),
		SessionPackages: append([]entity.SessionPackage{}, s.packages...),
		Notes:           append([]entity.Note{}, s.notes...),
		Preferences:     s.prefs,
		Sequences:       make(map[string]int, len(s.seq)),
	}
	for i, v := range s.staff {
		snap.Staff[i] = v.Clone()
	}
	for i, v := range s.customers {
		snap.Customers[i] = v.Clone()
	}
	for i, v := range s.appointments {
		snap.Appointments[i] = v.Clone()
	}
	for k, v := range s.seq {
		snap.Sequences[k] = v
	}
	return snap
}

// commit writes the whole store through the persister. It must be called
// with the write lock held. The write outlives the caller's context: a
// mutation that is already applied is always saved. The in-memory change
// stays applied when the write fails; the failure is logged and kept for
// PersistError.
func (s *Store) commit(ctx context.Context) {
	if s.persister == nil {
		return
	}
	blob, err := json.Marshal(s.snapshot())
	if err == nil {
		saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
		err = s.persister.Save(saveCtx, blob)
		cancel()
	}
	if err != nil {
		log.Errorf("failed to persist store snapshot: %v", err)
	}
	s.persistErr = err
}

// PersistError returns the error of the most recent snapshot write, if any.
func (s *Store) PersistError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistErr
}

func (s *Store) Preferences() entity.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

func (s *Store) SetPreferences(ctx context.Context, p entity.Preferences) entity.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = p
	s.commit(ctx)
	return s.prefs
}

func maxID[T any](items []T, id func(T) int) int {
	highest := 0
	for _, it := range items {
		if v := id(it); v > highest {
			highest = v
		}
	}
	return highest
}

func indexOf[T any](items []T, id func(T) int, want int) int {
	for i, it := range items {
		if id(it) == want {
			return i
		}
	}
	return -1
}

func removeAt[T any](items []T, i int) []T {
	return append(items[:i], items[i+1:]...)
}
