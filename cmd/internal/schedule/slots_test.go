package schedule

import (
	"testing"

	"salondesk/cmd/internal/domain/entity"
)

func TestFreeSlots_Basic(t *testing.T) {
	day := entity.WorkingDay{Day: "monday", IsOpen: true, Start: "09:00", End: "10:00"}
	busy := []Interval{{Start: 9*60 + 15, End: 9*60 + 45}}

	slots := FreeSlots(day, busy, 15, 15)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if FormatClock(slots[0].Start) != "09:00" {
		t.Fatalf("expected first slot 09:00, got %s", FormatClock(slots[0].Start))
	}
	if FormatClock(slots[1].Start) != "09:45" {
		t.Fatalf("expected second slot 09:45, got %s", FormatClock(slots[1].Start))
	}
}

func TestFreeSlots_ClosedDay(t *testing.T) {
	day := entity.WorkingDay{Day: "sunday", IsOpen: false, Start: "09:00", End: "18:00"}
	if slots := FreeSlots(day, nil, 30, 15); len(slots) != 0 {
		t.Fatalf("expected no slots on a closed day, got %d", len(slots))
	}
}

func TestBusy_SkipsCancelled(t *testing.T) {
	busy := Busy([]entity.Appointment{
		appt(1, 1, "2025-01-10", "10:00", "11:00", entity.StatusCancelled),
		appt(2, 1, "2025-01-10", "12:00", "13:00", entity.StatusConfirmed),
	})
	if len(busy) != 1 || busy[0].Start != 720 {
		t.Fatalf("unexpected busy intervals: %+v", busy)
	}
}
