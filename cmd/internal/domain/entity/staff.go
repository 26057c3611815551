package entity

var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

type WorkingDay struct {
	Day    string `json:"day"`
	IsOpen bool   `json:"isOpen"`
	Start  string `json:"start"` // HH:MM
	End    string `json:"end"`   // HH:MM
}

type Staff struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	Title        string       `json:"title"`
	WorkingHours []WorkingDay `json:"workingHours"`
}

func (s Staff) Clone() Staff {
	c := s
	c.WorkingHours = append([]WorkingDay(nil), s.WorkingHours...)
	return c
}

// Day returns the working-hours entry for the given weekday label.
func (s *Staff) Day(label string) (WorkingDay, bool) {
	for _, d := range s.WorkingHours {
		if d.Day == label {
			return d, true
		}
	}
	return WorkingDay{}, false
}

// DefaultWorkingHours is the schedule new staff members start with:
// 09:00-18:00 on weekdays and Saturday, closed on Sunday.
func DefaultWorkingHours() []WorkingDay {
	days := make([]WorkingDay, len(Weekdays))
	for i, d := range Weekdays {
		days[i] = WorkingDay{Day: d, IsOpen: d != "sunday", Start: "09:00", End: "18:00"}
	}
	return days
}
