package entity

type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusPending   AppointmentStatus = "pending"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	ID         int               `json:"id"`
	CustomerID int               `json:"customerId"` // References: customers(id), may dangle
	StaffID    int               `json:"staffId"`    // References: staff(id)
	ServiceIDs []int             `json:"serviceIds"` // References: services(id), may dangle
	Date       string            `json:"date"`       // YYYY-MM-DD
	StartTime  string            `json:"startTime"`  // HH:MM
	EndTime    string            `json:"endTime"`    // HH:MM
	TotalPrice int               `json:"totalPrice"`
	Status     AppointmentStatus `json:"status"`
	Notes      *string           `json:"notes,omitempty"`
}

// Blocks reports whether the appointment occupies its slot. Cancelled
// appointments never block a booking.
func (a *Appointment) Blocks() bool {
	return a.Status != StatusCancelled
}

func (a Appointment) Clone() Appointment {
	c := a
	c.ServiceIDs = append([]int(nil), a.ServiceIDs...)
	if a.Notes != nil {
		n := *a.Notes
		c.Notes = &n
	}
	return c
}

func IsValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
