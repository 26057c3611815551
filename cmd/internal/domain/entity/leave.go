package entity

type LeaveType string

const (
	LeaveAnnual   LeaveType = "annual"
	LeaveSick     LeaveType = "sick"
	LeavePersonal LeaveType = "personal"
	LeaveOther    LeaveType = "other"
)

type StaffLeave struct {
	ID          int       `json:"id"`
	StaffID     int       `json:"staffId"`
	StartDate   string    `json:"startDate"` // YYYY-MM-DD, inclusive
	EndDate     string    `json:"endDate"`   // YYYY-MM-DD, inclusive
	Type        LeaveType `json:"type"`
	Description *string   `json:"description,omitempty"`
}

// Covers reports whether date falls inside the leave. ISO dates compare
// lexically.
func (l *StaffLeave) Covers(date string) bool {
	return l.StartDate <= date && date <= l.EndDate
}
