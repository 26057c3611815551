package entity

type Preferences struct {
	SidebarExpanded bool `json:"sidebarExpanded"`
}

// Snapshot is the whole persisted document. It is written in full after
// every mutation and read once on start.
type Snapshot struct {
	Staff           []Staff          `json:"staff"`
	Services        []Service        `json:"services"`
	Customers       []Customer       `json:"customers"`
	Appointments    []Appointment    `json:"appointments"`
	Leaves          []StaffLeave     `json:"leaves"`
	SessionPackages []SessionPackage `json:"sessionPackages"`
	Notes           []Note           `json:"notes"`
	Preferences     Preferences      `json:"preferences"`

	// Sequences holds the next id per collection so ids of deleted records
	// are not handed out again after a restart.
	Sequences map[string]int `json:"sequences,omitempty"`
}
