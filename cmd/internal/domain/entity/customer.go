package entity

type Customer struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	// TotalSpent is a cached aggregate. Appointment creation increments it,
	// nothing ever decrements it.
	TotalSpent int     `json:"totalSpent"`
	Notes      *string `json:"notes,omitempty"`
}

func (c Customer) Clone() Customer {
	out := c
	if c.Notes != nil {
		n := *c.Notes
		out.Notes = &n
	}
	return out
}
