package entity

// SessionPackage counters are independent of each other and of the
// appointment records; nothing reconciles them.
type SessionPackage struct {
	ID                int    `json:"id"`
	CustomerID        int    `json:"customerId"`
	PackageName       string `json:"packageName"`
	StartDate         string `json:"startDate"`
	TotalSessions     int    `json:"totalSessions"`
	CompletedSessions int    `json:"completedSessions"`
	ScheduledSessions int    `json:"scheduledSessions"`
	CancelledSessions int    `json:"cancelledSessions"`
	TotalPrice        int    `json:"totalPrice"`
	PaidAmount        int    `json:"paidAmount"`
}
