package entity

// Service is an entry of the salon's service catalog.
type Service struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Duration int    `json:"duration"` // minutes
	Price    int    `json:"price"`
	Color    string `json:"color"`
}
