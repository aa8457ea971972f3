package models

// Booking links a client and a model by denormalized name strings, not
// foreign keys: renames do not cascade. Date is an ISO timestamp;
// "upcoming" is recomputed against now at query time, never stored.
type Booking struct {
	ID         string        `json:"id,omitempty"`
	ClientName string        `json:"clientName"`
	ModelName  string        `json:"modelName"`
	Date       string        `json:"date"`
	Time       string        `json:"time"`
	Type       string        `json:"type"`
	Location   string        `json:"location"`
	Notes      string        `json:"notes"`
	Status     BookingStatus `json:"status"`
	CreatedAt  string        `json:"createdAt"`
	UpdatedAt  string        `json:"updatedAt,omitempty"`
}
