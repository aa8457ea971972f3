package models

// Application is a talent application submitted through the public site.
type Application struct {
	ID         string            `json:"id,omitempty"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Age        int               `json:"age"`
	Height     string            `json:"height"`
	Experience string            `json:"experience"`
	Message    string            `json:"message"`
	PhotoURL   string            `json:"photoUrl,omitempty"`
	Status     ApplicationStatus `json:"status"`
	CreatedAt  string            `json:"createdAt"`
	UpdatedAt  string            `json:"updatedAt,omitempty"`
}
