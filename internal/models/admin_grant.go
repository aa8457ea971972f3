package models

// AdminGrant proves an identity may access administrative functionality.
// Existence of a grant matching the caller's email is the sole privilege
// signal; there is no role hierarchy.
type AdminGrant struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}
