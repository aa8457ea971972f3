package models

// UserProfile is the per-caller profile document, keyed by identity id.
// DisplayName mirrors the identity provider's record but may be edited
// here and re-synced on save.
type UserProfile struct {
	DisplayName  string `json:"displayName"`
	Bio          string `json:"bio"`
	Location     string `json:"location"`
	Phone        string `json:"phone"`
	Experience   string `json:"experience"`
	Height       string `json:"height"`
	Measurements string `json:"measurements"`
	Instagram    string `json:"instagram"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
	UpdatedAt    string `json:"updatedAt"`
}
