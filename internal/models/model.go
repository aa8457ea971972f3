package models

// Model is a talent record in the agency catalog. Photos reference blob
// store assets by URL; removing the record must reclaim them.
type Model struct {
	ID           string      `json:"id,omitempty"`
	Name         string      `json:"name"`
	Age          int         `json:"age"`
	Height       string      `json:"height"`
	Measurements string      `json:"measurements"`
	Experience   string      `json:"experience"`
	Category     string      `json:"category"`
	Status       ModelStatus `json:"status"`
	Photos       []string    `json:"photos"`
	CreatedAt    string      `json:"createdAt"`
}

// ModelUpdate names exactly the fields mutable after creation.
// createdAt is write-once; photos change only through the repository's
// asset-aware operations.
type ModelUpdate struct {
	Name         *string      `json:"name,omitempty"`
	Age          *int         `json:"age,omitempty"`
	Height       *string      `json:"height,omitempty"`
	Measurements *string      `json:"measurements,omitempty"`
	Experience   *string      `json:"experience,omitempty"`
	Category     *string      `json:"category,omitempty"`
	Status       *ModelStatus `json:"status,omitempty"`
}
