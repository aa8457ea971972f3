package dto

// ModelForm carries model fields submitted alongside multipart photo
// uploads; photos themselves come from the form files.
type ModelForm struct {
	Name         string `form:"name" json:"name" binding:"required,max=200"`
	Age          int    `form:"age" json:"age" binding:"required,min=14,max=99"`
	Height       string `form:"height" json:"height" binding:"max=20"`
	Measurements string `form:"measurements" json:"measurements" binding:"max=50"`
	Experience   string `form:"experience" json:"experience" binding:"max=2000"`
	Category     string `form:"category" json:"category" binding:"max=50"`
	Status       string `form:"status" json:"status" binding:"omitempty,is-model-status"`
}

// ModelUpdateRequest is a typed partial update; absent fields stay
// untouched.
type ModelUpdateRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,max=200"`
	Age          *int    `json:"age,omitempty" binding:"omitempty,min=14,max=99"`
	Height       *string `json:"height,omitempty" binding:"omitempty,max=20"`
	Measurements *string `json:"measurements,omitempty" binding:"omitempty,max=50"`
	Experience   *string `json:"experience,omitempty" binding:"omitempty,max=2000"`
	Category     *string `json:"category,omitempty" binding:"omitempty,max=50"`
	Status       *string `json:"status,omitempty" binding:"omitempty,is-model-status"`
}

type ApplicationRequest struct {
	Name       string `json:"name" binding:"required,max=200"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"max=30"`
	Age        int    `json:"age" binding:"required,min=14,max=99"`
	Height     string `json:"height" binding:"max=20"`
	Experience string `json:"experience" binding:"max=2000"`
	Message    string `json:"message" binding:"max=2000"`
}

type BookingRequest struct {
	ClientName string `json:"clientName" binding:"required,max=200"`
	ModelName  string `json:"modelName" binding:"required,max=200"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"max=20"`
	Type       string `json:"type" binding:"max=100"`
	Location   string `json:"location" binding:"max=300"`
	Notes      string `json:"notes" binding:"max=2000"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// BlogForm carries post fields; the cover image arrives as a form file.
type BlogForm struct {
	ID       string `form:"id" json:"id"`
	Title    string `form:"title" json:"title" binding:"required,max=300"`
	Content  string `form:"content" json:"content" binding:"required"`
	Category string `form:"category" json:"category" binding:"required,is-blog-category"`
	Status   string `form:"status" json:"status" binding:"omitempty,is-blog-status"`
}

// ProfileForm carries profile fields; the avatar arrives as a form file.
type ProfileForm struct {
	DisplayName  string `form:"displayName" json:"displayName" binding:"max=100"`
	Bio          string `form:"bio" json:"bio" binding:"max=2000"`
	Location     string `form:"location" json:"location" binding:"max=200"`
	Phone        string `form:"phone" json:"phone" binding:"max=30"`
	Experience   string `form:"experience" json:"experience" binding:"max=2000"`
	Height       string `form:"height" json:"height" binding:"max=20"`
	Measurements string `form:"measurements" json:"measurements" binding:"max=50"`
	Instagram    string `form:"instagram" json:"instagram" binding:"max=100"`
}

type AdminSetupRequest struct {
	Email string `json:"email" binding:"required,email"`
}
