package models

// BlogPost is an article on the public blog. Only published posts are
// visible to the public view.
type BlogPost struct {
	ID        string       `json:"id,omitempty"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Image     string       `json:"image,omitempty"`
	Category  BlogCategory `json:"category"`
	Status    BlogStatus   `json:"status"`
	CreatedAt string       `json:"createdAt"`
	UpdatedAt string       `json:"updatedAt,omitempty"`
}
