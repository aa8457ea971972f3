package models

type ModelStatus string
type ApplicationStatus string
type BookingStatus string
type BlogStatus string
type BlogCategory string

const (
	ModelStatusActive   ModelStatus = "active"
	ModelStatusInactive ModelStatus = "inactive"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"

	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"

	BlogCategoryFashion   BlogCategory = "fashion"
	BlogCategoryLifestyle BlogCategory = "lifestyle"
	BlogCategoryIndustry  BlogCategory = "industry"
	BlogCategoryEvents    BlogCategory = "events"

	// BlogCategoryAll is a filter value only, never stored on a post.
	BlogCategoryAll BlogCategory = "all"
)

// Closed enum checks. Unknown values are rejected at the repository
// boundary, not only in the presentation layer.

func (s ModelStatus) IsValid() bool {
	return s == ModelStatusActive || s == ModelStatusInactive
}

func (s ApplicationStatus) IsValid() bool {
	return s == ApplicationStatusPending || s == ApplicationStatusApproved ||
		s == ApplicationStatusRejected
}

func (s BookingStatus) IsValid() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed ||
		s == BookingStatusCancelled
}

func (s BlogStatus) IsValid() bool {
	return s == BlogStatusDraft || s == BlogStatusPublished
}

func (c BlogCategory) IsValid() bool {
	return c == BlogCategoryFashion || c == BlogCategoryLifestyle ||
		c == BlogCategoryIndustry || c == BlogCategoryEvents
}
