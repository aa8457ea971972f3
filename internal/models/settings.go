package models

// SiteSettings is the singleton agency configuration document, stored at
// the fixed key "agency".
type SiteSettings struct {
	AgencyName    string               `json:"agencyName"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	Address       string               `json:"address"`
	SocialMedia   SocialMediaLinks     `json:"socialMedia"`
	Notifications NotificationSettings `json:"notifications"`
}

type SocialMediaLinks struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
}

type NotificationSettings struct {
	EmailNotifications bool `json:"emailNotifications"`
	ApplicationAlerts  bool `json:"applicationAlerts"`
	BookingAlerts      bool `json:"bookingAlerts"`
}

// DefaultSiteSettings is the canonical fallback created on first read.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		Notifications: NotificationSettings{
			EmailNotifications: true,
			ApplicationAlerts:  true,
			BookingAlerts:      true,
		},
	}
}
