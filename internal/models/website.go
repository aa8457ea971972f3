package models

// WebsiteContent is the singleton public-site content document, stored at
// the fixed key "content". Created with defaults on first read if absent.
type WebsiteContent struct {
	HeroSection    HeroSection `json:"heroSection"`
	Services       []Service   `json:"services"`
	FeaturedModels []string    `json:"featuredModels"`
}

type HeroSection struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	BackgroundImage string `json:"backgroundImage"`
}

type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// DefaultWebsiteContent is the canonical fallback created on first read.
func DefaultWebsiteContent() WebsiteContent {
	return WebsiteContent{
		FeaturedModels: []string{},
		HeroSection: HeroSection{
			Title:    "MIKXX MODELING AGENCY",
			Subtitle: "Discover the Next Face of Fashion",
		},
		Services: []Service{
			{
				Title:       "Model Management",
				Description: "Professional representation and career guidance",
				Icon:        "fas fa-camera",
			},
			{
				Title:       "Talent Scouting",
				Description: "Discovering and developing new modeling talent",
				Icon:        "fas fa-users",
			},
			{
				Title:       "Booking Services",
				Description: "Connecting models with top brands and events",
				Icon:        "fas fa-star",
			},
		},
	}
}
