package domain

// SiteConfig is the site-wide metadata consumed by the landing page.
type SiteConfig struct {
	// Title is shown in the hero banner and used as the document title.
	// Example: "Bunni"
	Title string

	// Tagline is shown under the title in the hero banner.
	Tagline string

	// Description goes into the document's meta description.
	Description string
}

// DefaultSiteConfig is used when no site file is configured and to fill
// blank fields of a loaded one.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Title:       "Bunni",
		Tagline:     "Documentation of Bunni",
		Description: "Documentation of Bunni",
	}
}

// WithDefaults returns a copy of s where every empty field is taken from def.
func (s SiteConfig) WithDefaults(def SiteConfig) SiteConfig {
	if s.Title == "" {
		s.Title = def.Title
	}
	if s.Tagline == "" {
		s.Tagline = def.Tagline
	}
	if s.Description == "" {
		s.Description = def.Description
	}
	return s
}
