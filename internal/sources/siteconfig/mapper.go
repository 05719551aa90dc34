package siteconfig

import (
	"strings"

	"github.com/zeframlou/bunni-docs/internal/domain"
)

// Mapper converts a parsed site file to domain.SiteConfig
type Mapper struct {
	defaults domain.SiteConfig
}

// NewMapper creates a mapper that fills blank fields from defaults
func NewMapper(defaults domain.SiteConfig) *Mapper {
	return &Mapper{defaults: defaults}
}

// Map trims every field and falls back to the defaults for blank ones.
func (m *Mapper) Map(file File) domain.SiteConfig {
	cfg := domain.SiteConfig{
		Title:       strings.TrimSpace(file.Title),
		Tagline:     strings.TrimSpace(file.Tagline),
		Description: strings.TrimSpace(file.Description),
	}
	return cfg.WithDefaults(m.defaults)
}
