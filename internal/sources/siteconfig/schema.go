package siteconfig

// File is the structure of site.yaml.
//
//	title: Bunni
//	tagline: Liquidity engine for Uniswap v3
//	description: Documentation of Bunni
type File struct {
	Title       string `yaml:"title"`
	Tagline     string `yaml:"tagline"`
	Description string `yaml:"description,omitempty"`
}
