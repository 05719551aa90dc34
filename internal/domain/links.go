package domain

// GuideEntry describes one internal documentation link on the landing page.
type GuideEntry struct {
	// Title is the card heading.
	Title string

	// Description is the one-line summary under the heading.
	Description string

	// Destination is an internal route, relative to the site root.
	// Example: ./docs/intro
	Destination string
}

// Icon names the glyph associated with an external link.
type Icon string

const (
	IconCode Icon = "code"
)

// ExternalLinkEntry describes one link to an external repository.
type ExternalLinkEntry struct {
	// Title is the project name.
	Title string

	// Destination is an absolute URL.
	// Example: https://github.com/zeframlou/bunni
	Destination string

	// Icon is carried with the entry but cards currently all render the
	// same repository logo.
	Icon Icon
}

var guides = [...]GuideEntry{
	{
		Title:       "What is Bunni?",
		Description: "Read a general overview of Bunni",
		Destination: "./docs/intro",
	},
	{
		Title:       "Providing Liquidity & Earn oLIT",
		Description: "Learn about how to provide liquidity on Uniswap via Bunni and earn gauge rewards",
		Destination: "./docs/guides/lp",
	},
	{
		Title:       "Tokenomics",
		Description: "Understand how $LIT is used to incentivize long-term liquidity",
		Destination: "./docs/tokenomics/lit",
	},
}

var externalLinks = [...]ExternalLinkEntry{
	{
		Title:       "bunni",
		Destination: "https://github.com/zeframlou/bunni",
		Icon:        IconCode,
	},
	{
		Title:       "gauge-foundry",
		Destination: "https://github.com/timeless-fi/gauge-foundry",
		Icon:        IconCode,
	},
	{
		Title:       "options-token",
		Destination: "https://github.com/timeless-fi/options-token",
		Icon:        IconCode,
	},
}

// Guides returns the "Getting Started" table in display order.
// The slice is a copy; mutating it does not affect the table.
func Guides() []GuideEntry {
	out := make([]GuideEntry, len(guides))
	copy(out, guides[:])
	return out
}

// ExternalLinks returns the "Developer Links" table in display order.
// The slice is a copy; mutating it does not affect the table.
func ExternalLinks() []ExternalLinkEntry {
	out := make([]ExternalLinkEntry, len(externalLinks))
	copy(out, externalLinks[:])
	return out
}
