package render

import (
	"io"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zeframlou/bunni-docs/internal/domain"
)

const (
	guidesHeading = "Getting Started"
	guidesIntro   = "Explore these docs to start using Bunni."
	linksHeading  = "Developer Links"
	linksIntro    = "The Bunni codebase is comprised of an ecosystem of open source components."
)

// Home composes the landing page: hero banner, then the guide and developer
// link sections side by side.
func Home(site domain.SiteConfig) g.Node {
	return Layout(
		LayoutProps{
			Title:       site.Title,
			Description: site.Description,
		},
		HomepageHeader(site),
		Main(
			Div(
				Class("row two-row home-sections"),
				Section(
					Aria("labelledby", "getting-started"),
					H2(ID("getting-started"), g.Text(guidesHeading)),
					P(g.Text(guidesIntro)),
					GuideList(domain.Guides()),
				),
				Section(
					Aria("labelledby", "developer-links"),
					H2(ID("developer-links"), g.Text(linksHeading)),
					P(g.Text(linksIntro)),
					ExternalLinkList(domain.ExternalLinks()),
				),
			),
		),
	)
}

// RenderHome writes the landing page for site to w.
func RenderHome(w io.Writer, site domain.SiteConfig) error {
	return Home(site).Render(w)
}
