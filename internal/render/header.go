package render

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zeframlou/bunni-docs/internal/domain"
)

// HomepageHeader renders the hero banner with the site title and tagline.
func HomepageHeader(site domain.SiteConfig) g.Node {
	return Header(
		Class("hero hero--primary hero-banner"),
		Div(
			Class("container"),
			H1(Class("hero__title"), g.Text(site.Title)),
			P(Class("hero__subtitle"), g.Text(site.Tagline)),
		),
	)
}
