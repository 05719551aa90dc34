package render

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zeframlou/bunni-docs/internal/domain"
)

// GuideCard renders one "Getting Started" entry as a clickable card.
func GuideCard(e domain.GuideEntry) g.Node {
	return NavLink(e.Destination,
		Div(
			Class("card"),
			Div(
				Class("link-row"),
				Div(Class("card-heading"), H3(g.Text(e.Title))),
				ArrowIcon(),
			),
			P(Class("card-description"), g.Text(e.Description)),
		),
	)
}

// ExternalLinkCard renders one "Developer Links" entry as a clickable card.
// Every card shows RepositoryLogo regardless of e.Icon.
func ExternalLinkCard(e domain.ExternalLinkEntry) g.Node {
	return NavLink(e.Destination,
		Div(
			Class("card"),
			Div(
				Class("link-row"),
				Div(
					Class("github-icon"),
					RepositoryLogo(),
					H3(g.Text(e.Title)),
				),
				ArrowIcon(),
			),
		),
	)
}

// GuideList renders entries as cards, in order.
func GuideList(entries []domain.GuideEntry) g.Node {
	return Div(
		Class("card-list guide-list"),
		g.Group(g.Map(entries, GuideCard)),
	)
}

// ExternalLinkList renders entries as cards, in order.
func ExternalLinkList(entries []domain.ExternalLinkEntry) g.Node {
	return Div(
		Class("card-list external-link-list"),
		g.Group(g.Map(entries, ExternalLinkCard)),
	)
}
