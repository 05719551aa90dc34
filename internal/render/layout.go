// Package render turns the landing page's static tables and site
// configuration into HTML using gomponents.
package render

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// StylesheetPath is where the embedded stylesheet is served from.
const StylesheetPath = "/static/styles.css"

// LayoutProps configures the document chrome around the page content.
type LayoutProps struct {
	// Title is the document title (browser tab, search results).
	Title string
	// Description is the meta description. Omitted when empty.
	Description string
}

// Layout wraps children in a complete HTML5 document.
func Layout(props LayoutProps, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(props.Title)),
				g.If(props.Description != "", Meta(Name("description"), Content(props.Description))),
				Link(Rel("stylesheet"), Href(StylesheetPath)),
			),
			Body(children...),
		),
	)
}

// NavLink makes children navigate to destination when activated.
// Destinations are written as-is; the browser resolves relative routes.
func NavLink(destination string, children ...g.Node) g.Node {
	attrs := []g.Node{Class("card-link"), Href(destination)}
	return A(append(attrs, children...)...)
}
