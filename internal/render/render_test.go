package render

import (
	"bytes"
	"html"
	"io/fs"
	"strings"
	"testing"

	g "maragu.dev/gomponents"

	"github.com/zeframlou/bunni-docs/internal/domain"
)

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestHomepageHeaderScenario(t *testing.T) {
	out := renderString(t, HomepageHeader(domain.SiteConfig{Title: "Bunni", Tagline: "docs"}))

	if !strings.Contains(out, `<h1 class="hero__title">Bunni</h1>`) {
		t.Errorf("header missing title, got %s", out)
	}
	if !strings.Contains(out, `<p class="hero__subtitle">docs</p>`) {
		t.Errorf("header missing tagline, got %s", out)
	}
}

func TestHomepageHeaderEscapesText(t *testing.T) {
	out := renderString(t, HomepageHeader(domain.SiteConfig{Title: "<b>Bunni</b>", Tagline: "a & b"}))
	if strings.Contains(out, "<b>") {
		t.Errorf("title not escaped: %s", out)
	}
	if !strings.Contains(out, "a &amp; b") {
		t.Errorf("tagline not escaped: %s", out)
	}
}

func TestGuideListScenario(t *testing.T) {
	out := renderString(t, GuideList([]domain.GuideEntry{{
		Title:       "What is Bunni?",
		Description: "Read a general overview of Bunni",
		Destination: "./docs/intro",
	}}))

	if n := strings.Count(out, "<a "); n != 1 {
		t.Fatalf("rendered %d links, want 1", n)
	}
	if !strings.Contains(out, `href="./docs/intro"`) {
		t.Errorf("card does not navigate to ./docs/intro: %s", out)
	}
}

func TestGuideListTitlesOnceInOrder(t *testing.T) {
	entries := domain.Guides()
	out := renderString(t, GuideList(entries))

	last := -1
	for _, e := range entries {
		title := html.EscapeString(e.Title)
		desc := html.EscapeString(e.Description)

		if n := strings.Count(out, title); n != 1 {
			t.Errorf("title %q rendered %d times, want 1", e.Title, n)
		}
		if n := strings.Count(out, desc); n != 1 {
			t.Errorf("description %q rendered %d times, want 1", e.Description, n)
		}

		pos := strings.Index(out, `href="`+e.Destination+`"`)
		if pos < 0 {
			t.Fatalf("no card for %q", e.Destination)
		}
		if pos <= last {
			t.Errorf("card %q rendered out of order", e.Title)
		}
		last = pos
	}
}

func TestExternalLinkListKeepsDestinations(t *testing.T) {
	entries := []domain.ExternalLinkEntry{
		{Title: "bunni", Destination: "https://github.com/zeframlou/bunni", Icon: domain.IconCode},
		{Title: "query", Destination: "https://example.com/a/b?x=1#frag", Icon: domain.IconCode},
	}
	out := renderString(t, ExternalLinkList(entries))

	for _, e := range entries {
		want := `href="` + html.EscapeString(e.Destination) + `"`
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in %s", want, out)
		}
	}
	if strings.Contains(out, "target=") {
		t.Error("external cards must not open a new browsing context")
	}
	if n := strings.Count(out, `class="repository-logo"`); n != len(entries) {
		t.Errorf("rendered %d logos, want %d", n, len(entries))
	}
}

func TestExternalLinkListOrder(t *testing.T) {
	entries := domain.ExternalLinks()
	out := renderString(t, ExternalLinkList(entries))

	last := -1
	for _, e := range entries {
		pos := strings.Index(out, `href="`+e.Destination+`"`)
		if pos < 0 {
			t.Fatalf("no card for %q", e.Destination)
		}
		if pos <= last {
			t.Errorf("card %q rendered out of order", e.Title)
		}
		last = pos
	}
}

func TestEmptyTablesRenderNoCards(t *testing.T) {
	tests := []struct {
		name string
		node g.Node
	}{
		{name: "guides nil", node: GuideList(nil)},
		{name: "guides empty", node: GuideList([]domain.GuideEntry{})},
		{name: "links nil", node: ExternalLinkList(nil)},
		{name: "links empty", node: ExternalLinkList([]domain.ExternalLinkEntry{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderString(t, tt.node)
			if strings.Contains(out, `class="card"`) {
				t.Errorf("empty table rendered cards: %s", out)
			}
			if !strings.HasPrefix(out, `<div class="card-list`) {
				t.Errorf("list container missing: %s", out)
			}
		})
	}
}

func TestArrowIsDecorative(t *testing.T) {
	out := renderString(t, ArrowIcon())
	if !strings.Contains(out, `aria-hidden="true"`) {
		t.Errorf("arrow should be hidden from assistive tech: %s", out)
	}
	if strings.Contains(out, "<a ") {
		t.Error("arrow must not be a link")
	}
}

func TestEachCardHasSingleActivationRegion(t *testing.T) {
	out := renderString(t, Home(domain.DefaultSiteConfig()))

	wantLinks := len(domain.Guides()) + len(domain.ExternalLinks())
	if n := strings.Count(out, "<a "); n != wantLinks {
		t.Errorf("page has %d links, want %d", n, wantLinks)
	}
	if n := strings.Count(out, `class="arrow"`); n != wantLinks {
		t.Errorf("page has %d arrows, want %d", n, wantLinks)
	}
}

func TestHomeComposition(t *testing.T) {
	site := domain.SiteConfig{Title: "Bunni", Tagline: "docs", Description: "Documentation of Bunni"}
	out := renderString(t, Home(site))

	if !strings.HasPrefix(strings.ToLower(out), "<!doctype html>") {
		t.Errorf("page does not start with a doctype: %.40s", out)
	}

	for _, want := range []string{
		"<title>Bunni</title>",
		`<meta name="description" content="Documentation of Bunni">`,
		`href="` + StylesheetPath + `"`,
		guidesHeading,
		guidesIntro,
		linksHeading,
		linksIntro,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}

	header := strings.Index(out, "hero__title")
	guides := strings.Index(out, guidesHeading)
	links := strings.Index(out, linksHeading)
	if !(header < guides && guides < links) {
		t.Errorf("sections out of order: header=%d guides=%d links=%d", header, guides, links)
	}
}

func TestLayoutOmitsEmptyDescription(t *testing.T) {
	out := renderString(t, Layout(LayoutProps{Title: "x"}))
	if strings.Contains(out, `name="description"`) {
		t.Errorf("empty description should be omitted: %s", out)
	}
}

func TestRenderHomeIsIdempotent(t *testing.T) {
	site := domain.DefaultSiteConfig()

	var first, second bytes.Buffer
	if err := RenderHome(&first, site); err != nil {
		t.Fatalf("RenderHome() error = %v", err)
	}
	if err := RenderHome(&second, site); err != nil {
		t.Fatalf("RenderHome() error = %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two renders with identical input differ")
	}
}

func TestStaticServesStylesheet(t *testing.T) {
	data, err := fs.ReadFile(Static(), strings.TrimPrefix(StylesheetPath, "/static/"))
	if err != nil {
		t.Fatalf("stylesheet not embedded: %v", err)
	}
	for _, class := range []string{".row", ".two-row", ".card", ".link-row"} {
		if !bytes.Contains(data, []byte(class)) {
			t.Errorf("stylesheet missing %s", class)
		}
	}
}
