package page

import (
	"io"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/IbtisamHemmo/Marketing-POC/domain/page/components"
	"github.com/IbtisamHemmo/Marketing-POC/domain/page/view"
)

type (
	View     = view.View
	SiteInfo = view.SiteInfo
)

// Document composes the page in its fixed order: header, banner, hero, about,
// features, testimonials, contact, footer. Absent sections render nothing.
func Document(v View) g.Node {
	return components.Layout(v.Meta,
		components.Topbar(v.Header),
		components.Banner(v.Banner),
		components.Hero(v.Hero),
		components.About(v.About),
		components.Features(v.Features),
		components.Testimonials(v.Testimonials),
		components.Contact(v.Contact),
		components.PageFooter(v.Footer),
	)
}

// Render writes the full HTML document for v.
func Render(w io.Writer, v View) error {
	return Document(v).Render(w)
}

// RenderString renders v to a string.
func RenderString(v View) (string, error) {
	var b strings.Builder
	if err := Render(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}
