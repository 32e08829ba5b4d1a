package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/IbtisamHemmo/Marketing-POC/domain/page/view"
)

// Topbar is the fixed header with logo and anchor navigation.
func Topbar(h view.Header) g.Node {
	return Header(
		Class("bg-white shadow-sm fixed top-0 left-0 right-0 z-50"),
		container(
			Div(
				Class("flex justify-between items-center h-16"),
				Logo(h.Logo, "flex items-center space-x-2", "40"),
				Nav(
					Class("hidden md:flex space-x-8"),
					g.Group(g.Map(h.Nav, func(l view.Link) g.Node {
						return A(
							Href(l.Href),
							Class("text-gray-600 hover:text-green-600 transition-colors"),
							g.Text(l.Text),
						)
					})),
				),
				Button(
					Class("md:hidden"),
					Type("button"),
					g.Attr("aria-label", "Open menu"),
					OutlineIcon("w-6 h-6", "2", pathMenu),
				),
			),
		),
	)
}
