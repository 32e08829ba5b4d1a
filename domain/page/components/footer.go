package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/IbtisamHemmo/Marketing-POC/domain/page/view"
)

// PageFooter renders the footer with link columns and copyright line.
func PageFooter(f view.Footer) g.Node {
	return Footer(
		Class("bg-gray-900 text-white py-12"),
		container(
			Div(
				Class("grid md:grid-cols-4 gap-8"),
				Div(
					Class("md:col-span-2"),
					Logo(f.Logo, "flex items-center space-x-2 mb-4", "32"),
					P(Class("text-gray-400 mb-6"), g.Text(f.Text)),
				),
				linkColumn("Quick Links", f.QuickLinks),
				linkColumn("Plant Care", f.PlantCare),
			),
			Div(
				Class("mt-12 pt-8 border-t border-gray-800 text-center"),
				P(Class("text-gray-400"), g.Text(f.Copyright)),
			),
		),
	)
}

func linkColumn(title string, links []view.Link) g.Node {
	return Div(
		H3(Class("text-lg font-semibold mb-6"), g.Text(title)),
		Ul(
			Class("space-y-4"),
			g.Group(g.Map(links, func(l view.Link) g.Node {
				return Li(A(
					Href(l.Href),
					Class("text-gray-400 hover:text-white transition-colors"),
					g.Text(l.Text),
				))
			})),
		),
	)
}
