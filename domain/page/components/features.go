package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/IbtisamHemmo/Marketing-POC/domain/page/view"
)

// Features renders the features grid. It always renders, even with no cards.
func Features(f view.Features) g.Node {
	return Section(
		ID("features"),
		Class("py-20 bg-gray-50"),
		container(
			SectionHeading(f.Title, f.Subtitle),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(g.Map(f.Items, featureCard)),
			),
		),
	)
}

func featureCard(f view.Feature) g.Node {
	return Div(
		Class("bg-white p-8 rounded-xl shadow-lg hover:shadow-xl transition-shadow"),
		g.Attr("data-card", "feature"),
		IconBadge("mb-6", Span(Class("text-2xl"), g.Text(f.Icon))),
		H3(Class("text-xl font-semibold text-gray-900 mb-4"), g.Text(f.Title)),
		P(Class("text-gray-600"), g.Text(f.Description)),
	)
}
