package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/IbtisamHemmo/Marketing-POC/domain/page/view"
)

// About renders the mission section, or nothing for nil.
func About(a *view.About) g.Node {
	if a == nil {
		return nil
	}
	return Section(
		ID("about"),
		Class("py-20 bg-white"),
		container(
			Div(
				Class("grid lg:grid-cols-2 gap-12 items-center"),
				Div(Photo(a.Image, "rounded-2xl shadow-lg", "500", "400")),
				Div(
					H2(Class("text-3xl font-bold text-gray-900 mb-6"), g.Text(a.Title)),
					Div(Class("prose prose-lg text-gray-600"), g.Text(a.Description)),
				),
			),
		),
	)
}
