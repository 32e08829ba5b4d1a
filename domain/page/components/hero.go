package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/IbtisamHemmo/Marketing-POC/domain/page/view"
)

// Hero renders the main call to action.
func Hero(h view.Hero) g.Node {
	top := "pt-24"
	if h.Compact {
		top = "pt-8"
	}

	return Section(
		ID("hero"),
		Class(top+" pb-20 bg-gradient-to-br from-green-50 to-emerald-50"),
		container(
			Div(
				Class("grid lg:grid-cols-2 gap-12 items-center"),
				Div(
					g.If(h.Subtitle != "", P(Class("text-sm font-semibold uppercase tracking-wide text-green-700 mb-3"), g.Text(h.Subtitle))),
					H1(Class("text-4xl lg:text-6xl font-bold text-gray-900 mb-6"), g.Text(h.Title)),
					P(Class("text-xl text-gray-600 mb-8"), g.Text(h.Description)),
					Div(
						Class("flex flex-col sm:flex-row gap-4"),
						A(
							Href(h.CTA.Href),
							Class("inline-flex items-center px-8 py-3 text-white font-semibold rounded-lg hover:bg-green-700 transition-colors"),
							Style("background-color: #3c5a4d"),
							g.Text(h.CTA.Text),
							OutlineIcon("ml-2 w-5 h-5", "2", pathArrowRight),
						),
						A(
							Href(h.Secondary.Href),
							Class("inline-flex items-center px-8 py-3 border-2 font-semibold rounded-lg hover:bg-green-200 hover:text-white transition-colors"),
							Style("border: 2px solid #3c5a4d; color: #3c5a4d"),
							g.Text(h.Secondary.Text),
						),
					),
				),
				Div(
					Class("relative"),
					heroVisual(h.Image),
				),
			),
		),
	)
}

func heroVisual(img *view.Image) g.Node {
	if img != nil {
		return Photo(img, "rounded-2xl shadow-2xl", "600", "400")
	}
	return Div(
		Class("w-full h-96 bg-gradient-to-br from-green-100 to-emerald-100 rounded-2xl shadow-2xl flex items-center justify-center"),
		OutlineIcon("w-24 h-24 text-green-600", "1", pathSun),
	)
}
