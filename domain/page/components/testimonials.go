package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/IbtisamHemmo/Marketing-POC/domain/page/view"
)

// Testimonials renders the customer quotes, or nothing for nil.
func Testimonials(t *view.Testimonials) g.Node {
	if t == nil {
		return nil
	}
	return Section(
		ID("testimonials"),
		Class("py-20 bg-white"),
		container(
			SectionHeading(t.Title, t.Subtitle),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(g.Map(t.Items, testimonialCard)),
			),
		),
	)
}

func testimonialCard(t view.Testimonial) g.Node {
	return Div(
		Class("bg-gray-50 p-8 rounded-xl"),
		g.Attr("data-card", "testimonial"),
		Div(
			Class("flex items-center mb-4"),
			Photo(t.Image, "rounded-full mr-4", "48", "48"),
			Div(
				H4(Class("font-semibold text-gray-900"), g.Text(t.Name)),
				P(Class("text-gray-600 text-sm"), g.Text(t.RoleLine)),
			),
		),
		rating(t.Rating),
		P(Class("text-gray-700 italic"), g.Text(t.Content)),
	)
}

func rating(n int) g.Node {
	if n <= 0 {
		return nil
	}
	stars := make([]g.Node, n)
	for i := range stars {
		stars[i] = StarGlyph()
	}
	return Div(
		Class("flex mb-4"),
		g.Attr("aria-label", "Rated "+strconv.Itoa(n)),
		g.Group(stars),
	)
}
