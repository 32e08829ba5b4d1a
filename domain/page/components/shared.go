package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/IbtisamHemmo/Marketing-POC/domain/page/view"
)

// Heroicons-style outline paths used across sections.
const (
	pathMenu       = "M4 6h16M4 12h16M4 18h16"
	pathArrowRight = "M9 5l7 7-7 7"
	pathSun        = "M12 3v1m0 16v1m9-9h-1M4 12H3m15.364 6.364l-.707-.707M6.343 6.343l-.707-.707m12.728 0l-.707.707M6.343 17.657l-.707.707"
	pathMail       = "M3 8l7.89 4.26a2 2 0 002.22 0L21 8M5 19h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v10a2 2 0 002 2z"
	pathPhone      = "M3 5a2 2 0 012-2h3.28a1 1 0 01.948.684l1.498 4.493a1 1 0 01-.502 1.21l-2.257 1.13a11.042 11.042 0 005.516 5.516l1.13-2.257a1 1 0 011.21-.502l4.493 1.498a1 1 0 01.684.949V19a2 2 0 01-2 2h-1C9.716 21 3 14.284 3 6V5z"
	pathPin        = "M17.657 16.657L13.414 20.9a1.998 1.998 0 01-2.827 0l-4.244-4.243a8 8 0 1111.314 0z"
	pathPinDot     = "M15 11a3 3 0 11-6 0 3 3 0 016 0z"
	pathStar       = "M9.049 2.927c.3-.921 1.603-.921 1.902 0l1.07 3.292a1 1 0 00.95.69h3.462c.969 0 1.371 1.24.588 1.81l-2.8 2.034a1 1 0 00-.364 1.118l1.07 3.292c.3.921-.755 1.688-1.54 1.118l-2.8-2.034a1 1 0 00-1.175 0l-2.8 2.034c-.784.57-1.838-.197-1.539-1.118l1.07-3.292a1 1 0 00-.364-1.118L2.98 8.72c-.783-.57-.38-1.81.588-1.81h3.461a1 1 0 00.951-.69l1.07-3.292z"
)

// OutlineIcon renders a stroked 24x24 icon from one or more path definitions.
func OutlineIcon(class, strokeWidth string, paths ...string) g.Node {
	return g.El("svg",
		Class(class),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("aria-hidden", "true"),
		g.Group(g.Map(paths, func(d string) g.Node {
			return g.El("path",
				g.Attr("stroke-linecap", "round"),
				g.Attr("stroke-linejoin", "round"),
				g.Attr("stroke-width", strokeWidth),
				g.Attr("d", d),
			)
		})),
	)
}

// StarGlyph is one rating indicator.
func StarGlyph() g.Node {
	return g.El("svg",
		Class("w-5 h-5 text-yellow-400"),
		g.Attr("data-glyph", "star"),
		g.Attr("fill", "currentColor"),
		g.Attr("viewBox", "0 0 20 20"),
		g.Attr("aria-hidden", "true"),
		g.El("path", g.Attr("d", pathStar)),
	)
}

// Photo renders a resolved image, or nothing for nil.
func Photo(img *view.Image, class string, width, height string) g.Node {
	if img == nil {
		return nil
	}
	return Img(
		Src(img.URL),
		Alt(img.Alt),
		Width(width),
		Height(height),
		Class(class),
		g.Attr("loading", "lazy"),
	)
}

// Logo renders the site logo when one is configured.
func Logo(img *view.Image, class, px string) g.Node {
	height := "h-10"
	if px == "32" {
		height = "h-8"
	}
	return Div(
		Class(class),
		Photo(img, height+" w-auto", px, px),
	)
}

// IconBadge is the rounded square holding a section icon or emoji.
func IconBadge(extraClass string, children ...g.Node) g.Node {
	return Div(
		Class("w-12 h-12 bg-green-100 rounded-lg flex items-center justify-center "+extraClass),
		g.Group(children),
	)
}

// SectionHeading is the centered title and subtitle block used by list sections.
func SectionHeading(title, subtitle string) g.Node {
	return Div(
		Class("text-center mb-16"),
		H2(Class("text-3xl font-bold text-gray-900 mb-4"), g.Text(title)),
		P(Class("text-xl text-gray-600 max-w-3xl mx-auto"), g.Text(subtitle)),
	)
}

func container(children ...g.Node) g.Node {
	return Div(
		Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
		g.Group(children),
	)
}
