package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/IbtisamHemmo/Marketing-POC/domain/page/view"
)

// Banner renders the promotional strip, or nothing for nil.
func Banner(b *view.Banner) g.Node {
	if b == nil {
		return nil
	}

	var body g.Node
	if b.Kind == view.BannerCarousel && len(b.Slides) > 0 {
		body = carousel(b)
	} else {
		body = simpleBanner(b)
	}

	return Div(
		ID("banner"),
		Class("mt-16 bg-gradient-to-r from-green-500 to-emerald-600 text-white"),
		g.Attr("data-banner", string(b.Kind)),
		body,
	)
}

func carousel(b *view.Banner) g.Node {
	slides := make([]g.Node, 0, len(b.Slides))
	for i, slide := range b.Slides {
		slides = append(slides, Div(
			Class("min-w-full relative h-64"),
			g.Attr("data-slide", fmt.Sprint(i+1)),
			Img(Src(slide.URL), Alt(slide.Alt), Class("absolute inset-0 w-full h-full object-cover")),
			g.If(b.Title != "", slideOverlay(b)),
		))
	}

	return Div(
		Class("relative overflow-hidden"),
		Div(Class("flex"), g.Group(slides)),
	)
}

func slideOverlay(b *view.Banner) g.Node {
	return Div(
		Class("absolute inset-0 bg-black bg-opacity-40 flex items-center justify-center"),
		Div(
			Class("text-center"),
			H2(Class("text-3xl font-bold mb-2"), g.Text(b.Title)),
			g.If(b.Description != "", P(Class("text-lg mb-4"), g.Text(b.Description))),
			bannerCTA(b.CTA, "px-6 py-2"),
		),
	)
}

func simpleBanner(b *view.Banner) g.Node {
	return Div(
		Class("py-12 px-4"),
		Div(
			Class("max-w-4xl mx-auto text-center"),
			g.If(b.Title != "", H2(Class("text-3xl font-bold mb-4"), g.Text(b.Title))),
			g.If(b.Description != "", P(Class("text-lg mb-6"), g.Text(b.Description))),
			bannerCTA(b.CTA, "px-8 py-3"),
		),
	)
}

func bannerCTA(cta *view.Link, padding string) g.Node {
	if cta == nil {
		return nil
	}
	return A(
		Href(cta.Href),
		Class("inline-block bg-white text-green-600 "+padding+" rounded-lg font-semibold hover:bg-gray-100 transition-colors"),
		g.Text(cta.Text),
	)
}
