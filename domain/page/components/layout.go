package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/IbtisamHemmo/Marketing-POC/domain/page/view"
)

// Layout wraps page content in the HTML document shell.
func Layout(meta view.Meta, content ...g.Node) g.Node {
	if meta.Title == "" {
		meta.Title = view.DefaultSiteTitle
	}
	if meta.Description == "" {
		meta.Description = view.DefaultSiteDescription
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(meta.Title)),
				Meta(Name("description"), Content(meta.Description)),

				Meta(g.Attr("property", "og:title"), Content(meta.Title)),
				Meta(g.Attr("property", "og:description"), Content(meta.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Script(Src("https://cdn.tailwindcss.com")),
			),
			Body(
				Div(
					Class("min-h-screen bg-white"),
					g.Group(content),
				),
			),
		),
	})
}
