package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/IbtisamHemmo/Marketing-POC/domain/page/view"
)

// Contact renders the get-in-touch section, or nothing for nil. Email, phone
// and address blocks render independently.
func Contact(c *view.Contact) g.Node {
	if c == nil {
		return nil
	}
	return Section(
		ID("contact"),
		Class("py-20 bg-green-50"),
		container(
			SectionHeading(c.Title, c.Description),
			Div(
				Class("grid md:grid-cols-3 gap-8"),
				g.If(c.Email != "", contactBlock("email", "Email Us", OutlineIcon("w-6 h-6 text-green-600", "2", pathMail),
					A(Href("mailto:"+c.Email), Class("text-green-600 hover:text-green-700"), g.Text(c.Email)),
				)),
				g.If(c.Phone != "", contactBlock("phone", "Call Us", OutlineIcon("w-6 h-6 text-green-600", "2", pathPhone),
					A(Href("tel:"+c.Phone), Class("text-green-600 hover:text-green-700"), g.Text(c.Phone)),
				)),
				g.If(c.Address != "", contactBlock("address", "Visit Us", OutlineIcon("w-6 h-6 text-green-600", "2", pathPin, pathPinDot),
					P(Class("text-gray-600"), g.Text(c.Address)),
				)),
			),
		),
	)
}

func contactBlock(kind, heading string, icon, body g.Node) g.Node {
	return Div(
		Class("text-center"),
		g.Attr("data-contact", kind),
		IconBadge("mx-auto mb-4", icon),
		H3(Class("text-lg font-semibold text-gray-900 mb-2"), g.Text(heading)),
		body,
	)
}
