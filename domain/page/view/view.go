// Package view holds the resolved landing page model shared by the resolver and
// the HTML components.
package view

// View is the fully-defaulted page model consumed by the components. Optional
// sections are nil when they must not render.
type View struct {
	Meta         Meta          `json:"meta"`
	Header       Header        `json:"header"`
	Banner       *Banner       `json:"banner"`
	Hero         Hero          `json:"hero"`
	About        *About        `json:"about"`
	Features     Features      `json:"features"`
	Testimonials *Testimonials `json:"testimonials"`
	Contact      *Contact      `json:"contact"`
	Footer       Footer        `json:"footer"`
}

// SiteInfo carries site-wide values that do not come from the CMS.
type SiteInfo struct {
	Title         string
	Description   string
	CopyrightYear string
}

// Meta is the document head.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Link is an anchor.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Image is a resolved image with alt text filled in.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Header is the fixed top navigation.
type Header struct {
	Logo *Image `json:"logo"`
	Nav  []Link `json:"nav"`
}

// BannerKind selects the banner layout.
type BannerKind string

const (
	BannerSimple   BannerKind = "simple"
	BannerCarousel BannerKind = "carousel"
)

// Banner is the promotional strip. Carousel banners carry at least one slide;
// the text overlay renders on each slide only when Title is set.
type Banner struct {
	Kind        BannerKind `json:"kind"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	CTA         *Link      `json:"cta,omitempty"`
	Slides      []Image    `json:"slides,omitempty"`
}

// Hero is the main call to action.
type Hero struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description"`
	CTA         Link   `json:"cta"`
	Secondary   Link   `json:"secondary"`
	Image       *Image `json:"image"`
	// Compact is set when a visible banner sits above the hero.
	Compact bool `json:"compact"`
}

// About is the mission section.
type About struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       *Image `json:"image"`
}

// Feature is one card of the grid.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Features is the always-rendered features grid.
type Features struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Items    []Feature `json:"items"`
	// Defaulted is set when Items is the built-in list.
	Defaulted bool `json:"defaulted"`
}

// Testimonial is one rendered customer quote.
type Testimonial struct {
	Name     string `json:"name"`
	RoleLine string `json:"roleLine"`
	Content  string `json:"content"`
	// Rating is the number of star glyphs; 0 hides the rating row.
	Rating int    `json:"rating"`
	Image  *Image `json:"image"`
}

// Testimonials is the customer quotes section.
type Testimonials struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []Testimonial `json:"items"`
}

// Contact is the get-in-touch section. Empty fields are not rendered.
type Contact struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}

// Footer is the page footer.
type Footer struct {
	Logo       *Image `json:"logo"`
	SiteName   string `json:"siteName"`
	Text       string `json:"text"`
	QuickLinks []Link `json:"quickLinks"`
	PlantCare  []Link `json:"plantCare"`
	Copyright  string `json:"copyright"`
}
