package content

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedDocument is returned when the query result is not a JSON object.
var ErrMalformedDocument = errors.New("content: malformed page document")

// Hero is the top-of-page call to action.
type Hero struct {
	Title       Text   `json:"title,omitempty"`
	Subtitle    Text   `json:"subtitle,omitempty"`
	Description Text   `json:"description,omitempty"`
	CTAText     Text   `json:"ctaText,omitempty"`
	CTALink     Text   `json:"ctaLink,omitempty"`
	HeroImage   *Image `json:"heroImage,omitempty"`
}

// About is the mission section.
type About struct {
	Title       Text   `json:"title,omitempty"`
	Description Text   `json:"description,omitempty"`
	Image       *Image `json:"image,omitempty"`
}

// Feature is one card of the features grid.
type Feature struct {
	Title       Text `json:"title,omitempty"`
	Description Text `json:"description,omitempty"`
	Icon        Text `json:"icon,omitempty"`
}

// Features is the features grid section.
type Features struct {
	Title        Text          `json:"title,omitempty"`
	Subtitle     Text          `json:"subtitle,omitempty"`
	FeaturesList List[Feature] `json:"featuresList"`
}

// Testimonial is one customer quote.
type Testimonial struct {
	Name    Text   `json:"name,omitempty"`
	Role    Text   `json:"role,omitempty"`
	Company Text   `json:"company,omitempty"`
	Content Text   `json:"content,omitempty"`
	Rating  Rating `json:"rating,omitempty"`
	Image   *Image `json:"image,omitempty"`
}

// Testimonials is the customer quotes section.
type Testimonials struct {
	Title            Text              `json:"title,omitempty"`
	Subtitle         Text              `json:"subtitle,omitempty"`
	TestimonialsList List[Testimonial] `json:"testimonialsList"`
}

// Banner type values.
const (
	BannerSimple   = "simple"
	BannerCarousel = "carousel"
)

// Banner is the optional promotional strip above the hero.
type Banner struct {
	Title       Text        `json:"title,omitempty"`
	Description Text        `json:"description,omitempty"`
	CTAText     Text        `json:"ctaText,omitempty"`
	CTALink     Text        `json:"ctaLink,omitempty"`
	BannerType  Text        `json:"bannerType,omitempty"`
	IsVisible   Flag        `json:"isVisible,omitempty"`
	Images      List[Image] `json:"images"`
}

// ResolvedImages returns the banner images that carry a URL, in order.
func (b *Banner) ResolvedImages() []Image {
	if b == nil {
		return nil
	}
	out := make([]Image, 0, len(b.Images.Items))
	for i := range b.Images.Items {
		if b.Images.Items[i].Present() {
			out = append(out, b.Images.Items[i])
		}
	}
	return out
}

// Contact is the get-in-touch section.
type Contact struct {
	Title       Text `json:"title,omitempty"`
	Description Text `json:"description,omitempty"`
	Email       Text `json:"email,omitempty"`
	Phone       Text `json:"phone,omitempty"`
	Address     Text `json:"address,omitempty"`
}

// SiteSettings feeds the header and footer.
type SiteSettings struct {
	SiteName   Text   `json:"siteName,omitempty"`
	Logo       *Image `json:"logo,omitempty"`
	FooterText Text   `json:"footerText,omitempty"`
}

// Document is the decoded page query result. A nil section was absent, null
// or malformed.
type Document struct {
	Hero         *Hero         `json:"hero"`
	About        *About        `json:"about"`
	Features     *Features     `json:"features"`
	Testimonials *Testimonials `json:"testimonials"`
	Banner       *Banner       `json:"banner"`
	Contact      *Contact      `json:"contact"`
	SiteSettings *SiteSettings `json:"siteSettings"`

	// Malformed lists sections that were present but not objects.
	Malformed []string `json:"-"`
}

// Empty reports whether no section was found.
func (d *Document) Empty() bool {
	return d == nil || (d.Hero == nil && d.About == nil && d.Features == nil &&
		d.Testimonials == nil && d.Banner == nil && d.Contact == nil && d.SiteSettings == nil)
}

// Decode parses a page query result. Null or empty input yields an empty
// document; every section decodes independently.
func Decode(raw json.RawMessage) (*Document, error) {
	doc := &Document{}
	if len(raw) == 0 || isNull(raw) {
		return doc, nil
	}
	if !isObject(raw) {
		return nil, ErrMalformedDocument
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	doc.Hero = decodeSection[Hero](doc, root, SectionHero)
	doc.About = decodeSection[About](doc, root, SectionAbout)
	doc.Features = decodeSection[Features](doc, root, SectionFeatures)
	doc.Testimonials = decodeSection[Testimonials](doc, root, SectionTestimonials)
	doc.Banner = decodeSection[Banner](doc, root, SectionBanner)
	doc.Contact = decodeSection[Contact](doc, root, SectionContact)
	doc.SiteSettings = decodeSection[SiteSettings](doc, root, SectionSiteSettings)

	return doc, nil
}

func decodeSection[T any](doc *Document, root map[string]json.RawMessage, name string) *T {
	raw, ok := root[name]
	if !ok || isNull(raw) {
		return nil
	}
	if !isObject(raw) {
		doc.Malformed = append(doc.Malformed, name)
		return nil
	}
	var section T
	if err := json.Unmarshal(raw, &section); err != nil {
		doc.Malformed = append(doc.Malformed, name)
		return nil
	}
	return &section
}
