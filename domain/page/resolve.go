package page

import (
	"fmt"
	"strings"

	"github.com/IbtisamHemmo/Marketing-POC/domain/content"
	"github.com/IbtisamHemmo/Marketing-POC/domain/page/view"
)

// Resolve normalizes a decoded page document into a View. It is pure: the same
// document and site info always yield the same View. A nil document resolves
// like an empty one.
func Resolve(doc *content.Document, site view.SiteInfo) view.View {
	if doc == nil {
		doc = &content.Document{}
	}

	logo := resolveLogo(doc.SiteSettings)

	return view.View{
		Meta: view.Meta{
			Title:       orDefault(site.Title, view.DefaultSiteTitle),
			Description: orDefault(site.Description, view.DefaultSiteDescription),
		},
		Header: view.Header{
			Logo: logo,
			Nav:  view.NavLinks(),
		},
		Banner:       resolveBanner(doc.Banner),
		Hero:         resolveHero(doc.Hero, doc.Banner),
		About:        resolveAbout(doc.About),
		Features:     resolveFeatures(doc.Features),
		Testimonials: resolveTestimonials(doc.Testimonials),
		Contact:      resolveContact(doc.Contact),
		Footer:       resolveFooter(doc.SiteSettings, logo, site),
	}
}

func resolveLogo(s *content.SiteSettings) *view.Image {
	if s == nil {
		return nil
	}
	return resolveImage(s.Logo, view.DefaultLogoAlt)
}

func resolveBanner(b *content.Banner) *view.Banner {
	if b == nil || !bool(b.IsVisible) {
		return nil
	}
	images := b.ResolvedImages()
	if !b.Title.Present() && len(images) == 0 {
		return nil
	}

	out := &view.Banner{
		Kind:        view.BannerSimple,
		Title:       string(b.Title),
		Description: string(b.Description),
	}
	if b.CTAText.Present() && b.CTALink.Present() {
		out.CTA = &view.Link{Text: string(b.CTAText), Href: string(b.CTALink)}
	}

	if string(b.BannerType) == content.BannerCarousel && len(images) > 0 {
		out.Kind = view.BannerCarousel
		out.Slides = make([]view.Image, 0, len(images))
		for i := range images {
			out.Slides = append(out.Slides, view.Image{
				URL: images[i].URL(),
				Alt: images[i].AltOr(fmt.Sprintf("Banner image %d", i+1)),
			})
		}
	}
	return out
}

func resolveHero(h *content.Hero, b *content.Banner) view.Hero {
	if h == nil {
		h = &content.Hero{}
	}
	return view.Hero{
		Title:       h.Title.Or(view.DefaultHeroTitle),
		Subtitle:    string(h.Subtitle),
		Description: h.Description.Or(view.DefaultHeroDescription),
		CTA: view.Link{
			Text: h.CTAText.Or(view.DefaultHeroCTAText),
			Href: h.CTALink.Or(view.DefaultHeroCTALink),
		},
		Secondary: view.Link{Text: "Learn More", Href: "#about"},
		Image:     resolveImage(h.HeroImage, view.DefaultHeroImageAlt),
		Compact:   b != nil && bool(b.IsVisible),
	}
}

func resolveAbout(a *content.About) *view.About {
	if a == nil {
		return nil
	}
	return &view.About{
		Title:       a.Title.Or(view.DefaultAboutTitle),
		Description: a.Description.Or(view.DefaultAboutDescription),
		Image:       resolveImage(a.Image, view.DefaultAboutImageAlt),
	}
}

// resolveFeatures substitutes the default list only when featuresList is
// absent. An explicitly empty list renders no cards.
func resolveFeatures(f *content.Features) view.Features {
	if f == nil {
		f = &content.Features{}
	}
	out := view.Features{
		Title:    f.Title.Or(view.DefaultFeaturesTitle),
		Subtitle: f.Subtitle.Or(view.DefaultFeaturesSubtitle),
	}

	if !f.FeaturesList.Present {
		out.Items = view.DefaultFeatures()
		out.Defaulted = true
		return out
	}

	out.Items = make([]view.Feature, 0, f.FeaturesList.Len())
	for _, item := range f.FeaturesList.Items {
		out.Items = append(out.Items, view.Feature{
			Title:       string(item.Title),
			Description: string(item.Description),
			Icon:        item.Icon.Or(view.DefaultFeatureIcon),
		})
	}
	return out
}

func resolveTestimonials(t *content.Testimonials) *view.Testimonials {
	if t == nil || t.TestimonialsList.Len() == 0 {
		return nil
	}

	out := &view.Testimonials{
		Title:    t.Title.Or(view.DefaultTestimonialsTitle),
		Subtitle: t.Subtitle.Or(view.DefaultTestimonialsSubtitle),
		Items:    make([]view.Testimonial, 0, t.TestimonialsList.Len()),
	}
	for _, item := range t.TestimonialsList.Items {
		out.Items = append(out.Items, view.Testimonial{
			Name:     string(item.Name),
			RoleLine: roleLine(string(item.Role), string(item.Company)),
			Content:  string(item.Content),
			Rating:   int(item.Rating),
			Image:    resolveImage(item.Image, string(item.Name)),
		})
	}
	return out
}

// roleLine renders "{role} at {company}", dropping whichever part is blank.
func roleLine(role, company string) string {
	parts := make([]string, 0, 2)
	if role != "" {
		parts = append(parts, role)
	}
	if company != "" {
		parts = append(parts, "at "+company)
	}
	return strings.Join(parts, " ")
}

func resolveContact(c *content.Contact) *view.Contact {
	if c == nil {
		return nil
	}
	return &view.Contact{
		Title:       c.Title.Or(view.DefaultContactTitle),
		Description: c.Description.Or(view.DefaultContactDescription),
		Email:       string(c.Email),
		Phone:       string(c.Phone),
		Address:     string(c.Address),
	}
}

func resolveFooter(s *content.SiteSettings, logo *view.Image, site view.SiteInfo) view.Footer {
	if s == nil {
		s = &content.SiteSettings{}
	}
	name := s.SiteName.Or(view.DefaultSiteName)
	year := orDefault(site.CopyrightYear, view.DefaultCopyrightYear)

	return view.Footer{
		Logo:       logo,
		SiteName:   name,
		Text:       s.FooterText.Or(view.DefaultFooterText),
		QuickLinks: view.QuickLinks(),
		PlantCare:  view.PlantCareLinks(),
		Copyright:  fmt.Sprintf("© %s %s. All rights reserved.", year, name),
	}
}

func resolveImage(img *content.Image, defaultAlt string) *view.Image {
	if !img.Present() {
		return nil
	}
	return &view.Image{URL: img.URL(), Alt: img.AltOr(defaultAlt)}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
