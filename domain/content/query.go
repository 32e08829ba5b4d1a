package content

// Section names as they appear at the root of the page query result.
const (
	SectionHero         = "hero"
	SectionAbout        = "about"
	SectionFeatures     = "features"
	SectionTestimonials = "testimonials"
	SectionBanner       = "banner"
	SectionContact      = "contact"
	SectionSiteSettings = "siteSettings"
)

// SectionNames lists the root keys of PageQuery in query order.
var SectionNames = []string{
	SectionHero,
	SectionAbout,
	SectionFeatures,
	SectionTestimonials,
	SectionBanner,
	SectionContact,
	SectionSiteSettings,
}

// PageQuery fetches every landing page section in one round trip. Each
// section is the first document of its type; image assets are dereferenced.
const PageQuery = `{
  "hero": *[_type == "hero"][0] {
    title,
    subtitle,
    description,
    ctaText,
    ctaLink,
    heroImage {
      asset -> {
        _id,
        url
      },
      alt
    }
  },
  "about": *[_type == "about"][0] {
    title,
    description,
    image {
      asset -> {
        _id,
        url
      },
      alt
    }
  },
  "features": *[_type == "features"][0] {
    title,
    subtitle,
    featuresList[] {
      title,
      description,
      icon
    }
  },
  "testimonials": *[_type == "testimonials"][0] {
    title,
    subtitle,
    testimonialsList[] {
      name,
      role,
      company,
      content,
      rating,
      image {
        asset -> {
          _id,
          url
        },
        alt
      }
    }
  },
  "banner": *[_type == "banner"][0] {
    title,
    description,
    ctaText,
    ctaLink,
    bannerType,
    isVisible,
    images[] {
      asset -> {
        _id,
        url
      },
      alt
    }
  },
  "contact": *[_type == "contact"][0] {
    title,
    description,
    email,
    phone,
    address
  },
  "siteSettings": *[_type == "siteSettings"][0] {
    siteName,
    logo {
      asset -> {
        _id,
        url
      },
      alt
    },
    footerText
  }
}`
