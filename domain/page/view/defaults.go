package view

// Literal fallbacks used when the CMS leaves a field empty.
const (
	DefaultSiteTitle       = "Landing Page POC"
	DefaultSiteDescription = "Simple landing page that will be powered by Sanity CMS"
	DefaultCopyrightYear   = "2025"

	DefaultSiteName   = "FloraFlow"
	DefaultFooterText = "Transform your space with beautiful, healthy plants. Expert care guides and premium selections for every plant lover."
	DefaultLogoAlt    = "FloraFlow Logo"

	DefaultHeroTitle       = "Transform Your Space with FloraFlow"
	DefaultHeroDescription = "Discover premium plants, expert care guides, and create your perfect green sanctuary. From indoor gardens to outdoor landscapes."
	DefaultHeroCTAText     = "Explore Plants"
	DefaultHeroCTALink     = "#features"
	DefaultHeroImageAlt    = "FloraFlow Hero"

	DefaultAboutTitle       = "About FloraFlow"
	DefaultAboutDescription = "At FloraFlow, we believe that every space deserves the beauty and tranquility that plants bring. Our mission is to make plant care accessible, enjoyable, and successful for everyone, whether you're a seasoned gardener or just starting your green journey."
	DefaultAboutImageAlt    = "About FloraFlow"

	DefaultFeaturesTitle    = "Why Choose FloraFlow?"
	DefaultFeaturesSubtitle = "Everything you need to create and maintain your perfect plant paradise"
	DefaultFeatureIcon      = "🌱"

	DefaultTestimonialsTitle    = "What Our Customers Say"
	DefaultTestimonialsSubtitle = "Join thousands of happy plant parents who trust FloraFlow"

	DefaultContactTitle       = "Get in Touch"
	DefaultContactDescription = "Have questions about plants or need personalized advice? We're here to help!"
)

// DefaultFeatures is shown when the CMS has no featuresList at all.
func DefaultFeatures() []Feature {
	return []Feature{
		{
			Title:       "Premium Plant Selection",
			Description: "Curated collection of healthy, beautiful plants sourced from trusted growers.",
			Icon:        "🌿",
		},
		{
			Title:       "Expert Care Guides",
			Description: "Detailed care instructions and tips from horticultural experts.",
			Icon:        "📖",
		},
		{
			Title:       "Plant Health Monitoring",
			Description: "Track your plants' health with our smart monitoring tools.",
			Icon:        "📊",
		},
	}
}

// NavLinks returns the header navigation.
func NavLinks() []Link {
	return []Link{
		{Text: "About", Href: "#about"},
		{Text: "Features", Href: "#features"},
		{Text: "Testimonials", Href: "#testimonials"},
		{Text: "Contact", Href: "#contact"},
	}
}

// QuickLinks returns the footer quick links.
func QuickLinks() []Link {
	return []Link{
		{Text: "About Us", Href: "#about"},
		{Text: "Services", Href: "#features"},
		{Text: "Reviews", Href: "#testimonials"},
		{Text: "Contact", Href: "#contact"},
	}
}

// PlantCareLinks returns the footer plant care links.
func PlantCareLinks() []Link {
	return []Link{
		{Text: "Care Guides", Href: "#"},
		{Text: "Plant Health", Href: "#"},
		{Text: "Troubleshooting", Href: "#"},
		{Text: "Seasonal Tips", Href: "#"},
	}
}
