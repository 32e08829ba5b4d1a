package schema

// BannerTypeOptions are the allowed values of banner.bannerType.
var BannerTypeOptions = []Option{
	{Title: "Simple Banner", Value: "simple"},
	{Title: "Image Carousel", Value: "carousel"},
}

var Hero = DocumentType{
	Name:  "hero",
	Title: "Hero Section",
	Type:  TypeDocument,
	Fields: []Field{
		{Name: "title", Title: "Hero Title", Type: TypeString},
		{Name: "subtitle", Title: "Subtitle", Type: TypeString},
		{Name: "description", Title: "Description", Type: TypeText, Rows: 3},
		{Name: "ctaText", Title: "CTA Button Text", Type: TypeString},
		{Name: "ctaLink", Title: "CTA Button Link", Type: TypeURL},
		imageField("heroImage", "Hero Image"),
	},
}

var About = DocumentType{
	Name:  "about",
	Title: "About Section",
	Type:  TypeDocument,
	Fields: []Field{
		{Name: "title", Title: "About Title", Type: TypeString},
		{Name: "description", Title: "About Description", Type: TypeText, Rows: 5},
		imageField("image", "About Image"),
	},
}

var Features = DocumentType{
	Name:  "features",
	Title: "Features Section",
	Type:  TypeDocument,
	Fields: []Field{
		{Name: "title", Title: "Features Title", Type: TypeString},
		{Name: "subtitle", Title: "Features Subtitle", Type: TypeString},
		{
			Name:  "featuresList",
			Title: "Features List",
			Type:  TypeArray,
			Of: []Field{{
				Type: TypeObject,
				Fields: []Field{
					{Name: "title", Title: "Feature Title", Type: TypeString},
					{Name: "description", Title: "Feature Description", Type: TypeText, Rows: 3},
					{Name: "icon", Title: "Feature Icon (Emoji)", Type: TypeString, Description: "Add an emoji icon like 🌱, 📖, 📊"},
				},
			}},
		},
	},
}

var Testimonials = DocumentType{
	Name:  "testimonials",
	Title: "Testimonials Section",
	Type:  TypeDocument,
	Fields: []Field{
		{Name: "title", Title: "Testimonials Title", Type: TypeString},
		{Name: "subtitle", Title: "Testimonials Subtitle", Type: TypeString},
		{
			Name:  "testimonialsList",
			Title: "Testimonials List",
			Type:  TypeArray,
			Of: []Field{{
				Type: TypeObject,
				Fields: []Field{
					{Name: "name", Title: "Customer Name", Type: TypeString},
					{Name: "role", Title: "Role/Title", Type: TypeString},
					{Name: "company", Title: "Company", Type: TypeString},
					{Name: "content", Title: "Testimonial Content", Type: TypeText, Rows: 3},
					{Name: "rating", Title: "Rating (1-5 stars)", Type: TypeNumber},
					imageField("image", "Customer Photo"),
				},
			}},
		},
	},
}

var Banner = DocumentType{
	Name:  "banner",
	Title: "Banner/Carousel Section",
	Type:  TypeDocument,
	Fields: []Field{
		{Name: "title", Title: "Banner Title", Type: TypeString},
		{Name: "description", Title: "Banner Description", Type: TypeText, Rows: 2},
		{Name: "ctaText", Title: "CTA Button Text", Type: TypeString},
		{Name: "ctaLink", Title: "CTA Button Link", Type: TypeURL},
		{Name: "bannerType", Title: "Banner Type", Type: TypeString, Options: BannerTypeOptions, InitialValue: "simple"},
		{Name: "isVisible", Title: "Show Banner?", Type: TypeBoolean, Description: "Toggle to show/hide the banner section", InitialValue: false},
		{
			Name:        "images",
			Title:       "Banner Images",
			Type:        TypeArray,
			Description: "Add images for carousel or single banner image",
			Of:          []Field{{Type: TypeImage, Hotspot: true, Fields: []Field{altField()}}},
		},
	},
	Preview: bannerPreview,
}

var Contact = DocumentType{
	Name:  "contact",
	Title: "Contact Section",
	Type:  TypeDocument,
	Fields: []Field{
		{Name: "title", Title: "Contact Title", Type: TypeString},
		{Name: "description", Title: "Contact Description", Type: TypeText, Rows: 2},
		{Name: "email", Title: "Email Address", Type: TypeString},
		{Name: "phone", Title: "Phone Number", Type: TypeString},
		{Name: "address", Title: "Address", Type: TypeText, Rows: 2},
	},
}

var SiteSettings = DocumentType{
	Name:  "siteSettings",
	Title: "Site Settings",
	Type:  TypeDocument,
	Fields: []Field{
		{Name: "siteName", Title: "Site Name", Type: TypeString},
		imageField("logo", "Site Logo"),
		{Name: "footerText", Title: "Footer Description", Type: TypeText, Rows: 3},
	},
}
