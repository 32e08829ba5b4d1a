package schema

import (
	"strconv"
	"strings"
)

// Preview selects document values for the studio list view and shapes them
// with Prepare. A nil Prepare uses the selected title, subtitle and media as is.
type Preview struct {
	Select  map[string]string                          `json:"select"`
	Prepare func(selected map[string]any) PreviewValue `json:"-"`
}

// PreviewValue is what the studio shows for one document.
type PreviewValue struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Media    any    `json:"media,omitempty"`
}

var bannerPreview = &Preview{
	Select: map[string]string{
		"title":    "title",
		"subtitle": "bannerType",
		"media":    "images.0",
	},
	Prepare: func(s map[string]any) PreviewValue {
		title := stringValue(s["title"])
		if title == "" {
			title = "Banner Section"
		}
		kind := stringValue(s["subtitle"])
		if kind == "" {
			kind = "simple"
		}
		return PreviewValue{Title: title, Subtitle: kind + " banner", Media: s["media"]}
	},
}

// PreviewOf builds the list-view preview of doc. Types without a preview
// descriptor show their first non-empty string field, falling back to the
// type title, and their first image.
func (d DocumentType) PreviewOf(doc map[string]any) PreviewValue {
	if d.Preview != nil {
		selected := make(map[string]any, len(d.Preview.Select))
		for key, path := range d.Preview.Select {
			selected[key] = lookup(doc, path)
		}
		if d.Preview.Prepare != nil {
			return d.Preview.Prepare(selected)
		}
		return PreviewValue{
			Title:    stringValue(selected["title"]),
			Subtitle: stringValue(selected["subtitle"]),
			Media:    selected["media"],
		}
	}

	out := PreviewValue{Title: d.Title}
	for _, f := range d.Fields {
		if f.Type == TypeString {
			if s := stringValue(doc[f.Name]); s != "" {
				out.Title = s
				break
			}
		}
	}
	for _, f := range d.Fields {
		if f.Type == TypeImage && doc[f.Name] != nil {
			out.Media = doc[f.Name]
			break
		}
	}
	return out
}

// lookup walks a dotted path such as "images.0" through decoded JSON.
func lookup(doc map[string]any, path string) any {
	var cur any = doc
	for _, part := range strings.Split(path, ".") {
		switch v := cur.(type) {
		case map[string]any:
			cur = v[part]
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(v) {
				return nil
			}
			cur = v[i]
		default:
			return nil
		}
	}
	return cur
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
