package schema

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"net/url"
	"slices"
	"strings"
)

// RuleKind names a validation check.
type RuleKind string

const (
	RuleRequired RuleKind = "required"
	RuleEmail    RuleKind = "email"
	RuleRange    RuleKind = "range"
	RuleURL      RuleKind = "url"
	RuleOneOf    RuleKind = "oneOf"

	// RuleDocument is reported when a document is not an object at all.
	RuleDocument RuleKind = "document"
)

// Rule is one row of the validation table. Field addresses a top-level field
// ("title") or a field of every array member ("featuresList[].title").
type Rule struct {
	Type    string   `json:"type"`
	Field   string   `json:"field"`
	Kind    RuleKind `json:"kind"`
	Min     float64  `json:"min,omitempty"`
	Max     float64  `json:"max,omitempty"`
	Allowed []string `json:"allowed,omitempty"`
}

// Constraint describes the rule arguments for display.
func (r Rule) Constraint() string {
	switch r.Kind {
	case RuleRange:
		return fmt.Sprintf("%g..%g", r.Min, r.Max)
	case RuleOneOf:
		return strings.Join(r.Allowed, ", ")
	case RuleURL:
		return strings.Join(urlSchemes, ", ")
	}
	return ""
}

var urlSchemes = []string{"http", "https", "mailto", "tel"}

// Rules is the validation table for every registered document type. It is
// kept apart from the type definitions.
var Rules = []Rule{
	{Type: "hero", Field: "title", Kind: RuleRequired},
	{Type: "hero", Field: "ctaLink", Kind: RuleURL},

	{Type: "about", Field: "title", Kind: RuleRequired},

	{Type: "features", Field: "title", Kind: RuleRequired},
	{Type: "features", Field: "featuresList[].title", Kind: RuleRequired},

	{Type: "testimonials", Field: "title", Kind: RuleRequired},
	{Type: "testimonials", Field: "testimonialsList[].name", Kind: RuleRequired},
	{Type: "testimonials", Field: "testimonialsList[].content", Kind: RuleRequired},
	{Type: "testimonials", Field: "testimonialsList[].rating", Kind: RuleRange, Min: 1, Max: 5},

	{Type: "banner", Field: "ctaLink", Kind: RuleURL},
	{Type: "banner", Field: "bannerType", Kind: RuleOneOf, Allowed: optionValues(BannerTypeOptions)},

	{Type: "contact", Field: "title", Kind: RuleRequired},
	{Type: "contact", Field: "email", Kind: RuleEmail},

	{Type: "siteSettings", Field: "siteName", Kind: RuleRequired},
}

// Violation is a failed rule on a concrete field path.
type Violation struct {
	Type    string   `json:"type"`
	Field   string   `json:"field"`
	Rule    RuleKind `json:"rule"`
	Message string   `json:"message"`
}

func (v Violation) String() string {
	if v.Field == "" {
		return fmt.Sprintf("%s: %s", v.Type, v.Message)
	}
	return fmt.Sprintf("%s.%s: %s", v.Type, v.Field, v.Message)
}

// RulesFor returns the rules of one document type in table order.
func RulesFor(typeName string) []Rule {
	var out []Rule
	for _, r := range Rules {
		if r.Type == typeName {
			out = append(out, r)
		}
	}
	return out
}

// Validate checks one document against the rules of its type. A nil document
// has nothing to check.
func Validate(typeName string, doc map[string]any) []Violation {
	if doc == nil {
		return nil
	}

	var out []Violation
	for _, r := range RulesFor(typeName) {
		for _, tgt := range targets(doc, r.Field) {
			if msg := check(r, tgt.value); msg != "" {
				out = append(out, Violation{Type: typeName, Field: tgt.path, Rule: r.Kind, Message: msg})
			}
		}
	}
	return out
}

// ValidateAll checks every registered document present in raw, keyed by type
// name as returned by the page query. Missing documents are skipped.
func ValidateAll(raw map[string]any) []Violation {
	var out []Violation
	for _, name := range NewRegistry().Names() {
		v, ok := raw[name]
		if !ok || v == nil {
			continue
		}
		doc, ok := v.(map[string]any)
		if !ok {
			out = append(out, Violation{Type: name, Rule: RuleDocument, Message: "must be an object"})
			continue
		}
		out = append(out, Validate(name, doc)...)
	}
	return out
}

type target struct {
	path  string
	value any
}

func targets(doc map[string]any, field string) []target {
	list, member, ok := strings.Cut(field, "[].")
	if !ok {
		return []target{{path: field, value: doc[field]}}
	}

	items, _ := doc[list].([]any)
	out := make([]target, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, target{path: fmt.Sprintf("%s[%d].%s", list, i, member), value: obj[member]})
	}
	return out
}

// check returns the violation message for value, or "" when it passes.
// Optional checks skip absent values.
func check(r Rule, value any) string {
	if r.Kind == RuleRequired {
		if empty(value) {
			return "is required"
		}
		return ""
	}
	if empty(value) {
		return ""
	}

	switch r.Kind {
	case RuleEmail:
		s, ok := value.(string)
		if !ok {
			return "must be a string"
		}
		addr, err := mail.ParseAddress(s)
		if err != nil || addr.Address != s {
			return "must be a valid email address"
		}

	case RuleRange:
		n, err := toNumber(value)
		if err != nil {
			return "must be a number"
		}
		if n < r.Min {
			return fmt.Sprintf("must be greater than or equal to %g", r.Min)
		}
		if n > r.Max {
			return fmt.Sprintf("must be less than or equal to %g", r.Max)
		}

	case RuleURL:
		s, ok := value.(string)
		if !ok {
			return "must be a string"
		}
		if !validURL(s) {
			return fmt.Sprintf("must be a URL with scheme %s", strings.Join(urlSchemes, ", "))
		}

	case RuleOneOf:
		s, _ := value.(string)
		if !slices.Contains(r.Allowed, s) {
			return fmt.Sprintf("must be one of %s", strings.Join(r.Allowed, ", "))
		}
	}
	return ""
}

func empty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	}
	return false
}

func toNumber(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	default:
		return 0, fmt.Errorf("cannot convert %T to number", value)
	}
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || !slices.Contains(urlSchemes, u.Scheme) {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	default:
		return u.Opaque != ""
	}
}

func optionValues(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Value
	}
	return out
}
