package schema

// Registry holds the document types editable in the studio, in declaration order.
type Registry struct {
	types  []DocumentType
	byName map[string]int
}

// NewRegistry returns the registry of the seven page document types. The
// order matches the page query.
func NewRegistry() *Registry {
	return newRegistry(Hero, About, Features, Testimonials, Banner, Contact, SiteSettings)
}

func newRegistry(types ...DocumentType) *Registry {
	r := &Registry{
		types:  types,
		byName: make(map[string]int, len(types)),
	}
	for i, t := range types {
		r.byName[t.Name] = i
	}
	return r
}

// Types returns the registered document types in declaration order.
func (r *Registry) Types() []DocumentType {
	out := make([]DocumentType, len(r.types))
	copy(out, r.types)
	return out
}

// Names returns the registered type names in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.types))
	for i, t := range r.types {
		out[i] = t.Name
	}
	return out
}

// Lookup finds a document type by name.
func (r *Registry) Lookup(name string) (DocumentType, bool) {
	i, ok := r.byName[name]
	if !ok {
		return DocumentType{}, false
	}
	return r.types[i], true
}
