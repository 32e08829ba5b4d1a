package schema

// FieldType is the storage type of a document field as the studio understands it.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeText    FieldType = "text"
	TypeURL     FieldType = "url"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeImage   FieldType = "image"
	TypeArray   FieldType = "array"
	TypeObject  FieldType = "object"

	// TypeDocument marks a top-level document type.
	TypeDocument FieldType = "document"
)

// Option is one entry of a fixed value list.
type Option struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// Field describes one field of a document type. Of holds the member types of
// an array; Fields holds the sub-fields of an object or image.
type Field struct {
	Name         string    `json:"name,omitempty"`
	Title        string    `json:"title,omitempty"`
	Type         FieldType `json:"type"`
	Description  string    `json:"description,omitempty"`
	Rows         int       `json:"rows,omitempty"`
	Hotspot      bool      `json:"hotspot,omitempty"`
	InitialValue any       `json:"initialValue,omitempty"`
	Options      []Option  `json:"options,omitempty"`
	Of           []Field   `json:"of,omitempty"`
	Fields       []Field   `json:"fields,omitempty"`
}

// DocumentType is a top-level editable document.
type DocumentType struct {
	Name    string    `json:"name"`
	Title   string    `json:"title"`
	Type    FieldType `json:"type"`
	Fields  []Field   `json:"fields"`
	Preview *Preview  `json:"preview,omitempty"`
}

// Field returns the top-level field with the given name.
func (d DocumentType) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func altField() Field {
	return Field{Name: "alt", Title: "Alt Text", Type: TypeString}
}

func imageField(name, title string) Field {
	return Field{
		Name:    name,
		Title:   title,
		Type:    TypeImage,
		Hotspot: true,
		Fields:  []Field{altField()},
	}
}
