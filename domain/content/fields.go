package content

import (
	"bytes"
	"encoding/json"
	"math"
)

// Text is a string leaf. Values of any other JSON type decode as absent, and
// the empty string counts as absent.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*t = ""
		return nil
	}
	*t = Text(s)
	return nil
}

// Present reports whether the field carries a non-empty value.
func (t Text) Present() bool { return t != "" }

// Or returns the value, or def when absent.
func (t Text) Or(def string) string {
	if t == "" {
		return def
	}
	return string(t)
}

// Rating is a positive integer leaf. Non-integral, non-numeric, zero and
// negative values decode as absent (0). Values above 5 are kept as is.
type Rating int

// UnmarshalJSON implements json.Unmarshaler.
func (r *Rating) UnmarshalJSON(b []byte) error {
	*r = 0
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return nil
	}
	if f <= 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return nil
	}
	*r = Rating(f)
	return nil
}

// Present reports whether a usable rating was supplied.
func (r Rating) Present() bool { return r > 0 }

// Flag is a boolean leaf where only JSON true is true.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(b []byte) error {
	*f = Flag(bytes.Equal(bytes.TrimSpace(b), []byte("true")))
	return nil
}

// List is an ordered sequence leaf that keeps "absent" and "empty" apart.
// Null, missing and non-array values are absent; elements that fail to
// decode as T are dropped; order is preserved.
type List[T any] struct {
	Items   []T
	Present bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *List[T]) UnmarshalJSON(b []byte) error {
	*l = List[T]{}

	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil || raw == nil {
		return nil
	}

	l.Present = true
	l.Items = make([]T, 0, len(raw))
	for _, elem := range raw {
		if isNull(elem) {
			continue
		}
		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			continue
		}
		l.Items = append(l.Items, item)
	}
	return nil
}

// MarshalJSON encodes absent lists as null and present lists as arrays.
func (l List[T]) MarshalJSON() ([]byte, error) {
	if !l.Present {
		return []byte("null"), nil
	}
	if l.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Items)
}

// Len returns the number of decoded items.
func (l List[T]) Len() int { return len(l.Items) }

// ListOf builds a present list, mostly for tests and fixtures.
func ListOf[T any](items ...T) List[T] {
	if items == nil {
		items = []T{}
	}
	return List[T]{Items: items, Present: true}
}

// Asset is a dereferenced image asset.
type Asset struct {
	ID  Text `json:"_id,omitempty"`
	URL Text `json:"url,omitempty"`
}

// Image is an image reference with optional alt text. An image whose asset
// carries no URL is treated as absent.
type Image struct {
	Asset *Asset `json:"asset,omitempty"`
	Alt   Text   `json:"alt,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler. Non-object values decode as an
// absent image.
func (img *Image) UnmarshalJSON(b []byte) error {
	*img = Image{}
	type plain Image
	var out plain
	if !isObject(b) {
		return nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	*img = Image(out)
	return nil
}

// Present reports whether the image resolves to a URL.
func (img *Image) Present() bool {
	return img != nil && img.Asset != nil && img.Asset.URL.Present()
}

// URL returns the asset URL or "".
func (img *Image) URL() string {
	if !img.Present() {
		return ""
	}
	return string(img.Asset.URL)
}

// AltOr returns the alt text, or def when absent.
func (img *Image) AltOr(def string) string {
	if img == nil {
		return def
	}
	return img.Alt.Or(def)
}

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}

func isObject(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '{'
}
