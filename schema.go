// Package gemschema declares the shape of structured values for Gemini-style
// function calling and structured output. A Schema tree is assembled once,
// bottom-up or top-down, and then serialized into the fixed key/value wire
// form the API consumes; the package performs no validation of values against
// schemas and no semantic checks between fields.
package gemschema

// Schema describes the shape of a single value, possibly composite. Child
// nodes for array elements (Items) and object members (Properties) are owned
// by their parent, forming a plain tree.
//
// Every field other than Type is optional. Absent fields are omitted from the
// serialized output entirely rather than emitted as null, which is why the
// optional scalars are pointers: nil means "not specified", distinct from a
// supplied zero. Use the Bool, Float64 and Int64 helpers for literals.
//
// The model is deliberately permissive: nothing stops a caller from setting
// MinLength on a BOOLEAN node or listing a Required name with no matching
// property. Such combinations serialize exactly as supplied and are judged by
// the remote service, not here.
type Schema struct {
	// Type is the kind of value described. Required.
	Type DataType `json:"type"`
	// Format refines the representation of primitive types, e.g. "int32" or
	// "int64" for INTEGER, "float" or "double" for NUMBER, "enum" for STRING.
	Format string `json:"format,omitempty"`
	// Description is human readable and may contain Markdown.
	Description string `json:"description,omitempty"`
	// Nullable reports whether null is an acceptable value.
	Nullable *bool `json:"nullable,omitempty"`
	// Enum lists the permitted literal values for a STRING with format "enum".
	Enum []string `json:"enum,omitempty"`
	// Items describes every element of an ARRAY.
	Items *Schema `json:"items,omitempty"`
	// Properties describes each member of an OBJECT. Serialization emits
	// property keys in lexicographic order, so output is deterministic.
	Properties map[string]*Schema `json:"properties,omitempty"`
	// Required lists the Properties keys that must be present on a
	// conforming value, in the order supplied.
	Required []string `json:"required,omitempty"`
	// Minimum and Maximum are inclusive bounds for NUMBER and INTEGER.
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`
	// MinLength and MaxLength are inclusive bounds on STRING length.
	MinLength *int64 `json:"minLength,omitempty"`
	MaxLength *int64 `json:"maxLength,omitempty"`
	// Pattern is a regular expression a conforming STRING must match.
	Pattern string `json:"pattern,omitempty"`
	// MinItems and MaxItems are inclusive bounds on ARRAY element count.
	MinItems *int64 `json:"minItems,omitempty"`
	MaxItems *int64 `json:"maxItems,omitempty"`
}

// Bool returns a pointer to v, for optional boolean fields.
func Bool(v bool) *bool { return &v }

// Float64 returns a pointer to v, for the Minimum and Maximum fields.
func Float64(v float64) *float64 { return &v }

// Int64 returns a pointer to v, for the length and item-count bound fields.
func Int64(v int64) *int64 { return &v }
