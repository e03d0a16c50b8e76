// Package jsonschema re-shapes gemschema trees into plain JSON Schema
// objects for providers that speak lower-case JSON Schema rather than the
// Gemini wire form.
package jsonschema

import (
	"github.com/halcyonlabs/gemschema"
)

// lowerTypes holds the JSON Schema spellings of the wire type names.
var lowerTypes = map[gemschema.DataType]string{
	gemschema.TypeString:  "string",
	gemschema.TypeNumber:  "number",
	gemschema.TypeInteger: "integer",
	gemschema.TypeBoolean: "boolean",
	gemschema.TypeArray:   "array",
	gemschema.TypeObject:  "object",
}

// FromSchema converts s to a JSON Schema object. A nullable node becomes the
// ["type", "null"] union form, since JSON Schema has no nullable keyword.
// Format "enum" is dropped (the enum list itself carries that information);
// other formats pass through. A nil input returns nil.
func FromSchema(s *gemschema.Schema) map[string]any {
	if s == nil {
		return nil
	}

	m := make(map[string]any)

	typeName := lowerTypes[s.Type]
	if s.Nullable != nil && *s.Nullable {
		m["type"] = []any{typeName, "null"}
	} else {
		m["type"] = typeName
	}

	if s.Format != "" && s.Format != "enum" {
		m["format"] = s.Format
	}
	if s.Description != "" {
		m["description"] = s.Description
	}
	if len(s.Enum) > 0 {
		m["enum"] = s.Enum
	}
	if s.Items != nil {
		m["items"] = FromSchema(s.Items)
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = FromSchema(prop)
		}
		m["properties"] = props
	}
	if len(s.Required) > 0 {
		m["required"] = s.Required
	}
	if s.Minimum != nil {
		m["minimum"] = *s.Minimum
	}
	if s.Maximum != nil {
		m["maximum"] = *s.Maximum
	}
	if s.MinLength != nil {
		m["minLength"] = *s.MinLength
	}
	if s.MaxLength != nil {
		m["maxLength"] = *s.MaxLength
	}
	if s.Pattern != "" {
		m["pattern"] = s.Pattern
	}
	if s.MinItems != nil {
		m["minItems"] = *s.MinItems
	}
	if s.MaxItems != nil {
		m["maxItems"] = *s.MaxItems
	}

	return m
}
