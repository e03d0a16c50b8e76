// Package infer derives gemschema schemas from Go types via reflection.
//
// Structs become OBJECT schemas with one property per exported field, slices
// become ARRAY schemas, and primitives map to the corresponding scalar types
// with width formats. Field names use the json struct tag when present and
// snake_case of the Go field name otherwise. Pointer fields are nullable and
// left out of the required list, as are fields tagged omitempty.
package infer

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/iancoleman/strcase"

	"github.com/halcyonlabs/gemschema"
)

var timeType = reflect.TypeOf(time.Time{})

// Value infers a schema from the dynamic type of v.
func Value(v any) (*gemschema.Schema, error) {
	if v == nil {
		return nil, fmt.Errorf("infer: cannot infer schema from nil")
	}
	return Type(reflect.TypeOf(v))
}

// Type infers a schema from t.
func Type(t reflect.Type) (*gemschema.Schema, error) {
	return typeSchema(t, make(map[reflect.Type]bool))
}

// MustType is like Type but panics on error. Intended for package-level
// declarations of request/response schemas.
func MustType(t reflect.Type) *gemschema.Schema {
	s, err := Type(t)
	if err != nil {
		panic(err)
	}
	return s
}

func typeSchema(t reflect.Type, seen map[reflect.Type]bool) (*gemschema.Schema, error) {
	switch t.Kind() {
	case reflect.String:
		return &gemschema.Schema{Type: gemschema.TypeString}, nil
	case reflect.Bool:
		return &gemschema.Schema{Type: gemschema.TypeBoolean}, nil
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return &gemschema.Schema{Type: gemschema.TypeInteger, Format: "int32"}, nil
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		return &gemschema.Schema{Type: gemschema.TypeInteger, Format: "int64"}, nil
	case reflect.Float32:
		return &gemschema.Schema{Type: gemschema.TypeNumber, Format: "float"}, nil
	case reflect.Float64:
		return &gemschema.Schema{Type: gemschema.TypeNumber, Format: "double"}, nil
	case reflect.Pointer:
		elem, err := typeSchema(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		elem.Nullable = gemschema.Bool(true)
		return elem, nil
	case reflect.Slice, reflect.Array:
		// []byte carries opaque data, not a JSON array.
		if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8 {
			return &gemschema.Schema{Type: gemschema.TypeString}, nil
		}
		items, err := typeSchema(t.Elem(), seen)
		if err != nil {
			return nil, fmt.Errorf("element of %s: %w", t, err)
		}
		return &gemschema.Schema{Type: gemschema.TypeArray, Items: items}, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("infer: map key type %s is not a string", t.Key())
		}
		// Open-ended object: property names aren't knowable from the type.
		return &gemschema.Schema{Type: gemschema.TypeObject}, nil
	case reflect.Struct:
		if t == timeType {
			return &gemschema.Schema{Type: gemschema.TypeString, Format: "date-time"}, nil
		}
		return structSchema(t, seen)
	default:
		return nil, fmt.Errorf("infer: unsupported type %s (kind %s)", t, t.Kind())
	}
}

func structSchema(t reflect.Type, seen map[reflect.Type]bool) (*gemschema.Schema, error) {
	if seen[t] {
		return nil, fmt.Errorf("infer: cycle through %s; schemas must be finite trees", t)
	}
	seen[t] = true
	defer delete(seen, t)

	s := &gemschema.Schema{
		Type:       gemschema.TypeObject,
		Properties: make(map[string]*gemschema.Schema),
	}

	var required []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Anonymous {
			continue
		}

		name, omitempty := jsonName(field)
		if name == "-" {
			continue
		}
		if name == "" {
			name = strcase.ToSnake(field.Name)
		}

		fieldSchema, err := typeSchema(field.Type, seen)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t, field.Name, err)
		}
		if desc := field.Tag.Get("description"); desc != "" {
			fieldSchema.Description = desc
		}
		s.Properties[name] = fieldSchema

		if field.Type.Kind() != reflect.Pointer && !omitempty {
			required = append(required, name)
		}
	}

	if len(required) > 0 {
		s.Required = required
	}
	return s, nil
}

func jsonName(field reflect.StructField) (name string, omitempty bool) {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return "", false
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	for _, part := range parts[1:] {
		if part == "omitempty" || part == "omitzero" {
			omitempty = true
		}
	}
	return name, omitempty
}
