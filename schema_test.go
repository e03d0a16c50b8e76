package gemschema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalSchema(t *testing.T, s *Schema) string {
	t.Helper()
	data, err := json.Marshal(s)
	require.NoError(t, err)
	return string(data)
}

func TestSchemaOmitsAbsentFields(t *testing.T) {
	got := marshalSchema(t, &Schema{Type: TypeString})
	assert.Equal(t, `{"type":"STRING"}`, got)

	var keys map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &keys))
	assert.Len(t, keys, 1, "absent fields must be omitted, not emitted as null")
}

func TestSchemaWireKeys(t *testing.T) {
	s := &Schema{
		Type:        TypeString,
		Format:      "enum",
		Description: "cardinal direction",
		Nullable:    Bool(false),
		Enum:        []string{"EAST", "NORTH", "SOUTH", "WEST"},
		Pattern:     "^[A-Z]+$",
		MinLength:   Int64(4),
		MaxLength:   Int64(5),
	}

	var keys map[string]any
	require.NoError(t, json.Unmarshal([]byte(marshalSchema(t, s)), &keys))

	want := []string{"type", "format", "description", "nullable", "enum", "pattern", "minLength", "maxLength"}
	assert.Len(t, keys, len(want))
	for _, k := range want {
		assert.Contains(t, keys, k)
	}
}

func TestSchemaEnum(t *testing.T) {
	s := &Schema{
		Type:   TypeString,
		Format: "enum",
		Enum:   []string{"EAST", "NORTH", "SOUTH", "WEST"},
	}
	assert.Equal(t,
		`{"type":"STRING","format":"enum","enum":["EAST","NORTH","SOUTH","WEST"]}`,
		marshalSchema(t, s))
}

func TestSchemaArrayItems(t *testing.T) {
	s := &Schema{
		Type:  TypeArray,
		Items: &Schema{Type: TypeString},
	}
	assert.Equal(t, `{"type":"ARRAY","items":{"type":"STRING"}}`, marshalSchema(t, s))
}

func TestSchemaObjectComposition(t *testing.T) {
	s := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"name": {Type: TypeString},
			"age":  {Type: TypeInteger},
		},
		Required: []string{"name"},
	}
	// Property keys come out in lexicographic order, so output is stable.
	assert.Equal(t,
		`{"type":"OBJECT","properties":{"age":{"type":"INTEGER"},"name":{"type":"STRING"}},"required":["name"]}`,
		marshalSchema(t, s))
}

func TestSchemaNumericBounds(t *testing.T) {
	t.Run("integer bounds are numeric literals", func(t *testing.T) {
		s := &Schema{
			Type:    TypeInteger,
			Minimum: Float64(0),
			Maximum: Float64(100),
		}
		assert.Equal(t, `{"type":"INTEGER","minimum":0,"maximum":100}`, marshalSchema(t, s))
	})

	t.Run("array bounds", func(t *testing.T) {
		s := &Schema{
			Type:     TypeArray,
			Items:    &Schema{Type: TypeNumber},
			MinItems: Int64(1),
			MaxItems: Int64(8),
		}
		assert.Equal(t,
			`{"type":"ARRAY","items":{"type":"NUMBER"},"minItems":1,"maxItems":8}`,
			marshalSchema(t, s))
	})

	t.Run("zero bound is still emitted when supplied", func(t *testing.T) {
		s := &Schema{Type: TypeString, MinLength: Int64(0)}
		assert.Equal(t, `{"type":"STRING","minLength":0}`, marshalSchema(t, s))
	})
}

func TestSchemaNullableDistinguishesFalseFromAbsent(t *testing.T) {
	absent := marshalSchema(t, &Schema{Type: TypeBoolean})
	assert.NotContains(t, absent, "nullable")

	explicit := marshalSchema(t, &Schema{Type: TypeBoolean, Nullable: Bool(false)})
	assert.Equal(t, `{"type":"BOOLEAN","nullable":false}`, explicit)
}

func TestSchemaDeeplyNested(t *testing.T) {
	s := &Schema{
		Type:        TypeObject,
		Description: "a batch of labeled points",
		Properties: map[string]*Schema{
			"points": {
				Type: TypeArray,
				Items: &Schema{
					Type: TypeObject,
					Properties: map[string]*Schema{
						"x":     {Type: TypeNumber, Format: "double"},
						"y":     {Type: TypeNumber, Format: "double"},
						"label": {Type: TypeString, Nullable: Bool(true)},
					},
					Required: []string{"x", "y"},
				},
				MinItems: Int64(1),
			},
		},
		Required: []string{"points"},
	}

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(marshalSchema(t, s)), &decoded))

	points := decoded["properties"].(map[string]any)["points"].(map[string]any)
	assert.Equal(t, "ARRAY", points["type"])
	item := points["items"].(map[string]any)
	assert.Equal(t, "OBJECT", item["type"])
	assert.Equal(t, []any{"x", "y"}, item["required"])
	label := item["properties"].(map[string]any)["label"].(map[string]any)
	assert.Equal(t, true, label["nullable"])
}

func TestSchemaSerializationIsIdempotent(t *testing.T) {
	s := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"alpha": {Type: TypeString},
			"beta":  {Type: TypeInteger, Minimum: Float64(1.5)},
			"gamma": {Type: TypeArray, Items: &Schema{Type: TypeBoolean}},
		},
		Required: []string{"alpha", "beta"},
	}

	first := marshalSchema(t, s)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, marshalSchema(t, s))
	}
}

func TestSchemaPermissiveCombinations(t *testing.T) {
	// The model does not cross-check fields: inconsistent combinations
	// serialize exactly as supplied.
	s := &Schema{
		Type:      TypeBoolean,
		MinLength: Int64(3),
		Items:     &Schema{Type: TypeString},
		Required:  []string{"no_such_property"},
	}
	assert.Equal(t,
		`{"type":"BOOLEAN","items":{"type":"STRING"},"required":["no_such_property"],"minLength":3}`,
		marshalSchema(t, s))
}

func TestSchemaMarshalFailsWithoutType(t *testing.T) {
	_, err := json.Marshal(&Schema{})
	assert.Error(t, err)
}
