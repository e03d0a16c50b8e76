package tool

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonlabs/gemschema"
)

func TestFunctionDeclarationJSON(t *testing.T) {
	t.Parallel()

	t.Run("full declaration", func(t *testing.T) {
		decl := FunctionDeclaration{
			Name:        "get_weather",
			Description: "Look up current weather for a city.",
			Parameters: &gemschema.Schema{
				Type: gemschema.TypeObject,
				Properties: map[string]*gemschema.Schema{
					"city": {Type: gemschema.TypeString},
				},
				Required: []string{"city"},
			},
			Response: &gemschema.Schema{
				Type: gemschema.TypeObject,
				Properties: map[string]*gemschema.Schema{
					"temp_c": {Type: gemschema.TypeNumber, Format: "double"},
				},
			},
		}

		data, err := json.Marshal(decl)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"name": "get_weather",
			"description": "Look up current weather for a city.",
			"parameters": {
				"type": "OBJECT",
				"properties": {"city": {"type": "STRING"}},
				"required": ["city"]
			},
			"response": {
				"type": "OBJECT",
				"properties": {"temp_c": {"type": "NUMBER", "format": "double"}}
			}
		}`, string(data))
	})

	t.Run("name-only declaration omits the rest", func(t *testing.T) {
		data, err := json.Marshal(FunctionDeclaration{Name: "ping"})
		require.NoError(t, err)
		assert.Equal(t, `{"name":"ping"}`, string(data))
	})
}
