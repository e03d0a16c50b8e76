package claude

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonlabs/gemschema"
	"github.com/halcyonlabs/gemschema/tool"
)

func searchDecl() tool.FunctionDeclaration {
	return tool.FunctionDeclaration{
		Name:        "search_docs",
		Description: "Search the documentation index.",
		Parameters: &gemschema.Schema{
			Type: gemschema.TypeObject,
			Properties: map[string]*gemschema.Schema{
				"query": {Type: gemschema.TypeString, MinLength: gemschema.Int64(1)},
				"limit": {
					Type:    gemschema.TypeInteger,
					Minimum: gemschema.Float64(1),
					Maximum: gemschema.Float64(50),
				},
			},
			Required: []string{"query"},
		},
	}
}

func TestToolParam(t *testing.T) {
	t.Parallel()

	tp, err := ToolParam(searchDecl())
	require.NoError(t, err)
	require.NotNil(t, tp.OfTool)

	assert.Equal(t, "search_docs", tp.OfTool.Name)
	assert.Equal(t, anthropic.ToolTypeCustom, tp.OfTool.Type)
	assert.Equal(t, "Search the documentation index.", tp.OfTool.Description.Value)

	props, ok := tp.OfTool.InputSchema.Properties.(map[string]any)
	require.True(t, ok)
	query := props["query"].(map[string]any)
	assert.Equal(t, "string", query["type"])
	limit := props["limit"].(map[string]any)
	assert.Equal(t, "integer", limit["type"])
	assert.Equal(t, float64(50), limit["maximum"])
	assert.Equal(t, []string{"query"}, tp.OfTool.InputSchema.Required)
}

func TestToolParamNoDescription(t *testing.T) {
	t.Parallel()

	tp, err := ToolParam(tool.FunctionDeclaration{Name: "ping"})
	require.NoError(t, err)
	require.NotNil(t, tp.OfTool)
	assert.False(t, tp.OfTool.Description.Valid())
}

func TestToolParamMissingName(t *testing.T) {
	t.Parallel()

	_, err := ToolParam(tool.FunctionDeclaration{})
	assert.Error(t, err)
}

func TestToolParams(t *testing.T) {
	t.Parallel()

	tps, err := ToolParams(searchDecl(), tool.FunctionDeclaration{Name: "ping"})
	require.NoError(t, err)
	require.Len(t, tps, 2)
	assert.Equal(t, "search_docs", tps[0].OfTool.Name)

	_, err = ToolParams(tool.FunctionDeclaration{})
	assert.Error(t, err)
}
