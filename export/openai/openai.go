// Package openai converts gemschema declarations to openai-go tool params
// for the Chat Completions API.
package openai

import (
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"

	"github.com/halcyonlabs/gemschema/export/internal/jsonschema"
	"github.com/halcyonlabs/gemschema/tool"
)

// ToolParam converts a function declaration to an OpenAI tool definition.
// The parameters schema is re-shaped into lower-case JSON Schema, which is
// what the Chat Completions API expects. The Response schema has no OpenAI
// equivalent and is not exported.
func ToolParam(decl tool.FunctionDeclaration) (openai.ChatCompletionToolParam, error) {
	if decl.Name == "" {
		return openai.ChatCompletionToolParam{}, fmt.Errorf("declaration missing name")
	}

	var parameters shared.FunctionParameters
	if decl.Parameters != nil {
		parameters = shared.FunctionParameters(jsonschema.FromSchema(decl.Parameters))
	}

	return openai.ChatCompletionToolParam{
		Function: shared.FunctionDefinitionParam{
			Name:        decl.Name,
			Description: param.NewOpt(decl.Description),
			Parameters:  parameters,
		},
	}, nil
}

// ToolParams converts declarations in order, failing on the first bad one.
func ToolParams(decls ...tool.FunctionDeclaration) ([]openai.ChatCompletionToolParam, error) {
	tools := make([]openai.ChatCompletionToolParam, 0, len(decls))
	for _, decl := range decls {
		tp, err := ToolParam(decl)
		if err != nil {
			return nil, fmt.Errorf("converting tool %q: %w", decl.Name, err)
		}
		tools = append(tools, tp)
	}
	return tools, nil
}
