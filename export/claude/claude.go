// Package claude converts gemschema declarations to anthropic-sdk-go tool
// params for the Messages API.
package claude

import (
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/halcyonlabs/gemschema/export/internal/jsonschema"
	"github.com/halcyonlabs/gemschema/tool"
)

// ToolParam converts a function declaration to an Anthropic tool definition.
// The parameters schema is re-shaped into lower-case JSON Schema and decoded
// into the SDK's input-schema param type. The Response schema has no
// Anthropic equivalent and is not exported.
func ToolParam(decl tool.FunctionDeclaration) (anthropic.ToolUnionParam, error) {
	if decl.Name == "" {
		return anthropic.ToolUnionParam{}, fmt.Errorf("declaration missing name")
	}

	var inputSchema anthropic.ToolInputSchemaParam
	if decl.Parameters != nil {
		data, err := json.Marshal(jsonschema.FromSchema(decl.Parameters))
		if err != nil {
			return anthropic.ToolUnionParam{}, fmt.Errorf("encoding input schema: %w", err)
		}
		if err := json.Unmarshal(data, &inputSchema); err != nil {
			return anthropic.ToolUnionParam{}, fmt.Errorf("shaping input schema: %w", err)
		}
	}

	toolParam := anthropic.ToolParam{
		Name:        decl.Name,
		InputSchema: inputSchema,
		Type:        anthropic.ToolTypeCustom,
	}
	if decl.Description != "" {
		toolParam.Description = anthropic.String(decl.Description)
	}

	return anthropic.ToolUnionParam{
		OfTool: &toolParam,
	}, nil
}

// ToolParams converts declarations in order, failing on the first bad one.
func ToolParams(decls ...tool.FunctionDeclaration) ([]anthropic.ToolUnionParam, error) {
	tools := make([]anthropic.ToolUnionParam, 0, len(decls))
	for _, decl := range decls {
		tp, err := ToolParam(decl)
		if err != nil {
			return nil, fmt.Errorf("converting tool %q: %w", decl.Name, err)
		}
		tools = append(tools, tp)
	}
	return tools, nil
}
