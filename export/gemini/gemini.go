// Package gemini converts gemschema declarations to google.golang.org/genai
// types, for callers that send requests through the official SDK.
package gemini

import (
	"google.golang.org/genai"

	"github.com/halcyonlabs/gemschema"
	"github.com/halcyonlabs/gemschema/tool"
)

// dataTypes maps the model's tags onto the SDK's type constants.
var dataTypes = map[gemschema.DataType]genai.Type{
	gemschema.TypeString:  genai.TypeString,
	gemschema.TypeNumber:  genai.TypeNumber,
	gemschema.TypeInteger: genai.TypeInteger,
	gemschema.TypeBoolean: genai.TypeBoolean,
	gemschema.TypeArray:   genai.TypeArray,
	gemschema.TypeObject:  genai.TypeObject,
}

// Schema converts s to the SDK's schema type, recursively. A nil input
// returns nil.
func Schema(s *gemschema.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        dataTypes[s.Type],
		Format:      s.Format,
		Description: s.Description,
		Nullable:    s.Nullable,
		Enum:        s.Enum,
		Items:       Schema(s.Items),
		Required:    s.Required,
		Minimum:     s.Minimum,
		Maximum:     s.Maximum,
		MinLength:   s.MinLength,
		MaxLength:   s.MaxLength,
		Pattern:     s.Pattern,
		MinItems:    s.MinItems,
		MaxItems:    s.MaxItems,
	}

	if s.Properties != nil {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = Schema(prop)
		}
	}

	return out
}

// Declaration converts a function declaration to the SDK's form.
func Declaration(decl tool.FunctionDeclaration) *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        decl.Name,
		Description: decl.Description,
		Parameters:  Schema(decl.Parameters),
		Response:    Schema(decl.Response),
	}
}

// Tool bundles declarations into a single SDK tool, the shape
// GenerateContentConfig.Tools expects.
func Tool(decls ...tool.FunctionDeclaration) *genai.Tool {
	fns := make([]*genai.FunctionDeclaration, 0, len(decls))
	for _, decl := range decls {
		fns = append(fns, Declaration(decl))
	}
	return &genai.Tool{FunctionDeclarations: fns}
}
