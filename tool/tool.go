// Package tool declares callable functions in terms of gemschema schemas and
// manages their registration.
package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/halcyonlabs/gemschema"
)

// FunctionDeclaration describes one callable function: its name, what it
// does, and the schemas of its input and output. This is the unit handed to
// a provider exporter or stored in a catalog.
type FunctionDeclaration struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Parameters  *gemschema.Schema `json:"parameters,omitempty"`
	Response    *gemschema.Schema `json:"response,omitempty"`
}

// Tool is a callable function together with its declaration. Call takes JSON
// input and returns JSON output; execution errors are reported in-band in the
// returned JSON rather than as a Go error, so the model can see them.
type Tool interface {
	Declaration() FunctionDeclaration
	Call(ctx context.Context, input string) string
}

// Func adapts a declaration and a closure into a Tool.
type Func struct {
	Decl FunctionDeclaration
	Fn   func(ctx context.Context, input string) string
}

func (f Func) Declaration() FunctionDeclaration { return f.Decl }

func (f Func) Call(ctx context.Context, input string) string {
	return f.Fn(ctx, input)
}

// ErrorResult formats a tool execution error as a JSON object with an
// "error" field, the in-band shape Call implementations should return.
func ErrorResult(errorMsg string) string {
	if errorMsg == "" {
		return "{}"
	}
	payload, err := json.Marshal(map[string]string{"error": errorMsg})
	if err == nil {
		return string(payload)
	}
	// Fallback if JSON marshaling fails (shouldn't happen with string input)
	return fmt.Sprintf(`{"error": "%s"}`, errorMsg)
}
