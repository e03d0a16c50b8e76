// Command funcdecl generates a Gemini function declaration from a Go
// function. The target must look like
//
//	func Name(ctx context.Context, req ReqStruct) (RespStruct, error)
//
// (the request parameter may be omitted). The request struct becomes the
// declaration's parameters schema, the response struct its response schema,
// and the function's doc comment its description. Output is a generated Go
// file holding the serialized declaration, or plain JSON with -json.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/halcyonlabs/gemschema"
	"github.com/halcyonlabs/gemschema/tool"
)

var (
	funcName  = flag.String("func", "", "Name of the function to generate a declaration for (required)")
	inputFile = flag.String("input", "", "Input Go source file (required)")
	jsonOnly  = flag.Bool("json", false, "Print the declaration JSON to stdout instead of writing a Go file")
)

func main() {
	flag.Parse()

	if *funcName == "" || *inputFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, *inputFile, nil, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("parsing file: %w", err)
	}

	target := findFunc(node, *funcName)
	if target == nil {
		return fmt.Errorf("function %s not found in %s", *funcName, *inputFile)
	}
	if target.Recv != nil {
		return fmt.Errorf("function %s is a method, not a standalone function", *funcName)
	}

	decl, err := buildDeclaration(target, node)
	if err != nil {
		return err
	}

	data, err := json.Marshal(decl)
	if err != nil {
		return fmt.Errorf("marshaling declaration: %w", err)
	}

	if *jsonOnly {
		fmt.Println(string(data))
		return nil
	}

	if err := writeDeclFile(*inputFile, node.Name.Name, *funcName, data); err != nil {
		return fmt.Errorf("writing declaration file: %w", err)
	}
	fmt.Printf("Generated declaration for %s\n", *funcName)
	return nil
}

func findFunc(node *ast.File, name string) *ast.FuncDecl {
	var target *ast.FuncDecl
	ast.Inspect(node, func(n ast.Node) bool {
		if fn, ok := n.(*ast.FuncDecl); ok && fn.Name.Name == name {
			target = fn
			return false
		}
		return true
	})
	return target
}

// buildDeclaration validates the function's shape and assembles the
// declaration from its signature and doc comment.
func buildDeclaration(fn *ast.FuncDecl, file *ast.File) (tool.FunctionDeclaration, error) {
	var zero tool.FunctionDeclaration

	params := fn.Type.Params
	if params == nil || len(params.List) < 1 || len(params.List) > 2 {
		return zero, fmt.Errorf("function %s must take context.Context and optionally a request struct", fn.Name.Name)
	}
	if !isContextParam(params.List[0]) {
		return zero, fmt.Errorf("function %s first parameter must be context.Context", fn.Name.Name)
	}

	decl := tool.FunctionDeclaration{
		Name:        strcase.ToSnake(fn.Name.Name),
		Description: docDescription(fn),
	}

	if len(params.List) == 2 {
		paramSchema, err := structExprSchema(params.List[1].Type, file)
		if err != nil {
			return zero, fmt.Errorf("request parameter of %s: %w", fn.Name.Name, err)
		}
		decl.Parameters = paramSchema
	}

	results := fn.Type.Results
	if results == nil || len(results.List) != 2 || !isErrorType(results.List[1].Type) {
		return zero, fmt.Errorf("function %s must return (RespStruct, error)", fn.Name.Name)
	}
	respSchema, err := structExprSchema(results.List[0].Type, file)
	if err != nil {
		return zero, fmt.Errorf("response type of %s: %w", fn.Name.Name, err)
	}
	decl.Response = respSchema

	return decl, nil
}

// docDescription extracts the description from the function's doc comment,
// trimming the conventional leading "Name" word.
func docDescription(fn *ast.FuncDecl) string {
	if fn.Doc == nil {
		return ""
	}
	text := strings.TrimSpace(fn.Doc.Text())
	text = strings.TrimPrefix(text, fn.Name.Name+" ")
	return text
}

// structExprSchema resolves expr to a struct type and builds its OBJECT
// schema. Named types are looked up in the same file.
func structExprSchema(expr ast.Expr, file *ast.File) (*gemschema.Schema, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		structType := findStructType(t.Name, file)
		if structType == nil {
			return nil, fmt.Errorf("type %s is not a struct declared in this file", t.Name)
		}
		return structSchema(structType, file)
	case *ast.StructType:
		return structSchema(t, file)
	default:
		return nil, fmt.Errorf("expected a struct type")
	}
}

func findStructType(name string, file *ast.File) *ast.StructType {
	var structType *ast.StructType
	ast.Inspect(file, func(n ast.Node) bool {
		if ts, ok := n.(*ast.TypeSpec); ok && ts.Name.Name == name {
			structType, _ = ts.Type.(*ast.StructType)
			return false
		}
		return true
	})
	return structType
}

func structSchema(structType *ast.StructType, file *ast.File) (*gemschema.Schema, error) {
	s := &gemschema.Schema{
		Type:       gemschema.TypeObject,
		Properties: make(map[string]*gemschema.Schema),
	}

	var required []string
	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			// Embedded fields are skipped.
			continue
		}
		for _, name := range field.Names {
			if !ast.IsExported(name.Name) {
				continue
			}

			propName, omitempty := jsonTag(field.Tag)
			if propName == "-" {
				continue
			}
			if propName == "" {
				propName = strcase.ToSnake(name.Name)
			}

			fieldSchema, nullable, err := typeSchema(field.Type, file)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", name.Name, err)
			}
			s.Properties[propName] = fieldSchema

			if !nullable && !omitempty {
				required = append(required, propName)
			}
		}
	}

	if len(required) > 0 {
		s.Required = required
	}
	return s, nil
}

// typeSchema maps an AST type expression to a schema node. The second result
// reports whether the type was a pointer, which makes the field optional.
func typeSchema(expr ast.Expr, file *ast.File) (*gemschema.Schema, bool, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		if s := basicTypeSchema(t.Name); s != nil {
			return s, false, nil
		}
		if structType := findStructType(t.Name, file); structType != nil {
			s, err := structSchema(structType, file)
			return s, false, err
		}
		return nil, false, fmt.Errorf("unsupported type %s", t.Name)
	case *ast.StarExpr:
		s, _, err := typeSchema(t.X, file)
		if err != nil {
			return nil, true, err
		}
		s.Nullable = gemschema.Bool(true)
		return s, true, nil
	case *ast.ArrayType:
		if ident, ok := t.Elt.(*ast.Ident); ok && ident.Name == "byte" {
			return &gemschema.Schema{Type: gemschema.TypeString}, false, nil
		}
		items, _, err := typeSchema(t.Elt, file)
		if err != nil {
			return nil, false, err
		}
		return &gemschema.Schema{Type: gemschema.TypeArray, Items: items}, false, nil
	case *ast.MapType:
		if key, ok := t.Key.(*ast.Ident); !ok || key.Name != "string" {
			return nil, false, fmt.Errorf("map keys must be strings")
		}
		return &gemschema.Schema{Type: gemschema.TypeObject}, false, nil
	case *ast.StructType:
		s, err := structSchema(t, file)
		return s, false, err
	default:
		return nil, false, fmt.Errorf("unsupported type expression")
	}
}

func basicTypeSchema(name string) *gemschema.Schema {
	switch name {
	case "string":
		return &gemschema.Schema{Type: gemschema.TypeString}
	case "bool":
		return &gemschema.Schema{Type: gemschema.TypeBoolean}
	case "int8", "int16", "int32", "uint8", "uint16", "uint32":
		return &gemschema.Schema{Type: gemschema.TypeInteger, Format: "int32"}
	case "int", "int64", "uint", "uint64":
		return &gemschema.Schema{Type: gemschema.TypeInteger, Format: "int64"}
	case "float32":
		return &gemschema.Schema{Type: gemschema.TypeNumber, Format: "float"}
	case "float64":
		return &gemschema.Schema{Type: gemschema.TypeNumber, Format: "double"}
	default:
		return nil
	}
}

func jsonTag(tag *ast.BasicLit) (name string, omitempty bool) {
	if tag == nil {
		return "", false
	}

	tagValue := strings.Trim(tag.Value, "`")
	const jsonPrefix = `json:"`
	idx := strings.Index(tagValue, jsonPrefix)
	if idx == -1 {
		return "", false
	}

	jsonValue := tagValue[idx+len(jsonPrefix):]
	if end := strings.Index(jsonValue, `"`); end != -1 {
		jsonValue = jsonValue[:end]
	}

	parts := strings.Split(jsonValue, ",")
	name = parts[0]
	for _, part := range parts[1:] {
		if part == "omitempty" || part == "omitzero" {
			omitempty = true
		}
	}
	return name, omitempty
}

func isContextParam(param *ast.Field) bool {
	selectorExpr, ok := param.Type.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	if ident, ok := selectorExpr.X.(*ast.Ident); ok {
		return ident.Name == "context" && selectorExpr.Sel.Name == "Context"
	}
	return false
}

func isErrorType(expr ast.Expr) bool {
	ident, ok := expr.(*ast.Ident)
	return ok && ident.Name == "error"
}

// writeDeclFile emits a gofmt'd Go file next to the input holding the
// serialized declaration under a stable const name.
func writeDeclFile(inputFile, packageName, funcName string, declJSON []byte) error {
	lowerFuncName := strings.ToLower(funcName[:1]) + funcName[1:]

	content := fmt.Sprintf(`// Code generated by funcdecl. DO NOT EDIT.

package %s

// %sDeclJSON is the serialized function declaration for %s, ready to embed
// in a request payload.
const %sDeclJSON = %s
`, packageName,
		lowerFuncName, funcName,
		lowerFuncName, "`"+string(declJSON)+"`")

	formatted, err := format.Source([]byte(content))
	if err != nil {
		return fmt.Errorf("formatting generated file: %w", err)
	}

	outputFile := filepath.Join(filepath.Dir(inputFile), fmt.Sprintf("%s_decl_generated.go", strcase.ToSnake(funcName)))
	if err := os.WriteFile(outputFile, formatted, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
