package gemschema

import "fmt"

// DataType identifies the kind of value a Schema node describes. It covers
// the select subset of OpenAPI 3.0 data types the Gemini API understands.
type DataType int

const (
	TypeString DataType = iota + 1
	TypeNumber
	TypeInteger
	TypeBoolean
	TypeArray
	TypeObject
)

// dataTypeNames maps each tag to its fixed wire name. The wire strings are
// part of the API contract and are kept independent of the Go constant names.
var dataTypeNames = map[DataType]string{
	TypeString:  "STRING",
	TypeNumber:  "NUMBER",
	TypeInteger: "INTEGER",
	TypeBoolean: "BOOLEAN",
	TypeArray:   "ARRAY",
	TypeObject:  "OBJECT",
}

// String returns the upper-case wire name for t, or a diagnostic placeholder
// for values outside the known set.
func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DataType(%d)", int(t))
}

// MarshalJSON emits the wire name as a JSON string. The zero value (and any
// other out-of-range tag) is rejected: a Schema must always carry one of the
// six declared types.
func (t DataType) MarshalJSON() ([]byte, error) {
	name, ok := dataTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("gemschema: cannot marshal unknown DataType %d", int(t))
	}
	return []byte(`"` + name + `"`), nil
}
