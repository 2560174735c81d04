package coder

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

// Schema describes the class's settings surface as a JSON Schema object.
// Undeclared properties are rejected, matching Class.New.
func (cl *Class[C]) Schema() *jsonschema.Schema {
	props := jsonschema.NewProperties()
	for _, a := range cl.attrs {
		s := &jsonschema.Schema{Type: jsonType(a.typ)}
		if a.typ.Kind() == reflect.Interface {
			s.Description = a.typ.String()
		} else if a.hasDefault {
			s.Default = a.def
		}
		props.Set(a.name, s)
	}

	return &jsonschema.Schema{
		Version:              jsonschema.Version,
		Title:                cl.name,
		Type:                 "object",
		Properties:           props,
		AdditionalProperties: jsonschema.FalseSchema,
	}
}

func jsonType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
