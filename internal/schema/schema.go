// Package schema generates JSON schemas for tool input and output types by
// reflection.
package schema

import (
	"reflect"
	"strings"

	"github.com/SasiVeeramachaneni/currency-converter/tool"
)

// Generate produces a JSON schema for the given type. Struct fields are
// mapped through their json tags; fields without omitempty on non-pointer
// types are marked required. The jsonschema struct tag supports
// "description=..." and "enum=a,enum=b" entries.
func Generate(t reflect.Type) *tool.Schema {
	if t == nil {
		return &tool.Schema{Type: "object"}
	}
	return generate(t)
}

func generate(t reflect.Type) *tool.Schema {
	switch t.Kind() {
	case reflect.Ptr:
		return generate(t.Elem())
	case reflect.Struct:
		return generateStruct(t)
	case reflect.String:
		return &tool.Schema{Type: "string"}
	case reflect.Bool:
		return &tool.Schema{Type: "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &tool.Schema{Type: "integer"}
	case reflect.Float32, reflect.Float64:
		return &tool.Schema{Type: "number"}
	case reflect.Slice, reflect.Array:
		return &tool.Schema{Type: "array", Items: generate(t.Elem())}
	case reflect.Map:
		return &tool.Schema{Type: "object", AdditionalProperties: generate(t.Elem())}
	case reflect.Interface:
		// No constraint can be expressed for any/interface values.
		return &tool.Schema{}
	default:
		return &tool.Schema{Type: "string"}
	}
}

func generateStruct(t reflect.Type) *tool.Schema {
	schema := &tool.Schema{Type: "object"}
	properties := map[string]*tool.Schema{}
	required := make([]string, 0)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		fieldName := field.Name
		isOmitEmpty := false
		if jsonTag != "" {
			if commaIdx := strings.Index(jsonTag, ","); commaIdx != -1 {
				if commaIdx > 0 {
					fieldName = jsonTag[:commaIdx]
				}
				isOmitEmpty = strings.Contains(jsonTag[commaIdx:], "omitempty")
			} else {
				fieldName = jsonTag
			}
		}

		fieldSchema := generate(field.Type)
		applyJSONSchemaTag(field.Tag.Get("jsonschema"), fieldSchema)

		if field.Type.Kind() != reflect.Ptr && !isOmitEmpty {
			required = append(required, fieldName)
		}
		properties[fieldName] = fieldSchema
	}

	if len(properties) > 0 {
		schema.Properties = properties
	}
	if len(required) > 0 {
		schema.Required = required
	}
	return schema
}

// applyJSONSchemaTag interprets the jsonschema struct tag entries, e.g.
// `jsonschema:"description=The amount to convert"`. Comma-separated parts
// without a key=value shape are treated as continuations of the previous
// entry, so descriptions may contain commas.
func applyJSONSchemaTag(tag string, schema *tool.Schema) {
	if tag == "" {
		return
	}
	parts := strings.Split(tag, ",")
	entries := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.Contains(part, "=") || len(entries) == 0 {
			entries = append(entries, part)
			continue
		}
		entries[len(entries)-1] += "," + part
	}
	for _, entry := range entries {
		switch {
		case strings.HasPrefix(entry, "description="):
			schema.Description = strings.TrimPrefix(entry, "description=")
		case strings.HasPrefix(entry, "enum="):
			schema.Enum = append(schema.Enum, strings.TrimPrefix(entry, "enum="))
		}
	}
}
