// Package tool provides the tool interfaces and declaration types exposed to
// language models.
package tool

import "context"

// Tool represents any tool that can be declared to a language model.
type Tool interface {
	// Declaration returns the metadata describing the tool: its name,
	// description, and the JSON schema of its input and output.
	Declaration() *Declaration
}

// CallableTool is a tool that can be invoked with JSON-encoded arguments.
type CallableTool interface {
	Tool

	// Call executes the tool with the given JSON arguments and returns the
	// result. Argument deserialization failures and execution failures are
	// reported through the error return; callers decide how to surface them.
	Call(ctx context.Context, jsonArgs []byte) (any, error)
}

// Declaration describes a tool to the language model.
type Declaration struct {
	// Name is the unique tool name. Must match ^[a-zA-Z0-9_-]+$ for broad
	// LLM API compatibility.
	Name string `json:"name"`
	// Description is a human-readable description used by the model to
	// decide when the tool is relevant.
	Description string `json:"description"`
	// InputSchema is the JSON schema of the tool's arguments.
	InputSchema *Schema `json:"input_schema,omitempty"`
	// OutputSchema is the JSON schema of the tool's result.
	OutputSchema *Schema `json:"output_schema,omitempty"`
}

// Schema is a JSON schema describing a tool parameter or result structure.
type Schema struct {
	// Type is the JSON type: "object", "string", "number", "integer",
	// "boolean", "array".
	Type string `json:"type,omitempty"`
	// Description describes the field to the model.
	Description string `json:"description,omitempty"`
	// Properties maps property names to their schemas for object types.
	Properties map[string]*Schema `json:"properties,omitempty"`
	// Required lists the property names that must be present.
	Required []string `json:"required,omitempty"`
	// Items is the element schema for array types.
	Items *Schema `json:"items,omitempty"`
	// AdditionalProperties is the value schema for map types.
	AdditionalProperties *Schema `json:"additionalProperties,omitempty"`
	// Enum restricts a string schema to a fixed value set.
	Enum []string `json:"enum,omitempty"`
}
