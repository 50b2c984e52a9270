package function

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SasiVeeramachaneni/currency-converter/tool"
)

type addArgs struct {
	A int `json:"a"`
	B int `json:"b"`
}

type addResult struct {
	Sum int `json:"sum"`
}

func newAddTool() *FunctionTool[addArgs, addResult] {
	return NewFunctionTool(
		func(_ context.Context, in addArgs) (addResult, error) {
			return addResult{Sum: in.A + in.B}, nil
		},
		WithName("add"),
		WithDescription("Add two integers"),
	)
}

func TestFunctionToolDeclaration(t *testing.T) {
	decl := newAddTool().Declaration()
	require.NotNil(t, decl)
	assert.Equal(t, "add", decl.Name)
	assert.Equal(t, "Add two integers", decl.Description)
	require.NotNil(t, decl.InputSchema)
	assert.Equal(t, "object", decl.InputSchema.Type)
	assert.ElementsMatch(t, []string{"a", "b"}, decl.InputSchema.Required)
	require.NotNil(t, decl.OutputSchema)
	assert.Contains(t, decl.OutputSchema.Properties, "sum")
}

func TestFunctionToolCall(t *testing.T) {
	got, err := newAddTool().Call(context.Background(), []byte(`{"a": 2, "b": 3}`))
	require.NoError(t, err)
	result, ok := got.(addResult)
	require.True(t, ok)
	assert.Equal(t, 5, result.Sum)
}

func TestFunctionToolCallMalformedArguments(t *testing.T) {
	_, err := newAddTool().Call(context.Background(), []byte(`{"a": "not a number"}`))
	assert.Error(t, err)
}

func TestFunctionToolCallEmptyArguments(t *testing.T) {
	called := false
	ft := NewFunctionTool(
		func(_ context.Context, _ struct{}) (string, error) {
			called = true
			return "ok", nil
		},
		WithName("noop"),
		WithDescription("No arguments"),
	)

	got, err := ft.Call(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "ok", got)
}

func TestFunctionToolPropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	ft := NewFunctionTool(
		func(_ context.Context, _ addArgs) (addResult, error) {
			return addResult{}, wantErr
		},
		WithName("failing"),
		WithDescription("Always fails"),
	)

	_, err := ft.Call(context.Background(), []byte(`{"a":1,"b":2}`))
	assert.ErrorIs(t, err, wantErr)
}

func TestWithInputSchemaOverride(t *testing.T) {
	custom := &tool.Schema{
		Type: "object",
		Properties: map[string]*tool.Schema{
			"x": {Type: "string"},
		},
		Required: []string{"x"},
	}
	ft := NewFunctionTool(
		func(_ context.Context, in addArgs) (addResult, error) {
			return addResult{}, nil
		},
		WithName("custom"),
		WithDescription("Custom schema"),
		WithInputSchema(custom),
	)

	assert.Same(t, custom, ft.Declaration().InputSchema)
}
