package schema

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type convertArgs struct {
	Amount       float64 `json:"amount" jsonschema:"description=The amount to convert"`
	FromCurrency string  `json:"from_currency" jsonschema:"description=The source currency code (e.g., USD, EUR, GBP)"`
	ToCurrency   string  `json:"to_currency"`
	Precision    *int    `json:"precision,omitempty"`
	ignored      string  //nolint:unused // exercises the unexported-field branch
}

func TestGenerateStruct(t *testing.T) {
	s := Generate(reflect.TypeOf(convertArgs{}))
	require.NotNil(t, s)
	assert.Equal(t, "object", s.Type)

	require.Contains(t, s.Properties, "amount")
	assert.Equal(t, "number", s.Properties["amount"].Type)
	assert.Equal(t, "The amount to convert", s.Properties["amount"].Description)

	require.Contains(t, s.Properties, "from_currency")
	assert.Equal(t, "string", s.Properties["from_currency"].Type)
	// Descriptions may contain commas.
	assert.Equal(t, "The source currency code (e.g., USD, EUR, GBP)", s.Properties["from_currency"].Description)

	assert.ElementsMatch(t, []string{"amount", "from_currency", "to_currency"}, s.Required)
	assert.NotContains(t, s.Required, "precision")
	assert.NotContains(t, s.Properties, "ignored")
}

func TestGenerateScalarsAndContainers(t *testing.T) {
	cases := []struct {
		name     string
		typ      reflect.Type
		wantType string
	}{
		{"string", reflect.TypeOf(""), "string"},
		{"bool", reflect.TypeOf(true), "boolean"},
		{"int", reflect.TypeOf(0), "integer"},
		{"float", reflect.TypeOf(0.0), "number"},
		{"slice", reflect.TypeOf([]string{}), "array"},
		{"map", reflect.TypeOf(map[string]float64{}), "object"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := Generate(c.typ)
			require.NotNil(t, s)
			assert.Equal(t, c.wantType, s.Type)
		})
	}

	s := Generate(reflect.TypeOf([]int{}))
	require.NotNil(t, s.Items)
	assert.Equal(t, "integer", s.Items.Type)

	s = Generate(reflect.TypeOf(map[string]float64{}))
	require.NotNil(t, s.AdditionalProperties)
	assert.Equal(t, "number", s.AdditionalProperties.Type)
}

func TestGenerateEmptyStruct(t *testing.T) {
	s := Generate(reflect.TypeOf(struct{}{}))
	require.NotNil(t, s)
	assert.Equal(t, "object", s.Type)
	assert.Empty(t, s.Properties)
	assert.Empty(t, s.Required)
}
