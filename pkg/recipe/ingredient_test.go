// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recipe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseQuantityValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected QuantityValue
		rest     string
		wantErr  string
	}{
		{name: "integer", input: "1", expected: Integer(1)},
		{name: "integer with unit", input: "2 cups", expected: Integer(2), rest: "cups"},
		{name: "decimal", input: "0.5", expected: Decimal{Int: 0, Frac: 5, Scale: 1}},
		{name: "decimal keeps leading zeros", input: "0.05", expected: Decimal{Int: 0, Frac: 5, Scale: 2}},
		{name: "fraction", input: "1/2", expected: Fraction{Numer: 1, Denom: 2}},
		{name: "mixed number", input: "1 1/2", expected: Fraction{Numer: 3, Denom: 2}},
		{name: "mixed number with unit", input: "2 3/4 cups", expected: Fraction{Numer: 11, Denom: 4}, rest: "cups"},
		{name: "integer followed by number", input: "10 1 unit", expected: Integer(10), rest: "1 unit"},
		{name: "integer overflow", input: "99999999999", wantErr: "integer is out of range"},
		{name: "decimal integral overflow", input: "70000.5", wantErr: "decimal integral part is out of range"},
		{name: "decimal fractional overflow", input: "1.70000", wantErr: "decimal fractional part is out of range"},
		{name: "fraction numerator overflow", input: "300/2", wantErr: "fraction numerator is out of range"},
		{name: "fraction denominator overflow", input: "1/300", wantErr: "fraction denominator is out of range"},
		{name: "zero denominator", input: "1/0", wantErr: "fraction denominator must not be zero"},
		{name: "mixed number overflow", input: "200 1/2", wantErr: "mixed number fraction '1/2' is out of range"},
		{name: "malformed decimal with overflow", input: "x.99999", wantErr: "invalid ingredient quantity value: 'x.99999'"},
		{name: "garbage", input: "some", wantErr: "invalid ingredient quantity value: 'some'"},
		{name: "empty", input: "", wantErr: "invalid ingredient quantity value: ''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, rest, err := ParseQuantityValue(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				var perr *ParseError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestQuantityString(t *testing.T) {
	quantity := Quantity{Value: Decimal{Frac: 5, Scale: 1}}
	assert.Equal(t, "0.5", quantity.String())

	quantity.Value = Fraction{Numer: 1, Denom: 2}
	assert.Equal(t, "1/2", quantity.String())

	quantity.Value = Integer(1)
	assert.Equal(t, "1", quantity.String())

	quantity.Unit = "unit"
	assert.Equal(t, "1 unit", quantity.String())

	quantity.Note = "note"
	assert.Equal(t, "1 unit (note)", quantity.String())

	quantity.Unit = ""
	assert.Equal(t, "1 (note)", quantity.String())
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input    string
		expected Quantity
		wantErr  bool
	}{
		{input: "1", expected: Quantity{Value: Integer(1)}},
		{input: "1  a unit", expected: Quantity{Value: Integer(1), Unit: "a unit"}},
		{input: "1  ( a note )", expected: Quantity{Value: Integer(1), Note: "a note"}},
		{input: "1 (note)", expected: Quantity{Value: Integer(1), Note: "note"}},
		{input: "10 1 unit  ( a note )", expected: Quantity{Value: Integer(10), Unit: "1 unit", Note: "a note"}},
		{input: "0.5 bla (note)", expected: Quantity{Value: Decimal{Frac: 5, Scale: 1}, Unit: "bla", Note: "note"}},
		{input: "1 ()", expected: Quantity{Value: Integer(1)}},
		{input: "1 cup (packed", wantErr: true},
		{input: "1 (", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			quantity, err := ParseQuantity(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *quantity)
		})
	}
}

func TestIngredientString(t *testing.T) {
	ingredient := Ingredient{Name: "name"}
	assert.Equal(t, "name", ingredient.String())

	ingredient.Kind = "kind"
	assert.Equal(t, "name, kind", ingredient.String())

	ingredient.Quantity = &Quantity{Value: Integer(1)}
	assert.Equal(t, "name, kind: 1", ingredient.String())

	ingredient.Kind = ""
	assert.Equal(t, "name: 1", ingredient.String())
}

func TestParseIngredient(t *testing.T) {
	tests := []struct {
		input    string
		expected Ingredient
	}{
		{input: "a name", expected: Ingredient{Name: "a name"}},
		{input: "a name ,  a kind", expected: Ingredient{Name: "a name", Kind: "a kind"}},
		{
			input:    "a name :  1 unit (note)",
			expected: Ingredient{Name: "a name", Quantity: &Quantity{Value: Integer(1), Unit: "unit", Note: "note"}},
		},
		{
			input:    "a name ,  a kind :  1 unit (note)",
			expected: Ingredient{Name: "a name", Kind: "a kind", Quantity: &Quantity{Value: Integer(1), Unit: "unit", Note: "note"}},
		},
		{input: "name: 1/2", expected: Ingredient{Name: "name", Quantity: &Quantity{Value: Fraction{Numer: 1, Denom: 2}}}},
		{input: "name: 1 1/2", expected: Ingredient{Name: "name", Quantity: &Quantity{Value: Fraction{Numer: 3, Denom: 2}}}},
		{input: "salt, sea:", expected: Ingredient{Name: "salt", Kind: "sea:"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ingredient, err := ParseIngredient(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ingredient)
		})
	}
}

func TestParseIngredientErrors(t *testing.T) {
	for _, input := range []string{"", "   ", ": 1", ", kind: 1", "flour: lots"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseIngredient(input)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
		})
	}
}

func TestQuantityMarshal(t *testing.T) {
	quantity := Quantity{Value: Fraction{Numer: 3, Denom: 2}, Unit: "cups"}

	data, err := json.Marshal(quantity)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":{"fraction":{"numer":3,"denom":2}},"unit":"cups"}`, string(data))

	out, err := yaml.Marshal(quantity)
	require.NoError(t, err)
	assert.Contains(t, string(out), "fraction:")
	assert.Contains(t, string(out), "unit: cups")

	data, err = json.Marshal(Quantity{Value: Integer(4)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":{"integer":4}}`, string(data))
}
