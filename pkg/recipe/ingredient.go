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
	"strings"
)

// Ingredient is a single entry of the ingredients list, written as
// "<name>[, <kind>][: <quantity>]".
type Ingredient struct {
	Name     string    `json:"name" yaml:"name"`
	Kind     string    `json:"kind,omitempty" yaml:"kind,omitempty"`
	Quantity *Quantity `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}

// String returns the canonical form of the ingredient.
func (i Ingredient) String() string {
	var sb strings.Builder
	sb.WriteString(i.Name)
	if i.Kind != "" {
		sb.WriteString(", ")
		sb.WriteString(i.Kind)
	}
	if i.Quantity != nil {
		sb.WriteString(": ")
		sb.WriteString(i.Quantity.String())
	}
	return sb.String()
}

// ParseIngredient parses a single ingredient line without its bullet.
func ParseIngredient(s string) (Ingredient, error) {
	nameKind, quantityText, _ := strings.Cut(s, ": ")
	name, kind, _ := strings.Cut(strings.TrimRight(nameKind, " \t"), ", ")

	ingredient := Ingredient{
		Name: strings.TrimSpace(name),
		Kind: strings.TrimSpace(kind),
	}
	if ingredient.Name == "" {
		return Ingredient{}, emptyFieldError("ingredient name")
	}

	if quantityText = strings.TrimSpace(quantityText); quantityText != "" {
		quantity, err := ParseQuantity(quantityText)
		if err != nil {
			return Ingredient{}, err
		}
		ingredient.Quantity = quantity
	}
	return ingredient, nil
}
