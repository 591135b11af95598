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
	"testing"
)

// FuzzParseRoundTrip checks that any document Parse accepts formats to a
// canonical form that parses back to the same value.
func FuzzParseRoundTrip(f *testing.F) {
	f.Add(recipeToParse)
	f.Add(recipeToDisplay)
	f.Add(minimalRecipe)
	f.Add("t\n\nYield: 1\n\nIngredients\n- a: 1 (n)\n\nInstructions\n- b")
	f.Add("t\n\nYield: 1\n\nIngredients\n- a:  1  1/2 cup\n\nInstructions\ns\n- b")
	f.Add("t\n\nYield: 1\nTime: 75m\n\nIngredients\n\nInstructions\n")
	f.Add("")

	f.Fuzz(func(t *testing.T, input string) {
		first, err := ParseString(input)
		if err != nil {
			return
		}

		canonical := first.String()
		second, err := ParseString(canonical)
		if err != nil {
			t.Fatalf("canonical form of %q does not parse: %v\n%s", input, err, canonical)
		}
		if again := second.String(); again != canonical {
			t.Errorf("canonical form is not stable for %q:\n%s\n---\n%s", input, canonical, again)
		}
	})
}

// FuzzParseQuantity checks that quantities survive formatting.
func FuzzParseQuantity(f *testing.F) {
	for _, seed := range []string{"1", "0.5", "0.05", "1/2", "1 1/2", "2 cups (packed)", "1 (note)", "99999999999", "1/0"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		q, err := ParseQuantity(input)
		if err != nil {
			return
		}
		q2, err := ParseQuantity(q.String())
		if err != nil {
			t.Fatalf("ParseQuantity(%q) formatted as %q which fails: %v", input, q.String(), err)
		}
		if q.String() != q2.String() {
			t.Errorf("quantity %q is not stable: %q != %q", input, q.String(), q2.String())
		}
	})
}
