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

// Package recipe implements the plain-text recipe document format.
//
// A recipe file is a sequence of blank-line separated blocks in a fixed
// order: a single title line, a metadata block, an ingredients block, an
// instructions block and an optional notes block.
//
//	Pancakes
//
//	Yield: 4 servings
//	Time: 1h 30m
//	Link: Grandma > https://example.com/pancakes
//	Tags: breakfast, sweet
//
//	Ingredients
//	  Batter
//	    - flour: 250 g
//	    - milk: 1 1/2 cups (cold)
//	  Topping
//	    - maple syrup
//
//	Instructions
//	  - Mix everything.
//	  - Fry in a hot pan.
//
//	Notes
//	  - Rest the batter for 10 minutes.
//
// # Parsing
//
// Parse reads a document from an io.Reader. Grammar violations are reported
// as *ParseError values; read failures from the underlying reader are
// returned unchanged so callers can tell the two apart:
//
//	r, err := recipe.Parse(file)
//	var perr *recipe.ParseError
//	if errors.As(err, &perr) {
//	    // malformed document
//	}
//
// # Formatting
//
// Recipe.Format writes the canonical form of a document. The canonical form
// normalizes whitespace, so it is not byte-identical to arbitrary input, but
// parsing it again always yields an equal Recipe.
//
// # Lists
//
// Ingredients and instructions are List values which are either basic
// (a flat bullet list) or sectioned (named sections holding bullet lists).
// The shape is decided by the first line of the block.
package recipe
