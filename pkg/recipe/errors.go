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
	"errors"
	"fmt"
)

// ErrEmptyTitle is returned when a recipe title holds no visible characters.
var ErrEmptyTitle = errors.New("recipe title must contain non-whitespace characters")

// ErrInvalidRecipe is returned by Recipe.Validate for values that cannot be
// written in canonical form.
var ErrInvalidRecipe = errors.New("invalid recipe")

// ParseError reports a violation of the recipe text grammar.
type ParseError struct {
	// Path is the file the document was read from, if known.
	Path string
	// Msg describes the violation.
	Msg string
	// Err is an optional underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Msg)
	}
	return e.Msg
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

func emptyFieldError(name string) *ParseError {
	return parseErrorf("%s must contain non-whitespace characters", name)
}
