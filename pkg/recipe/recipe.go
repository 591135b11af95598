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
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Block headlines.
const (
	HeadlineIngredients  = "Ingredients"
	HeadlineInstructions = "Instructions"
	HeadlineNotes        = "Notes"
)

// Indent is the indentation unit of the canonical form.
const Indent = "  "

// Recipe is a parsed recipe document.
type Recipe struct {
	Title        string           `json:"title" yaml:"title"`
	Metadata     Metadata         `json:"metadata" yaml:"metadata"`
	Ingredients  List[Ingredient] `json:"ingredients" yaml:"ingredients"`
	Instructions List[string]     `json:"instructions" yaml:"instructions"`
	Notes        []string         `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Parse reads a recipe document from r. Grammar violations are returned as
// *ParseError, read failures are returned unchanged.
func Parse(r io.Reader) (*Recipe, error) {
	reader := NewReader(r, true)
	var rec Recipe

	block, err := requireBlock(reader, "title")
	if err != nil {
		return nil, err
	}
	if rec.Title, err = parseTitle(block); err != nil {
		return nil, err
	}

	if block, err = requireBlock(reader, "metadata"); err != nil {
		return nil, err
	}
	if rec.Metadata, err = ParseMetadata(block); err != nil {
		return nil, err
	}

	if block, err = requireBlock(reader, "ingredients"); err != nil {
		return nil, err
	}
	if block, err = stripHeadline(block, HeadlineIngredients, "missing"); err != nil {
		return nil, err
	}
	if rec.Ingredients, err = ParseList[Ingredient](block, IngredientCodec{}); err != nil {
		return nil, err
	}

	if block, err = requireBlock(reader, "instructions"); err != nil {
		return nil, err
	}
	if block, err = stripHeadline(block, HeadlineInstructions, "missing"); err != nil {
		return nil, err
	}
	if rec.Instructions, err = ParseList[string](block, TextCodec{}); err != nil {
		return nil, err
	}

	if block, err = reader.NextBlock(); err != nil {
		return nil, err
	}
	if block != nil {
		if block, err = stripHeadline(block, HeadlineNotes, "expected"); err != nil {
			return nil, err
		}
		if rec.Notes, err = parseItems[string](block, TextCodec{}); err != nil {
			return nil, err
		}
		if block, err = reader.NextBlock(); err != nil {
			return nil, err
		}
		if block != nil {
			return nil, parseErrorf("unexpected content after notes: '%s'", block[0])
		}
	}
	return &rec, nil
}

// ParseString parses a recipe held in memory.
func ParseString(s string) (*Recipe, error) {
	return Parse(strings.NewReader(s))
}

func requireBlock(reader *Reader, name string) ([]string, error) {
	block, err := reader.NextBlock()
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, parseErrorf("missing %s", name)
	}
	return block, nil
}

func parseTitle(block []string) (string, error) {
	if len(block) > 1 {
		return "", parseErrorf("missing empty line after title line")
	}
	title := strings.TrimSpace(block[0])
	if title == "" {
		return "", &ParseError{Msg: ErrEmptyTitle.Error(), Err: ErrEmptyTitle}
	}
	return title, nil
}

func stripHeadline(block []string, headline, verb string) ([]string, error) {
	if len(block) == 0 || block[0] != headline {
		return nil, parseErrorf("%s headline '%s'", verb, headline)
	}
	return block[1:], nil
}

// Format writes the canonical text form of the recipe.
func (r *Recipe) Format(w io.Writer) error {
	bw := &errWriter{w: w}
	bw.printf("%s\n\n", r.Title)
	if bw.err == nil {
		bw.err = r.Metadata.Format(bw.w)
	}
	bw.printf("\n%s\n", HeadlineIngredients)
	if bw.err == nil {
		bw.err = r.Ingredients.Format(bw.w, Indent, IngredientCodec{})
	}
	bw.printf("\n%s\n", HeadlineInstructions)
	if bw.err == nil {
		bw.err = r.Instructions.Format(bw.w, Indent, TextCodec{})
	}
	if len(r.Notes) > 0 {
		bw.printf("\n%s\n", HeadlineNotes)
		if bw.err == nil {
			bw.err = formatItems(bw.w, r.Notes, Indent, TextCodec{})
		}
	}
	return bw.err
}

// String returns the canonical text form of the recipe.
func (r *Recipe) String() string {
	var buf bytes.Buffer
	// writes to a bytes.Buffer do not fail
	_ = r.Format(&buf)
	return buf.String()
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
