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
	"fmt"
	"io"
	"strings"
)

const bulletPrefix = "- "

// ListKind tells the two list shapes apart.
type ListKind int

const (
	// BasicList is a flat bullet list.
	BasicList ListKind = iota
	// SectionedList groups bullet items under named sections.
	SectionedList
)

// String implements fmt.Stringer.
func (k ListKind) String() string {
	if k == SectionedList {
		return "sectioned"
	}
	return "basic"
}

// Codec parses and formats single list items.
type Codec[T any] interface {
	ParseItem(line string) (T, error)
	FormatItem(item T) string
}

// TextCodec handles free text items.
type TextCodec struct{}

// ParseItem returns the line unchanged.
func (TextCodec) ParseItem(line string) (string, error) { return line, nil }

// FormatItem returns the item unchanged.
func (TextCodec) FormatItem(item string) string { return item }

// IngredientCodec handles ingredient items.
type IngredientCodec struct{}

// ParseItem parses the line with ParseIngredient.
func (IngredientCodec) ParseItem(line string) (Ingredient, error) { return ParseIngredient(line) }

// FormatItem returns the canonical ingredient form.
func (IngredientCodec) FormatItem(item Ingredient) string { return item.String() }

// Section is a named group of list items.
type Section[T any] struct {
	Name  string `json:"name" yaml:"name"`
	Items []T    `json:"items" yaml:"items"`
}

// List is either a basic list of Items or a sectioned list of Sections,
// depending on Kind. The field not selected by Kind is ignored.
type List[T any] struct {
	Kind     ListKind
	Items    []T
	Sections []Section[T]
}

// NewBasicList returns a flat list holding items.
func NewBasicList[T any](items ...T) List[T] {
	return List[T]{Kind: BasicList, Items: items}
}

// NewSectionedList returns a list holding sections.
func NewSectionedList[T any](sections ...Section[T]) List[T] {
	return List[T]{Kind: SectionedList, Sections: sections}
}

// IsSectioned reports whether the list groups its items into sections.
func (l List[T]) IsSectioned() bool {
	return l.Kind == SectionedList
}

// Len returns the number of items, summed over all sections for a
// sectioned list.
func (l List[T]) Len() int {
	if l.Kind == BasicList {
		return len(l.Items)
	}
	n := 0
	for _, s := range l.Sections {
		n += len(s.Items)
	}
	return n
}

// All returns every item in order, flattening sections.
func (l List[T]) All() []T {
	if l.Kind == BasicList {
		return l.Items
	}
	items := make([]T, 0, l.Len())
	for _, s := range l.Sections {
		items = append(items, s.Items...)
	}
	return items
}

// MarshalJSON encodes a basic list as {"items": [...]} and a sectioned list
// as {"sections": [...]}.
func (l List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.tagged())
}

// MarshalYAML mirrors MarshalJSON.
func (l List[T]) MarshalYAML() (any, error) {
	return l.tagged(), nil
}

func (l List[T]) tagged() any {
	if l.Kind == SectionedList {
		sections := l.Sections
		if sections == nil {
			sections = []Section[T]{}
		}
		return map[string][]Section[T]{"sections": sections}
	}
	items := l.Items
	if items == nil {
		items = []T{}
	}
	return map[string][]T{"items": items}
}

// ParseList parses lines into a list. A first line starting with "- " (or
// no lines at all) makes a basic list, anything else a sectioned list.
func ParseList[T any](lines []string, codec Codec[T]) (List[T], error) {
	if len(lines) == 0 || strings.HasPrefix(lines[0], bulletPrefix) {
		items, err := parseItems(lines, codec)
		if err != nil {
			return List[T]{}, err
		}
		return List[T]{Kind: BasicList, Items: items}, nil
	}

	var sections []Section[T]
	for _, line := range lines {
		if content, ok := stripBullet(line); ok {
			item, err := codec.ParseItem(content)
			if err != nil {
				return List[T]{}, err
			}
			last := &sections[len(sections)-1]
			last.Items = append(last.Items, item)
			continue
		}
		name := strings.TrimSpace(line)
		if name == "" {
			return List[T]{}, emptyFieldError("list section name")
		}
		sections = append(sections, Section[T]{Name: name})
	}
	return List[T]{Kind: SectionedList, Sections: sections}, nil
}

// parseItems parses a flat bullet list where every line must be a bullet.
func parseItems[T any](lines []string, codec Codec[T]) ([]T, error) {
	var items []T
	for _, line := range lines {
		content, ok := stripBullet(line)
		if !ok {
			return nil, parseErrorf("list item must start with '%s'", bulletPrefix)
		}
		item, err := codec.ParseItem(content)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func stripBullet(line string) (string, bool) {
	content, ok := strings.CutPrefix(line, bulletPrefix)
	if !ok {
		return "", false
	}
	return strings.TrimLeft(content, " \t"), true
}

// Format writes the list with one item per line. Items of a basic list and
// section names are prefixed with indent, section items with indent twice.
func (l List[T]) Format(w io.Writer, indent string, codec Codec[T]) error {
	if l.Kind == BasicList {
		return formatItems(w, l.Items, indent, codec)
	}
	for _, s := range l.Sections {
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, s.Name); err != nil {
			return err
		}
		if err := formatItems(w, s.Items, indent+indent, codec); err != nil {
			return err
		}
	}
	return nil
}

func formatItems[T any](w io.Writer, items []T, indent string, codec Codec[T]) error {
	for _, item := range items {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, bulletPrefix, codec.FormatItem(item)); err != nil {
			return err
		}
	}
	return nil
}
