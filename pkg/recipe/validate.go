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
	"strconv"
	"strings"
)

// Validate checks that an in-memory recipe can be written in canonical form
// and read back unchanged.
func (r *Recipe) Validate() error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return ErrEmptyTitle
	}
	if err := validateLine("title", r.Title); err != nil {
		return err
	}
	if err := r.Metadata.validate(); err != nil {
		return err
	}
	if err := validateList(r.Ingredients, func(i Ingredient) error { return i.validate() }); err != nil {
		return fmt.Errorf("ingredients: %w", err)
	}
	if err := validateList(r.Instructions, validateText); err != nil {
		return fmt.Errorf("instructions: %w", err)
	}
	if err := checkAll(r.Notes, validateText); err != nil {
		return fmt.Errorf("notes: %w", err)
	}
	return nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRecipe, fmt.Sprintf(format, args...))
}

// validateLine accepts non-empty single line text without surrounding
// whitespace, which is what the reader hands to the parsers.
func validateLine(what, s string) error {
	switch {
	case strings.TrimSpace(s) == "":
		return invalidf("%s must not be empty", what)
	case strings.ContainsAny(s, "\r\n"):
		return invalidf("%s '%s' must be a single line", what, s)
	case strings.TrimSpace(s) != s:
		return invalidf("%s '%s' has surrounding whitespace", what, s)
	}
	return nil
}

func validateText(s string) error {
	return validateLine("list item", s)
}

func (m Metadata) validate() error {
	if m.Yields.Value == 0 {
		return invalidf("yield must be greater than zero")
	}
	if m.Yields.Unit != "" {
		if err := validateLine("yield unit", m.Yields.Unit); err != nil {
			return err
		}
	}
	if m.Duration != nil {
		d, err := NewDuration(m.Duration.Hours, m.Duration.Minutes)
		if err != nil || d != *m.Duration {
			return invalidf("duration must be non-zero with minutes below 60")
		}
	}
	if m.Source != nil {
		if err := m.Source.validate(); err != nil {
			return err
		}
	}
	for _, tag := range m.Tags {
		if err := validateLine("tag", tag); err != nil {
			return err
		}
		if strings.Contains(tag, tagSeparator) {
			return invalidf("tag '%s' contains the separator '%s'", tag, tagSeparator)
		}
	}
	return nil
}

func (s Source) validate() error {
	if err := validateLine("source name", s.Name); err != nil {
		return err
	}
	switch s.Kind {
	case SourceAuthor, SourceBook:
		return nil
	case SourceLink:
	default:
		return invalidf("unknown source kind '%s'", s.Kind)
	}

	if strings.Contains(s.Name, linkSeparator) {
		return invalidf("link name '%s' contains the separator '%s'", s.Name, linkSeparator)
	}
	if err := validateLine("link url", s.URL); err != nil {
		return err
	}
	if link, err := ParseLink(s.Value()); err != nil || link != s {
		return invalidf("link '%s' does not read back unchanged", s.Value())
	}
	return nil
}

func (i Ingredient) validate() error {
	if err := validateLine("ingredient name", i.Name); err != nil {
		return err
	}
	if strings.Contains(i.Name, tagSeparator) || strings.Contains(i.Name, keyValueSeparator) {
		return invalidf("ingredient name '%s' contains a separator", i.Name)
	}
	if i.Kind != "" {
		if err := validateLine("ingredient kind", i.Kind); err != nil {
			return err
		}
		if strings.Contains(i.Kind, keyValueSeparator) {
			return invalidf("ingredient kind '%s' contains the separator '%s'", i.Kind, keyValueSeparator)
		}
	}
	if i.Quantity != nil {
		if err := i.Quantity.validate(); err != nil {
			return fmt.Errorf("quantity of '%s': %w", i.Name, err)
		}
	}

	parsed, err := ParseIngredient(i.String())
	if err != nil || !parsed.equal(i) {
		return invalidf("ingredient '%s' does not read back unchanged", i.String())
	}
	return nil
}

func (i Ingredient) equal(o Ingredient) bool {
	if i.Name != o.Name || i.Kind != o.Kind {
		return false
	}
	if i.Quantity == nil || o.Quantity == nil {
		return i.Quantity == o.Quantity
	}
	return *i.Quantity == *o.Quantity
}

func (q Quantity) validate() error {
	switch v := q.Value.(type) {
	case nil:
		return invalidf("quantity has no value")
	case Decimal:
		if int(v.Scale) < len(strconv.FormatUint(uint64(v.Frac), 10)) {
			return invalidf("decimal '%d.%d' has a scale below its digits", v.Int, v.Frac)
		}
	case Fraction:
		if v.Denom == 0 {
			return invalidf("fraction denominator must not be zero")
		}
	}

	if q.Unit != "" {
		if err := validateLine("unit", q.Unit); err != nil {
			return err
		}
		if strings.HasPrefix(q.Unit, "(") || strings.Contains(q.Unit, " (") {
			return invalidf("unit '%s' would be read as a note", q.Unit)
		}
		if _, ok := q.Value.(Integer); ok && startsWithFraction(q.Unit) {
			return invalidf("unit '%s' would be read as part of a mixed number", q.Unit)
		}
	}
	if q.Note != "" {
		if err := validateLine("note", q.Note); err != nil {
			return err
		}
	}
	return nil
}

// startsWithFraction reports whether the first word of s is shaped like a
// fraction, valid or not.
func startsWithFraction(s string) bool {
	head, _, _ := strings.Cut(s, " ")
	_, ok, err := parseFraction(head)
	return ok || err != nil
}

func validateList[T any](l List[T], check func(T) error) error {
	switch l.Kind {
	case BasicList:
		return checkAll(l.Items, check)
	case SectionedList:
	default:
		return invalidf("unknown list kind %d", l.Kind)
	}

	if len(l.Sections) == 0 {
		return invalidf("sectioned list must have at least one section")
	}
	for _, s := range l.Sections {
		if err := validateLine("section name", s.Name); err != nil {
			return err
		}
		if strings.HasPrefix(s.Name, bulletPrefix) {
			return invalidf("section name '%s' would be read as a list item", s.Name)
		}
		if err := checkAll(s.Items, check); err != nil {
			return err
		}
	}
	return nil
}

func checkAll[T any](items []T, check func(T) error) error {
	var errs []error
	for _, item := range items {
		if err := check(item); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
