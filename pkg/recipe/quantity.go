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
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// QuantityValue is the numeric part of an ingredient quantity. It is one of
// Integer, Decimal or Fraction.
type QuantityValue interface {
	fmt.Stringer
	quantityValue()
}

// Integer is a whole number quantity such as "3".
type Integer uint32

// Decimal is a decimal quantity such as "0.5". Scale is the number of
// fractional digits as written, so "0.05" keeps its leading zero.
type Decimal struct {
	Int   uint16 `json:"int" yaml:"int"`
	Frac  uint16 `json:"frac" yaml:"frac"`
	Scale uint8  `json:"scale" yaml:"scale"`
}

// Fraction is a fractional quantity such as "3/2". Mixed numbers like
// "1 1/2" are folded into the numerator.
type Fraction struct {
	Numer uint8 `json:"numer" yaml:"numer"`
	Denom uint8 `json:"denom" yaml:"denom"`
}

func (Integer) quantityValue()  {}
func (Decimal) quantityValue()  {}
func (Fraction) quantityValue() {}

func (i Integer) String() string {
	return strconv.FormatUint(uint64(i), 10)
}

func (d Decimal) String() string {
	frac := strconv.FormatUint(uint64(d.Frac), 10)
	if pad := int(d.Scale) - len(frac); pad > 0 {
		frac = strings.Repeat("0", pad) + frac
	}
	return fmt.Sprintf("%d.%s", d.Int, frac)
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Numer, f.Denom)
}

// MarshalJSON encodes the value tagged with its kind, e.g. {"integer": 2}.
func (i Integer) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]uint32{"integer": uint32(i)})
}

// MarshalYAML encodes the value tagged with its kind.
func (i Integer) MarshalYAML() (any, error) {
	return map[string]uint32{"integer": uint32(i)}, nil
}

// MarshalJSON encodes the value tagged with its kind.
func (d Decimal) MarshalJSON() ([]byte, error) {
	type plain Decimal
	return json.Marshal(map[string]plain{"decimal": plain(d)})
}

// MarshalYAML encodes the value tagged with its kind.
func (d Decimal) MarshalYAML() (any, error) {
	type plain Decimal
	return map[string]plain{"decimal": plain(d)}, nil
}

// MarshalJSON encodes the value tagged with its kind.
func (f Fraction) MarshalJSON() ([]byte, error) {
	type plain Fraction
	return json.Marshal(map[string]plain{"fraction": plain(f)})
}

// MarshalYAML encodes the value tagged with its kind.
func (f Fraction) MarshalYAML() (any, error) {
	type plain Fraction
	return map[string]plain{"fraction": plain(f)}, nil
}

// addInteger folds a whole part into the fraction. It reports false when the
// numerator no longer fits.
func (f Fraction) addInteger(whole uint32) (Fraction, bool) {
	numer := uint64(whole)*uint64(f.Denom) + uint64(f.Numer)
	if numer > math.MaxUint8 {
		return Fraction{}, false
	}
	return Fraction{Numer: uint8(numer), Denom: f.Denom}, true
}

// parseUint distinguishes a shape mismatch (ok == false, err == nil) from a
// well-formed number that overflows bits (err != nil).
func parseUint(s string, bits int) (value uint64, ok bool, err error) {
	value, err = strconv.ParseUint(s, 10, bits)
	if err == nil {
		return value, true, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, false, err
	}
	return 0, false, nil
}

func parseInteger(s string) (Integer, bool, error) {
	value, ok, err := parseUint(s, 32)
	if err != nil {
		return 0, false, parseErrorf("integer is out of range")
	}
	return Integer(value), ok, nil
}

func parseDecimal(s string) (Decimal, bool, error) {
	intPart, fracPart, found := strings.Cut(s, ".")
	if !found {
		return Decimal{}, false, nil
	}
	intValue, intOK, intErr := parseUint(intPart, 16)
	fracValue, fracOK, fracErr := parseUint(fracPart, 16)
	// a malformed part means this is not a decimal at all
	if (!intOK && intErr == nil) || (!fracOK && fracErr == nil) {
		return Decimal{}, false, nil
	}
	if intErr != nil {
		return Decimal{}, false, parseErrorf("decimal integral part is out of range")
	}
	if fracErr != nil || len(fracPart) > math.MaxUint8 {
		return Decimal{}, false, parseErrorf("decimal fractional part is out of range")
	}
	return Decimal{
		Int:   uint16(intValue),
		Frac:  uint16(fracValue),
		Scale: uint8(len(fracPart)),
	}, true, nil
}

func parseFraction(s string) (Fraction, bool, error) {
	numerPart, denomPart, found := strings.Cut(s, "/")
	if !found {
		return Fraction{}, false, nil
	}
	numer, numerOK, numerErr := parseUint(numerPart, 8)
	denom, denomOK, denomErr := parseUint(denomPart, 8)
	if (!numerOK && numerErr == nil) || (!denomOK && denomErr == nil) {
		return Fraction{}, false, nil
	}
	if numerErr != nil {
		return Fraction{}, false, parseErrorf("fraction numerator is out of range")
	}
	if denomErr != nil {
		return Fraction{}, false, parseErrorf("fraction denominator is out of range")
	}
	if denom == 0 {
		return Fraction{}, false, parseErrorf("fraction denominator must not be zero")
	}
	return Fraction{Numer: uint8(numer), Denom: uint8(denom)}, true, nil
}

// ParseQuantityValue parses the leading value of s and returns it together
// with the unparsed remainder.
func ParseQuantityValue(s string) (QuantityValue, string, error) {
	head, rest, _ := strings.Cut(s, " ")

	integer, ok, err := parseInteger(head)
	if err != nil {
		return nil, "", err
	}
	if ok {
		fraction, mixedRest, mixed, err := parseMixedNumber(integer, rest)
		if err != nil {
			return nil, "", err
		}
		if mixed {
			return fraction, mixedRest, nil
		}
		return integer, rest, nil
	}

	decimal, ok, err := parseDecimal(head)
	if err != nil {
		return nil, "", err
	}
	if ok {
		return decimal, rest, nil
	}

	fraction, ok, err := parseFraction(head)
	if err != nil {
		return nil, "", err
	}
	if ok {
		return fraction, rest, nil
	}

	return nil, "", parseErrorf("invalid ingredient quantity value: '%s'", head)
}

func parseMixedNumber(whole Integer, s string) (Fraction, string, bool, error) {
	head, rest, _ := strings.Cut(strings.TrimLeft(s, " "), " ")
	fraction, ok, err := parseFraction(head)
	if err != nil || !ok {
		return Fraction{}, "", false, err
	}
	mixed, ok := fraction.addInteger(uint32(whole))
	if !ok {
		return Fraction{}, "", false, parseErrorf("mixed number fraction '%s' is out of range", head)
	}
	return mixed, rest, true, nil
}

// Quantity is an amount with an optional unit and an optional note.
type Quantity struct {
	Value QuantityValue `json:"value" yaml:"value"`
	Unit  string        `json:"unit,omitempty" yaml:"unit,omitempty"`
	Note  string        `json:"note,omitempty" yaml:"note,omitempty"`
}

// String returns the canonical form, e.g. "1 cup (packed)".
func (q Quantity) String() string {
	var sb strings.Builder
	if q.Value != nil {
		sb.WriteString(q.Value.String())
	}
	if q.Unit != "" {
		sb.WriteString(" ")
		sb.WriteString(q.Unit)
	}
	if q.Note != "" {
		sb.WriteString(" (")
		sb.WriteString(q.Note)
		sb.WriteString(")")
	}
	return sb.String()
}

// ParseQuantity parses "<value>[ <unit>][ (<note>)]".
func ParseQuantity(s string) (*Quantity, error) {
	value, rest, err := ParseQuantityValue(s)
	if err != nil {
		return nil, err
	}

	rest = strings.TrimSpace(rest)
	unit, note, hasNote := rest, "", false
	if after, ok := strings.CutPrefix(rest, "("); ok {
		unit, note, hasNote = "", after, true
	} else if before, after, ok := strings.Cut(rest, " ("); ok {
		unit, note, hasNote = before, after, true
	}
	if hasNote {
		inner, ok := strings.CutSuffix(note, ")")
		if !ok {
			return nil, parseErrorf("missing closing parenthesis of quantity note")
		}
		note = inner
	}

	return &Quantity{
		Value: value,
		Unit:  strings.TrimSpace(unit),
		Note:  strings.TrimSpace(note),
	}, nil
}
