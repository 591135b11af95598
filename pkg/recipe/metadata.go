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
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Metadata keys as they appear in recipe files.
const (
	KeyYield  = "Yield"
	KeyTime   = "Time"
	KeyAuthor = "Author"
	KeyBook   = "Book"
	KeyLink   = "Link"
	KeyTags   = "Tags"
)

const (
	keyValueSeparator = ": "
	linkSeparator     = " > "
	tagSeparator      = ", "
)

// Yield is how much a recipe makes, e.g. "4 servings".
type Yield struct {
	Value uint32 `json:"value" yaml:"value"`
	Unit  string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// String returns the canonical form.
func (y Yield) String() string {
	if y.Unit == "" {
		return strconv.FormatUint(uint64(y.Value), 10)
	}
	return fmt.Sprintf("%d %s", y.Value, y.Unit)
}

// ParseYield parses "<N>[ <unit>]" with N greater than zero.
func ParseYield(s string) (Yield, error) {
	head, unit, _ := strings.Cut(strings.TrimSpace(s), " ")
	value, err := strconv.ParseUint(head, 10, 32)
	if err != nil || value == 0 {
		return Yield{}, parseErrorf("metadata value for key '%s' must be a positive number", KeyYield)
	}
	return Yield{Value: uint32(value), Unit: strings.TrimSpace(unit)}, nil
}

// Duration is the total time a recipe takes. Minutes are kept below 60.
type Duration struct {
	Hours   uint32 `json:"hours" yaml:"hours"`
	Minutes uint32 `json:"minutes" yaml:"minutes"`
}

// NewDuration normalizes minutes into hours. A zero duration is an error.
func NewDuration(hours, minutes uint32) (Duration, error) {
	total := uint64(hours) + uint64(minutes/60)
	if total > math.MaxUint32 {
		return Duration{}, parseErrorf("duration is out of range")
	}
	d := Duration{Hours: uint32(total), Minutes: minutes % 60}
	if d.Hours == 0 && d.Minutes == 0 {
		return Duration{}, parseErrorf("duration must be greater than zero")
	}
	return d, nil
}

// String returns "1h 30m", "1h" or "30m".
func (d Duration) String() string {
	switch {
	case d.Hours > 0 && d.Minutes > 0:
		return fmt.Sprintf("%dh %dm", d.Hours, d.Minutes)
	case d.Hours > 0:
		return fmt.Sprintf("%dh", d.Hours)
	default:
		return fmt.Sprintf("%dm", d.Minutes)
	}
}

// ParseDuration parses "<N>h", "<N>m" or "<N>h <N>m".
func ParseDuration(s string) (Duration, error) {
	fields := strings.Fields(s)
	var hours, minutes uint32
	var err error
	switch len(fields) {
	case 1:
		if strings.HasSuffix(fields[0], "h") {
			hours, err = parseDurationPart(fields[0], "h")
		} else {
			minutes, err = parseDurationPart(fields[0], "m")
		}
	case 2:
		if hours, err = parseDurationPart(fields[0], "h"); err == nil {
			minutes, err = parseDurationPart(fields[1], "m")
		}
	default:
		err = parseErrorf("invalid duration '%s'", s)
	}
	if err != nil {
		return Duration{}, err
	}
	return NewDuration(hours, minutes)
}

func parseDurationPart(s, unit string) (uint32, error) {
	digits, ok := strings.CutSuffix(s, unit)
	if !ok {
		return 0, parseErrorf("duration part '%s' must end with '%s'", s, unit)
	}
	value, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, parseErrorf("invalid duration part '%s'", s)
	}
	return uint32(value), nil
}

// SourceKind identifies where a recipe comes from.
type SourceKind string

const (
	// SourceAuthor names a person.
	SourceAuthor SourceKind = "author"
	// SourceBook names a book.
	SourceBook SourceKind = "book"
	// SourceLink names a web page and its URL.
	SourceLink SourceKind = "link"
)

// Source attributes a recipe. URL is only set for links.
type Source struct {
	Kind SourceKind `json:"kind" yaml:"kind"`
	Name string     `json:"name" yaml:"name"`
	URL  string     `json:"url,omitempty" yaml:"url,omitempty"`
}

// Key returns the metadata key the source is written under.
func (s Source) Key() string {
	switch s.Kind {
	case SourceLink:
		return KeyLink
	case SourceBook:
		return KeyBook
	default:
		return KeyAuthor
	}
}

// Value returns the text written after the key.
func (s Source) Value() string {
	if s.Kind == SourceLink {
		return s.Name + linkSeparator + s.URL
	}
	return s.Name
}

// ParseLink parses "<name> > <url>".
func ParseLink(s string) (Source, error) {
	name, url, ok := strings.Cut(s, linkSeparator)
	if !ok {
		return Source{}, parseErrorf("missing link separator '%s'", linkSeparator)
	}
	name, url = strings.TrimSpace(name), strings.TrimSpace(url)
	if name == "" {
		return Source{}, emptyFieldError("link name")
	}
	if url == "" {
		return Source{}, emptyFieldError("link url")
	}
	return Source{Kind: SourceLink, Name: name, URL: url}, nil
}

// Metadata holds the recipe level facts of the metadata block.
type Metadata struct {
	Yields   Yield     `json:"yields" yaml:"yields"`
	Duration *Duration `json:"duration,omitempty" yaml:"duration,omitempty"`
	Source   *Source   `json:"source,omitempty" yaml:"source,omitempty"`
	Tags     []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Format writes one "key: value" line per present field in the order
// Yield, Time, source, Tags.
func (m Metadata) Format(w io.Writer) error {
	lines := []string{KeyYield + keyValueSeparator + m.Yields.String()}
	if m.Duration != nil {
		lines = append(lines, KeyTime+keyValueSeparator+m.Duration.String())
	}
	if m.Source != nil {
		lines = append(lines, m.Source.Key()+keyValueSeparator+m.Source.Value())
	}
	if len(m.Tags) > 0 {
		lines = append(lines, KeyTags+keyValueSeparator+strings.Join(m.Tags, tagSeparator))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

type metadataEntry struct {
	key   string
	value string
}

// ParseMetadata parses a block of "key: value" lines.
func ParseMetadata(lines []string) (Metadata, error) {
	entries := make([]metadataEntry, 0, len(lines))
	values := make(map[string]string, len(lines))
	for _, line := range lines {
		key, value, err := parseMapping(line)
		if err != nil {
			return Metadata{}, err
		}
		if _, dup := values[key]; dup {
			return Metadata{}, parseErrorf("duplicate metadata key '%s'", key)
		}
		values[key] = value
		entries = append(entries, metadataEntry{key: key, value: value})
	}

	var m Metadata
	yieldValue, ok := values[KeyYield]
	if !ok {
		return Metadata{}, parseErrorf("missing metadata key '%s'", KeyYield)
	}
	yield, err := ParseYield(yieldValue)
	if err != nil {
		return Metadata{}, err
	}
	m.Yields = yield

	if value, ok := values[KeyTime]; ok {
		d, err := ParseDuration(value)
		if err != nil {
			return Metadata{}, err
		}
		m.Duration = &d
	}

	source, err := parseSource(values)
	if err != nil {
		return Metadata{}, err
	}
	m.Source = source

	if value, ok := values[KeyTags]; ok {
		for _, tag := range strings.Split(value, tagSeparator) {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				return Metadata{}, emptyFieldError("tag")
			}
			m.Tags = append(m.Tags, tag)
		}
	}

	for _, e := range entries {
		switch e.key {
		case KeyYield, KeyTime, KeyAuthor, KeyBook, KeyLink, KeyTags:
		default:
			return Metadata{}, parseErrorf("unknown metadata key '%s'", e.key)
		}
	}
	return m, nil
}

// parseSource picks the source by priority Link, Author, Book and rejects
// any second source key.
func parseSource(values map[string]string) (*Source, error) {
	var source *Source
	for _, key := range []string{KeyLink, KeyAuthor, KeyBook} {
		value, ok := values[key]
		if !ok {
			continue
		}
		if source != nil {
			return nil, parseErrorf("metadata key '%s' conflicts with '%s'", key, source.Key())
		}
		var s Source
		switch key {
		case KeyLink:
			link, err := ParseLink(value)
			if err != nil {
				return nil, err
			}
			s = link
		case KeyAuthor:
			s = Source{Kind: SourceAuthor, Name: value}
		case KeyBook:
			s = Source{Kind: SourceBook, Name: value}
		}
		source = &s
	}
	return source, nil
}

func parseMapping(line string) (string, string, error) {
	key, value, ok := strings.Cut(strings.TrimSpace(line), keyValueSeparator)
	if !ok {
		return "", "", parseErrorf("missing key-value separator '%s' in metadata", keyValueSeparator)
	}
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)
	if key == "" {
		return "", "", emptyFieldError("metadata key")
	}
	if value == "" {
		return "", "", emptyFieldError("metadata value")
	}
	return key, value, nil
}
