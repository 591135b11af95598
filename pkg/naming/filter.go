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

package naming

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/flytam/filenamify"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Replacement is put in place of characters that cannot appear in a file name.
const Replacement = "_"

// TextFilter maps a text to a derived text.
type TextFilter interface {
	Filter(text string) string
}

// FilterFunc adapts a plain function to TextFilter.
type FilterFunc func(string) string

// Filter calls f(text).
func (f FilterFunc) Filter(text string) string {
	return f(text)
}

// Filter names accepted by ParseFilter.
const (
	FilterSanitize = "sanitize"
	FilterSlugify  = "slugify"
)

// ParseFilter returns the filter registered under name. An empty name
// selects Sanitize.
func ParseFilter(name string) (TextFilter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FilterSanitize:
		return Sanitize, nil
	case FilterSlugify:
		return Slugify, nil
	default:
		return nil, fmt.Errorf("unknown file name filter %q, supported: %s, %s", name, FilterSanitize, FilterSlugify)
	}
}

// maxNameLength leaves room for a " (n)" suffix and a file extension within
// the 255 byte limit of common file systems.
const maxNameLength = 200

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// Sanitize trims the text and replaces every character or sequence that is
// not portable in a file name with Replacement. Trailing dots are dropped
// since Windows does not keep them.
var Sanitize TextFilter = FilterFunc(func(text string) string {
	name, err := filenamify.Filenamify(strings.TrimSpace(text), filenamify.Options{
		Replacement: Replacement,
		MaxLength:   maxNameLength,
	})
	if err != nil {
		slog.Warn("failed to sanitize file name", "text", text, "error", err)
		return Replacement
	}
	name = strings.TrimRight(truncate(strings.ToValidUTF8(name, ""), maxNameLength), ". ")
	if name == "" {
		return Replacement
	}
	return name
})

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Slugify lower cases the text, strips diacritics and joins the remaining
// ASCII words with dashes.
var Slugify TextFilter = FilterFunc(func(text string) string {
	stripMarks := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(stripMarks, text)
	if err != nil {
		s = text
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
})
