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
	"strconv"
)

// UniqueNameFinder returns each requested name at most once. A repeated name
// gets a number starting at 2 wrapped in prefix and suffix.
type UniqueNameFinder struct {
	names  map[string]struct{}
	prefix string
	suffix string
}

// NewUniqueNameFinder creates a finder numbering repeats as
// "<name><prefix><n><suffix>".
func NewUniqueNameFinder(prefix, suffix string) *UniqueNameFinder {
	return &UniqueNameFinder{
		names:  make(map[string]struct{}),
		prefix: prefix,
		suffix: suffix,
	}
}

// Find returns name if unused, or the first free numbered variant of it.
func (f *UniqueNameFinder) Find(name string) string {
	if f.claim(name) {
		return name
	}
	for i := 2; ; i++ {
		candidate := Numbered(name, f.prefix, f.suffix, i)
		if f.claim(candidate) {
			return candidate
		}
	}
}

func (f *UniqueNameFinder) claim(name string) bool {
	if _, taken := f.names[name]; taken {
		return false
	}
	f.names[name] = struct{}{}
	return true
}

// Numbered returns "<name><prefix><n><suffix>".
func Numbered(name, prefix, suffix string, n int) string {
	return name + prefix + strconv.Itoa(n) + suffix
}
