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
	"bufio"
	"io"
	"strings"
)

const maxLineSize = 1024 * 1024

// Reader splits a text stream into blocks of non-empty lines separated by
// one or more blank lines.
type Reader struct {
	scanner *bufio.Scanner
	trim    bool
}

// NewReader creates a Reader over r. When trim is set, every line is trimmed
// of surrounding whitespace before it is checked for blankness, so lines
// holding only whitespace separate blocks too.
func NewReader(r io.Reader, trim bool) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &Reader{
		scanner: scanner,
		trim:    trim,
	}
}

// NextBlock returns the next block of lines. It returns nil with a nil error
// once the stream holds no more content. Read errors are returned as is.
func (r *Reader) NextBlock() ([]string, error) {
	var block []string
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if r.trim {
			line = strings.TrimSpace(line)
		}
		if line == "" {
			if len(block) > 0 {
				return block, nil
			}
			continue
		}
		block = append(block, line)
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	return block, nil
}
