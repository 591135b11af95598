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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderNextBlock(t *testing.T) {
	text := strings.Join([]string{
		"",
		"",
		"block 1, line 1",
		"block 1, line 2",
		" ",
		"",
		"",
		" ",
		"",
		"block 2, line 1",
		"",
		"",
	}, "\n")

	reader := NewReader(strings.NewReader(text), false)

	block, err := reader.NextBlock()
	require.NoError(t, err)
	assert.Equal(t, []string{"block 1, line 1", "block 1, line 2", " "}, block)

	block, err = reader.NextBlock()
	require.NoError(t, err)
	assert.Equal(t, []string{" "}, block)

	block, err = reader.NextBlock()
	require.NoError(t, err)
	assert.Equal(t, []string{"block 2, line 1"}, block)

	block, err = reader.NextBlock()
	require.NoError(t, err)
	assert.Nil(t, block)
}

func TestReaderTrimmed(t *testing.T) {
	text := strings.Join([]string{" ", "block", " ", "", " ", ""}, "\n")
	reader := NewReader(strings.NewReader(text), true)

	block, err := reader.NextBlock()
	require.NoError(t, err)
	assert.Equal(t, []string{"block"}, block)

	block, err = reader.NextBlock()
	require.NoError(t, err)
	assert.Nil(t, block)
}

func TestReaderCRLF(t *testing.T) {
	reader := NewReader(strings.NewReader("a\r\nb\r\n\r\nc"), true)

	block, err := reader.NextBlock()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, block)

	block, err = reader.NextBlock()
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, block)
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestReaderPropagatesReadErrors(t *testing.T) {
	readErr := errors.New("disk on fire")
	reader := NewReader(failingReader{err: readErr}, true)

	_, err := reader.NextBlock()
	require.ErrorIs(t, err, readErr)
}
