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

package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetpotator/potator/pkg/recipe"
)

func TestLoadAll(t *testing.T) {
	root := t.TempDir()

	good, err := FromTitle(root, "Soup")
	require.NoError(t, err)
	require.NoError(t, good.Store(newTestRecipe(t, "Soup")))

	bad := New(root, "Corrupt")
	require.NoError(t, os.Mkdir(bad.Path(), 0o755))
	writeFile(t, bad.RecipePath(), "Corrupt\n\nFoo: bar\n")

	result, err := LoadAll(root)
	require.NoError(t, err)

	require.Len(t, result.Entries, 1)
	assert.Equal(t, "Soup", result.Entries[0].Recipe.Title)

	require.Len(t, result.Failures, 1)
	assert.Equal(t, "Corrupt", result.Failures[0].Directory.Name())
	var perr *recipe.ParseError
	assert.True(t, errors.As(result.Failures[0].Err, &perr))
	assert.Equal(t, good.Path(), result.Entries[0].Directory.Path())
}

func TestLoadAllMissingRecipeFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "Empty"), 0o755))

	result, err := LoadAll(root)
	require.NoError(t, err)
	assert.Empty(t, result.Entries)
	require.Len(t, result.Failures, 1)
	assert.ErrorIs(t, result.Failures[0].Err, os.ErrNotExist)
}

func TestLoadAllMissingRoot(t *testing.T) {
	_, err := LoadAll(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
