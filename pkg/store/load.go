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
	"log/slog"

	"github.com/sweetpotator/potator/pkg/recipe"
)

// Entry is a successfully loaded recipe.
type Entry struct {
	Directory *Directory
	Recipe    *recipe.Recipe
}

// Failure is a recipe directory that could not be loaded.
type Failure struct {
	Directory *Directory
	Err       error
}

// LoadResult holds the outcome of LoadAll.
type LoadResult struct {
	Entries  []Entry
	Failures []Failure
}

// LoadAll loads every recipe below root. A recipe that fails to load is
// recorded as a failure and the remaining recipes are still loaded. Only a
// failure to list root itself is returned as an error.
func LoadAll(root string) (*LoadResult, error) {
	dirs, err := ListAll(root)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{
		Entries: make([]Entry, 0, len(dirs)),
	}
	for _, dir := range dirs {
		rec, err := dir.Load()
		if err != nil {
			slog.Warn("failed to load recipe", "name", dir.Name(), "error", err)
			result.Failures = append(result.Failures, Failure{Directory: dir, Err: err})
			continue
		}
		result.Entries = append(result.Entries, Entry{Directory: dir, Recipe: rec})
	}
	return result, nil
}
