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

// Package store manages the on-disk recipe collection.
//
// Every recipe lives in its own directory below a root directory. The
// directory name is derived from the recipe title with naming.Sanitize and
// the recipe file inside it carries the same stem:
//
//	recipes/
//	  Soup/
//	    Soup.recipe
//	    Soup.jpg
//	  Soup (2)/
//	    Soup (2).recipe
//
// Two recipes with the same title are told apart by a number suffix. The
// suffix is picked when the directory is created and when a recipe is
// renamed, never in any other situation.
//
// # Usage
//
//	dir, err := store.FromTitle(root, rec.Title)
//	if err != nil {
//	    return err
//	}
//	if err := dir.Store(rec); err != nil {
//	    return err
//	}
//	fmt.Println(dir.Name()) // "Soup (2)" if "Soup" was taken
//
// LoadAll reads every recipe below root. Recipes that fail to load are
// reported in the result and do not abort the batch.
//
// The store is not safe for concurrent use by multiple processes.
package store
