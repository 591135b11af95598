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

// Package generator renders a recipe collection into a static site.
//
// The output directory receives:
//
//	recipes/<name>.<ext>   one page per recipe
//	images/<name>.<img>    the recipe image, if there is one
//	index.<ext>            when the template has an index template
//	static/                copy of the template static directory
//	checksums.txt          with WithChecksums
//
// Page names are derived from recipe titles with the configured
// naming.TextFilter. Titles mapping to the same name are numbered
// "name (2)", "name (3)" in recipe directory order.
//
// Recipes that fail to load are recorded in the Result and skipped.
//
// # Template Data
//
// The recipe template receives:
//
//	.recipe      *recipe.Recipe
//	.path        "recipes/<name>.<ext>"
//	.image_path  "images/<name>.<img>" or empty
//	.build_id    unique id of this build
//
// The index template receives:
//
//	.recipes  []IndexEntry sorted by title
//	.tags     distinct tags of all recipes, sorted
//	.build_id unique id of this build
//
// # Usage
//
//	gen := generator.New(engine,
//	    generator.WithFilter(naming.Slugify),
//	    generator.WithImageExtensions([]string{"jpg", "png"}),
//	    generator.WithChecksums(true),
//	)
//	result, err := gen.Generate(ctx, recipeDir, outputDir)
package generator
