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

// Package cli implements the potator command-line interface.
//
// # Overview
//
// potator keeps one directory per recipe below the recipe directory. Each
// directory holds a plain text recipe file named after the directory and an
// optional image. The directory name follows the recipe title; titles that
// map to the same name are numbered ("Soup", "Soup (2)").
//
// # Commands
//
// new - Create a recipe from the default recipe and open it in the editor:
//
//	potator new [--image FILE] [--no-edit] [TITLE]
//
// edit - Edit a recipe, renaming its directory if the title changed:
//
//	potator edit [--set-image FILE] [--no-edit] TITLE
//
// delete - Delete a recipe directory:
//
//	potator delete TITLE
//
// list - List recipe titles or file names:
//
//	potator list [--files] [--tag TAG]... [--format json|yaml|table]
//
// build - Render all recipes into a static site:
//
//	potator build [--template NAME] [--template-dir DIR] [--checksums] \
//	  [--metrics-file FILE] [--report FILE] OUTPUT_DIR
//
// export - Write all recipes and images as structured data:
//
//	potator export [--format json|yaml] OUTPUT_DIR
//
// info - Show version and directory information:
//
//	potator info
//
// # Global Flags
//
//	--config-dir   Config directory (env POTATOR_CONFIG_DIR)
//	--recipe-dir   Recipe directory override (env POTATOR_RECIPE_DIR)
//	--log-level    Log level: debug, info, warn, error (env LOG_LEVEL)
//
// The config directory is created with default files on first use, see
// package config.
//
// # Exit Codes
//
//	0  Success
//	1  Internal error
//	2  Invalid request (bad arguments, invalid recipe or config)
//	3  Recipe, template or file not found
//	4  Output already exists
//	5  Timeout
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/sweetpotator/potator/pkg/cli.version=1.0.0'"
package cli
