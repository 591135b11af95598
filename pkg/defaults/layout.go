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

package defaults

import (
	"os"
	"time"
)

// Store layout.
const (
	// RecipeFileExtension is the extension of recipe files, without the dot.
	RecipeFileExtension = "recipe"

	// NumberPrefix and NumberSuffix wrap the number that disambiguates
	// recipes sharing a title, as in "Soup (2)".
	NumberPrefix = " ("
	NumberSuffix = ")"

	// DirMode is the permission of directories created by potator.
	DirMode os.FileMode = 0o755

	// FileMode is the permission of files created by potator.
	FileMode os.FileMode = 0o644
)

// Config layout.
const (
	// AppName is used for the config directory and log attributes.
	AppName = "potator"

	// ConfigFileName is the name of the config file inside the config dir.
	ConfigFileName = "config.yaml"

	// DefaultRecipeFileName holds the recipe new recipes start from.
	DefaultRecipeFileName = "default.recipe"

	// TemplateDirName is the directory holding one sub directory per template.
	TemplateDirName = "templates"

	// DefaultTemplateName is the template used when none is given.
	DefaultTemplateName = "html"

	// DefaultLanguage selects the language file of a template.
	DefaultLanguage = "en"

	// UntitledRecipe is the title used when a recipe is created without one.
	UntitledRecipe = "Untitled"
)

// Template layout inside a template directory.
const (
	// TemplateFilesDir holds the template files.
	TemplateFilesDir = "templates"

	// LanguageDir holds language files named "<language>.yaml".
	LanguageDir = "lang"

	// StaticDir is copied verbatim into the output.
	StaticDir = "static"

	// RecipeTemplateName is required in every template.
	RecipeTemplateName = "recipe"

	// IndexTemplateName is optional.
	IndexTemplateName = "index"
)

// Site layout written by the generator and the exporter.
const (
	// SiteRecipeDir receives one rendered page per recipe.
	SiteRecipeDir = "recipes"

	// SiteImageDir receives recipe images.
	SiteImageDir = "images"

	// ChecksumFileName lists SHA256 digests of generated files.
	ChecksumFileName = "checksums.txt"

	// ExportFileBaseName is the exported recipe collection without extension.
	ExportFileBaseName = "recipes"
)

// Timeouts.
const (
	// BuildTimeout bounds a full site build.
	BuildTimeout = 10 * time.Minute
)
