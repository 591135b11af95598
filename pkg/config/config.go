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

package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sweetpotator/potator/pkg/defaults"
	"github.com/sweetpotator/potator/pkg/naming"
	"github.com/sweetpotator/potator/pkg/recipe"
	"github.com/sweetpotator/potator/pkg/serializer"
	"github.com/sweetpotator/potator/pkg/template"
)

//go:embed resources
var resources embed.FS

const resourceRoot = "resources"

var (
	// ErrUnknownTemplate is returned for template names missing from the config.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrInvalidConfig is returned by Validate.
	ErrInvalidConfig = errors.New("invalid config")
)

// Template configures one template directory.
type Template struct {
	// Extension of generated files, without the dot.
	Extension string `yaml:"extension"`
	// Escape selects HTML escaping. Defaults to true.
	Escape *bool `yaml:"escape,omitempty"`
	// FileNameFilter derives page names from titles: sanitize or slugify.
	FileNameFilter string `yaml:"file_name_filter,omitempty"`
	// Language selects the language file.
	Language string `yaml:"language,omitempty"`
}

// EscapeEnabled reports whether output is HTML escaped.
func (t Template) EscapeEnabled() bool {
	return t.Escape == nil || *t.Escape
}

// Options returns the engine options of the template.
func (t Template) Options() template.Options {
	lang := t.Language
	if lang == "" {
		lang = defaults.DefaultLanguage
	}
	return template.Options{
		Extension: t.Extension,
		Escape:    t.EscapeEnabled(),
		Language:  lang,
	}
}

// Filter returns the configured file name filter.
func (t Template) Filter() (naming.TextFilter, error) {
	return naming.ParseFilter(t.FileNameFilter)
}

// Config holds the settings of config.yaml.
type Config struct {
	// RecipeDir is the recipe store root. Load resolves it to an absolute
	// or config dir relative path.
	RecipeDir string `yaml:"recipe_dir"`
	// Editor is the command line used to edit recipes.
	Editor []string `yaml:"editor"`
	// ImageFileExtensions are the recognized image extensions.
	ImageFileExtensions []string `yaml:"image_file_extensions"`
	// Templates maps template names to their settings.
	Templates map[string]Template `yaml:"templates"`

	dir string
}

// DefaultDir returns the default config directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(base, defaults.AppName), nil
}

// Default returns the embedded default config for dir, with paths unresolved.
func Default(dir string) (*Config, error) {
	data, err := resources.ReadFile(resourceRoot + "/" + defaults.ConfigFileName)
	if err != nil {
		return nil, err
	}
	cfg := &Config{dir: dir}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode default config: %w", err)
	}
	return cfg, nil
}

// Load reads config.yaml from dir over the default config. A missing file
// yields the defaults.
func Load(dir string) (*Config, error) {
	cfg, err := Default(dir)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, defaults.ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		if err := serializer.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	recipeDir, err := ResolvePath(dir, cfg.RecipeDir)
	if err != nil {
		return nil, err
	}
	cfg.RecipeDir = recipeDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("config loaded", "dir", dir, "recipe_dir", cfg.RecipeDir)
	return cfg, nil
}

// ResolvePath expands a leading "~/" to the home directory and resolves
// relative paths against base.
func ResolvePath(base, path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand %q: %w", path, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}
	return filepath.Clean(path), nil
}

// Validate checks the settings for values no command can work with.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.RecipeDir) == "" {
		errs = append(errs, errors.New("recipe_dir must not be empty"))
	}
	if len(c.Editor) == 0 || strings.TrimSpace(c.Editor[0]) == "" {
		errs = append(errs, errors.New("editor must name a command"))
	}
	for _, ext := range c.ImageFileExtensions {
		if strings.Trim(ext, ". ") == "" {
			errs = append(errs, errors.New("image_file_extensions must not contain empty entries"))
			break
		}
	}
	for _, name := range c.TemplateNames() {
		t := c.Templates[name]
		if strings.Trim(t.Extension, ". ") == "" {
			errs = append(errs, fmt.Errorf("template %q: extension must not be empty", name))
		}
		if _, err := t.Filter(); err != nil {
			errs = append(errs, fmt.Errorf("template %q: %w", name, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.dir
}

// TemplateNames returns the configured template names, sorted.
func (c *Config) TemplateNames() []string {
	return slices.Sorted(maps.Keys(c.Templates))
}

// Template returns the settings of the template called name.
func (c *Config) Template(name string) (Template, error) {
	t, ok := c.Templates[name]
	if !ok {
		return Template{}, fmt.Errorf("%w %q, configured: %s", ErrUnknownTemplate, name, strings.Join(c.TemplateNames(), ", "))
	}
	return t, nil
}

// TemplateDir returns the directory of the template called name.
func (c *Config) TemplateDir(name string) string {
	return filepath.Join(c.dir, defaults.TemplateDirName, name)
}

// Engine loads the template called name from its template directory.
func (c *Config) Engine(name string, context map[string]any) (*template.Engine, error) {
	return c.EngineFrom(name, c.TemplateDir(name), context)
}

// EngineFrom loads dir with the settings of the template called name.
func (c *Config) EngineFrom(name, dir string, context map[string]any) (*template.Engine, error) {
	t, err := c.Template(name)
	if err != nil {
		return nil, err
	}
	return template.New(dir, t.Options(), context)
}

// DefaultRecipePath returns the path of the default recipe file.
func (c *Config) DefaultRecipePath() string {
	return filepath.Join(c.dir, defaults.DefaultRecipeFileName)
}

// DefaultRecipe parses the default recipe of the config directory, or the
// embedded one if the file does not exist.
func (c *Config) DefaultRecipe() (*recipe.Recipe, error) {
	data, err := os.ReadFile(c.DefaultRecipePath())
	if errors.Is(err, fs.ErrNotExist) {
		data, err = resources.ReadFile(resourceRoot + "/" + defaults.DefaultRecipeFileName)
	}
	if err != nil {
		return nil, err
	}

	rec, err := recipe.Parse(bytes.NewReader(data))
	if err != nil {
		var perr *recipe.ParseError
		if errors.As(err, &perr) {
			perr.Path = defaults.DefaultRecipeFileName
		}
		return nil, err
	}
	return rec, nil
}
