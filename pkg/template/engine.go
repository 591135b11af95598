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

package template

import (
	"bytes"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sweetpotator/potator/pkg/defaults"
	"github.com/sweetpotator/potator/pkg/serializer"
)

// ErrMissingRecipeTemplate is returned when a template directory lacks the
// recipe template.
var ErrMissingRecipeTemplate = errors.New("missing recipe template")

// Options select how a template directory is loaded.
type Options struct {
	// Extension of template and output files, without the dot.
	Extension string
	// Escape selects html/template over text/template.
	Escape bool
	// Language selects lang/<Language>.yaml.
	Language string
}

type executor interface {
	ExecuteTemplate(w io.Writer, name string, data any) error
}

// Engine renders the templates of one template directory.
type Engine struct {
	dir     string
	opts    Options
	set     executor
	names   map[string]struct{}
	lang    map[string]any
	context map[string]any
}

// New loads the template directory dir. The context entries are available
// in every render.
func New(dir string, opts Options, context map[string]any) (*Engine, error) {
	opts.Extension = strings.TrimPrefix(opts.Extension, ".")
	if opts.Extension == "" {
		return nil, fmt.Errorf("template extension must not be empty")
	}
	if opts.Language == "" {
		opts.Language = defaults.DefaultLanguage
	}

	files, err := templateFiles(filepath.Join(dir, defaults.TemplateFilesDir), opts.Extension)
	if err != nil {
		return nil, err
	}
	if _, ok := files[defaults.RecipeTemplateName]; !ok {
		return nil, fmt.Errorf("%w %q in %s", ErrMissingRecipeTemplate,
			defaults.RecipeTemplateName+"."+opts.Extension, filepath.Join(dir, defaults.TemplateFilesDir))
	}

	set, err := parse(files, opts)
	if err != nil {
		return nil, err
	}

	lang, err := loadLanguage(dir, opts.Language)
	if err != nil {
		return nil, err
	}

	names := make(map[string]struct{}, len(files))
	for name := range files {
		names[name] = struct{}{}
	}

	slog.Debug("templates loaded", "dir", dir, "count", len(files), "escape", opts.Escape)

	return &Engine{
		dir:     dir,
		opts:    opts,
		set:     set,
		names:   names,
		lang:    lang,
		context: maps.Clone(context),
	}, nil
}

// templateFiles maps template names to file contents.
func templateFiles(root, ext string) (map[string]string, error) {
	files := make(map[string]string)
	suffix := "." + ext
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(strings.TrimSuffix(rel, suffix))] = string(content)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}
	return files, nil
}

func parse(files map[string]string, opts Options) (executor, error) {
	if opts.Escape {
		set := htmltemplate.New("").Funcs(funcMap(true))
		for name, content := range files {
			if _, err := set.New(name).Parse(content); err != nil {
				return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
			}
		}
		return set, nil
	}

	set := texttemplate.New("").Funcs(funcMap(false))
	for name, content := range files {
		if _, err := set.New(name).Parse(content); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
	}
	return set, nil
}

func loadLanguage(dir, language string) (map[string]any, error) {
	path := filepath.Join(dir, defaults.LanguageDir, language+".yaml")
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no language file", "path", path)
		return map[string]any{}, nil
	}
	lang, err := serializer.FromFile[map[string]any](path)
	if err != nil {
		return nil, err
	}
	if *lang == nil {
		return map[string]any{}, nil
	}
	return *lang, nil
}

var titleCaser = cases.Title(language.English)

func funcMap(escape bool) map[string]any {
	return map[string]any{
		"markdown": func(s string) (any, error) {
			var buf bytes.Buffer
			if err := goldmark.Convert([]byte(s), &buf); err != nil {
				return nil, err
			}
			if escape {
				// goldmark drops raw HTML unless configured otherwise
				return htmltemplate.HTML(buf.String()), nil //nolint:gosec
			}
			return buf.String(), nil
		},
		"join":  strings.Join,
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"title": titleCaser.String,
	}
}

// Extension returns the extension of rendered files, without the dot.
func (e *Engine) Extension() string {
	return e.opts.Extension
}

// Dir returns the template directory.
func (e *Engine) Dir() string {
	return e.dir
}

// Has reports whether a template called name was loaded.
func (e *Engine) Has(name string) bool {
	_, ok := e.names[name]
	return ok
}

// HasIndex reports whether the index template was loaded.
func (e *Engine) HasIndex() bool {
	return e.Has(defaults.IndexTemplateName)
}

// StaticDir returns the static directory of the template, or "" if there is
// none.
func (e *Engine) StaticDir() string {
	dir := filepath.Join(e.dir, defaults.StaticDir)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return ""
	}
	return dir
}

// Render executes the template name with data merged with the language
// strings under "lang" and the engine context. The engine context wins over
// both for keys they share.
func (e *Engine) Render(w io.Writer, name string, data map[string]any) error {
	if !e.Has(name) {
		return fmt.Errorf("template %q not found", name)
	}

	merged := make(map[string]any, len(e.context)+len(data)+1)
	maps.Copy(merged, data)
	merged["lang"] = e.lang
	maps.Copy(merged, e.context)

	if err := e.set.ExecuteTemplate(w, name, merged); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return nil
}

// RenderRecipe executes the recipe template.
func (e *Engine) RenderRecipe(w io.Writer, data map[string]any) error {
	return e.Render(w, defaults.RecipeTemplateName, data)
}

// RenderIndex executes the index template.
func (e *Engine) RenderIndex(w io.Writer, data map[string]any) error {
	return e.Render(w, defaults.IndexTemplateName, data)
}
