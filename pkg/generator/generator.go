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

package generator

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sweetpotator/potator/pkg/checksum"
	"github.com/sweetpotator/potator/pkg/defaults"
	"github.com/sweetpotator/potator/pkg/naming"
	"github.com/sweetpotator/potator/pkg/store"
	"github.com/sweetpotator/potator/pkg/template"
)

// Generator renders recipe collections with one template.
type Generator struct {
	engine    *template.Engine
	filter    naming.TextFilter
	imageExts []string
	checksums bool
	buildID   string
}

// New creates a Generator rendering with engine.
func New(engine *template.Engine, opts ...Option) *Generator {
	g := &Generator{
		engine: engine,
		filter: naming.Sanitize,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// run holds the state of a single Generate call.
type run struct {
	*Generator
	outputDir string
	result    *Result
}

// Generate renders every recipe below recipeDir into outputDir.
func (g *Generator) Generate(ctx context.Context, recipeDir, outputDir string) (*Result, error) {
	start := time.Now()

	buildID := g.buildID
	if buildID == "" {
		buildID = uuid.NewString()
	}
	r := &run{
		Generator: g,
		outputDir: outputDir,
		result: &Result{
			BuildID:   buildID,
			OutputDir: outputDir,
			Entries:   []IndexEntry{},
		},
	}

	for _, dir := range []string{defaults.SiteRecipeDir, defaults.SiteImageDir} {
		if err := os.MkdirAll(filepath.Join(outputDir, dir), defaults.DirMode); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	loaded, err := store.LoadAll(recipeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes from %s: %w", recipeDir, err)
	}
	for _, f := range loaded.Failures {
		r.fail(f.Directory.Name(), f.Err)
	}

	if err := r.renderRecipes(ctx, loaded.Entries); err != nil {
		return nil, err
	}

	r.result.Tags = distinctTags(r.result.Entries)
	slices.SortStableFunc(r.result.Entries, func(a, b IndexEntry) int {
		return strings.Compare(a.Title, b.Title)
	})

	if g.engine.HasIndex() {
		if err := r.renderIndex(); err != nil {
			return nil, err
		}
	}

	if static := g.engine.StaticDir(); static != "" {
		if err := r.copyDir(ctx, static, filepath.Join(outputDir, defaults.StaticDir)); err != nil {
			return nil, fmt.Errorf("failed to copy static files: %w", err)
		}
	}

	if g.checksums {
		checksumPath, err := checksum.GenerateChecksums(ctx, outputDir, r.result.Files)
		if err != nil {
			return nil, err
		}
		r.result.ChecksumFile = checksumPath
	}

	r.result.Duration = time.Since(start)
	buildDuration.Observe(r.result.Duration.Seconds())
	siteRecipes.Set(float64(len(r.result.Entries)))
	siteBytes.Set(float64(r.result.Size))

	slog.Debug("site generated",
		"build_id", buildID,
		"recipes", len(r.result.Entries),
		"failures", len(r.result.Failures),
		"files", len(r.result.Files),
		"duration", r.result.Duration.Round(time.Millisecond),
	)

	return r.result, nil
}

func (r *run) fail(name string, err error) {
	recipesRendered.WithLabelValues("error").Inc()
	r.result.Failures = append(r.result.Failures, Failure{Name: name, Error: err.Error()})
}

func (r *run) renderRecipes(ctx context.Context, entries []store.Entry) error {
	finder := naming.NewUniqueNameFinder(defaults.NumberPrefix, defaults.NumberSuffix)
	ext := r.engine.Extension()

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context cancelled: %w", err)
		}

		rec := entry.Recipe
		name := r.filter.Filter(rec.Title)
		if name == "" {
			name = r.filter.Filter(defaults.UntitledRecipe)
		}
		name = finder.Find(name)

		image, err := entry.Directory.ImageFileName(r.imageExts)
		if err != nil {
			r.fail(entry.Directory.Name(), err)
			continue
		}
		var imagePath string
		if image != "" {
			imagePath = path.Join(defaults.SiteImageDir, name+filepath.Ext(image))
		}

		pagePath := path.Join(defaults.SiteRecipeDir, name+"."+ext)
		data := map[string]any{
			"recipe":     rec,
			"path":       pagePath,
			"image_path": imagePath,
			"build_id":   r.result.BuildID,
		}
		if err := r.writeFile(pagePath, func(w io.Writer) error {
			return r.engine.RenderRecipe(w, data)
		}); err != nil {
			r.fail(entry.Directory.Name(), err)
			continue
		}
		// a page is only kept together with its image
		if image != "" {
			if err := r.copyFile(filepath.Join(entry.Directory.Path(), image), imagePath); err != nil {
				r.discard(pagePath)
				r.fail(entry.Directory.Name(), err)
				continue
			}
		}

		tags := slices.Clone(rec.Metadata.Tags)
		slices.Sort(tags)
		r.result.Entries = append(r.result.Entries, IndexEntry{
			Title:     rec.Title,
			Path:      pagePath,
			Tags:      tags,
			ImagePath: imagePath,
		})
		recipesRendered.WithLabelValues("success").Inc()
		slog.Debug("recipe rendered", "title", rec.Title, "path", pagePath)
	}
	return nil
}

// copyFile copies src to relPath below the output directory.
func (r *run) copyFile(src, relPath string) error {
	return r.writeFile(relPath, func(w io.Writer) error {
		f, err := os.Open(src)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	})
}

// discard removes a file written by writeFile and drops it from the result.
func (r *run) discard(relPath string) {
	full := filepath.Join(r.outputDir, filepath.FromSlash(relPath))
	i := slices.Index(r.result.Files, full)
	if i < 0 {
		return
	}
	if info, err := os.Stat(full); err == nil {
		r.result.Size -= info.Size()
	}
	if err := os.Remove(full); err != nil {
		slog.Warn("failed to remove discarded file", "path", full, "error", err)
	}
	r.result.Files = slices.Delete(r.result.Files, i, i+1)
}

func (r *run) renderIndex() error {
	data := map[string]any{
		"recipes":  r.result.Entries,
		"tags":     r.result.Tags,
		"build_id": r.result.BuildID,
	}
	indexPath := defaults.IndexTemplateName + "." + r.engine.Extension()
	if err := r.writeFile(indexPath, func(w io.Writer) error {
		return r.engine.RenderIndex(w, data)
	}); err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}
	return nil
}

// copyDir copies the tree below src into dst.
func (r *run) copyDir(ctx context.Context, src, dst string) error {
	rel, err := filepath.Rel(r.outputDir, dst)
	if err != nil {
		return err
	}
	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		sub, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		return r.writeFile(path.Join(filepath.ToSlash(rel), filepath.ToSlash(sub)), func(w io.Writer) error {
			f, err := os.Open(p)
			if err != nil {
				return err
			}
			defer f.Close()
			_, err = io.Copy(w, f)
			return err
		})
	})
}

// writeFile creates the file at the slash separated path relPath below the
// output directory and records it in the result. A failed write removes the
// partial file.
func (r *run) writeFile(relPath string, write func(io.Writer) error) error {
	full := filepath.Join(r.outputDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), defaults.DirMode); err != nil {
		return err
	}

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaults.FileMode)
	if err != nil {
		return err
	}
	cw := &countingWriter{w: f}
	werr := write(cw)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		if rerr := os.Remove(full); rerr != nil {
			slog.Warn("failed to remove partial file", "path", full, "error", rerr)
		}
		return werr
	}

	r.result.Files = append(r.result.Files, full)
	r.result.Size += cw.n
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func distinctTags(entries []IndexEntry) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, e := range entries {
		for _, tag := range e.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	slices.Sort(tags)
	return tags
}
