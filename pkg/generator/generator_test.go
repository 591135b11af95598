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
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetpotator/potator/pkg/checksum"
	"github.com/sweetpotator/potator/pkg/naming"
	"github.com/sweetpotator/potator/pkg/recipe"
	"github.com/sweetpotator/potator/pkg/store"
	"github.com/sweetpotator/potator/pkg/template"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func storeRecipe(t *testing.T, root, text string) *store.Directory {
	t.Helper()
	rec, err := recipe.ParseString(text)
	require.NoError(t, err)
	dir, err := store.FromTitle(root, rec.Title)
	require.NoError(t, err)
	require.NoError(t, dir.Store(rec))
	return dir
}

func recipeText(title, tags string) string {
	text := title + "\n\nYield: 2\n"
	if tags != "" {
		text += "Tags: " + tags + "\n"
	}
	return text + "\nIngredients\n  - water\n\nInstructions\n  - boil\n"
}

func newEngine(t *testing.T, withIndex bool) *template.Engine {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"templates/recipe.txt": "{{.recipe.Title}}|{{.path}}|{{.image_path}}|{{.build_id}}",
		"static/css/site.css":  "body{}",
	}
	if withIndex {
		files["templates/index.txt"] = `{{range .recipes}}{{.Title}}:{{.Path}}:{{join .Tags ","}}:{{.ImagePath}};{{end}}|{{join .tags ","}}`
	}
	writeTree(t, dir, files)

	e, err := template.New(dir, template.Options{Extension: "txt"}, nil)
	require.NoError(t, err)
	return e
}

func newStore(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	soup := storeRecipe(t, root, recipeText("Soup", "b, a"))
	writeTree(t, soup.Path(), map[string]string{"Soup.jpg": "jpeg"})
	storeRecipe(t, root, recipeText("Soup", ""))
	storeRecipe(t, root, recipeText("Apple Pie", "a"))
	writeTree(t, root, map[string]string{"Corrupt/Corrupt.recipe": "Corrupt\n"})
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGenerate(t *testing.T) {
	recipes := newStore(t)
	out := filepath.Join(t.TempDir(), "site")

	gen := New(newEngine(t, true),
		WithImageExtensions([]string{"jpg", "png"}),
		WithBuildID("build-1"),
		WithChecksums(true),
	)
	result, err := gen.Generate(context.Background(), recipes, out)
	require.NoError(t, err)

	assert.Equal(t, "build-1", result.BuildID)
	assert.Equal(t, out, result.OutputDir)
	assert.Equal(t, "Soup|recipes/Soup.txt|images/Soup.jpg|build-1", readFile(t, filepath.Join(out, "recipes", "Soup.txt")))
	assert.Equal(t, "Soup|recipes/Soup (2).txt||build-1", readFile(t, filepath.Join(out, "recipes", "Soup (2).txt")))
	assert.Equal(t, "Apple Pie|recipes/Apple Pie.txt||build-1", readFile(t, filepath.Join(out, "recipes", "Apple Pie.txt")))
	assert.Equal(t, "jpeg", readFile(t, filepath.Join(out, "images", "Soup.jpg")))
	assert.Equal(t, "body{}", readFile(t, filepath.Join(out, "static", "css", "site.css")))

	assert.Equal(t,
		"Apple Pie:recipes/Apple Pie.txt:a:;Soup:recipes/Soup.txt:a,b:images/Soup.jpg;Soup:recipes/Soup (2).txt::;|a,b",
		readFile(t, filepath.Join(out, "index.txt")))

	assert.Equal(t, []string{"a", "b"}, result.Tags)
	require.Len(t, result.Entries, 3)
	assert.Equal(t, "Apple Pie", result.Entries[0].Title)

	require.Len(t, result.Failures, 1)
	assert.Equal(t, "Corrupt", result.Failures[0].Name)
	assert.True(t, result.HasFailures())

	assert.Len(t, result.Files, 6)
	assert.Equal(t, checksum.FilePath(out), result.ChecksumFile)
	require.NoError(t, checksum.Verify(context.Background(), out))
	assert.Positive(t, result.Size)
}

func TestGenerateWithoutIndex(t *testing.T) {
	recipes := newStore(t)
	out := t.TempDir()

	result, err := New(newEngine(t, false)).Generate(context.Background(), recipes, out)
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(out, "index.txt"))
	assert.NoFileExists(t, checksum.FilePath(out))
	assert.Empty(t, result.ChecksumFile)
	assert.NotEmpty(t, result.BuildID)
	// no image extensions configured, so no image is copied
	assert.NoFileExists(t, filepath.Join(out, "images", "Soup.jpg"))
}

func TestGenerateSlugify(t *testing.T) {
	recipes := t.TempDir()
	storeRecipe(t, recipes, recipeText("Crème Brûlée", ""))
	storeRecipe(t, recipes, recipeText("creme brulee", ""))
	storeRecipe(t, recipes, recipeText("!!!", ""))
	out := t.TempDir()

	result, err := New(newEngine(t, true), WithFilter(naming.Slugify)).Generate(context.Background(), recipes, out)
	require.NoError(t, err)

	var paths []string
	for _, e := range result.Entries {
		paths = append(paths, e.Path)
	}
	assert.ElementsMatch(t, []string{
		"recipes/untitled.txt",
		"recipes/creme-brulee.txt",
		"recipes/creme-brulee (2).txt",
	}, paths)
}

func TestGenerateSkipsImageOfFailedPage(t *testing.T) {
	recipes := t.TempDir()
	soup := storeRecipe(t, recipes, recipeText("Soup", ""))
	writeTree(t, soup.Path(), map[string]string{"Soup.jpg": "jpeg"})
	storeRecipe(t, recipes, recipeText("Stew", ""))

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"templates/recipe.txt": `{{if eq .recipe.Title "Soup"}}{{template "missing" .}}{{end}}{{.recipe.Title}}`,
	})
	e, err := template.New(dir, template.Options{Extension: "txt"}, nil)
	require.NoError(t, err)

	out := t.TempDir()
	result, err := New(e, WithImageExtensions([]string{"jpg"}), WithChecksums(true)).Generate(context.Background(), recipes, out)
	require.NoError(t, err)

	require.Len(t, result.Failures, 1)
	assert.Equal(t, "Soup", result.Failures[0].Name)
	assert.NoFileExists(t, filepath.Join(out, "images", "Soup.jpg"))
	assert.NoFileExists(t, filepath.Join(out, "recipes", "Soup.txt"))
	assert.Equal(t, "Stew", readFile(t, filepath.Join(out, "recipes", "Stew.txt")))
	for _, f := range result.Files {
		assert.NotContains(t, f, "Soup")
	}
	require.NoError(t, checksum.Verify(context.Background(), out))
}

func TestDiscard(t *testing.T) {
	out := t.TempDir()
	r := &run{Generator: New(newEngine(t, false)), outputDir: out, result: &Result{}}

	require.NoError(t, r.writeFile("recipes/a.txt", func(w io.Writer) error {
		_, err := io.WriteString(w, "page")
		return err
	}))
	require.Len(t, r.result.Files, 1)
	assert.Equal(t, int64(4), r.result.Size)

	r.discard("recipes/a.txt")
	assert.Empty(t, r.result.Files)
	assert.Zero(t, r.result.Size)
	assert.NoFileExists(t, filepath.Join(out, "recipes", "a.txt"))

	// unknown files are left alone
	r.discard("recipes/b.txt")
	assert.Empty(t, r.result.Files)
}

func TestGenerateEmptyStore(t *testing.T) {
	out := t.TempDir()
	result, err := New(newEngine(t, true)).Generate(context.Background(), t.TempDir(), out)
	require.NoError(t, err)

	assert.Empty(t, result.Entries)
	assert.Empty(t, result.Tags)
	assert.Equal(t, "|", readFile(t, filepath.Join(out, "index.txt")))
}

func TestGenerateErrors(t *testing.T) {
	recipes := newStore(t)

	_, err := New(newEngine(t, true)).Generate(context.Background(), filepath.Join(recipes, "missing"), t.TempDir())
	assert.ErrorContains(t, err, "failed to load recipes")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(newEngine(t, true)).Generate(ctx, recipes, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteMetrics(t *testing.T) {
	_, err := New(newEngine(t, false)).Generate(context.Background(), newStore(t), t.TempDir())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "potator.prom")
	require.NoError(t, WriteMetrics(path))

	content := readFile(t, path)
	for _, name := range []string{"potator_build_duration_seconds", "potator_recipes_rendered_total", "potator_site_recipes"} {
		assert.True(t, strings.Contains(content, name), "missing metric %s", name)
	}
}

func TestResultSummary(t *testing.T) {
	r := &Result{
		Entries:  make([]IndexEntry, 2),
		Files:    make([]string, 3),
		Size:     2048,
		Duration: 1500 * time.Millisecond,
	}
	assert.Equal(t, "Generated 2 recipes, 3 files (2.0 KB) in 1.5s.", r.Summary())

	r.Failures = []Failure{{Name: "x", Error: "boom"}}
	assert.Equal(t, "Generated 2 recipes, 3 files (2.0 KB) in 1.5s. Skipped 1 recipes.", r.Summary())
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{in: 0, want: "0 B"},
		{in: 1023, want: "1023 B"},
		{in: 1536, want: "1.5 KB"},
		{in: 5 * 1024 * 1024, want: "5.0 MB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatBytes(tt.in))
	}
}
