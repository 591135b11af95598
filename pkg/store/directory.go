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
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sweetpotator/potator/pkg/defaults"
	"github.com/sweetpotator/potator/pkg/naming"
	"github.com/sweetpotator/potator/pkg/recipe"
)

var (
	// ErrMissingImageFileExt is returned when an image file has no extension.
	ErrMissingImageFileExt = errors.New("image file has no extension")

	// ErrInvalidImageFileExt is returned when an image extension is not allowed.
	ErrInvalidImageFileExt = errors.New("image file extension is not allowed")
)

// Directory is a handle to a single recipe directory.
type Directory struct {
	parent string
	name   string
}

// New returns a handle to the existing directory name below parent.
func New(parent, name string) *Directory {
	return &Directory{parent: parent, name: name}
}

// FromTitle returns a handle named after title. The directory is not created
// until Store is called.
func FromTitle(parent, title string) (*Directory, error) {
	name, err := nameFromTitle(title)
	if err != nil {
		return nil, err
	}
	return &Directory{parent: parent, name: name}, nil
}

func nameFromTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", recipe.ErrEmptyTitle
	}
	return naming.Sanitize.Filter(title), nil
}

// ListAll returns a handle for every immediate sub directory of root, sorted
// by name.
func ListAll(root string) ([]*Directory, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	dirs := make([]*Directory, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dirs = append(dirs, New(root, entry.Name()))
	}
	return dirs, nil
}

// Name returns the directory name.
func (d *Directory) Name() string {
	return d.name
}

// Parent returns the directory holding this recipe directory.
func (d *Directory) Parent() string {
	return d.parent
}

// Path returns the full directory path.
func (d *Directory) Path() string {
	return filepath.Join(d.parent, d.name)
}

// RecipePath returns the full path of the recipe file.
func (d *Directory) RecipePath() string {
	return filepath.Join(d.Path(), d.recipeFileName())
}

func (d *Directory) recipeFileName() string {
	return d.name + "." + defaults.RecipeFileExtension
}

// Load reads and parses the recipe file. Parse errors carry the recipe file
// path relative to the store root.
func (d *Directory) Load() (*recipe.Recipe, error) {
	f, err := os.Open(d.RecipePath())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rec, err := recipe.Parse(f)
	if err != nil {
		var perr *recipe.ParseError
		if errors.As(err, &perr) {
			perr.Path = filepath.Join(d.name, d.recipeFileName())
		}
		return nil, err
	}
	return rec, nil
}

// Store creates the directory and writes r to a new recipe file. When the
// directory name is taken a numbered name is used and d is updated to it.
// An existing recipe file is never overwritten.
func (d *Directory) Store(r *recipe.Recipe) error {
	if err := d.create(); err != nil {
		return err
	}

	f, err := os.OpenFile(d.RecipePath(), os.O_WRONLY|os.O_CREATE|os.O_EXCL, defaults.FileMode)
	if err != nil {
		return err
	}
	if err := r.Format(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (d *Directory) create() error {
	err := os.Mkdir(d.Path(), defaults.DirMode)
	if errors.Is(err, fs.ErrExist) {
		name, ferr := findAvailableName(d.parent, d.name, "")
		if ferr != nil {
			return ferr
		}
		d.name = name
		err = os.Mkdir(d.Path(), defaults.DirMode)
	}
	if err != nil {
		return err
	}
	slog.Debug("recipe directory created", "name", d.name, "parent", d.parent)
	return nil
}

// findAvailableName probes "<name> (2)", "<name> (3)" ... until one is free
// below parent. A candidate equal to current counts as free.
func findAvailableName(parent, name, current string) (string, error) {
	for i := 2; ; i++ {
		candidate := naming.Numbered(name, defaults.NumberPrefix, defaults.NumberSuffix, i)
		if candidate == current {
			return candidate, nil
		}
		_, err := os.Lstat(filepath.Join(parent, candidate))
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// UpdateFromTitle renames the directory, and every file in it named after the
// directory, to match title. Nothing happens when the name does not change.
func (d *Directory) UpdateFromTitle(title string) error {
	name, err := nameFromTitle(title)
	if err != nil {
		return err
	}
	if name == d.name {
		return nil
	}

	_, err = os.Lstat(filepath.Join(d.parent, name))
	switch {
	case err == nil:
		name, err = findAvailableName(d.parent, name, d.name)
		if err != nil {
			return err
		}
		if name == d.name {
			return nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	oldName := d.name
	if err := os.Rename(d.Path(), filepath.Join(d.parent, name)); err != nil {
		return err
	}
	d.name = name

	entries, err := os.ReadDir(d.Path())
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if strings.TrimSuffix(entry.Name(), ext) != oldName {
			continue
		}
		from := filepath.Join(d.Path(), entry.Name())
		to := filepath.Join(d.Path(), name+ext)
		if err := os.Rename(from, to); err != nil {
			return err
		}
	}

	slog.Debug("recipe directory renamed", "from", oldName, "to", name)
	return nil
}

// Delete removes the directory with all its files. A missing directory is
// reported as an error wrapping fs.ErrNotExist.
func (d *Directory) Delete() error {
	if _, err := os.Lstat(d.Path()); err != nil {
		return err
	}
	if err := os.RemoveAll(d.Path()); err != nil {
		return err
	}
	slog.Debug("recipe directory deleted", "name", d.name)
	return nil
}

// Suffix returns what the directory name adds to the name derived from
// title, e.g. " (2)". It is empty when the name is not a numbered variant.
func (d *Directory) Suffix(title string) string {
	base, err := nameFromTitle(title)
	if err != nil {
		return ""
	}
	rest, ok := strings.CutPrefix(d.name, base)
	if !ok {
		return ""
	}
	return rest
}

// ImageFileName returns the file name of the recipe image, or "" if there is
// none. An image is a regular file named after the directory with one of exts.
func (d *Directory) ImageFileName(exts []string) (string, error) {
	images, err := d.images(exts)
	if err != nil || len(images) == 0 {
		return "", err
	}
	return images[0], nil
}

func (d *Directory) images(exts []string) ([]string, error) {
	entries, err := os.ReadDir(d.Path())
	if err != nil {
		return nil, err
	}
	var images []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		stem, ext := splitExt(entry.Name())
		if stem == d.name && ext != "" && allowedExt(ext, exts) {
			images = append(images, entry.Name())
		}
	}
	return images, nil
}

// CopyImageFrom copies src into the directory as the recipe image, replacing
// any image already present.
func (d *Directory) CopyImageFrom(src string, exts []string) error {
	_, ext := splitExt(filepath.Base(src))
	if ext == "" {
		return fmt.Errorf("%w: %s", ErrMissingImageFileExt, src)
	}
	if !allowedExt(ext, exts) {
		return fmt.Errorf("%w: %q (allowed: %s)", ErrInvalidImageFileExt, ext, strings.Join(exts, ", "))
	}

	dst := filepath.Join(d.Path(), d.name+"."+ext)
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return nil
	}

	existing, err := d.images(exts)
	if err != nil {
		return err
	}
	for _, image := range existing {
		if err := os.Remove(filepath.Join(d.Path(), image)); err != nil {
			return err
		}
	}

	if err := copyFile(src, dst); err != nil {
		return err
	}
	slog.Debug("recipe image copied", "name", d.name, "image", filepath.Base(dst))
	return nil
}

// CopyImageTo copies the recipe image into dstDir under its own file name and
// returns that name, or "" if the recipe has no image.
func (d *Directory) CopyImageTo(dstDir string, exts []string) (string, error) {
	image, err := d.ImageFileName(exts)
	if err != nil || image == "" {
		return "", err
	}
	if err := copyFile(filepath.Join(d.Path(), image), filepath.Join(dstDir, image)); err != nil {
		return "", err
	}
	return image, nil
}

func splitExt(fileName string) (stem, ext string) {
	dot := filepath.Ext(fileName)
	if dot == "" || dot == fileName {
		return fileName, ""
	}
	return strings.TrimSuffix(fileName, dot), dot[1:]
}

func allowedExt(ext string, exts []string) bool {
	return slices.ContainsFunc(exts, func(allowed string) bool {
		return strings.EqualFold(strings.TrimPrefix(allowed, "."), ext)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaults.FileMode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
