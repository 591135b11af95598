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

package cli

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	apperrors "github.com/sweetpotator/potator/pkg/errors"
	"github.com/sweetpotator/potator/pkg/header"
	"github.com/sweetpotator/potator/pkg/serializer"
	"github.com/sweetpotator/potator/pkg/store"
)

// recipeList is the structured output of the list command.
type recipeList struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipes []listEntry `json:"recipes" yaml:"recipes"`
}

type listEntry struct {
	Title     string   `json:"title" yaml:"title"`
	Directory string   `json:"directory" yaml:"directory"`
	Suffix    string   `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Image     string   `json:"image,omitempty" yaml:"image,omitempty"`
}

func (l *recipeList) Columns() []string {
	return []string{"TITLE", "DIRECTORY", "TAGS", "IMAGE"}
}

func (l *recipeList) Rows() [][]string {
	rows := make([][]string, 0, len(l.Recipes))
	for _, e := range l.Recipes {
		rows = append(rows, []string{e.Title, e.Directory, strings.Join(e.Tags, ", "), e.Image})
	}
	return rows
}

func (a *app) listCmd() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List recipe titles",
		Description: `List the titles of all recipes sorted alphabetically. A number appended to
the directory name to keep it unique is shown after the title.

Recipes that cannot be loaded are reported and skipped. With --format the
list is written as json, yaml or table.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "files",
				Aliases: []string{"f"},
				Usage:   "List recipe file names instead of titles",
			},
			&cli.StringSliceFlag{
				Name:  "tag",
				Usage: "Only list recipes with this tag, may be repeated",
			},
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("files") {
				return a.listFiles()
			}

			format, err := parseOutputFormat(cmd, "")
			if err != nil {
				return err
			}

			result, err := store.LoadAll(a.cfg.RecipeDir)
			if err != nil {
				return storeError("failed to read recipe directory", err)
			}
			for _, f := range result.Failures {
				a.printError(fmt.Errorf("skipped recipe '%s': %w", highlight(f.Directory.Name()), f.Err))
			}

			list := &recipeList{Recipes: a.listEntries(result.Entries, cmd.StringSlice("tag"))}
			if format == "" {
				for _, e := range list.Recipes {
					if e.Suffix != "" {
						fmt.Fprintln(a.stdout, e.Title+suffixStyle.Render(e.Suffix))
					} else {
						fmt.Fprintln(a.stdout, e.Title)
					}
				}
				return nil
			}

			list.Header = newHeader(header.KindRecipeList)
			if err := serializer.NewWriter(format, a.stdout).Serialize(ctx, list); err != nil {
				return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to write recipe list", err)
			}
			return nil
		},
	}
}

func (a *app) listFiles() error {
	dirs, err := store.ListAll(a.cfg.RecipeDir)
	if err != nil {
		return storeError("failed to read recipe directory", err)
	}
	names := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		names = append(names, filepath.Base(dir.RecipePath()))
	}
	slices.Sort(names)
	for _, n := range names {
		fmt.Fprintln(a.stdout, n)
	}
	return nil
}

// listEntries returns the entries carrying every tag of tags, sorted by
// title and suffix.
func (a *app) listEntries(entries []store.Entry, tags []string) []listEntry {
	list := make([]listEntry, 0, len(entries))
	for _, e := range entries {
		if !hasTags(e.Recipe.Metadata.Tags, tags) {
			continue
		}
		image, err := e.Directory.ImageFileName(a.cfg.ImageFileExtensions)
		if err != nil {
			slog.Warn("failed to look up recipe image", "name", e.Directory.Name(), "error", err)
		}
		list = append(list, listEntry{
			Title:     e.Recipe.Title,
			Directory: e.Directory.Name(),
			Suffix:    e.Directory.Suffix(e.Recipe.Title),
			Tags:      e.Recipe.Metadata.Tags,
			Image:     image,
		})
	}
	slices.SortFunc(list, func(x, y listEntry) int {
		return cmp.Or(cmp.Compare(x.Title, y.Title), cmp.Compare(x.Suffix, y.Suffix))
	})
	return list
}

func hasTags(have, want []string) bool {
	for _, w := range want {
		if !slices.ContainsFunc(have, func(h string) bool { return strings.EqualFold(h, w) }) {
			return false
		}
	}
	return true
}
