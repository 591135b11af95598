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
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/sweetpotator/potator/pkg/defaults"
	apperrors "github.com/sweetpotator/potator/pkg/errors"
	"github.com/sweetpotator/potator/pkg/header"
	"github.com/sweetpotator/potator/pkg/recipe"
	"github.com/sweetpotator/potator/pkg/serializer"
	"github.com/sweetpotator/potator/pkg/store"
)

// recipeExport is the document written by the export command.
type recipeExport struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipes []exportEntry `json:"recipes" yaml:"recipes"`
}

type exportEntry struct {
	Recipe *recipe.Recipe `json:"recipe" yaml:"recipe"`
	// Image is the file name of the recipe image below images/.
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}

func (a *app) exportCmd() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export all recipes as structured data",
		ArgsUsage: "OUTPUT_DIR",
		Description: `Write all recipes to OUTPUT_DIR/recipes.json (or recipes.yaml) and copy
their images to OUTPUT_DIR/images. OUTPUT_DIR must not exist. The export
fails if any recipe cannot be loaded.`,
		Flags: []cli.Flag{
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outputDir, err := dirArg(cmd, "OUTPUT_DIR")
			if err != nil {
				return err
			}
			format, err := parseOutputFormat(cmd, serializer.FormatJSON)
			if err != nil {
				return err
			}
			if format == serializer.FormatTable {
				return apperrors.New(apperrors.ErrCodeInvalidRequest, "export supports json and yaml only")
			}

			loaded, err := store.LoadAll(a.cfg.RecipeDir)
			if err != nil {
				return storeError("failed to read recipe directory", err)
			}
			if len(loaded.Failures) > 0 {
				f := loaded.Failures[0]
				return storeError(fmt.Sprintf("failed to load recipe '%s'", highlight(f.Directory.Name())), f.Err)
			}

			if _, err := os.Lstat(outputDir); err == nil {
				return apperrors.New(apperrors.ErrCodeAlreadyExists,
					"output directory '"+highlight(outputDir)+"' already exists")
			} else if !errors.Is(err, fs.ErrNotExist) {
				return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to check output directory", err)
			}

			doc, images, err := a.export(loaded.Entries, outputDir)
			if err != nil {
				return err
			}
			if err := writeExport(ctx, outputDir, format, doc); err != nil {
				return err
			}

			a.success("%d recipes and %d images exported", len(doc.Recipes), images)
			return nil
		},
	}
}

// export copies the recipe images to outputDir/images and returns the
// export document and the number of copied images.
func (a *app) export(entries []store.Entry, outputDir string) (*recipeExport, int, error) {
	imageDir := filepath.Join(outputDir, defaults.SiteImageDir)
	if err := os.MkdirAll(imageDir, defaults.DirMode); err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create output directory", err)
	}

	doc := &recipeExport{
		Header:  newHeader(header.KindRecipeExport),
		Recipes: make([]exportEntry, 0, len(entries)),
	}

	images := 0
	for _, e := range entries {
		image, err := e.Directory.CopyImageTo(imageDir, a.cfg.ImageFileExtensions)
		if err != nil {
			return nil, 0, storeError(fmt.Sprintf("failed to copy image of '%s'", highlight(e.Directory.Name())), err)
		}
		if image != "" {
			images++
			slog.Debug("image exported", "recipe", e.Directory.Name(), "image", image)
		}
		doc.Recipes = append(doc.Recipes, exportEntry{Recipe: e.Recipe, Image: image})
	}
	return doc, images, nil
}

func writeExport(ctx context.Context, outputDir string, format serializer.Format, doc *recipeExport) error {
	path := filepath.Join(outputDir, defaults.ExportFileBaseName+"."+format.Extension())
	w, err := serializer.NewFileWriter(format, path)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create export file", err)
	}
	if err := w.Serialize(ctx, doc); err != nil {
		_ = w.Close()
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to write export file", err)
	}
	if err := w.Close(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to write export file", err)
	}
	return nil
}
