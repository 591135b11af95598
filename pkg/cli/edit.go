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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	apperrors "github.com/sweetpotator/potator/pkg/errors"
	"github.com/sweetpotator/potator/pkg/store"
)

func (a *app) editCmd() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit a recipe or replace its image",
		ArgsUsage: "TITLE",
		Description: `Open the recipe file in the editor and rename the recipe directory if the
title changed. With --no-edit only the directory name is synchronized with
the title, which is useful after editing the file by other means.

With --set-image the given image replaces the recipe image and the editor
is not opened.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "set-image",
				Aliases: []string{"i"},
				Usage:   "Image file to copy into the recipe directory",
			},
			noEditFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			title, err := titleArg(cmd)
			if err != nil {
				return err
			}
			dir, err := store.FromTitle(a.cfg.RecipeDir, title)
			if err != nil {
				return storeError("invalid recipe title", err)
			}

			if image := cmd.String("set-image"); image != "" {
				return a.setImage(dir, image)
			}

			rec, err := dir.Load()
			if errors.Is(err, fs.ErrNotExist) {
				return apperrors.Wrap(apperrors.ErrCodeNotFound,
					"recipe file '"+highlight(filepath.Base(dir.RecipePath()))+"' not found", err)
			}
			if err != nil {
				return storeError("failed to load recipe", err)
			}

			edited := rec.Title
			if cmd.Bool("no-edit") {
				if err := dir.UpdateFromTitle(rec.Title); err != nil {
					return storeError("failed to rename recipe directory", err)
				}
			} else if edited, err = a.editRecipe(ctx, dir, rec.Title); err != nil {
				return err
			}

			a.success("edited recipe '%s'", highlight(edited))
			return nil
		},
	}
}

func (a *app) setImage(dir *store.Directory, image string) error {
	if _, err := os.Lstat(dir.Path()); err != nil {
		return storeError("recipe directory '"+highlight(dir.Name())+"' not found", err)
	}
	if err := dir.CopyImageFrom(image, a.cfg.ImageFileExtensions); err != nil {
		return storeError("failed to copy image", err)
	}
	a.success("copied image into recipe directory '%s'", highlight(dir.Name()))
	return nil
}
