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
	"strings"

	"github.com/urfave/cli/v3"

	apperrors "github.com/sweetpotator/potator/pkg/errors"
	"github.com/sweetpotator/potator/pkg/store"
)

func (a *app) newCmd() *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "Create a new recipe",
		ArgsUsage: "[TITLE]",
		Description: `Create a recipe directory from the default recipe of the config directory
and open it in the editor. The directory is renamed if the title is changed
while editing. Without TITLE the title of the default recipe is used.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "image",
				Aliases: []string{"i"},
				Usage:   "Image file to copy into the recipe directory",
			},
			noEditFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rec, err := a.cfg.DefaultRecipe()
			if err != nil {
				return apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid default recipe", err)
			}
			if cmd.Args().Present() {
				rec.Title = strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
			}
			if err := rec.Validate(); err != nil {
				return apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid recipe", err)
			}
			title := rec.Title

			dir, err := store.FromTitle(a.cfg.RecipeDir, title)
			if err != nil {
				return storeError("invalid recipe title", err)
			}
			if err := dir.Store(rec); err != nil {
				return storeError("failed to store recipe", err)
			}

			if image := cmd.String("image"); image != "" {
				if err := dir.CopyImageFrom(image, a.cfg.ImageFileExtensions); err != nil {
					return storeError("failed to copy image", err)
				}
			}

			if !cmd.Bool("no-edit") {
				if title, err = a.editRecipe(ctx, dir, title); err != nil {
					return err
				}
			}

			a.success("created recipe '%s'", highlight(title))
			return nil
		},
	}
}
