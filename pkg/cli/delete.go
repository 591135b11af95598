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
	"strings"

	"github.com/urfave/cli/v3"

	apperrors "github.com/sweetpotator/potator/pkg/errors"
	"github.com/sweetpotator/potator/pkg/store"
)

func (a *app) deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a recipe directory with all its files",
		ArgsUsage: "TITLE",
		Action: func(_ context.Context, cmd *cli.Command) error {
			title, err := titleArg(cmd)
			if err != nil {
				return err
			}
			dir, err := store.FromTitle(a.cfg.RecipeDir, title)
			if err != nil {
				return storeError("invalid recipe title", err)
			}
			err = dir.Delete()
			if errors.Is(err, fs.ErrNotExist) {
				return apperrors.Wrap(apperrors.ErrCodeNotFound,
					"recipe directory '"+highlight(dir.Name())+"' not found", err)
			}
			if err != nil {
				return storeError("failed to delete recipe", err)
			}
			a.success("deleted recipe '%s'", highlight(strings.TrimSpace(title)))
			return nil
		},
	}
}
