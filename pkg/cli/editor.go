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
	"log/slog"
	"os"
	"os/exec"
	"slices"

	apperrors "github.com/sweetpotator/potator/pkg/errors"
	"github.com/sweetpotator/potator/pkg/store"
)

// editorFunc opens path with the editor command line argv.
type editorFunc func(ctx context.Context, argv []string, path string) error

// runEditor runs argv with path appended and the terminal attached. A non
// zero exit status of the editor is logged, not returned.
func runEditor(ctx context.Context, argv []string, path string) error {
	if len(argv) == 0 || argv[0] == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "no editor command configured")
	}

	cmd := exec.CommandContext(ctx, argv[0], append(slices.Clone(argv[1:]), path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &exitErr):
		slog.Warn("editor exited with non-zero status", "command", argv[0], "status", exitErr.ExitCode())
		return nil
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			"editor command '"+highlight(argv[0])+"' not found", err)
	default:
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to run editor", err)
	}
}

// editRecipe opens the recipe file of dir in the editor and renames dir if
// the edited title differs from title. It returns the edited title.
func (a *app) editRecipe(ctx context.Context, dir *store.Directory, title string) (string, error) {
	a.info("waiting for editor to close...")
	if err := a.editor(ctx, a.cfg.Editor, dir.RecipePath()); err != nil {
		return "", err
	}

	rec, err := dir.Load()
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "edited recipe is invalid", err)
	}
	if rec.Title != title {
		if err := dir.UpdateFromTitle(rec.Title); err != nil {
			return "", apperrors.Wrap(apperrors.ErrCodeInternal, "failed to rename recipe directory", err)
		}
	}
	return rec.Title, nil
}
