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

	"github.com/urfave/cli/v3"

	"github.com/sweetpotator/potator/pkg/checksum"
	apperrors "github.com/sweetpotator/potator/pkg/errors"
)

func (a *app) verifyCmd() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Verify a built site against its checksum file",
		ArgsUsage: "SITE_DIR",
		Description: `Check every file listed in SITE_DIR/checksums.txt, which is written by
build --checksums. Fails on the first file that is missing or changed.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := dirArg(cmd, "SITE_DIR")
			if err != nil {
				return err
			}

			if _, err := os.Stat(checksum.FilePath(dir)); err != nil {
				return storeError("no checksum file in site '"+highlight(dir)+"'", err)
			}
			if err := checksum.Verify(ctx, dir); err != nil {
				if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
					return apperrors.Wrap(apperrors.ErrCodeTimeout, "verification interrupted", err)
				}
				if errors.Is(err, fs.ErrNotExist) {
					return storeError("site '"+highlight(dir)+"' is missing a file", err)
				}
				return apperrors.Wrap(apperrors.ErrCodeInternal, "site '"+highlight(dir)+"' does not match its checksums", err)
			}

			a.success("site '%s' matches its checksums", highlight(dir))
			return nil
		},
	}
}
