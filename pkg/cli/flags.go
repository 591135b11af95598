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
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/urfave/cli/v3"

	apperrors "github.com/sweetpotator/potator/pkg/errors"
	"github.com/sweetpotator/potator/pkg/header"
	"github.com/sweetpotator/potator/pkg/recipe"
	"github.com/sweetpotator/potator/pkg/serializer"
	"github.com/sweetpotator/potator/pkg/store"
)

var (
	noEditFlag = &cli.BoolFlag{
		Name:  "no-edit",
		Usage: "Do not open the recipe in the editor",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("Output format (supported: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
)

// titleArg returns the TITLE argument of cmd.
func titleArg(cmd *cli.Command) (string, error) {
	if !cmd.Args().Present() {
		return "", apperrors.New(apperrors.ErrCodeInvalidRequest, "missing recipe title")
	}
	return strings.Join(cmd.Args().Slice(), " "), nil
}

// dirArg returns the directory argument of cmd.
func dirArg(cmd *cli.Command, usage string) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", apperrors.New(apperrors.ErrCodeInvalidRequest, "expected exactly one argument: "+usage)
	}
	return cmd.Args().First(), nil
}

// parseOutputFormat returns the --format value, or fallback if it is unset.
func parseOutputFormat(cmd *cli.Command, fallback serializer.Format) (serializer.Format, error) {
	value := cmd.String("format")
	if value == "" {
		return fallback, nil
	}
	format, err := serializer.ParseFormat(value)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid output format", err)
	}
	return format, nil
}

// newHeader returns a document header of kind stamped with the potator
// version.
func newHeader(kind header.Kind, opts ...header.Option) header.Header {
	opts = append([]header.Option{header.WithKind(kind), header.WithVersion(version)}, opts...)
	return *header.New(opts...)
}

// storeError classifies errors of the recipe store. The file the error
// refers to, if any, is attached as "path" context.
func storeError(message string, err error) error {
	var parseErr *recipe.ParseError
	var pathErr *fs.PathError
	var errContext map[string]any
	switch {
	case errors.As(err, &parseErr) && parseErr.Path != "":
		errContext = map[string]any{"path": parseErr.Path}
	case errors.As(err, &pathErr):
		errContext = map[string]any{"path": pathErr.Path}
	}

	code := apperrors.ErrCodeInternal
	switch {
	case errors.Is(err, fs.ErrNotExist):
		code = apperrors.ErrCodeNotFound
	case errors.Is(err, recipe.ErrEmptyTitle),
		errors.Is(err, recipe.ErrInvalidRecipe),
		errors.Is(err, store.ErrMissingImageFileExt),
		errors.Is(err, store.ErrInvalidImageFileExt),
		parseErr != nil:
		code = apperrors.ErrCodeInvalidRequest
	}
	return apperrors.WrapWithContext(code, message, err, errContext)
}
