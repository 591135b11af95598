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
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/sweetpotator/potator/pkg/defaults"
	apperrors "github.com/sweetpotator/potator/pkg/errors"
	"github.com/sweetpotator/potator/pkg/generator"
	"github.com/sweetpotator/potator/pkg/header"
	"github.com/sweetpotator/potator/pkg/serializer"
)

// buildReport is written by build --report.
type buildReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Template string            `json:"template" yaml:"template"`
	Result   *generator.Result `json:"result" yaml:"result"`
}

func (a *app) buildCmd() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "Render all recipes into a static site",
		ArgsUsage: "OUTPUT_DIR",
		Description: `Render every recipe with the selected template into OUTPUT_DIR:

  recipes/NAME.EXT   one page per recipe
  images/NAME.EXT    recipe images
  index.EXT          recipe index, if the template has one
  static/            static files of the template

Recipes that cannot be loaded or rendered are reported and skipped.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "template",
				Aliases: []string{"t"},
				Value:   defaults.DefaultTemplateName,
				Usage:   "Name of the configured template",
			},
			&cli.StringFlag{
				Name:  "template-dir",
				Usage: "Directory holding the template directories (default is the templates directory of the config directory)",
			},
			&cli.BoolFlag{
				Name:  "checksums",
				Usage: "Write a SHA256 checksum file of all generated files",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write build metrics in Prometheus text format to this file",
			},
			&cli.StringFlag{
				Name:  "report",
				Usage: "Write a build report to this file, format by extension (json, yaml, txt)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.BuildTimeout,
				Usage: "Maximum duration of the build",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outputDir, err := dirArg(cmd, "OUTPUT_DIR")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			templateName := cmd.String("template")
			gen, err := a.newGenerator(templateName, cmd.String("template-dir"), cmd.Bool("checksums"))
			if err != nil {
				return err
			}

			result, err := gen.Generate(ctx, a.cfg.RecipeDir, outputDir)
			if err != nil {
				if errors.Is(err, context.DeadlineExceeded) {
					return apperrors.Wrap(apperrors.ErrCodeTimeout, "build timed out", err)
				}
				return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to build site", err)
			}
			for _, f := range result.Failures {
				a.printError(fmt.Errorf("skipped recipe '%s': %s", highlight(f.Name), f.Error))
			}

			if path := cmd.String("metrics-file"); path != "" {
				if err := generator.WriteMetrics(path); err != nil {
					return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to write metrics", err)
				}
			}
			if path := cmd.String("report"); path != "" {
				if err := writeBuildReport(ctx, path, templateName, result); err != nil {
					return err
				}
			}

			a.success("%s", result.Summary())
			return nil
		},
	}
}

// newGenerator loads the template called templateName from templateDir, or from the
// config directory if templateDir is empty.
func (a *app) newGenerator(templateName, templateDir string, checksums bool) (*generator.Generator, error) {
	tmpl, err := a.cfg.Template(templateName)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			"template name '"+highlight(templateName)+"' not configured", err)
	}

	dir := a.cfg.TemplateDir(templateName)
	if templateDir != "" {
		dir = filepath.Join(templateDir, templateName)
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeNotFound,
			"template name '"+highlight(templateName)+"' not found", err)
	}

	engine, err := a.cfg.EngineFrom(templateName, dir, templateContext())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to load template", err)
	}
	filter, err := tmpl.Filter()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid template config", err)
	}

	return generator.New(engine,
		generator.WithFilter(filter),
		generator.WithImageExtensions(a.cfg.ImageFileExtensions),
		generator.WithChecksums(checksums),
		generator.WithBuildID(uuid.NewString()),
	), nil
}

// templateContext is available to every template.
func templateContext() map[string]any {
	return map[string]any{
		"app": map[string]string{
			"name":     name,
			"version":  version,
			"homepage": homepage,
		},
		"lf": "\n",
	}
}

func writeBuildReport(ctx context.Context, path, template string, result *generator.Result) error {
	report := &buildReport{
		Header:   newHeader(header.KindBuildReport, header.WithMetadata(header.MetadataBuildID, result.BuildID)),
		Template: template,
		Result:   result,
	}

	w, err := serializer.NewFileWriter(serializer.FormatFromPath(path), path)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create build report", err)
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close build report", "error", err)
		}
	}()

	if err := w.Serialize(ctx, report); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to write build report", err)
	}
	return nil
}
