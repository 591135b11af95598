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
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/sweetpotator/potator/pkg/config"
	"github.com/sweetpotator/potator/pkg/defaults"
	apperrors "github.com/sweetpotator/potator/pkg/errors"
	"github.com/sweetpotator/potator/pkg/logging"
)

const (
	name           = "potator"
	versionDefault = "dev"
	homepage       = "https://github.com/sweetpotator/potator"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
	editor editorFunc
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		editor: runEditor,
	}
}

// Execute runs the potator command line. This is called by main.main().
func Execute() {
	logging.SetDefaultStructuredLogger(name, version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := newApp(os.Stdout, os.Stderr)
	err := a.rootCmd().Run(ctx, os.Args)
	stop()
	if err != nil {
		a.printError(err)
		os.Exit(apperrors.ExitCode(err))
	}
}

func (a *app) rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Manage recipes and render them into a static site",
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		EnableShellCompletion: true,
		Writer:                a.stdout,
		ErrWriter:             a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Usage:   "Config directory (default is $XDG_CONFIG_HOME/potator)",
				Sources: cli.EnvVars("POTATOR_CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "recipe-dir",
				Usage:   "Recipe directory, overrides recipe_dir of the config file",
				Sources: cli.EnvVars("POTATOR_RECIPE_DIR"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, a.loadConfig(cmd.String("config-dir"), cmd.String("recipe-dir"))
		},
		Commands: []*cli.Command{
			a.newCmd(),
			a.editCmd(),
			a.deleteCmd(),
			a.listCmd(),
			a.buildCmd(),
			a.exportCmd(),
			a.verifyCmd(),
			a.infoCmd(),
		},
	}
}

// loadConfig bootstraps and loads the config directory.
func (a *app) loadConfig(dir, recipeDir string) error {
	if dir == "" {
		var err error
		if dir, err = config.DefaultDir(); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to locate config directory", err)
		}
	}

	if _, err := config.Bootstrap(dir); err != nil {
		return configError(err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return configError(err)
	}

	if recipeDir != "" {
		wd, err := os.Getwd()
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to resolve recipe directory", err)
		}
		if cfg.RecipeDir, err = config.ResolvePath(wd, recipeDir); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid recipe directory", err)
		}
		if err := os.MkdirAll(cfg.RecipeDir, defaults.DirMode); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create recipe directory", err)
		}
	}

	a.cfg = cfg
	return nil
}

func configError(err error) error {
	code := apperrors.ErrCodeInternal
	if errors.Is(err, config.ErrInvalidConfig) {
		code = apperrors.ErrCodeInvalidRequest
	}
	return apperrors.Wrap(code, "failed to load config", err)
}
